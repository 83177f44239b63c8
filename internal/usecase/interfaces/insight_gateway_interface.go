package interfaces

import "context"

// IInsightGateway is the AI collaborator: a prompt in, free text out.
type IInsightGateway interface {
	Complete(ctx context.Context, prompt string) (string, error)
}
