package insights

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"mercado_erp/internal/logger"
	"mercado_erp/internal/usecase/interfaces"

	"github.com/rs/zerolog"
	"github.com/sashabaranov/go-openai"
)

var ErrMissingOpenAIAPIKey = errors.New("missing OPENAI_API_KEY")

const systemPrompt = "Você é um analista de negócios do varejo alimentar. Responda sempre em Português do Brasil, de forma breve e objetiva."

// OpenAIGateway answers insight prompts with a chat completion.
type OpenAIGateway struct {
	client *openai.Client
	model  string
	log    zerolog.Logger
}

var _ interfaces.IInsightGateway = (*OpenAIGateway)(nil)

func NewOpenAIGateway(apiKey, model string) (*OpenAIGateway, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrMissingOpenAIAPIKey
	}
	return NewOpenAIGatewayWithConfig(openai.DefaultConfig(apiKey), model), nil
}

func NewOpenAIGatewayWithConfig(cfg openai.ClientConfig, model string) *OpenAIGateway {
	if model == "" {
		model = openai.GPT4oMini
	}
	return &OpenAIGateway{
		client: openai.NewClientWithConfig(cfg),
		model:  model,
		log:    logger.WithComponent("insights"),
	}
}

func (g *OpenAIGateway) Complete(ctx context.Context, prompt string) (string, error) {
	const op = "insights.Complete"

	g.log.Debug().Int("prompt_length", len(prompt)).Str("model", g.model).Msg("[insight][gateway] completion start")

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Temperature: 0.3,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: prompt},
		},
		MaxTokens: 600,
	})
	if err != nil {
		return "", fmt.Errorf("%s: chat completion failed: %w", op, err)
	}
	if len(resp.Choices) == 0 {
		return "", nil
	}

	content := strings.TrimSpace(resp.Choices[0].Message.Content)
	g.log.Debug().Int("answer_length", len(content)).Msg("[insight][gateway] completion done")
	return content, nil
}
