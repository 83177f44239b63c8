package interfaces

import "mercado_erp/internal/domain/entities"

// ITokenIssuer signs and verifies access tokens carrying a Session.
type ITokenIssuer interface {
	Issue(session entities.Session) (string, error)
	Verify(token string) (entities.Session, error)
}
