package auth

import (
	"errors"
	"fmt"
	"time"

	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/usecase/interfaces"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid access token")

const issuer = "mercado-erp"

type sessionClaims struct {
	Name     string          `json:"name"`
	Username string          `json:"username"`
	Roles    []entities.Role `json:"roles"`
	jwt.RegisteredClaims
}

// JWTIssuer signs HS256 access tokens. The subject is the user id.
type JWTIssuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

var _ interfaces.ITokenIssuer = (*JWTIssuer)(nil)

func NewJWTIssuer(secret string, ttl time.Duration) *JWTIssuer {
	return &JWTIssuer{secret: []byte(secret), ttl: ttl, now: time.Now}
}

func (j *JWTIssuer) Issue(s entities.Session) (string, error) {
	now := j.now()
	claims := sessionClaims{
		Name:     s.Name,
		Username: s.Username,
		Roles:    s.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.UserID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(j.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(j.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

func (j *JWTIssuer) Verify(token string) (entities.Session, error) {
	var claims sessionClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		return j.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(j.now),
	)
	if err != nil || !parsed.Valid {
		return entities.Session{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.Subject == "" {
		return entities.Session{}, fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return entities.Session{
		UserID:   claims.Subject,
		Name:     claims.Name,
		Username: claims.Username,
		Roles:    claims.Roles,
	}, nil
}
