package usecase

import (
	"context"
	"errors"
	"strings"

	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/logger"
	"mercado_erp/internal/usecase/interfaces"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid username or password")

type IAuthUseCase interface {
	Login(ctx context.Context, username, password string) (token string, session entities.Session, err error)
}

type AuthUseCase struct {
	users  interfaces.IUserRepository
	tokens interfaces.ITokenIssuer
	log    zerolog.Logger
}

var _ IAuthUseCase = (*AuthUseCase)(nil)

func NewAuthUseCase(users interfaces.IUserRepository, tokens interfaces.ITokenIssuer) *AuthUseCase {
	return &AuthUseCase{users: users, tokens: tokens, log: logger.WithComponent("auth")}
}

func (u *AuthUseCase) Login(ctx context.Context, username, password string) (string, entities.Session, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return "", entities.Session{}, ErrInvalidCredentials
	}

	user, err := u.users.GetByUsername(ctx, username)
	if err != nil {
		return "", entities.Session{}, err
	}
	if user.ID == "" {
		u.log.Warn().Str("username", username).Msg("[auth][usecase] unknown username")
		return "", entities.Session{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		u.log.Warn().Str("username", username).Msg("[auth][usecase] wrong password")
		return "", entities.Session{}, ErrInvalidCredentials
	}

	session := entities.Session{UserID: user.ID, Name: user.Name, Username: user.Username, Roles: user.Roles}
	token, err := u.tokens.Issue(session)
	if err != nil {
		return "", entities.Session{}, err
	}
	u.log.Info().Str("user_id", user.ID).Msg("[auth][usecase] login")
	return token, session, nil
}
