package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"mercado_erp/internal/domain/entities"
	"mercado_erp/internal/logger"
	"mercado_erp/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrUserNotFound    = errors.New("user not found")
	ErrInvalidUserID   = errors.New("invalid user id")
	ErrInvalidUser     = errors.New("invalid user")
	ErrInvalidUserRole = errors.New("invalid user role")
	ErrUsernameTaken   = errors.New("username already taken")
)

// UserInput is what an administrator submits. Password is plain text and
// optional on update.
type UserInput struct {
	Name     string
	Username string
	Password string
	Roles    []entities.Role
}

type IUserUseCase interface {
	List(ctx context.Context) ([]entities.User, error)
	Create(ctx context.Context, in UserInput) (entities.User, error)
	Update(ctx context.Context, id string, in UserInput) (entities.User, error)
	Delete(ctx context.Context, id string) error
}

type UserUseCase struct {
	// mu keeps the username check and the write together.
	mu         sync.Mutex
	repo       interfaces.IUserRepository
	newID      func() string
	bcryptCost int
	log        zerolog.Logger
}

var _ IUserUseCase = (*UserUseCase)(nil)

func NewUserUseCase(repo interfaces.IUserRepository) *UserUseCase {
	return &UserUseCase{
		repo:       repo,
		newID:      uuid.NewString,
		bcryptCost: bcrypt.DefaultCost,
		log:        logger.WithComponent("user"),
	}
}

func (u *UserUseCase) List(ctx context.Context) ([]entities.User, error) {
	return u.repo.List(ctx)
}

func (u *UserUseCase) Create(ctx context.Context, in UserInput) (entities.User, error) {
	in = normalizeUserInput(in)
	if err := validateUserInput(in, true); err != nil {
		return entities.User{}, err
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.bcryptCost)
	if err != nil {
		return entities.User{}, fmt.Errorf("hash password: %w", err)
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	if err := u.ensureUsernameFree(ctx, in.Username, ""); err != nil {
		return entities.User{}, err
	}

	user, err := u.repo.Upsert(ctx, entities.User{
		ID:           u.newID(),
		Name:         in.Name,
		Username:     in.Username,
		PasswordHash: string(hash),
		Roles:        in.Roles,
	})
	if err != nil {
		return entities.User{}, err
	}
	u.log.Info().Str("user_id", user.ID).Str("username", user.Username).Msg("[user][usecase] created")
	return user, nil
}

// Update replaces name, username and roles. An empty password keeps the
// stored hash.
func (u *UserUseCase) Update(ctx context.Context, id string, in UserInput) (entities.User, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.User{}, ErrInvalidUserID
	}
	in = normalizeUserInput(in)
	if err := validateUserInput(in, false); err != nil {
		return entities.User{}, err
	}
	var hash []byte
	if in.Password != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(in.Password), u.bcryptCost)
		if err != nil {
			return entities.User{}, fmt.Errorf("hash password: %w", err)
		}
		hash = h
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	current, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.User{}, err
	}
	if current.ID == "" {
		return entities.User{}, ErrUserNotFound
	}
	if err := u.ensureUsernameFree(ctx, in.Username, id); err != nil {
		return entities.User{}, err
	}

	current.Name = in.Name
	current.Username = in.Username
	current.Roles = in.Roles
	if hash != nil {
		current.PasswordHash = string(hash)
	}

	saved, err := u.repo.Upsert(ctx, current)
	if err != nil {
		return entities.User{}, err
	}
	u.log.Info().Str("user_id", saved.ID).Msg("[user][usecase] updated")
	return saved, nil
}

func (u *UserUseCase) Delete(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidUserID
	}

	u.mu.Lock()
	defer u.mu.Unlock()

	deleted, err := u.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}
	u.log.Info().Str("user_id", id).Msg("[user][usecase] deleted")
	return nil
}

func (u *UserUseCase) ensureUsernameFree(ctx context.Context, username, selfID string) error {
	other, err := u.repo.GetByUsername(ctx, username)
	if err != nil {
		return err
	}
	if other.ID != "" && other.ID != selfID {
		return ErrUsernameTaken
	}
	return nil
}

func normalizeUserInput(in UserInput) UserInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Username = strings.TrimSpace(in.Username)
	roles := make([]entities.Role, 0, len(in.Roles))
	seen := map[entities.Role]bool{}
	for _, r := range in.Roles {
		r = entities.Role(strings.ToUpper(strings.TrimSpace(string(r))))
		if !seen[r] {
			seen[r] = true
			roles = append(roles, r)
		}
	}
	in.Roles = roles
	return in
}

func validateUserInput(in UserInput, requirePassword bool) error {
	switch {
	case in.Name == "":
		return fmt.Errorf("%w: name is required", ErrInvalidUser)
	case in.Username == "":
		return fmt.Errorf("%w: username is required", ErrInvalidUser)
	case requirePassword && in.Password == "":
		return fmt.Errorf("%w: password is required", ErrInvalidUser)
	case len(in.Roles) == 0:
		return fmt.Errorf("%w: at least one role is required", ErrInvalidUser)
	}
	for _, r := range in.Roles {
		if !r.Valid() {
			return fmt.Errorf("%w: %q", ErrInvalidUserRole, r)
		}
	}
	return nil
}
