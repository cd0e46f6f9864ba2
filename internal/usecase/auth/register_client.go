package auth

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/appointment-booking/internal/audit"
	domain "github.com/BruksfildServices01/appointment-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-booking/internal/domain/user"
	"github.com/BruksfildServices01/appointment-booking/internal/models"
)

type RegisterClientInput struct {
	Name     string
	Email    string
	Password string
}

type RegisterClient struct {
	users       domain.UserRepository
	hasher      PasswordHasher
	audit       *audit.Dispatcher
	checkDomain DomainChecker
	newID       func() string
}

type RegisterOption func(*RegisterClient)

func WithDomainCheck(f DomainChecker) RegisterOption {
	return func(uc *RegisterClient) { uc.checkDomain = f }
}

func WithUserIDs(f func() string) RegisterOption {
	return func(uc *RegisterClient) { uc.newID = f }
}

func NewRegisterClient(
	users domain.UserRepository,
	hasher PasswordHasher,
	audit *audit.Dispatcher,
	opts ...RegisterOption,
) *RegisterClient {
	uc := &RegisterClient{
		users:  users,
		hasher: hasher,
		audit:  audit,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

func (uc *RegisterClient) Execute(
	ctx context.Context,
	in RegisterClientInput,
) (*models.User, error) {

	email := user.NormalizeEmail(in.Email)
	if !user.IsValidEmail(email) {
		return nil, user.ErrInvalidEmail
	}
	if !user.IsStrongPassword(in.Password) {
		return nil, user.ErrWeakPassword
	}
	if uc.checkDomain != nil && !uc.checkDomain(email) {
		return nil, user.ErrInvalidEmailDomain
	}

	existing, err := uc.users.FindUserByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if existing != nil {
		return nil, user.ErrEmailAlreadyInUse
	}

	hashed, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u := &models.User{
		ID:           uc.newID(),
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: hashed,
		Role:         string(user.RoleClient),
	}

	if err := uc.users.SaveUser(ctx, u); err != nil {
		return nil, fmt.Errorf("save user: %w", err)
	}

	uc.audit.Dispatch(audit.Event{
		ActorID:  &u.ID,
		Action:   "user_registered",
		Entity:   "user",
		EntityID: u.ID,
	})

	return u, nil
}
