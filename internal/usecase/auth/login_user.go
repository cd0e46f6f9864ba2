package auth

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/appointment-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/appointment-booking/internal/domain/user"
)

type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput never carries the password hash.
type LoginOutput struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginUser struct {
	users  domain.UserRepository
	hasher PasswordHasher
}

func NewLoginUser(users domain.UserRepository, hasher PasswordHasher) *LoginUser {
	return &LoginUser{users: users, hasher: hasher}
}

func (uc *LoginUser) Execute(ctx context.Context, in LoginInput) (*LoginOutput, error) {
	u, err := uc.users.FindUserByEmail(ctx, user.NormalizeEmail(in.Email))
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if u == nil {
		return nil, user.ErrInvalidCredentials
	}

	if err := uc.hasher.Compare(u.PasswordHash, in.Password); err != nil {
		return nil, user.ErrInvalidCredentials
	}

	return &LoginOutput{
		ID:    u.ID,
		Name:  u.Name,
		Email: u.Email,
		Role:  u.Role,
	}, nil
}
