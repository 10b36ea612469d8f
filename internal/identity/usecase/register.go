package usecase

import (
	"context"
	"log/slog"
	"strings"

	"github.com/cookingforum/auth/internal/identity/entity"
	"github.com/cookingforum/auth/internal/pkg/goerror"
)

type RegisterInput struct {
	Name             string `validate:"required,max=32"`
	Surname          string `validate:"required,max=32"`
	Email            string `validate:"required,email,max=254"`
	Password         string `validate:"required,min=8,max=32,passupper,passlower,passdigit,passsymbol,passcharset"`
	TwoFactorEnabled bool
}

// Register creates a user account with a bcrypt password hash. The e-mail
// address is unique across accounts.
func (s *Usecase) Register(ctx context.Context, in RegisterInput) error {
	ctx, span := s.startSpan(ctx, "Register")
	defer span.End()

	in.Name = strings.TrimSpace(in.Name)
	in.Surname = strings.TrimSpace(in.Surname)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))

	if err := s.validator.Validate(in); err != nil {
		return goerror.NewInvalidInput(err)
	}

	passwordHash, err := s.bcrypt.Hash(in.Password)
	if err != nil {
		slog.ErrorContext(ctx, "failed to hash password", "error", err)

		return goerror.NewServer(err)
	}

	user := entity.NewUser{
		ID:               s.uid.Generate(),
		Name:             in.Name,
		Surname:          in.Surname,
		Email:            in.Email,
		TwoFactorEnabled: in.TwoFactorEnabled,
	}

	inserted, err := s.repoDB.CreateUser(ctx, user, string(passwordHash))
	if err != nil {
		slog.ErrorContext(ctx, "failed to create user", "error", err)

		return goerror.NewServer(err)
	}

	if !inserted {
		return goerror.NewBusiness("The e-mail address has already been used", goerror.CodeInvalidInput)
	}

	return nil
}
