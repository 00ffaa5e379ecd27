package usecase

import (
	"context"
	"errors"
	"strings"

	"github.com/rafaelmtz/leadtracker/internal/entity"
	"github.com/rafaelmtz/leadtracker/internal/infra/auth"
)

type LoginInput struct {
	Email    string
	Password string
}

type LoginOutput struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type LoginUseCase struct {
	Users  entity.UserRepositoryInterface
	Tokens TokenIssuer
}

func NewLoginUseCase(users entity.UserRepositoryInterface, tokens TokenIssuer) *LoginUseCase {
	return &LoginUseCase{Users: users, Tokens: tokens}
}

// Execute checks the credentials and issues a bearer token. Unknown email
// and wrong password both come back as ErrInvalidCredentials so the
// response does not reveal which accounts exist.
func (uc *LoginUseCase) Execute(ctx context.Context, input LoginInput) (*LoginOutput, error) {
	input.Email = strings.TrimSpace(input.Email)
	if input.Email == "" || input.Password == "" {
		return nil, ValidationError{"username", "username and password are required"}
	}

	user, err := uc.Users.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, entity.ErrUserNotFound) {
			return nil, entity.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, input.Password) {
		return nil, entity.ErrInvalidCredentials
	}

	token, err := uc.Tokens.Issue(user.Email)
	if err != nil {
		return nil, err
	}

	return &LoginOutput{AccessToken: token, TokenType: "bearer"}, nil
}
