package user

import (
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"marketplace/models"
	"marketplace/utils"
)

// Signup derives the credential, issues the first session token and persists
// the user. Email uniqueness is enforced by the unique index on insert, so
// two concurrent signups with the same address cannot both succeed.
func (s *DefaultUserService) Signup(in SignupInput) (*AuthResponse, error) {
	if in.Name == "" || in.Email == "" || in.Password == "" {
		return nil, utils.ValidationError{Message: "name, email and password are required"}
	}

	salt, err := utils.NewSalt()
	if err != nil {
		utils.GetLogger().Error("Signup: failed to generate salt", zap.Error(err))
		return nil, fmt.Errorf("signup failed, please try again")
	}
	token, err := utils.NewToken()
	if err != nil {
		utils.GetLogger().Error("Signup: failed to generate token", zap.Error(err))
		return nil, fmt.Errorf("signup failed, please try again")
	}

	userObj := models.User{
		Name:         in.Name,
		Email:        strings.ToLower(strings.TrimSpace(in.Email)),
		Country:      in.Country,
		Province:     in.Province,
		ProviderMode: false,
		Credential: models.Credential{
			Salt: salt,
			Hash: utils.DigestPassword(salt, in.Password),
		},
		Tokens: []models.SessionToken{
			{Hash: utils.HashToken(token), IssuedAt: time.Now()},
		},
	}

	if err := s.Repo.Create(&userObj); err != nil {
		return nil, err
	}

	return &AuthResponse{User: &userObj, Token: token}, nil
}
