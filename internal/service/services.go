package service

import (
	"github.com/Remeraldb/ValidatateInputDataTest/internal/audit"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/config"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/repository"
	"github.com/Remeraldb/ValidatateInputDataTest/internal/token"
)

type Services struct {
	Auth *AuthService
}

func NewServices(users repository.UserRepository, recorder audit.Recorder, cfg *config.Config) *Services {
	codec := token.NewCodec(cfg.JWTSecret, cfg.TokenTTL)
	return &Services{
		Auth: NewAuthService(users, recorder, codec, cfg.AdminEmail, cfg.AdminPassword),
	}
}
