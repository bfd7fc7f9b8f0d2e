package auth

import (
	"context"
	"medrecord-service/internal/app/config"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/dto/responses"
	"medrecord-service/internal/pkg/exceptions"
	"medrecord-service/internal/pkg/utils"
	"time"
)

type authUsecase struct {
	CredentialRepository CredentialRepository
	InternalConfig       *config.InternalConfig
}

func NewAuthUsecase(credentialRepository CredentialRepository, internalConfig *config.InternalConfig) AuthUsecase {
	return &authUsecase{
		CredentialRepository: credentialRepository,
		InternalConfig:       internalConfig,
	}
}

func (uc *authUsecase) IssueToken(ctx context.Context, request *requests.Token) (*responses.Token, error) {
	user, err := uc.CredentialRepository.VerifyCredentials(ctx, request.Username, request.Password)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrInvalidUsernameOrPassword(nil)
	}

	expiry := time.Duration(uc.InternalConfig.JWT.ExpTimeInMinute) * time.Minute
	accessToken, err := utils.GenerateAccessToken(user.Username, request.Scopes, uc.InternalConfig.JWT.Secret, expiry)
	if err != nil {
		return nil, err
	}

	return &responses.Token{
		AccessToken: accessToken,
		TokenType:   constvars.TokenTypeBearer,
	}, nil
}

func (uc *authUsecase) ResolveToken(ctx context.Context, token string) (*models.User, error) {
	subject, _, err := utils.ParseAccessToken(token, uc.InternalConfig.JWT.Secret)
	if err != nil {
		return nil, err
	}

	user, err := uc.CredentialRepository.FindByUsername(ctx, subject)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrTokenUnknownSubject(nil)
	}
	return user, nil
}
