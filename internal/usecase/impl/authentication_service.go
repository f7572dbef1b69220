package impl

import (
	"context"
	"log/slog"

	deliverycontext "authsvc/internal/delivery/context"
	"authsvc/internal/domain/repository"
	"authsvc/internal/domain/service"
	"authsvc/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authenticationService implements the AuthenticationUsecase interface.
type authenticationService struct {
	loadByEmailRepo       repository.LoadAccountByEmailRepository
	updateAccessTokenRepo repository.UpdateAccessTokenRepository
	hasher                service.PasswordHasher
	encrypter             service.Encrypter
	logger                *slog.Logger
}

// AuthenticationServiceParams holds dependencies for AuthenticationService, injected by Fx.
type AuthenticationServiceParams struct {
	fx.In

	LoadByEmailRepo       repository.LoadAccountByEmailRepository
	UpdateAccessTokenRepo repository.UpdateAccessTokenRepository
	Hasher                service.PasswordHasher
	Encrypter             service.Encrypter
	Logger                *slog.Logger
}

// NewAuthenticationService is the constructor for authenticationService.
func NewAuthenticationService(params AuthenticationServiceParams) usecase.AuthenticationUsecase {
	return &authenticationService{
		loadByEmailRepo:       params.LoadByEmailRepo,
		updateAccessTokenRepo: params.UpdateAccessTokenRepo,
		hasher:                params.Hasher,
		encrypter:             params.Encrypter,
		logger:                params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authenticationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Auth verifies the credentials and stores a freshly issued access token on the account.
func (srv *authenticationService) Auth(ctx context.Context, input *usecase.AuthenticationInput) (*usecase.AuthenticationOutput, error) {
	account, err := srv.loadByEmailRepo.LoadByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account by email")
	}
	if account == nil {
		srv.log(ctx).Debug("Sign-in rejected")

		return nil, nil
	}

	matched, err := srv.hasher.Compare(input.Password, account.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to compare password")
	}
	if !matched {
		srv.log(ctx).Debug("Sign-in rejected")

		return nil, nil
	}

	accessToken, err := srv.encrypter.Encrypt(account.ID.String())
	if err != nil {
		return nil, errors.Wrap(err, "failed to encrypt access token")
	}

	if err := srv.updateAccessTokenRepo.UpdateAccessToken(ctx, account.ID, accessToken); err != nil {
		return nil, errors.Wrap(err, "failed to update access token")
	}

	srv.log(ctx).Info("Account signed in", slog.Any("accountID", account.ID))

	return &usecase.AuthenticationOutput{AccessToken: accessToken}, nil
}
