package impl

import (
	"context"
	"log/slog"

	deliverycontext "authsvc/internal/delivery/context"
	"authsvc/internal/domain/entity"
	"authsvc/internal/domain/repository"
	"authsvc/internal/domain/service"
	"authsvc/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// loadAccountByTokenService implements the LoadAccountByTokenUsecase interface.
type loadAccountByTokenService struct {
	decrypter       service.Decrypter
	loadByTokenRepo repository.LoadAccountByTokenRepository
	logger          *slog.Logger
}

// LoadAccountByTokenServiceParams holds dependencies for LoadAccountByTokenService, injected by Fx.
type LoadAccountByTokenServiceParams struct {
	fx.In

	Decrypter       service.Decrypter
	LoadByTokenRepo repository.LoadAccountByTokenRepository
	Logger          *slog.Logger
}

// NewLoadAccountByTokenService is the constructor for loadAccountByTokenService.
func NewLoadAccountByTokenService(params LoadAccountByTokenServiceParams) usecase.LoadAccountByTokenUsecase {
	return &loadAccountByTokenService{
		decrypter:       params.Decrypter,
		loadByTokenRepo: params.LoadByTokenRepo,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *loadAccountByTokenService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// LoadByToken resolves a token to its account. The repository is only consulted
// for tokens the decrypter accepts.
func (srv *loadAccountByTokenService) LoadByToken(ctx context.Context, token string, role entity.Role) (*entity.Account, error) {
	value, err := srv.decrypter.Decrypt(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to decrypt access token")
	}
	if value == "" {
		srv.log(ctx).Debug("Access token rejected")

		return nil, nil
	}

	account, err := srv.loadByTokenRepo.LoadByToken(ctx, token, role)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account by token")
	}

	return account, nil
}
