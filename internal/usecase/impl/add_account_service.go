// Package impl contains the implementation of the application's business logic.
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

// addAccountService implements the AddAccountUsecase interface.
type addAccountService struct {
	loadByEmailRepo repository.LoadAccountByEmailRepository
	addRepo         repository.AddAccountRepository
	hasher          service.PasswordHasher
	logger          *slog.Logger
}

// AddAccountServiceParams holds dependencies for AddAccountService, injected by Fx.
type AddAccountServiceParams struct {
	fx.In

	LoadByEmailRepo repository.LoadAccountByEmailRepository
	AddRepo         repository.AddAccountRepository
	Hasher          service.PasswordHasher
	Logger          *slog.Logger
}

// NewAddAccountService is the constructor for addAccountService.
func NewAddAccountService(params AddAccountServiceParams) usecase.AddAccountUsecase {
	return &addAccountService{
		loadByEmailRepo: params.LoadByEmailRepo,
		addRepo:         params.AddRepo,
		hasher:          params.Hasher,
		logger:          params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *addAccountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Add registers a new account unless the email is already taken.
func (srv *addAccountService) Add(ctx context.Context, input *usecase.AddAccountInput) (*entity.Account, error) {
	existing, err := srv.loadByEmailRepo.LoadByEmail(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load account by email")
	}
	if existing != nil {
		srv.log(ctx).Debug("Account already exists", slog.String("email", input.Email))

		return nil, nil
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	account, err := srv.addRepo.Add(ctx, &repository.AddAccountData{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  hashedPassword,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to add account")
	}

	srv.log(ctx).Info("Account created", slog.Any("accountID", account.ID))

	return account, nil
}
