package main

import (
	"context"
	"log/slog"
	"os"

	"authsvc/config"
	"authsvc/internal/delivery"
	"authsvc/internal/delivery/http"
	"authsvc/internal/delivery/http/controller"
	"authsvc/internal/delivery/http/middleware"
	"authsvc/internal/delivery/http/router/handler"
	"authsvc/internal/delivery/http/validator"
	"authsvc/internal/domain/repository"
	"authsvc/internal/domain/service"
	"authsvc/internal/infra/auth"
	logs "authsvc/internal/infra/log"
	"authsvc/internal/infra/persistence/postgres"
	"authsvc/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				postgres.NewAccountRepository,
				fx.As(new(repository.AccountRepository)),
				fx.As(new(repository.LoadAccountByEmailRepository)),
				fx.As(new(repository.LoadAccountByTokenRepository)),
				fx.As(new(repository.AddAccountRepository)),
				fx.As(new(repository.UpdateAccessTokenRepository)),
			),
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			fx.Annotate(
				auth.NewJWTService,
				fx.As(new(service.TokenService)),
				fx.As(new(service.Encrypter)),
				fx.As(new(service.Decrypter)),
			),
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAddAccountService,
			impl.NewAuthenticationService,
			impl.NewLoadAccountByTokenService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			validator.NewValidation,
			controller.NewSignInController,
			controller.NewSignUpController,
			handler.NewAccountHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
