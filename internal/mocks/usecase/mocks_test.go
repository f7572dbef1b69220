package usecase

import (
	"authsvc/internal/usecase"
)

var (
	_ usecase.AddAccountUsecase         = (*MockAddAccountUsecase)(nil)
	_ usecase.AuthenticationUsecase     = (*MockAuthenticationUsecase)(nil)
	_ usecase.LoadAccountByTokenUsecase = (*MockLoadAccountByTokenUsecase)(nil)
)
