package repository

import (
	"authsvc/internal/domain/repository"
)

var (
	_ repository.AccountRepository            = (*MockAccountRepository)(nil)
	_ repository.LoadAccountByEmailRepository = (*MockLoadAccountByEmailRepository)(nil)
	_ repository.LoadAccountByTokenRepository = (*MockLoadAccountByTokenRepository)(nil)
	_ repository.AddAccountRepository         = (*MockAddAccountRepository)(nil)
	_ repository.UpdateAccessTokenRepository  = (*MockUpdateAccessTokenRepository)(nil)
)
