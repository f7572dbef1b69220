package service

import (
	"authsvc/internal/domain/service"
)

var (
	_ service.PasswordHasher = (*MockPasswordHasher)(nil)
	_ service.Encrypter      = (*MockEncrypter)(nil)
	_ service.Decrypter      = (*MockDecrypter)(nil)
)
