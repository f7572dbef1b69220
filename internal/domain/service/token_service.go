package service

// Encrypter turns a value, usually an account ID, into an access token.
type Encrypter interface {
	Encrypt(value string) (string, error)
}

// Decrypter recovers the value an Encrypter put into a token.
// Expired, malformed, or tampered tokens decode to "" with a nil error.
type Decrypter interface {
	Decrypt(token string) (string, error)
}

// TokenService is implemented by infra types that both issue and verify tokens.
type TokenService interface {
	Encrypter
	Decrypter
}
