package impl

import (
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mockAnyAddAccountData() any {
	return mock.AnythingOfType("*repository.AddAccountData")
}
