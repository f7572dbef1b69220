package context

import (
	"context"

	"authsvc/internal/domain/entity"
)

// WithAccount returns a new context carrying the authenticated account.
func WithAccount(ctx context.Context, account *entity.Account) context.Context {
	return context.WithValue(ctx, KeyAccount, account)
}

// GetAccount extracts the authenticated account from context.Context.
func GetAccount(ctx context.Context) (*entity.Account, bool) {
	account, ok := ctx.Value(KeyAccount).(*entity.Account)
	if !ok || account == nil {
		return nil, false
	}

	return account, true
}
