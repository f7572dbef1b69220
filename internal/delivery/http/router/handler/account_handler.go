// Package handler contains echo handlers that need no controller.
package handler

import (
	"net/http"

	deliverycontext "authsvc/internal/delivery/context"
	"authsvc/internal/delivery/http/httperr"
	"authsvc/internal/delivery/http/response"
	"authsvc/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// AccountProfile is the public view of an account.
type AccountProfile struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Role      string `json:"role"`
}

// AccountHandler serves the authenticated caller's own account.
type AccountHandler struct{}

// NewAccountHandler creates a new AccountHandler instance
func NewAccountHandler() *AccountHandler {
	return &AccountHandler{}
}

// GetMe returns the account attached by the auth middleware.
func (h *AccountHandler) GetMe(c echo.Context) error {
	account, ok := deliverycontext.GetAccount(c.Request().Context())
	if !ok {
		return response.AppError(c, http.StatusForbidden, httperr.NewAccessDeniedError())
	}

	return response.Success(c, http.StatusOK, toAccountProfile(account))
}

// HealthCheck reports that the process is serving requests.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

func toAccountProfile(account *entity.Account) *AccountProfile {
	return &AccountProfile{
		ID:        account.ID.String(),
		FirstName: account.FirstName,
		LastName:  account.LastName,
		Email:     account.Email,
		Role:      account.Role.String(),
	}
}
