package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	deliverycontext "authsvc/internal/delivery/context"
	"authsvc/internal/delivery/http/helper"
	"authsvc/internal/delivery/http/httperr"
	"authsvc/internal/delivery/http/protocol"
	"authsvc/internal/delivery/http/response"
	"authsvc/internal/domain/entity"
	"authsvc/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderXAccessToken is the alternative to the Authorization bearer header.
const HeaderXAccessToken = "x-access-token"

// AuthenticatedAccount is the outcome of a successful authorization.
type AuthenticatedAccount struct {
	AccountID string          `json:"accountId"`
	Account   *entity.Account `json:"-"`
}

// AuthMiddlewareParams holds dependencies for AuthMiddleware, injected by Fx.
type AuthMiddlewareParams struct {
	fx.In

	LoadAccountByToken usecase.LoadAccountByTokenUsecase
	Logger             *slog.Logger
}

// AuthMiddleware re-identifies the caller from its access token.
type AuthMiddleware struct {
	loadAccountByToken usecase.LoadAccountByTokenUsecase
	logger             *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(params AuthMiddlewareParams) *AuthMiddleware {
	return &AuthMiddleware{
		loadAccountByToken: params.LoadAccountByToken,
		logger:             params.Logger,
	}
}

// Authorize resolves the account owning the token in header. It answers 403
// when no account holding role owns the token, 500 on failure and 200 otherwise.
func (m *AuthMiddleware) Authorize(ctx context.Context, header http.Header, role entity.Role) *protocol.HTTPResponse {
	token := extractToken(header)
	if token == "" {
		return helper.Forbidden(httperr.NewAccessDeniedError())
	}

	account, err := m.loadAccountByToken.LoadByToken(ctx, token, role)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, m.logger).Error("Failed to load account by token", slog.Any("error", err))

		return helper.ServerError(err)
	}
	if account == nil || !account.HasRole(role) {
		return helper.Forbidden(httperr.NewAccessDeniedError())
	}

	return helper.OK(&AuthenticatedAccount{
		AccountID: account.ID.String(),
		Account:   account,
	})
}

// Authenticate lets through any caller holding a valid access token.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return m.RequireRole(entity.RoleNone)(next)
}

// RequireRole lets through callers whose account has role. Admins pass every check.
func (m *AuthMiddleware) RequireRole(role entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			resp := m.Authorize(req.Context(), req.Header, role)
			if resp.StatusCode != http.StatusOK {
				err, _ := resp.Body.(error)

				return response.AppError(c, resp.StatusCode, err)
			}

			authenticated := resp.Body.(*AuthenticatedAccount)
			c.SetRequest(req.WithContext(deliverycontext.WithAccount(req.Context(), authenticated.Account)))

			return next(c)
		}
	}
}

func extractToken(header http.Header) string {
	scheme, token, ok := strings.Cut(strings.TrimSpace(header.Get(echo.HeaderAuthorization)), " ")
	if ok && strings.EqualFold(scheme, "Bearer") {
		return strings.TrimSpace(token)
	}

	return strings.TrimSpace(header.Get(HeaderXAccessToken))
}
