package controller

import (
	"context"
	"log/slog"

	deliverycontext "authsvc/internal/delivery/context"
	"authsvc/internal/delivery/http/helper"
	"authsvc/internal/delivery/http/httperr"
	"authsvc/internal/delivery/http/protocol"
	"authsvc/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

var errNewAccountRejected = errors.New("newly created account failed to authenticate")

// SignUpRequest is the body of POST /signup.
type SignUpRequest struct {
	FirstName            string `json:"firstName" validate:"required,max=100"`
	LastName             string `json:"lastName" validate:"required,max=100"`
	Email                string `json:"email" validate:"required,email,max=255"`
	Password             string `json:"password" validate:"required,min=6,max=72"`
	PasswordConfirmation string `json:"passwordConfirmation" validate:"required,eqfield=Password"`
}

// SignUpControllerParams holds dependencies for SignUpController, injected by Fx.
type SignUpControllerParams struct {
	fx.In

	Validation     protocol.Validation
	AddAccount     usecase.AddAccountUsecase
	Authentication usecase.AuthenticationUsecase
	Logger         *slog.Logger
}

type signUpController struct {
	validation     protocol.Validation
	addAccount     usecase.AddAccountUsecase
	authentication usecase.AuthenticationUsecase
	logger         *slog.Logger
}

// NewSignUpController is the constructor for the sign-up controller.
func NewSignUpController(params SignUpControllerParams) protocol.Controller[SignUpRequest] {
	return &signUpController{
		validation:     params.Validation,
		addAccount:     params.AddAccount,
		authentication: params.Authentication,
		logger:         params.Logger,
	}
}

// Handle registers the account and signs it in, so a new client gets its
// access token in the same round trip.
func (ctrl *signUpController) Handle(ctx context.Context, req *protocol.HTTPRequest[SignUpRequest]) *protocol.HTTPResponse {
	if err := ctrl.validation.Validate(req.Body); err != nil {
		return helper.BadRequest(err)
	}

	account, err := ctrl.addAccount.Add(ctx, &usecase.AddAccountInput{
		FirstName: req.Body.FirstName,
		LastName:  req.Body.LastName,
		Email:     req.Body.Email,
		Password:  req.Body.Password,
	})
	if err != nil {
		return ctrl.serverError(ctx, err)
	}
	if account == nil {
		return helper.Forbidden(httperr.NewEmailInUseError())
	}

	output, err := ctrl.authentication.Auth(ctx, &usecase.AuthenticationInput{
		Email:    req.Body.Email,
		Password: req.Body.Password,
	})
	if err != nil {
		return ctrl.serverError(ctx, err)
	}
	if output == nil {
		return ctrl.serverError(ctx, errors.WithStack(errNewAccountRejected))
	}

	return helper.OK(&AccessTokenResponse{AccessToken: output.AccessToken})
}

func (ctrl *signUpController) serverError(ctx context.Context, err error) *protocol.HTTPResponse {
	deliverycontext.GetLoggerOrDefault(ctx, ctrl.logger).Error("Sign-up failed", slog.Any("error", err))

	return helper.ServerError(err)
}
