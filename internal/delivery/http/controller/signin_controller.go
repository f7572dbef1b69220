// Package controller adapts HTTP requests to the account use cases.
package controller

import (
	"context"
	"log/slog"

	deliverycontext "authsvc/internal/delivery/context"
	"authsvc/internal/delivery/http/helper"
	"authsvc/internal/delivery/http/protocol"
	"authsvc/internal/usecase"

	"go.uber.org/fx"
)

// SignInRequest is the body of POST /signin.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AccessTokenResponse is returned by a successful sign-in or sign-up.
type AccessTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// SignInControllerParams holds dependencies for SignInController, injected by Fx.
type SignInControllerParams struct {
	fx.In

	Validation     protocol.Validation
	Authentication usecase.AuthenticationUsecase
	Logger         *slog.Logger
}

type signInController struct {
	validation     protocol.Validation
	authentication usecase.AuthenticationUsecase
	logger         *slog.Logger
}

// NewSignInController is the constructor for the sign-in controller.
func NewSignInController(params SignInControllerParams) protocol.Controller[SignInRequest] {
	return &signInController{
		validation:     params.Validation,
		authentication: params.Authentication,
		logger:         params.Logger,
	}
}

// Handle answers 400 for malformed input, 401 for rejected credentials,
// 500 for failures and 200 with the access token otherwise.
func (ctrl *signInController) Handle(ctx context.Context, req *protocol.HTTPRequest[SignInRequest]) *protocol.HTTPResponse {
	if err := ctrl.validation.Validate(req.Body); err != nil {
		return helper.BadRequest(err)
	}

	output, err := ctrl.authentication.Auth(ctx, &usecase.AuthenticationInput{
		Email:    req.Body.Email,
		Password: req.Body.Password,
	})
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, ctrl.logger).Error("Sign-in failed", slog.Any("error", err))

		return helper.ServerError(err)
	}
	if output == nil {
		return helper.Unauthorized()
	}

	return helper.OK(&AccessTokenResponse{AccessToken: output.AccessToken})
}
