package controller

import (
	"context"
	"net/http"
	"testing"

	"authsvc/internal/delivery/http/helper"
	"authsvc/internal/delivery/http/httperr"
	"authsvc/internal/delivery/http/protocol"
	"authsvc/internal/domain/entity"
	mockProtocol "authsvc/internal/mocks/protocol"
	mockUsecase "authsvc/internal/mocks/usecase"
	"authsvc/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// signUpControllerFixtures holds all test dependencies for sign-up controller tests.
type signUpControllerFixtures struct {
	controller     protocol.Controller[SignUpRequest]
	validation     *mockProtocol.MockValidation
	addAccount     *mockUsecase.MockAddAccountUsecase
	authentication *mockUsecase.MockAuthenticationUsecase
}

func createTestSignUpController(t *testing.T) signUpControllerFixtures {
	validation := mockProtocol.NewMockValidation(t)
	addAccount := mockUsecase.NewMockAddAccountUsecase(t)
	authentication := mockUsecase.NewMockAuthenticationUsecase(t)

	controller := NewSignUpController(SignUpControllerParams{
		Validation:     validation,
		AddAccount:     addAccount,
		Authentication: authentication,
		Logger:         newDiscardLogger(),
	})

	return signUpControllerFixtures{
		controller:     controller,
		validation:     validation,
		addAccount:     addAccount,
		authentication: authentication,
	}
}

func makeSignUpRequest() *protocol.HTTPRequest[SignUpRequest] {
	return &protocol.HTTPRequest[SignUpRequest]{
		Body: SignUpRequest{
			FirstName:            "any_first_name",
			LastName:             "any_last_name",
			Email:                "any_email@mail.com",
			Password:             "any_password",
			PasswordConfirmation: "any_password",
		},
	}
}

func TestSignUpController_ValidationError(t *testing.T) {
	fx := createTestSignUpController(t)
	req := makeSignUpRequest()

	fx.validation.EXPECT().Validate(req.Body).Return(httperr.NewInvalidParamError("passwordConfirmation"))

	resp := fx.controller.Handle(context.Background(), req)

	assert.Equal(t, helper.BadRequest(httperr.NewInvalidParamError("passwordConfirmation")), resp)
	fx.addAccount.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestSignUpController_Success(t *testing.T) {
	fx := createTestSignUpController(t)
	req := makeSignUpRequest()
	ctx := context.Background()

	fx.validation.EXPECT().Validate(req.Body).Return(nil)
	fx.addAccount.EXPECT().
		Add(ctx, &usecase.AddAccountInput{
			FirstName: "any_first_name",
			LastName:  "any_last_name",
			Email:     "any_email@mail.com",
			Password:  "any_password",
		}).
		Return(&entity.Account{ID: uuid.New(), Email: "any_email@mail.com"}, nil).
		Once()
	fx.authentication.EXPECT().
		Auth(ctx, &usecase.AuthenticationInput{Email: "any_email@mail.com", Password: "any_password"}).
		Return(&usecase.AuthenticationOutput{AccessToken: "any_access_token"}, nil).
		Once()

	resp := fx.controller.Handle(ctx, req)

	assert.Equal(t, helper.OK(&AccessTokenResponse{AccessToken: "any_access_token"}), resp)
}

func TestSignUpController_EmailInUse(t *testing.T) {
	fx := createTestSignUpController(t)
	req := makeSignUpRequest()

	fx.validation.EXPECT().Validate(req.Body).Return(nil)
	fx.addAccount.EXPECT().Add(mock.Anything, mock.Anything).Return(nil, nil)

	resp := fx.controller.Handle(context.Background(), req)

	assert.Equal(t, helper.Forbidden(httperr.NewEmailInUseError()), resp)
	fx.authentication.AssertNotCalled(t, "Auth", mock.Anything, mock.Anything)
}

func TestSignUpController_ServerErrors(t *testing.T) {
	collaboratorErr := errors.New("collaborator failed")

	tests := []struct {
		name      string
		setup     func(fx signUpControllerFixtures)
		wantCause error
	}{
		{
			name: "add account fails",
			setup: func(fx signUpControllerFixtures) {
				fx.addAccount.EXPECT().Add(mock.Anything, mock.Anything).Return(nil, collaboratorErr)
			},
			wantCause: collaboratorErr,
		},
		{
			name: "authentication fails",
			setup: func(fx signUpControllerFixtures) {
				fx.addAccount.EXPECT().Add(mock.Anything, mock.Anything).Return(&entity.Account{ID: uuid.New()}, nil)
				fx.authentication.EXPECT().Auth(mock.Anything, mock.Anything).Return(nil, collaboratorErr)
			},
			wantCause: collaboratorErr,
		},
		{
			name: "new account does not authenticate",
			setup: func(fx signUpControllerFixtures) {
				fx.addAccount.EXPECT().Add(mock.Anything, mock.Anything).Return(&entity.Account{ID: uuid.New()}, nil)
				fx.authentication.EXPECT().Auth(mock.Anything, mock.Anything).Return(nil, nil)
			},
			wantCause: errNewAccountRejected,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSignUpController(t)
			req := makeSignUpRequest()

			fx.validation.EXPECT().Validate(req.Body).Return(nil)
			tt.setup(fx)

			resp := fx.controller.Handle(context.Background(), req)

			require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
			assert.ErrorIs(t, resp.Body.(error), tt.wantCause)
		})
	}
}
