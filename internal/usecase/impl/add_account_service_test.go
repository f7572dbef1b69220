package impl

import (
	"context"
	"testing"

	"authsvc/internal/domain/entity"
	"authsvc/internal/domain/repository"
	mockRepo "authsvc/internal/mocks/repository"
	mockSvc "authsvc/internal/mocks/service"
	"authsvc/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// addAccountServiceFixtures holds all test dependencies for add account service tests.
type addAccountServiceFixtures struct {
	service         usecase.AddAccountUsecase
	loadByEmailRepo *mockRepo.MockLoadAccountByEmailRepository
	addRepo         *mockRepo.MockAddAccountRepository
	hasher          *mockSvc.MockPasswordHasher
}

func createTestAddAccountService(t *testing.T) addAccountServiceFixtures {
	loadByEmailRepo := mockRepo.NewMockLoadAccountByEmailRepository(t)
	addRepo := mockRepo.NewMockAddAccountRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	service := NewAddAccountService(AddAccountServiceParams{
		LoadByEmailRepo: loadByEmailRepo,
		AddRepo:         addRepo,
		Hasher:          hasher,
		Logger:          newDiscardLogger(),
	})

	return addAccountServiceFixtures{
		service:         service,
		loadByEmailRepo: loadByEmailRepo,
		addRepo:         addRepo,
		hasher:          hasher,
	}
}

func makeAddAccountInput() *usecase.AddAccountInput {
	return &usecase.AddAccountInput{
		FirstName: "any_first_name",
		LastName:  "any_last_name",
		Email:     "any_email@mail.com",
		Password:  "any_password",
	}
}

func TestAddAccountService_Add_Success(t *testing.T) {
	fx := createTestAddAccountService(t)

	ctx := context.Background()
	input := makeAddAccountInput()
	stored := &entity.Account{
		ID:        uuid.New(),
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Email:     input.Email,
		Password:  "hashed_password",
	}

	fx.loadByEmailRepo.EXPECT().LoadByEmail(ctx, input.Email).Return(nil, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.addRepo.EXPECT().
		Add(ctx, &repository.AddAccountData{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Email:     input.Email,
			Password:  "hashed_password",
		}).
		Return(stored, nil).
		Once()

	account, err := fx.service.Add(ctx, input)

	require.NoError(t, err)
	assert.Equal(t, stored, account)
	assert.NotEqual(t, input.Password, account.Password)
}

func TestAddAccountService_Add_EmailAlreadyTaken(t *testing.T) {
	fx := createTestAddAccountService(t)

	ctx := context.Background()
	input := makeAddAccountInput()

	fx.loadByEmailRepo.EXPECT().
		LoadByEmail(ctx, input.Email).
		Return(&entity.Account{ID: uuid.New(), Email: input.Email}, nil)

	account, err := fx.service.Add(ctx, input)

	require.NoError(t, err)
	assert.Nil(t, account)
	fx.hasher.AssertNotCalled(t, "Hash", input.Password)
	fx.addRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAddAccountService_Add_LoadByEmailError(t *testing.T) {
	fx := createTestAddAccountService(t)

	ctx := context.Background()
	input := makeAddAccountInput()
	dbErr := errors.New("connection refused")

	fx.loadByEmailRepo.EXPECT().LoadByEmail(ctx, input.Email).Return(nil, dbErr)

	account, err := fx.service.Add(ctx, input)

	require.Error(t, err)
	assert.Nil(t, account)
	assert.ErrorIs(t, err, dbErr)
}

func TestAddAccountService_Add_HashError(t *testing.T) {
	fx := createTestAddAccountService(t)

	ctx := context.Background()
	input := makeAddAccountInput()
	hashErr := errors.New("hash failed")

	fx.loadByEmailRepo.EXPECT().LoadByEmail(ctx, input.Email).Return(nil, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("", hashErr)

	account, err := fx.service.Add(ctx, input)

	require.Error(t, err)
	assert.Nil(t, account)
	assert.ErrorIs(t, err, hashErr)
	fx.addRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestAddAccountService_Add_RepositoryError(t *testing.T) {
	fx := createTestAddAccountService(t)

	ctx := context.Background()
	input := makeAddAccountInput()
	dbErr := errors.New("insert failed")

	fx.loadByEmailRepo.EXPECT().LoadByEmail(ctx, input.Email).Return(nil, nil)
	fx.hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)
	fx.addRepo.EXPECT().Add(ctx, mockAnyAddAccountData()).Return(nil, dbErr)

	account, err := fx.service.Add(ctx, input)

	require.Error(t, err)
	assert.Nil(t, account)
	assert.ErrorIs(t, err, dbErr)
}
