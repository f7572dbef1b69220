package postgres

import (
	"context"
	"testing"
	"time"

	"authsvc/internal/domain/entity"
	domainerrors "authsvc/internal/domain/errors"
	"authsvc/internal/domain/repository"
	"authsvc/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type capturedStatement struct {
	sql  string
	vars []any
}

// newDryRunDB builds SQL without a live server and records every statement.
func newDryRunDB(t *testing.T) (*gorm.DB, *[]capturedStatement) {
	t.Helper()

	db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{
		DSN: "host=localhost user=authsvc dbname=authsvc sslmode=disable",
	}), &gorm.Config{
		DryRun:                 true,
		DisableAutomaticPing:   true,
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)

	var captured []capturedStatement
	capture := func(tx *gorm.DB) {
		captured = append(captured, capturedStatement{
			sql:  tx.Statement.SQL.String(),
			vars: tx.Statement.Vars,
		})
	}
	require.NoError(t, db.Callback().Query().After("gorm:query").Register("test:capture_query", capture))
	require.NoError(t, db.Callback().Create().After("gorm:create").Register("test:capture_create", capture))
	require.NoError(t, db.Callback().Update().After("gorm:update").Register("test:capture_update", capture))

	return db, &captured
}

func TestAccountRepository_LoadByEmail_Query(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewAccountRepository(db)

	_, err := repo.LoadByEmail(context.Background(), "any_email@mail.com")
	require.NoError(t, err)

	require.Len(t, *captured, 1)
	stmt := (*captured)[0]
	assert.Contains(t, stmt.sql, `FROM "accounts"`)
	assert.Contains(t, stmt.sql, "email = $1")
	assert.Equal(t, "any_email@mail.com", stmt.vars[0])
}

func TestAccountRepository_LoadByToken_Query(t *testing.T) {
	tests := []struct {
		name      string
		role      entity.Role
		wantSQL   string
		wantRoles []any
	}{
		{
			name:      "ordinary role also accepts admins",
			role:      entity.RoleNone,
			wantSQL:   "role IN ($2,$3)",
			wantRoles: []any{"", "admin"},
		},
		{
			name:      "admin role",
			role:      entity.RoleAdmin,
			wantSQL:   "role IN ($2)",
			wantRoles: []any{"admin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, captured := newDryRunDB(t)
			repo := NewAccountRepository(db)

			_, err := repo.LoadByToken(context.Background(), "any_token", tt.role)
			require.NoError(t, err)

			require.Len(t, *captured, 1)
			stmt := (*captured)[0]
			assert.Contains(t, stmt.sql, "access_token = $1")
			assert.Contains(t, stmt.sql, tt.wantSQL)
			assert.Equal(t, "any_token", stmt.vars[0])
			assert.Equal(t, tt.wantRoles, stmt.vars[1:1+len(tt.wantRoles)])
		})
	}
}

func TestAccountRepository_Add_Insert(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewAccountRepository(db)

	account, err := repo.Add(context.Background(), &repository.AddAccountData{
		FirstName: "any_first_name",
		LastName:  "any_last_name",
		Email:     "any_email@mail.com",
		Password:  "hashed_password",
	})
	require.NoError(t, err)
	require.NotNil(t, account)
	assert.NotEqual(t, uuid.Nil, account.ID)
	assert.Equal(t, uuid.Version(7), account.ID.Version())
	assert.Equal(t, "any_email@mail.com", account.Email)
	assert.Equal(t, "hashed_password", account.Password)

	require.Len(t, *captured, 1)
	stmt := (*captured)[0]
	assert.Contains(t, stmt.sql, `INSERT INTO "accounts"`)
	assert.Contains(t, stmt.vars, "hashed_password")
}

func TestAccountRepository_UpdateAccessToken_Statement(t *testing.T) {
	db, captured := newDryRunDB(t)
	repo := NewAccountRepository(db)
	id := uuid.New()

	err := repo.UpdateAccessToken(context.Background(), id, "any_token")

	// Dry runs affect no rows, which reads as a missing account.
	assert.ErrorIs(t, err, domainerrors.ErrAccountNotFound)

	require.Len(t, *captured, 1)
	stmt := (*captured)[0]
	assert.Contains(t, stmt.sql, `UPDATE "accounts" SET "access_token"=$1`)
	assert.Contains(t, stmt.vars, "any_token")
	assert.Contains(t, stmt.vars, id)
}

func TestToAccountDomain(t *testing.T) {
	assert.Nil(t, toAccountDomain(nil))

	token := "any_token"
	now := time.Now()
	accountM := &model.AccountModel{
		ID:          uuid.New(),
		FirstName:   "any_first_name",
		LastName:    "any_last_name",
		Email:       "any_email@mail.com",
		Password:    "hashed_password",
		Role:        "admin",
		AccessToken: &token,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	account := toAccountDomain(accountM)
	assert.Equal(t, accountM.ID, account.ID)
	assert.Equal(t, entity.RoleAdmin, account.Role)
	assert.Equal(t, token, account.AccessToken)
	assert.Equal(t, now, account.CreatedAt)

	accountM.AccessToken = nil
	assert.Empty(t, toAccountDomain(accountM).AccessToken)
}

func TestRolesSatisfying(t *testing.T) {
	assert.Equal(t, []string{"admin"}, rolesSatisfying(entity.RoleAdmin))
	assert.Equal(t, []string{"", "admin"}, rolesSatisfying(entity.RoleNone))
	assert.Equal(t, []string{"editor", "admin"}, rolesSatisfying(entity.Role("editor")))
}

func TestTranslateWriteError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want domainerrors.AppError
	}{
		{name: "duplicate key", err: gorm.ErrDuplicatedKey, want: domainerrors.ErrAccountAlreadyExists},
		{name: "foreign key", err: gorm.ErrForeignKeyViolated, want: domainerrors.ErrInvalidReference},
		{name: "check constraint", err: gorm.ErrCheckConstraintViolated, want: domainerrors.ErrConstraintViolation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := translateWriteError(errors.Wrap(tt.err, "insert"), "failed to add account")
			assert.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("other errors become database errors", func(t *testing.T) {
		cause := errors.New("connection reset")
		err := translateWriteError(cause, "failed to add account")

		var dbErr *domainerrors.DatabaseExecuteError
		require.ErrorAs(t, err, &dbErr)
		assert.Equal(t, "failed to add account", dbErr.Details())
		assert.ErrorIs(t, err, cause)
	})
}
