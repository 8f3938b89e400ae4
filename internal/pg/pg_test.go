package pg

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Begin(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	manager := NewTXManager(mock)

	t.Run("Commits when fn succeeds", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectCommit()

		err := manager.Begin(context.Background(), func(ctx context.Context) error {
			assert.NotNil(t, txFromContext(ctx))
			return nil
		})
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Rolls back when fn fails", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectRollback()

		fnErr := errors.New("write failed")
		err := manager.Begin(context.Background(), func(ctx context.Context) error {
			return fnErr
		})
		assert.ErrorIs(t, err, fnErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Begin failure is wrapped", func(t *testing.T) {
		beginErr := errors.New("pool exhausted")
		mock.ExpectBegin().WillReturnError(beginErr)

		err := manager.Begin(context.Background(), func(ctx context.Context) error {
			t.Fatal("fn must not run without a transaction")
			return nil
		})
		assert.ErrorIs(t, err, beginErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Nested call reuses the outer transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectCommit()

		var outerTx, innerTx any
		err := manager.Begin(context.Background(), func(ctx context.Context) error {
			outerTx = txFromContext(ctx)
			return manager.Begin(ctx, func(ctx context.Context) error {
				innerTx = txFromContext(ctx)
				return nil
			})
		})
		assert.NoError(t, err)
		assert.Same(t, outerTx, innerTx)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Inner failure rolls back the outer transaction", func(t *testing.T) {
		mock.ExpectBegin()
		mock.ExpectRollback()

		fnErr := errors.New("inner write failed")
		err := manager.Begin(context.Background(), func(ctx context.Context) error {
			return manager.Begin(ctx, func(ctx context.Context) error {
				return fnErr
			})
		})
		assert.ErrorIs(t, err, fnErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
