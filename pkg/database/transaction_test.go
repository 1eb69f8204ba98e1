package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (f *fakeTx) Commit(ctx context.Context) error {
	f.committed = true
	return f.commitErr
}

func (f *fakeTx) Rollback(ctx context.Context) error {
	if f.committed {
		return pgx.ErrTxClosed
	}
	f.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx  *fakeTx
	err error
}

func (b *fakeBeginner) Begin(ctx context.Context) (pgx.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.tx, nil
}

func TestWithTransaction_Commits(t *testing.T) {
	tx := &fakeTx{}

	err := WithTransaction(context.Background(), &fakeBeginner{tx: tx}, func(pgx.Tx) error {
		return nil
	})

	require.NoError(t, err)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestWithTransaction_RollsBackOnError(t *testing.T) {
	tx := &fakeTx{}
	boom := errors.New("boom")

	err := WithTransaction(context.Background(), &fakeBeginner{tx: tx}, func(pgx.Tx) error {
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.False(t, tx.committed)
	assert.True(t, tx.rolledBack)
}

func TestWithTransaction_RollsBackOnPanic(t *testing.T) {
	tx := &fakeTx{}

	assert.Panics(t, func() {
		_ = WithTransaction(context.Background(), &fakeBeginner{tx: tx}, func(pgx.Tx) error {
			panic("unexpected")
		})
	})
	assert.True(t, tx.rolledBack)
}

func TestWithTransaction_BeginError(t *testing.T) {
	beginErr := errors.New("pool closed")

	err := WithTransaction(context.Background(), &fakeBeginner{err: beginErr}, func(pgx.Tx) error {
		t.Fatal("fn must not run")
		return nil
	})

	assert.ErrorIs(t, err, beginErr)
}

func TestWithTransaction_CommitError(t *testing.T) {
	commitErr := errors.New("serialization failure")
	tx := &fakeTx{commitErr: commitErr}

	err := WithTransaction(context.Background(), &fakeBeginner{tx: tx}, func(pgx.Tx) error {
		return nil
	})

	assert.ErrorIs(t, err, commitErr)
}

func TestWithTransactionResult(t *testing.T) {
	tx := &fakeTx{}

	got, err := WithTransactionResult(context.Background(), &fakeBeginner{tx: tx}, func(pgx.Tx) (int64, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, int64(42), got)

	got, err = WithTransactionResult(context.Background(), &fakeBeginner{tx: &fakeTx{}}, func(pgx.Tx) (int64, error) {
		return 7, errors.New("failed")
	})
	assert.Error(t, err)
	assert.Zero(t, got)
}
