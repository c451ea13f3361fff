// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/urna/db"
)

func TestTxFailure(t *testing.T) {
	ctx := context.Background()
	gw, err := db.Open(ctx, db.SQLite, "file:"+filepath.Join(t.TempDir(), "urna.db"))
	require.NoError(t, err)
	t.Cleanup(func() { gw.Close() })

	elections := NewElectionRegistry(gw)
	ledger := NewBallotLedger(gw, elections, NewVoterRegistry(gw), Options{Serializable: true})

	const voted = "111.111.111-11"
	_, err = gw.DB.ExecContext(ctx, `INSERT INTO votos (number, cpf) VALUES (10, $1)`, voted)
	require.NoError(t, err)

	conflict := fmt.Errorf("failed to commit transaction: %w", &pq.Error{Code: "40001"})

	t.Run("conflict with a ballot for the same cpf", func(t *testing.T) {
		err := ledger.txFailure(ctx, voted, conflict)
		assert.ErrorIs(t, err, ErrAlreadyVoted)
	})

	t.Run("conflict with another cpf", func(t *testing.T) {
		err := ledger.txFailure(ctx, "222.222.222-22", conflict)
		assert.ErrorIs(t, err, ErrStorage)
		var pqErr *pq.Error
		assert.ErrorAs(t, err, &pqErr)
	})

	t.Run("rejections pass through", func(t *testing.T) {
		err := ledger.txFailure(ctx, voted, ErrNoActiveElection)
		assert.Equal(t, ErrNoActiveElection, err)
	})

	t.Run("storage errors are not wrapped twice", func(t *testing.T) {
		in := storageErr("insert ballot", errors.New("disk full"))
		assert.Equal(t, in, ledger.txFailure(ctx, voted, in))
	})

	t.Run("other errors become storage errors", func(t *testing.T) {
		err := ledger.txFailure(ctx, voted, errors.New("failed to begin transaction"))
		assert.ErrorIs(t, err, ErrStorage)
		assert.False(t, IsRejection(err))
	})
}
