// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package voting_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/urna/models"
	"github.com/danielhkuo/urna/testutil"
	"github.com/danielhkuo/urna/voting"
)

func TestAdminRegistry(t *testing.T) {
	gw := testutil.SetupTestDB(t)
	admins := voting.NewAdminRegistry(gw)
	ctx := context.Background()

	_, err := admins.Register(ctx, models.AdminRequest{Nome: "Ana", CPF: "qualquer"})
	var mf *voting.MissingFieldError
	require.ErrorAs(t, err, &mf)
	assert.Equal(t, []string{"email"}, mf.Fields)

	// cpf is free text and may repeat
	for i := 0; i < 2; i++ {
		_, err := admins.Register(ctx, models.AdminRequest{Nome: "Ana", CPF: "111", Email: "ana@example.com"})
		require.NoError(t, err)
	}

	found, err := admins.ExistsByIdentity(ctx, "111")
	require.NoError(t, err)
	assert.True(t, found)

	found, err = admins.ExistsByIdentity(ctx, "222")
	require.NoError(t, err)
	assert.False(t, found)

	list, err := admins.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 2)
}
