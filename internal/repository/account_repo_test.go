package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountRepositoryOwnership(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	alice := seedUser(t, db, "alice@x.io")
	bob := seedUser(t, db, "bob@x.io")
	acc := seedAccount(t, db, alice.ID, 1000)
	seedAccount(t, db, bob.ID, 500)

	got, err := repo.GetByIDForUser(ctx, acc.ID, alice.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 1000.0, got.InitialCapital)

	got, err = repo.GetByIDForUser(ctx, acc.ID, bob.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	list, err := repo.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, list, 1)

	active, err := repo.ListActive(ctx)
	require.NoError(t, err)
	assert.Len(t, active, 2)
}

func TestAccountRepositoryUpdateAndDelete(t *testing.T) {
	db := newTestDB(t)
	repo := NewAccountRepository(db)
	ctx := context.Background()

	user := seedUser(t, db, "carol@x.io")
	acc := seedAccount(t, db, user.ID, 1000)

	require.NoError(t, repo.UpdateCurrentCapital(ctx, acc.ID, 1234.56))
	got, err := repo.GetByIDForUser(ctx, acc.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, 1234.56, got.CurrentCapital)

	require.NoError(t, repo.Delete(ctx, acc.ID))
	got, err = repo.GetByIDForUser(ctx, acc.ID, user.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	list, err := repo.ListByUser(ctx, user.ID)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
