package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"petclinic/internal/adapters/storage/storagetest"
	"petclinic/internal/domain/owners"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTempStore(t *testing.T) *Store {
	t.Helper()

	s, err := Open(filepath.Join(t.TempDir(), "owners.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open("  ")
	require.Error(t, err)
}

func TestOwnersRepo_Contract(t *testing.T) {
	storagetest.OwnerRepositoryContract(t, func(t *testing.T) owners.Repository {
		return openTempStore(t).Owners()
	})
}

func TestOpen_MigrationsAreIdempotentAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "owners.db")
	ctx := context.Background()

	s, err := Open(path)
	require.NoError(t, err)
	saved, err := s.Owners().Save(ctx, owners.Owner{LastName: "Franklin"})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()

	got, err := s2.Owners().FindByID(ctx, *saved.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Franklin", got.LastName)
}

func TestUpSection(t *testing.T) {
	assert.Equal(t, "\nA;\n", upSection("-- +migrate Up\nA;\n-- +migrate Down\nB;"))
	assert.Equal(t, "A;", upSection("A;"))
}
