// Package storagetest tiene la suite de contrato que todo owners.Repository debe pasar.
package storagetest

import (
	"context"
	"math"
	"testing"

	"petclinic/internal/domain/owners"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// OwnerRepositoryContract corre la suite contra repos nuevos (vacíos) de newRepo.
func OwnerRepositoryContract(t *testing.T, newRepo func(t *testing.T) owners.Repository) {
	t.Helper()

	ctx := context.Background()

	t.Run("save without id assigns fresh ids", func(t *testing.T) {
		repo := newRepo(t)

		a, err := repo.Save(ctx, owners.Owner{FirstName: "George", LastName: "Franklin"})
		require.NoError(t, err)
		require.NotNil(t, a.ID)

		b, err := repo.Save(ctx, owners.Owner{FirstName: "Betty", LastName: "Davis"})
		require.NoError(t, err)
		require.NotNil(t, b.ID)

		assert.Positive(t, *a.ID)
		assert.Greater(t, *b.ID, *a.ID)
	})

	t.Run("saving same unidentified value twice creates two records", func(t *testing.T) {
		repo := newRepo(t)
		o := owners.Owner{FirstName: "Eduardo", LastName: "Rodriquez", City: "McFarland"}

		a, err := repo.Save(ctx, o)
		require.NoError(t, err)
		b, err := repo.Save(ctx, o)
		require.NoError(t, err)

		assert.NotEqual(t, *a.ID, *b.ID)
		assert.Nil(t, o.ID, "caller value must not be mutated")

		got, err := repo.FindByLastName(ctx, "Rodriquez")
		require.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("find by id returns nil for missing", func(t *testing.T) {
		repo := newRepo(t)

		got, err := repo.FindByID(ctx, 99)
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("find by id returns all fields", func(t *testing.T) {
		repo := newRepo(t)
		in := owners.Owner{
			FirstName: "George",
			LastName:  "Franklin",
			Address:   "110 W. Liberty St.",
			City:      "Madison",
			Telephone: "6085551023",
		}
		saved, err := repo.Save(ctx, in)
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, *saved.ID)
		require.NoError(t, err)
		require.NotNil(t, got)

		in.ID = saved.ID
		assert.Equal(t, in, *got)
	})

	t.Run("save with existing id updates in place", func(t *testing.T) {
		repo := newRepo(t)
		saved, err := repo.Save(ctx, owners.Owner{FirstName: "Jean", LastName: "Coleman", City: "Monona"})
		require.NoError(t, err)

		upd := owners.Owner{ID: owners.IntPtr(*saved.ID), FirstName: "Jean", LastName: "Coleman-Black", City: "Madison"}
		res, err := repo.Save(ctx, upd)
		require.NoError(t, err)
		assert.Equal(t, *saved.ID, *res.ID)

		got, err := repo.FindByID(ctx, *saved.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Coleman-Black", got.LastName)
		assert.Equal(t, "Madison", got.City)

		old, err := repo.FindByLastName(ctx, "Coleman")
		require.NoError(t, err)
		assert.Empty(t, old)
	})

	t.Run("save with unknown id inserts new record", func(t *testing.T) {
		repo := newRepo(t)
		first, err := repo.Save(ctx, owners.Owner{LastName: "Escobito"})
		require.NoError(t, err)

		res, err := repo.Save(ctx, owners.Owner{ID: owners.IntPtr(*first.ID + 1000), LastName: "Schroeder"})
		require.NoError(t, err)
		require.NotNil(t, res.ID)
		assert.NotEqual(t, *first.ID, *res.ID)

		got, err := repo.FindByID(ctx, *res.ID)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, "Schroeder", got.LastName)
	})

	t.Run("ids beyond 32 bits are absent not failures", func(t *testing.T) {
		repo := newRepo(t)
		big := math.MaxInt32 + 1

		got, err := repo.FindByID(ctx, big)
		require.NoError(t, err)
		assert.Nil(t, got)

		res, err := repo.Save(ctx, owners.Owner{ID: owners.IntPtr(big), LastName: "Wide"})
		require.NoError(t, err)
		require.NotNil(t, res.ID)

		saved, err := repo.FindByID(ctx, *res.ID)
		require.NoError(t, err)
		require.NotNil(t, saved)
		assert.Equal(t, "Wide", saved.LastName)
	})

	t.Run("find by last name is exact and ordered", func(t *testing.T) {
		repo := newRepo(t)
		for _, ln := range []string{"Davis", "Davison", "davis", "Davis", "Black"} {
			_, err := repo.Save(ctx, owners.Owner{LastName: ln})
			require.NoError(t, err)
		}

		got, err := repo.FindByLastName(ctx, "Davis")
		require.NoError(t, err)
		require.Len(t, got, 2)
		for _, o := range got {
			assert.Equal(t, "Davis", o.LastName)
		}
		assert.Less(t, *got[0].ID, *got[1].ID)

		none, err := repo.FindByLastName(ctx, "Nobody")
		require.NoError(t, err)
		assert.NotNil(t, none)
		assert.Empty(t, none)

		prefix, err := repo.FindByLastName(ctx, "Dav")
		require.NoError(t, err)
		assert.Empty(t, prefix)
	})

	t.Run("empty last name matches only empty", func(t *testing.T) {
		repo := newRepo(t)
		_, err := repo.Save(ctx, owners.Owner{FirstName: "Nameless"})
		require.NoError(t, err)
		_, err = repo.Save(ctx, owners.Owner{LastName: "McTavish"})
		require.NoError(t, err)

		got, err := repo.FindByLastName(ctx, "")
		require.NoError(t, err)
		require.Len(t, got, 1)
		assert.Equal(t, "Nameless", got[0].FirstName)
	})

	t.Run("canceled context fails", func(t *testing.T) {
		repo := newRepo(t)
		cctx, cancel := context.WithCancel(ctx)
		cancel()

		_, err := repo.FindByLastName(cctx, "Davis")
		assert.Error(t, err)
		_, err = repo.Save(cctx, owners.Owner{LastName: "Davis"})
		assert.Error(t, err)
	})
}
