package store

import (
	"context"
	"testing"

	"filmoteca/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryUserStore(t *testing.T) {
	ctx := context.Background()
	stores := NewMemoryStores()

	alice := models.User{Username: "alice", Email: "a@x.com", Role: "user", Password: "hash1"}
	require.NoError(t, stores.Users.Create(ctx, &alice))
	assert.False(t, alice.ID.IsZero())

	// duplicates on username or email
	dup := models.User{Username: "alice", Email: "other@x.com", Password: "h"}
	assert.ErrorIs(t, stores.Users.Create(ctx, &dup), ErrDuplicate)
	dup = models.User{Username: "other", Email: "a@x.com", Password: "h"}
	assert.ErrorIs(t, stores.Users.Create(ctx, &dup), ErrDuplicate)

	got, err := stores.Users.FindByUsername(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	got, err = stores.Users.FindByEmail(ctx, "a@x.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	_, err = stores.Users.FindByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, stores.Users.UpdatePassword(ctx, "a@x.com", "hash2"))
	got, err = stores.Users.FindByID(ctx, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "hash2", got.Password)

	assert.ErrorIs(t, stores.Users.UpdatePassword(ctx, "nobody@x.com", "h"), ErrNotFound)
}

func TestMemoryFilmStore(t *testing.T) {
	ctx := context.Background()
	stores := NewMemoryStores()

	film := models.Film{FilmID: 1, Title: "One", Year: 2020, Director: "D"}
	require.NoError(t, stores.Films.Create(ctx, &film))

	assert.ErrorIs(t, stores.Films.Create(ctx, &models.Film{FilmID: 1, Title: "Other", Year: 2020, Director: "D"}), ErrDuplicate)
	assert.ErrorIs(t, stores.Films.Create(ctx, &models.Film{FilmID: 2, Title: "One", Year: 2020, Director: "D"}), ErrDuplicate)

	films, err := stores.Films.List(ctx)
	require.NoError(t, err)
	assert.Len(t, films, 1)

	film.Title = "One Updated"
	require.NoError(t, stores.Films.Update(ctx, &film))
	got, err := stores.Films.FindByFilmID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "One Updated", got.Title)

	require.NoError(t, stores.Films.Delete(ctx, 1))
	_, err = stores.Films.FindByFilmID(ctx, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, stores.Films.Delete(ctx, 1), ErrNotFound)
}

func TestMemoryFavoriteStore(t *testing.T) {
	ctx := context.Background()
	stores := NewMemoryStores()

	alice := models.User{Username: "alice", Email: "a@x.com", Password: "h"}
	require.NoError(t, stores.Users.Create(ctx, &alice))

	require.NoError(t, stores.Favorites.Add(ctx, alice.ID, 1))
	assert.ErrorIs(t, stores.Favorites.Add(ctx, alice.ID, 1), ErrDuplicate)

	favorites, err := stores.Favorites.ListByUser(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, favorites, 1)

	require.NoError(t, stores.Favorites.Remove(ctx, alice.ID, 1))
	assert.ErrorIs(t, stores.Favorites.Remove(ctx, alice.ID, 1), ErrNotFound)
}
