//go:build integration

package repository

import (
	"context"
	"testing"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"
	"movie-catalog/internal/testinfra"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type repos struct {
	db         *database.Database
	movies     MovieRepository
	ratings    RatingRepository
	watchlists WatchlistRepository
	users      UserRepository
}

func setupRepos(t *testing.T) *repos {
	t.Helper()

	db, err := database.Connect(testinfra.StartPostgres(t))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &repos{
		db:         db,
		movies:     NewMovieRepository(db),
		ratings:    NewRatingRepository(db),
		watchlists: NewWatchlistRepository(db),
		users:      NewUserRepository(db),
	}
}

func (r *repos) user(t *testing.T, username string) *models.User {
	t.Helper()
	user := &models.User{Username: username, PasswordHash: "hash"}
	require.NoError(t, r.users.CreateWithSecurityQuestion(context.Background(), user,
		&models.SecurityQuestion{Question: "salam", Answer: "bye"}))
	return user
}

func (r *repos) movie(t *testing.T, name string) *models.Movie {
	t.Helper()
	movie := &models.Movie{Name: name, Director: "Someone", CreatedYear: 2000, LengthMinutes: 100}
	require.NoError(t, r.movies.Create(context.Background(), movie))
	return movie
}

func TestRepositories(t *testing.T) {
	r := setupRepos(t)
	ctx := context.Background()

	alice := r.user(t, "alice")
	bob := r.user(t, "bob")
	heat := r.movie(t, "Heat")
	ronin := r.movie(t, "Ronin")

	t.Run("overall rating is null without ratings", func(t *testing.T) {
		item, err := r.movies.FindAnnotatedByID(ctx, heat.ID, nil)
		require.NoError(t, err)
		assert.Nil(t, item.OverallRating)
		assert.False(t, item.InWatchlist)
	})

	t.Run("overall rating is the average", func(t *testing.T) {
		require.NoError(t, r.ratings.Create(ctx, &models.Rating{UserID: alice.ID, MovieID: heat.ID, Rating: 2}))
		require.NoError(t, r.ratings.Create(ctx, &models.Rating{UserID: bob.ID, MovieID: heat.ID, Rating: 5, Comment: "classic"}))

		item, err := r.movies.FindAnnotatedByID(ctx, heat.ID, nil)
		require.NoError(t, err)
		require.NotNil(t, item.OverallRating)
		assert.InDelta(t, 3.5, *item.OverallRating, 1e-9)

		ratings, err := r.ratings.FindByMovie(ctx, heat.ID)
		require.NoError(t, err)
		require.Len(t, ratings, 2)
		require.NotNil(t, ratings[1].User)
		assert.Equal(t, "bob", ratings[1].User.Username)
	})

	t.Run("one rating per user and movie", func(t *testing.T) {
		err := r.ratings.Create(ctx, &models.Rating{UserID: alice.ID, MovieID: heat.ID, Rating: 4})
		assert.ErrorIs(t, err, ErrDuplicate)
	})

	t.Run("rating range is enforced by the database", func(t *testing.T) {
		err := r.ratings.Create(ctx, &models.Rating{UserID: alice.ID, MovieID: ronin.ID, Rating: 6})
		assert.Error(t, err)
	})

	t.Run("sorting by overall rating puts unrated movies last", func(t *testing.T) {
		movies, total, err := r.movies.FindAll(ctx, models.MovieFilter{Page: 1, Limit: 10, SortBy: "overall_rating", Order: "DESC"}, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(2), total)
		require.Len(t, movies, 2)
		assert.Equal(t, heat.ID, movies[0].ID)
		assert.Nil(t, movies[1].OverallRating)
	})

	t.Run("watchlist membership is relative to the viewer", func(t *testing.T) {
		list, err := r.watchlists.GetOrCreate(ctx, alice.ID, models.DefaultWatchlistName)
		require.NoError(t, err)

		again, err := r.watchlists.GetOrCreate(ctx, alice.ID, models.DefaultWatchlistName)
		require.NoError(t, err)
		assert.Equal(t, list.ID, again.ID)

		require.NoError(t, r.watchlists.AddMovie(ctx, list.ID, ronin.ID))
		require.NoError(t, r.watchlists.AddMovie(ctx, list.ID, ronin.ID))

		item, err := r.movies.FindAnnotatedByID(ctx, ronin.ID, &alice.ID)
		require.NoError(t, err)
		assert.True(t, item.InWatchlist)

		item, err = r.movies.FindAnnotatedByID(ctx, ronin.ID, &bob.ID)
		require.NoError(t, err)
		assert.False(t, item.InWatchlist)

		anonymous, _, err := r.movies.FindAll(ctx, models.MovieFilter{Page: 1, Limit: 10}, nil)
		require.NoError(t, err)
		for _, m := range anonymous {
			assert.False(t, m.InWatchlist)
		}

		listed, err := r.movies.FindByWatchlist(ctx, list.ID, &alice.ID)
		require.NoError(t, err)
		require.Len(t, listed, 1)
		assert.True(t, listed[0].InWatchlist)

		require.NoError(t, r.watchlists.RemoveMovie(ctx, list.ID, ronin.ID))
		item, err = r.movies.FindAnnotatedByID(ctx, ronin.ID, &alice.ID)
		require.NoError(t, err)
		assert.False(t, item.InWatchlist)
	})

	t.Run("watchlist names are unique per user", func(t *testing.T) {
		require.NoError(t, r.watchlists.Create(ctx, &models.Watchlist{UserID: bob.ID, Name: "weekend"}))
		assert.ErrorIs(t, r.watchlists.Create(ctx, &models.Watchlist{UserID: bob.ID, Name: "weekend"}), ErrDuplicate)
		require.NoError(t, r.watchlists.Create(ctx, &models.Watchlist{UserID: alice.ID, Name: "weekend"}))

		_, err := r.watchlists.FindByID(ctx, alice.ID, 9999)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("registration is atomic", func(t *testing.T) {
		err := r.users.CreateWithSecurityQuestion(ctx, &models.User{Username: "alice", PasswordHash: "x"},
			&models.SecurityQuestion{Question: "q", Answer: "a"})
		assert.ErrorIs(t, err, ErrDuplicate)

		existing, err := r.users.FindSecurityQuestion(ctx, alice.ID)
		require.NoError(t, err)

		// The question insert collides on its primary key, so the user row
		// must be rolled back too.
		err = r.users.CreateWithSecurityQuestion(ctx, &models.User{Username: "carol", PasswordHash: "x"},
			&models.SecurityQuestion{ID: existing.ID, Question: "q", Answer: "a"})
		assert.Error(t, err)

		_, err = r.users.FindByUsername(ctx, "carol")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("password update", func(t *testing.T) {
		require.NoError(t, r.users.UpdatePassword(ctx, bob.ID, "new-hash"))
		user, err := r.users.FindByID(ctx, bob.ID)
		require.NoError(t, err)
		assert.Equal(t, "new-hash", user.PasswordHash)

		assert.ErrorIs(t, r.users.UpdatePassword(ctx, 9999, "x"), ErrNotFound)
	})

	t.Run("deleting a movie cascades to its ratings", func(t *testing.T) {
		require.NoError(t, r.movies.Delete(ctx, heat.ID))

		ratings, err := r.ratings.FindByMovie(ctx, heat.ID)
		require.NoError(t, err)
		assert.Empty(t, ratings)

		assert.ErrorIs(t, r.movies.Delete(ctx, heat.ID), ErrNotFound)
	})

	t.Run("search treats wildcards literally", func(t *testing.T) {
		wolf := r.movie(t, "100% Wolf")

		movies, total, err := r.movies.FindAll(ctx, models.MovieFilter{Page: 1, Limit: 10, Search: "%"}, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
		require.Len(t, movies, 1)
		assert.Equal(t, wolf.ID, movies[0].ID)

		_, total, err = r.movies.FindAll(ctx, models.MovieFilter{Page: 1, Limit: 10, Search: "R_nin"}, nil)
		require.NoError(t, err)
		assert.Zero(t, total)

		_, total, err = r.movies.FindAll(ctx, models.MovieFilter{Page: 1, Limit: 10, Search: "ron"}, nil)
		require.NoError(t, err)
		assert.Equal(t, int64(1), total)
	})
}
