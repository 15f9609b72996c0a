package services

import (
	"context"
	"io"

	"movie-catalog/internal/models"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

func newTestLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

type mockMovieRepository struct {
	mock.Mock
}

func (m *mockMovieRepository) Create(ctx context.Context, movie *models.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *mockMovieRepository) Update(ctx context.Context, movie *models.Movie) error {
	args := m.Called(ctx, movie)
	return args.Error(0)
}

func (m *mockMovieRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockMovieRepository) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	args := m.Called(ctx, id)
	movie, _ := args.Get(0).(*models.Movie)
	return movie, args.Error(1)
}

func (m *mockMovieRepository) FindAll(ctx context.Context, filter models.MovieFilter, viewerID *uint) ([]models.MovieListItem, int64, error) {
	args := m.Called(ctx, filter, viewerID)
	movies, _ := args.Get(0).([]models.MovieListItem)
	return movies, args.Get(1).(int64), args.Error(2)
}

func (m *mockMovieRepository) FindAnnotatedByID(ctx context.Context, id uint, viewerID *uint) (*models.MovieListItem, error) {
	args := m.Called(ctx, id, viewerID)
	movie, _ := args.Get(0).(*models.MovieListItem)
	return movie, args.Error(1)
}

func (m *mockMovieRepository) FindByWatchlist(ctx context.Context, watchlistID uint, viewerID *uint) ([]models.MovieListItem, error) {
	args := m.Called(ctx, watchlistID, viewerID)
	movies, _ := args.Get(0).([]models.MovieListItem)
	return movies, args.Error(1)
}

type mockRatingRepository struct {
	mock.Mock
}

func (m *mockRatingRepository) Create(ctx context.Context, rating *models.Rating) error {
	args := m.Called(ctx, rating)
	return args.Error(0)
}

func (m *mockRatingRepository) FindByMovie(ctx context.Context, movieID uint) ([]models.Rating, error) {
	args := m.Called(ctx, movieID)
	ratings, _ := args.Get(0).([]models.Rating)
	return ratings, args.Error(1)
}

type mockWatchlistRepository struct {
	mock.Mock
}

func (m *mockWatchlistRepository) GetOrCreate(ctx context.Context, userID uint, name string) (*models.Watchlist, error) {
	args := m.Called(ctx, userID, name)
	watchlist, _ := args.Get(0).(*models.Watchlist)
	return watchlist, args.Error(1)
}

func (m *mockWatchlistRepository) Create(ctx context.Context, watchlist *models.Watchlist) error {
	args := m.Called(ctx, watchlist)
	return args.Error(0)
}

func (m *mockWatchlistRepository) FindByID(ctx context.Context, userID, id uint) (*models.Watchlist, error) {
	args := m.Called(ctx, userID, id)
	watchlist, _ := args.Get(0).(*models.Watchlist)
	return watchlist, args.Error(1)
}

func (m *mockWatchlistRepository) FindByUser(ctx context.Context, userID uint) ([]models.Watchlist, error) {
	args := m.Called(ctx, userID)
	watchlists, _ := args.Get(0).([]models.Watchlist)
	return watchlists, args.Error(1)
}

func (m *mockWatchlistRepository) AddMovie(ctx context.Context, watchlistID, movieID uint) error {
	args := m.Called(ctx, watchlistID, movieID)
	return args.Error(0)
}

func (m *mockWatchlistRepository) RemoveMovie(ctx context.Context, watchlistID, movieID uint) error {
	args := m.Called(ctx, watchlistID, movieID)
	return args.Error(0)
}

type mockUserRepository struct {
	mock.Mock
}

func (m *mockUserRepository) CreateWithSecurityQuestion(ctx context.Context, user *models.User, question *models.SecurityQuestion) error {
	args := m.Called(ctx, user, question)
	return args.Error(0)
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockUserRepository) FindSecurityQuestion(ctx context.Context, userID uint) (*models.SecurityQuestion, error) {
	args := m.Called(ctx, userID)
	question, _ := args.Get(0).(*models.SecurityQuestion)
	return question, args.Error(1)
}

func (m *mockUserRepository) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	args := m.Called(ctx, userID, passwordHash)
	return args.Error(0)
}

// fakeImageStore prefixes keys so tests can see that resolution happened.
type fakeImageStore struct {
	deleted []string
}

func (f *fakeImageStore) ResolveURL(_ context.Context, key string) string {
	if key == "" {
		return ""
	}
	return "https://cdn.test/" + key
}

func (f *fakeImageStore) Delete(_ context.Context, key string) error {
	f.deleted = append(f.deleted, key)
	return nil
}
