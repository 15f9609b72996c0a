package handlers

import (
	"context"

	"movie-catalog/internal/models"
	"movie-catalog/internal/services"

	"github.com/stretchr/testify/mock"
)

type mockMovieService struct {
	mock.Mock
}

func (m *mockMovieService) GetAllMovies(ctx context.Context, filter models.MovieFilter, viewerID *uint) ([]models.MovieListItem, int64, error) {
	args := m.Called(ctx, filter, viewerID)
	movies, _ := args.Get(0).([]models.MovieListItem)
	return movies, args.Get(1).(int64), args.Error(2)
}

func (m *mockMovieService) GetMovieByID(ctx context.Context, id uint, viewerID *uint) (*models.MovieDetail, error) {
	args := m.Called(ctx, id, viewerID)
	movie, _ := args.Get(0).(*models.MovieDetail)
	return movie, args.Error(1)
}

func (m *mockMovieService) CreateMovie(ctx context.Context, actorID uint, input *services.MovieInput) (*models.Movie, error) {
	args := m.Called(ctx, actorID, input)
	movie, _ := args.Get(0).(*models.Movie)
	return movie, args.Error(1)
}

func (m *mockMovieService) UpdateMovie(ctx context.Context, actorID, id uint, input *services.MovieInput) (*models.Movie, error) {
	args := m.Called(ctx, actorID, id, input)
	movie, _ := args.Get(0).(*models.Movie)
	return movie, args.Error(1)
}

func (m *mockMovieService) DeleteMovie(ctx context.Context, actorID, id uint) error {
	args := m.Called(ctx, actorID, id)
	return args.Error(0)
}

type mockRatingService struct {
	mock.Mock
}

func (m *mockRatingService) CreateRating(ctx context.Context, userID, movieID uint, input *services.RatingInput) (*models.Rating, error) {
	args := m.Called(ctx, userID, movieID, input)
	rating, _ := args.Get(0).(*models.Rating)
	return rating, args.Error(1)
}

type mockWatchlistService struct {
	mock.Mock
}

func (m *mockWatchlistService) AddToWatchlist(ctx context.Context, userID, movieID uint) error {
	args := m.Called(ctx, userID, movieID)
	return args.Error(0)
}

func (m *mockWatchlistService) RemoveFromWatchlist(ctx context.Context, userID, movieID uint) error {
	args := m.Called(ctx, userID, movieID)
	return args.Error(0)
}

func (m *mockWatchlistService) GetWatchlist(ctx context.Context, userID uint) (*models.WatchlistView, error) {
	args := m.Called(ctx, userID)
	view, _ := args.Get(0).(*models.WatchlistView)
	return view, args.Error(1)
}

func (m *mockWatchlistService) ListWatchlists(ctx context.Context, userID uint) ([]models.Watchlist, error) {
	args := m.Called(ctx, userID)
	lists, _ := args.Get(0).([]models.Watchlist)
	return lists, args.Error(1)
}

func (m *mockWatchlistService) CreateWatchlist(ctx context.Context, userID uint, input *services.WatchlistInput) (*models.Watchlist, error) {
	args := m.Called(ctx, userID, input)
	watchlist, _ := args.Get(0).(*models.Watchlist)
	return watchlist, args.Error(1)
}

func (m *mockWatchlistService) GetWatchlistByID(ctx context.Context, userID, id uint) (*models.WatchlistView, error) {
	args := m.Called(ctx, userID, id)
	view, _ := args.Get(0).(*models.WatchlistView)
	return view, args.Error(1)
}

type mockAuthService struct {
	mock.Mock
}

func (m *mockAuthService) Register(ctx context.Context, input *services.RegisterInput) (*models.User, error) {
	args := m.Called(ctx, input)
	user, _ := args.Get(0).(*models.User)
	return user, args.Error(1)
}

func (m *mockAuthService) Login(ctx context.Context, input *services.LoginInput) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}

func (m *mockAuthService) GetSecurityQuestion(ctx context.Context, username string) (*models.SecurityQuestion, error) {
	args := m.Called(ctx, username)
	question, _ := args.Get(0).(*models.SecurityQuestion)
	return question, args.Error(1)
}

func (m *mockAuthService) ResetPassword(ctx context.Context, username string, input *services.ResetPasswordInput) error {
	args := m.Called(ctx, username, input)
	return args.Error(0)
}
