package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"movie-catalog/internal/metrics"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

const (
	msgWatchlistExists   = "You already have a watchlist with this name."
	msgWatchlistReserved = "This name is reserved for the default watchlist."
)

type WatchlistInput struct {
	Name string `json:"name" validate:"required,max=64"`
}

type WatchlistService interface {
	// Default watchlist, created on first access.
	AddToWatchlist(ctx context.Context, userID, movieID uint) error
	RemoveFromWatchlist(ctx context.Context, userID, movieID uint) error
	GetWatchlist(ctx context.Context, userID uint) (*models.WatchlistView, error)

	// Named watchlists.
	ListWatchlists(ctx context.Context, userID uint) ([]models.Watchlist, error)
	CreateWatchlist(ctx context.Context, userID uint, input *WatchlistInput) (*models.Watchlist, error)
	GetWatchlistByID(ctx context.Context, userID, id uint) (*models.WatchlistView, error)
}

type watchlistService struct {
	repo      repository.WatchlistRepository
	movieRepo repository.MovieRepository
	images    ImageStore
	logger    *logrus.Logger
}

func NewWatchlistService(repo repository.WatchlistRepository, movieRepo repository.MovieRepository, images ImageStore, logger *logrus.Logger) WatchlistService {
	return &watchlistService{
		repo:      repo,
		movieRepo: movieRepo,
		images:    images,
		logger:    logger,
	}
}

func (s *watchlistService) AddToWatchlist(ctx context.Context, userID, movieID uint) error {
	watchlist, err := s.defaultWatchlistFor(ctx, userID, movieID)
	if err != nil {
		return err
	}

	if err := s.repo.AddMovie(ctx, watchlist.ID, movieID); err != nil {
		return fmt.Errorf("failed to add movie to watchlist: %w", err)
	}

	metrics.WatchlistChangesTotal.WithLabelValues("add").Inc()
	s.logger.WithFields(logrus.Fields{
		"user_id":  userID,
		"movie_id": movieID,
	}).Debug("Movie added to watchlist")
	return nil
}

func (s *watchlistService) RemoveFromWatchlist(ctx context.Context, userID, movieID uint) error {
	watchlist, err := s.defaultWatchlistFor(ctx, userID, movieID)
	if err != nil {
		return err
	}

	if err := s.repo.RemoveMovie(ctx, watchlist.ID, movieID); err != nil {
		return fmt.Errorf("failed to remove movie from watchlist: %w", err)
	}

	metrics.WatchlistChangesTotal.WithLabelValues("remove").Inc()
	s.logger.WithFields(logrus.Fields{
		"user_id":  userID,
		"movie_id": movieID,
	}).Debug("Movie removed from watchlist")
	return nil
}

func (s *watchlistService) GetWatchlist(ctx context.Context, userID uint) (*models.WatchlistView, error) {
	watchlist, err := s.repo.GetOrCreate(ctx, userID, models.DefaultWatchlistName)
	if err != nil {
		return nil, fmt.Errorf("failed to load watchlist: %w", err)
	}
	return s.view(ctx, userID, watchlist)
}

func (s *watchlistService) ListWatchlists(ctx context.Context, userID uint) ([]models.Watchlist, error) {
	if _, err := s.repo.GetOrCreate(ctx, userID, models.DefaultWatchlistName); err != nil {
		return nil, fmt.Errorf("failed to load watchlist: %w", err)
	}
	return s.repo.FindByUser(ctx, userID)
}

func (s *watchlistService) CreateWatchlist(ctx context.Context, userID uint, input *WatchlistInput) (*models.Watchlist, error) {
	input.Name = strings.TrimSpace(input.Name)
	if err := validateInput(input); err != nil {
		return nil, err
	}

	watchlist := &models.Watchlist{
		UserID: userID,
		Name:   input.Name,
	}
	if watchlist.IsDefault() {
		return nil, newValidationError("name", msgWatchlistReserved)
	}
	if err := s.repo.Create(ctx, watchlist); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newValidationError("name", msgWatchlistExists)
		}
		return nil, fmt.Errorf("failed to create watchlist: %w", err)
	}
	return watchlist, nil
}

func (s *watchlistService) GetWatchlistByID(ctx context.Context, userID, id uint) (*models.WatchlistView, error) {
	watchlist, err := s.repo.FindByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return s.view(ctx, userID, watchlist)
}

// defaultWatchlistFor checks that the movie exists and returns the user's
// default watchlist.
func (s *watchlistService) defaultWatchlistFor(ctx context.Context, userID, movieID uint) (*models.Watchlist, error) {
	if _, err := s.movieRepo.FindByID(ctx, movieID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	watchlist, err := s.repo.GetOrCreate(ctx, userID, models.DefaultWatchlistName)
	if err != nil {
		return nil, fmt.Errorf("failed to load watchlist: %w", err)
	}
	return watchlist, nil
}

func (s *watchlistService) view(ctx context.Context, userID uint, watchlist *models.Watchlist) (*models.WatchlistView, error) {
	movies, err := s.movieRepo.FindByWatchlist(ctx, watchlist.ID, &userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load watchlist movies: %w", err)
	}
	if movies == nil {
		movies = []models.MovieListItem{}
	}
	for i := range movies {
		resolveImages(ctx, s.images, &movies[i].Movie)
	}

	return &models.WatchlistView{
		ID:     watchlist.ID,
		Name:   watchlist.Name,
		Movies: movies,
	}, nil
}
