package repository

import (
	"context"
	"errors"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm/clause"
)

type WatchlistRepository interface {
	// GetOrCreate returns the user's list with the given name, creating it
	// on first access.
	GetOrCreate(ctx context.Context, userID uint, name string) (*models.Watchlist, error)
	Create(ctx context.Context, watchlist *models.Watchlist) error
	FindByID(ctx context.Context, userID, id uint) (*models.Watchlist, error)
	FindByUser(ctx context.Context, userID uint) ([]models.Watchlist, error)

	AddMovie(ctx context.Context, watchlistID, movieID uint) error
	RemoveMovie(ctx context.Context, watchlistID, movieID uint) error
}

type watchlistRepository struct {
	baseRepository
}

func NewWatchlistRepository(db *database.Database) WatchlistRepository {
	return &watchlistRepository{baseRepository: newBaseRepository(db)}
}

func (r *watchlistRepository) GetOrCreate(ctx context.Context, userID uint, name string) (*models.Watchlist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var watchlist models.Watchlist
	err := r.db.WithContext(ctx).
		Where(models.Watchlist{UserID: userID, Name: name}).
		FirstOrCreate(&watchlist).Error
	if err == nil {
		return &watchlist, nil
	}

	// A concurrent first access created the row between our read and insert.
	if !errors.Is(translate(err), ErrDuplicate) {
		return nil, err
	}
	watchlist = models.Watchlist{}
	err = r.db.WithContext(ctx).
		Where("user_id = ? AND name = ?", userID, name).
		First(&watchlist).Error
	if err != nil {
		return nil, translate(err)
	}
	return &watchlist, nil
}

func (r *watchlistRepository) Create(ctx context.Context, watchlist *models.Watchlist) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).Omit("User", "Movies").Create(watchlist).Error)
}

func (r *watchlistRepository) FindByID(ctx context.Context, userID, id uint) (*models.Watchlist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var watchlist models.Watchlist
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&watchlist).Error
	if err != nil {
		return nil, translate(err)
	}
	return &watchlist, nil
}

func (r *watchlistRepository) FindByUser(ctx context.Context, userID uint) ([]models.Watchlist, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var watchlists []models.Watchlist
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&watchlists).Error
	return watchlists, err
}

func (r *watchlistRepository) AddMovie(ctx context.Context, watchlistID, movieID uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).
		Table("watchlist_movies").
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(map[string]interface{}{
			"watchlist_id": watchlistID,
			"movie_id":     movieID,
		}).Error
}

func (r *watchlistRepository) RemoveMovie(ctx context.Context, watchlistID, movieID uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return r.db.WithContext(ctx).
		Exec("DELETE FROM watchlist_movies WHERE watchlist_id = ? AND movie_id = ?", watchlistID, movieID).
		Error
}
