package repository

import (
	"context"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"
)

type RatingRepository interface {
	// Create returns ErrDuplicate when the user already rated the movie.
	Create(ctx context.Context, rating *models.Rating) error
	FindByMovie(ctx context.Context, movieID uint) ([]models.Rating, error)
}

type ratingRepository struct {
	baseRepository
}

func NewRatingRepository(db *database.Database) RatingRepository {
	return &ratingRepository{baseRepository: newBaseRepository(db)}
}

func (r *ratingRepository) Create(ctx context.Context, rating *models.Rating) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).Omit("User").Create(rating).Error)
}

func (r *ratingRepository) FindByMovie(ctx context.Context, movieID uint) ([]models.Rating, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var ratings []models.Rating
	err := r.db.WithContext(ctx).
		Preload("User").
		Where("movie_id = ?", movieID).
		Order("created_at ASC, id ASC").
		Find(&ratings).Error
	return ratings, err
}
