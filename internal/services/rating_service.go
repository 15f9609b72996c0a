package services

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/metrics"
	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"
	"movie-catalog/internal/validation"

	"github.com/sirupsen/logrus"
)

const msgAlreadyRated = "The fields user, movie must make a unique set."

type RatingInput struct {
	Rating  int    `json:"rating" validate:"min=1,max=5"`
	Comment string `json:"comment"`
}

type RatingService interface {
	// CreateRating records userID's only rating for movieID.
	CreateRating(ctx context.Context, userID, movieID uint, input *RatingInput) (*models.Rating, error)
}

type ratingService struct {
	repo      repository.RatingRepository
	movieRepo repository.MovieRepository
	logger    *logrus.Logger
}

func NewRatingService(repo repository.RatingRepository, movieRepo repository.MovieRepository, logger *logrus.Logger) RatingService {
	return &ratingService{
		repo:      repo,
		movieRepo: movieRepo,
		logger:    logger,
	}
}

func (s *ratingService) CreateRating(ctx context.Context, userID, movieID uint, input *RatingInput) (*models.Rating, error) {
	if _, err := s.movieRepo.FindByID(ctx, movieID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := validateInput(input); err != nil {
		return nil, err
	}

	rating := &models.Rating{
		UserID:  userID,
		MovieID: movieID,
		Rating:  input.Rating,
		Comment: input.Comment,
	}
	if err := s.repo.Create(ctx, rating); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, newValidationError(validation.NonFieldErrors, msgAlreadyRated)
		}
		return nil, fmt.Errorf("failed to create rating: %w", err)
	}

	metrics.RatingsCreatedTotal.Inc()
	s.logger.WithFields(logrus.Fields{
		"user_id":  userID,
		"movie_id": movieID,
		"rating":   rating.Rating,
	}).Info("Rating created")

	return rating, nil
}
