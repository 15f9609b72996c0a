package services

import (
	"context"
	"errors"
	"fmt"

	"movie-catalog/internal/models"
	"movie-catalog/internal/repository"

	"github.com/sirupsen/logrus"
)

// MovieInput is the writable part of a movie for catalog management.
type MovieInput struct {
	Name          string  `json:"name" validate:"required,max=64"`
	Director      string  `json:"director" validate:"required,max=128"`
	CreatedYear   int     `json:"created_year" validate:"gte=1870,lte=2100"`
	LengthMinutes int     `json:"length_minutes" validate:"gte=1"`
	IMDBRating    float64 `json:"imdb_rating" validate:"gte=0,lte=100"`
	Logo          string  `json:"logo" validate:"max=512"`
	HeaderImage   string  `json:"header_image" validate:"max=512"`
	Story         string  `json:"story"`
}

type MovieService interface {
	// Catalog reads. viewerID is nil for anonymous requests.
	GetAllMovies(ctx context.Context, filter models.MovieFilter, viewerID *uint) ([]models.MovieListItem, int64, error)
	GetMovieByID(ctx context.Context, id uint, viewerID *uint) (*models.MovieDetail, error)

	// Catalog management, staff only.
	CreateMovie(ctx context.Context, actorID uint, input *MovieInput) (*models.Movie, error)
	UpdateMovie(ctx context.Context, actorID, id uint, input *MovieInput) (*models.Movie, error)
	DeleteMovie(ctx context.Context, actorID, id uint) error
}

type movieService struct {
	repo       repository.MovieRepository
	ratingRepo repository.RatingRepository
	userRepo   repository.UserRepository
	images     ImageStore
	logger     *logrus.Logger
}

func NewMovieService(repo repository.MovieRepository, ratingRepo repository.RatingRepository, userRepo repository.UserRepository, images ImageStore, logger *logrus.Logger) MovieService {
	return &movieService{
		repo:       repo,
		ratingRepo: ratingRepo,
		userRepo:   userRepo,
		images:     images,
		logger:     logger,
	}
}

func (s *movieService) GetAllMovies(ctx context.Context, filter models.MovieFilter, viewerID *uint) ([]models.MovieListItem, int64, error) {
	filter.Normalize()

	movies, total, err := s.repo.FindAll(ctx, filter, viewerID)
	if err != nil {
		return nil, 0, err
	}
	for i := range movies {
		resolveImages(ctx, s.images, &movies[i].Movie)
	}
	return movies, total, nil
}

func (s *movieService) GetMovieByID(ctx context.Context, id uint, viewerID *uint) (*models.MovieDetail, error) {
	movie, err := s.repo.FindAnnotatedByID(ctx, id, viewerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	ratings, err := s.ratingRepo.FindByMovie(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}

	detail := &models.MovieDetail{
		MovieListItem: *movie,
		Ratings:       make([]models.RatingView, 0, len(ratings)),
	}
	for _, r := range ratings {
		detail.Ratings = append(detail.Ratings, models.NewRatingView(r))
	}
	if viewerID != nil {
		detail.CanRate = !hasRated(ratings, *viewerID)
	}

	resolveImages(ctx, s.images, &detail.Movie)
	return detail, nil
}

func (s *movieService) CreateMovie(ctx context.Context, actorID uint, input *MovieInput) (*models.Movie, error) {
	if err := s.requireStaff(ctx, actorID); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	movie := &models.Movie{}
	applyMovieInput(movie, input)

	if err := s.repo.Create(ctx, movie); err != nil {
		return nil, fmt.Errorf("failed to create movie: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"movie_id": movie.ID,
		"name":     movie.Name,
	}).Info("Movie created")

	resolveImages(ctx, s.images, movie)
	return movie, nil
}

func (s *movieService) UpdateMovie(ctx context.Context, actorID, id uint, input *MovieInput) (*models.Movie, error) {
	if err := s.requireStaff(ctx, actorID); err != nil {
		return nil, err
	}
	if err := validateInput(input); err != nil {
		return nil, err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	oldLogo, oldHeader := existing.Logo, existing.HeaderImage
	applyMovieInput(existing, input)

	if err := s.repo.Update(ctx, existing); err != nil {
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	deleteReplacedImage(ctx, s.images, s.logger, oldLogo, existing.Logo)
	deleteReplacedImage(ctx, s.images, s.logger, oldHeader, existing.HeaderImage)

	resolveImages(ctx, s.images, existing)
	return existing, nil
}

func (s *movieService) DeleteMovie(ctx context.Context, actorID, id uint) error {
	if err := s.requireStaff(ctx, actorID); err != nil {
		return err
	}

	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	deleteReplacedImage(ctx, s.images, s.logger, existing.Logo, "")
	deleteReplacedImage(ctx, s.images, s.logger, existing.HeaderImage, "")

	s.logger.WithField("movie_id", id).Info("Movie deleted")
	return nil
}

func (s *movieService) requireStaff(ctx context.Context, actorID uint) error {
	user, err := s.userRepo.FindByID(ctx, actorID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUnauthorized
		}
		return err
	}
	if !user.IsStaff {
		return ErrForbidden
	}
	return nil
}

func applyMovieInput(movie *models.Movie, input *MovieInput) {
	movie.Name = input.Name
	movie.Director = input.Director
	movie.CreatedYear = input.CreatedYear
	movie.LengthMinutes = input.LengthMinutes
	movie.IMDBRating = input.IMDBRating
	movie.Logo = input.Logo
	movie.HeaderImage = input.HeaderImage
	movie.Story = input.Story
}

func hasRated(ratings []models.Rating, userID uint) bool {
	for _, r := range ratings {
		if r.UserID == userID {
			return true
		}
	}
	return false
}
