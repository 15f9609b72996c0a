package repository

import (
	"context"
	"fmt"
	"strings"

	"movie-catalog/internal/database"
	"movie-catalog/internal/models"

	"gorm.io/gorm"
)

const overallRatingColumn = "(SELECT AVG(ratings.rating) FROM ratings WHERE ratings.movie_id = movies.id) AS overall_rating"

const inWatchlistColumn = `EXISTS (
	SELECT 1 FROM watchlist_movies
	JOIN watchlists ON watchlists.id = watchlist_movies.watchlist_id
	WHERE watchlist_movies.movie_id = movies.id
	AND watchlists.user_id = ? AND watchlists.name = ?
) AS in_watchlist`

// likeEscaper escapes LIKE wildcards for PostgreSQL's default backslash escape.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var movieSortColumns = map[string]string{
	"id":             "movies.id",
	"name":           "movies.name",
	"director":       "movies.director",
	"created_year":   "movies.created_year",
	"length_minutes": "movies.length_minutes",
	"imdb_rating":    "movies.imdb_rating",
	"overall_rating": "overall_rating",
	"created_at":     "movies.created_at",
}

type MovieRepository interface {
	// CRUD operations
	Create(ctx context.Context, movie *models.Movie) error
	Update(ctx context.Context, movie *models.Movie) error
	Delete(ctx context.Context, id uint) error
	FindByID(ctx context.Context, id uint) (*models.Movie, error)

	// Annotated reads. viewerID is nil for anonymous requests.
	FindAll(ctx context.Context, filter models.MovieFilter, viewerID *uint) ([]models.MovieListItem, int64, error)
	FindAnnotatedByID(ctx context.Context, id uint, viewerID *uint) (*models.MovieListItem, error)
	FindByWatchlist(ctx context.Context, watchlistID uint, viewerID *uint) ([]models.MovieListItem, error)
}

type movieRepository struct {
	baseRepository
}

func NewMovieRepository(db *database.Database) MovieRepository {
	return &movieRepository{baseRepository: newBaseRepository(db)}
}

// annotate selects every movie column plus overall_rating and in_watchlist.
func annotate(query *gorm.DB, viewerID *uint) *gorm.DB {
	if viewerID == nil {
		return query.Select("movies.*, " + overallRatingColumn + ", FALSE AS in_watchlist")
	}
	return query.Select("movies.*, "+overallRatingColumn+", "+inWatchlistColumn, *viewerID, models.DefaultWatchlistName)
}

func (r *movieRepository) Create(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).Omit("Ratings").Create(movie).Error)
}

func (r *movieRepository) Update(ctx context.Context, movie *models.Movie) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	return translate(r.db.WithContext(ctx).Omit("Ratings").Save(movie).Error)
}

func (r *movieRepository) Delete(ctx context.Context, id uint) error {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	result := r.db.WithContext(ctx).Delete(&models.Movie{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *movieRepository) FindByID(ctx context.Context, id uint) (*models.Movie, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.Movie
	if err := r.db.WithContext(ctx).First(&movie, id).Error; err != nil {
		return nil, translate(err)
	}
	return &movie, nil
}

func (r *movieRepository) FindAll(ctx context.Context, filter models.MovieFilter, viewerID *uint) ([]models.MovieListItem, int64, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.MovieListItem
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Movie{})

	// Apply search filter
	if filter.Search != "" {
		searchPattern := "%" + escapeLike(filter.Search) + "%"
		query = query.Where("movies.name ILIKE ? OR movies.director ILIKE ?", searchPattern, searchPattern)
	}

	// Count and page queries share the filter without sharing statements.
	query = query.Session(&gorm.Session{})

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortColumn, ok := movieSortColumns[filter.SortBy]
	if !ok {
		sortColumn = movieSortColumns["id"]
	}
	order := "ASC"
	if filter.Order == "DESC" || filter.Order == "desc" {
		order = "DESC"
	}

	offset := (filter.Page - 1) * filter.Limit
	err := annotate(query, viewerID).
		Order(fmt.Sprintf("%s %s NULLS LAST, movies.id ASC", sortColumn, order)).
		Offset(offset).
		Limit(filter.Limit).
		Find(&movies).Error
	if err != nil {
		return nil, 0, err
	}

	return movies, total, nil
}

func (r *movieRepository) FindAnnotatedByID(ctx context.Context, id uint, viewerID *uint) (*models.MovieListItem, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movie models.MovieListItem
	err := annotate(r.db.WithContext(ctx).Model(&models.Movie{}), viewerID).
		Where("movies.id = ?", id).
		Take(&movie).Error
	if err != nil {
		return nil, translate(err)
	}
	return &movie, nil
}

func (r *movieRepository) FindByWatchlist(ctx context.Context, watchlistID uint, viewerID *uint) ([]models.MovieListItem, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	var movies []models.MovieListItem
	err := annotate(r.db.WithContext(ctx).Model(&models.Movie{}), viewerID).
		Joins("JOIN watchlist_movies ON watchlist_movies.movie_id = movies.id").
		Where("watchlist_movies.watchlist_id = ?", watchlistID).
		Order("movies.name ASC, movies.id ASC").
		Find(&movies).Error
	if err != nil {
		return nil, err
	}
	return movies, nil
}
