package handlers

import (
	"strconv"

	"movie-catalog/internal/middleware"
	"movie-catalog/internal/models"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type MovieHandler struct {
	service services.MovieService
	ratings services.RatingService
	logger  *logrus.Logger
}

func NewMovieHandler(service services.MovieService, ratings services.RatingService, logger *logrus.Logger) *MovieHandler {
	return &MovieHandler{
		service: service,
		ratings: ratings,
		logger:  logger,
	}
}

// GetAllMovies godoc
// @Summary Get all movies
// @Description Get list of movies with pagination, search and sorting. Each movie carries its overall rating and whether it is in the caller's watchlist.
// @Tags movies
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page (max 100)" default(20)
// @Param search query string false "Search by name or director"
// @Param sort_by query string false "Sort by field (id, name, director, created_year, length_minutes, imdb_rating, overall_rating, created_at)" default(id)
// @Param order query string false "Sort order (ASC/DESC)" default(ASC)
// @Success 200 {object} utils.StandardResponse{data=[]models.MovieListItem,meta=utils.PaginationMeta} "List of movies"
// @Failure 401 {object} utils.StandardResponse "Invalid token"
// @Failure 500 {object} utils.StandardResponse "Internal server error"
// @Security BearerAuth
// @Router /movies [get]
func (h *MovieHandler) GetAllMovies(c *fiber.Ctx) error {
	ctx := c.Context()

	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", strconv.Itoa(models.DefaultPageSize)))

	filter := models.MovieFilter{
		Page:   page,
		Limit:  limit,
		Search: c.Query("search", ""),
		SortBy: c.Query("sort_by", "id"),
		Order:  c.Query("order", "ASC"),
	}
	filter.Normalize()

	movies, total, err := h.service.GetAllMovies(ctx, filter, middleware.ViewerID(c))
	if err != nil {
		return handleServiceError(c, h.logger, err, "Movie", "Failed to retrieve movies")
	}

	meta := utils.CreatePaginationMeta(filter.Page, filter.Limit, total)
	return utils.SuccessWithMetaResponse(c, fiber.StatusOK, "Movies retrieved successfully", movies, meta)
}

// GetMovieByID godoc
// @Summary Get movie by ID
// @Description Get a single movie with its ratings, overall rating, watchlist flag and whether the caller may rate it
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Success 200 {object} utils.StandardResponse{data=models.MovieDetail} "Movie details"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Security BearerAuth
// @Router /movies/{id} [get]
func (h *MovieHandler) GetMovieByID(c *fiber.Ctx) error {
	ctx := c.Context()

	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	movie, err := h.service.GetMovieByID(ctx, id, middleware.ViewerID(c))
	if err != nil {
		return handleServiceError(c, h.logger, err, "Movie", "Failed to retrieve movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie retrieved successfully", movie)
}

// CreateMovie godoc
// @Summary Create a new movie
// @Description Create a new movie entry (staff only)
// @Tags movies
// @Accept json
// @Produce json
// @Param movie body services.MovieInput true "Movie request object"
// @Success 201 {object} utils.StandardResponse{data=models.Movie} "Movie created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request body"
// @Failure 401 {object} utils.StandardResponse "Unauthorized"
// @Failure 403 {object} utils.StandardResponse "Forbidden"
// @Security BearerAuth
// @Router /movies [post]
func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req services.MovieInput
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	movie, err := h.service.CreateMovie(ctx, userID, &req)
	if err != nil {
		return handleServiceError(c, h.logger, err, "Movie", "Failed to create movie")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie created successfully", movie)
}

// UpdateMovie godoc
// @Summary Update a movie
// @Description Update an existing movie (staff only)
// @Tags movies
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param movie body services.MovieInput true "Movie request object"
// @Success 200 {object} utils.StandardResponse{data=models.Movie} "Movie updated successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid request"
// @Failure 401 {object} utils.StandardResponse "Unauthorized"
// @Failure 403 {object} utils.StandardResponse "Forbidden"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Security BearerAuth
// @Router /movies/{id} [put]
func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var req services.MovieInput
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	movie, err := h.service.UpdateMovie(ctx, userID, id, &req)
	if err != nil {
		return handleServiceError(c, h.logger, err, "Movie", "Failed to update movie")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Movie updated successfully", movie)
}

// DeleteMovie godoc
// @Summary Delete a movie
// @Description Delete a movie by ID together with its ratings (staff only)
// @Tags movies
// @Produce json
// @Param id path int true "Movie ID"
// @Success 204 "Movie deleted successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 401 {object} utils.StandardResponse "Unauthorized"
// @Failure 403 {object} utils.StandardResponse "Forbidden"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Security BearerAuth
// @Router /movies/{id} [delete]
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	ctx := c.Context()

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	if err := h.service.DeleteMovie(ctx, userID, id); err != nil {
		return handleServiceError(c, h.logger, err, "Movie", "Failed to delete movie")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// CreateRating godoc
// @Summary Rate a movie
// @Description Rate a movie from 1 to 5 with an optional comment. Each user rates a movie once.
// @Tags ratings
// @Accept json
// @Produce json
// @Param id path int true "Movie ID"
// @Param rating body services.RatingInput true "Rating"
// @Success 201 {object} utils.StandardResponse{data=RatingResponse} "Rating created successfully"
// @Failure 400 {object} utils.StandardResponse "Invalid rating or already rated"
// @Failure 401 {object} utils.StandardResponse "Unauthorized"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Security BearerAuth
// @Router /movies/{id}/ratings [post]
func (h *MovieHandler) CreateRating(c *fiber.Ctx) error {
	ctx := c.Context()

	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	movieID, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	var req services.RatingInput
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	rating, err := h.ratings.CreateRating(ctx, userID, movieID, &req)
	if err != nil {
		return handleServiceError(c, h.logger, err, "Movie", "Failed to create rating")
	}

	username := ""
	if claims := middleware.Claims(c); claims != nil {
		username = claims.Username
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Rating created successfully", RatingResponse{
		ID:        rating.ID,
		MovieID:   rating.MovieID,
		Username:  username,
		Rating:    rating.Rating,
		Comment:   rating.Comment,
		CreatedAt: rating.CreatedAt,
	})
}
