package handlers

import (
	"movie-catalog/internal/middleware"
	"movie-catalog/internal/services"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

type WatchlistHandler struct {
	service services.WatchlistService
	logger  *logrus.Logger
}

func NewWatchlistHandler(service services.WatchlistService, logger *logrus.Logger) *WatchlistHandler {
	return &WatchlistHandler{
		service: service,
		logger:  logger,
	}
}

// GetWatchlist godoc
// @Summary Get my watchlist
// @Description Get the caller's default watchlist with its movies
// @Tags watchlist
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=models.WatchlistView} "Watchlist"
// @Failure 401 {object} utils.StandardResponse "Unauthorized"
// @Security BearerAuth
// @Router /movies/watchlist [get]
func (h *WatchlistHandler) GetWatchlist(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	watchlist, err := h.service.GetWatchlist(c.Context(), userID)
	if err != nil {
		return handleServiceError(c, h.logger, err, "Watchlist", "Failed to retrieve watchlist")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Watchlist retrieved successfully", watchlist)
}

// AddToWatchlist godoc
// @Summary Add a movie to my watchlist
// @Description Add a movie to the caller's default watchlist. Adding a movie twice is a no-op.
// @Tags watchlist
// @Produce json
// @Param id path int true "Movie ID"
// @Success 201 {object} utils.StandardResponse "Movie added to watchlist"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 401 {object} utils.StandardResponse "Unauthorized"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Security BearerAuth
// @Router /movies/{id}/watchlist [post]
func (h *WatchlistHandler) AddToWatchlist(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	movieID, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	if err := h.service.AddToWatchlist(c.Context(), userID, movieID); err != nil {
		return handleServiceError(c, h.logger, err, "Movie", "Failed to add movie to watchlist")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Movie added to watchlist", nil)
}

// RemoveFromWatchlist godoc
// @Summary Remove a movie from my watchlist
// @Tags watchlist
// @Param id path int true "Movie ID"
// @Success 204 "Movie removed from watchlist"
// @Failure 400 {object} utils.StandardResponse "Invalid movie ID"
// @Failure 401 {object} utils.StandardResponse "Unauthorized"
// @Failure 404 {object} utils.StandardResponse "Movie not found"
// @Security BearerAuth
// @Router /movies/{id}/watchlist [delete]
func (h *WatchlistHandler) RemoveFromWatchlist(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	movieID, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID")
	}

	if err := h.service.RemoveFromWatchlist(c.Context(), userID, movieID); err != nil {
		return handleServiceError(c, h.logger, err, "Movie", "Failed to remove movie from watchlist")
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ListWatchlists godoc
// @Summary List my watchlists
// @Tags watchlist
// @Produce json
// @Success 200 {object} utils.StandardResponse{data=[]models.Watchlist} "Watchlists"
// @Failure 401 {object} utils.StandardResponse "Unauthorized"
// @Security BearerAuth
// @Router /watchlists [get]
func (h *WatchlistHandler) ListWatchlists(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	watchlists, err := h.service.ListWatchlists(c.Context(), userID)
	if err != nil {
		return handleServiceError(c, h.logger, err, "Watchlist", "Failed to retrieve watchlists")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Watchlists retrieved successfully", watchlists)
}

// CreateWatchlist godoc
// @Summary Create a named watchlist
// @Tags watchlist
// @Accept json
// @Produce json
// @Param watchlist body services.WatchlistInput true "Watchlist"
// @Success 201 {object} utils.StandardResponse{data=models.Watchlist} "Watchlist created"
// @Failure 400 {object} utils.StandardResponse "Invalid or duplicate name"
// @Failure 401 {object} utils.StandardResponse "Unauthorized"
// @Security BearerAuth
// @Router /watchlists [post]
func (h *WatchlistHandler) CreateWatchlist(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	var req services.WatchlistInput
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body")
	}

	watchlist, err := h.service.CreateWatchlist(c.Context(), userID, &req)
	if err != nil {
		return handleServiceError(c, h.logger, err, "Watchlist", "Failed to create watchlist")
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, "Watchlist created successfully", watchlist)
}

// GetWatchlistByID godoc
// @Summary Get one of my watchlists
// @Tags watchlist
// @Produce json
// @Param id path int true "Watchlist ID"
// @Success 200 {object} utils.StandardResponse{data=models.WatchlistView} "Watchlist"
// @Failure 400 {object} utils.StandardResponse "Invalid watchlist ID"
// @Failure 401 {object} utils.StandardResponse "Unauthorized"
// @Failure 404 {object} utils.StandardResponse "Watchlist not found"
// @Security BearerAuth
// @Router /watchlists/{id} [get]
func (h *WatchlistHandler) GetWatchlistByID(c *fiber.Ctx) error {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		return unauthorized(c)
	}

	id, ok := parseID(c, "id")
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid watchlist ID")
	}

	watchlist, err := h.service.GetWatchlistByID(c.Context(), userID, id)
	if err != nil {
		return handleServiceError(c, h.logger, err, "Watchlist", "Failed to retrieve watchlist")
	}

	return utils.SuccessResponse(c, fiber.StatusOK, "Watchlist retrieved successfully", watchlist)
}
