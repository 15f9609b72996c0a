package routes

import (
	"time"

	"movie-catalog/internal/handlers"
	"movie-catalog/internal/middleware"
	"movie-catalog/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	Movie     *handlers.MovieHandler
	Watchlist *handlers.WatchlistHandler
	Auth      *handlers.AuthHandler
}

// Setup mounts the v1 API. authenticate resolves the optional bearer token
// for every API route; authRateLimit caps account requests per IP per minute.
func Setup(app *fiber.App, h Handlers, authenticate fiber.Handler, authRateLimit int) {
	// API versioning
	api := app.Group("/api")
	v1 := api.Group("/v1", authenticate)

	requireAuth := middleware.RequireAuth()

	// Movie routes. /watchlist must be registered before /:id.
	movies := v1.Group("/movies")
	{
		movies.Get("/", h.Movie.GetAllMovies)
		movies.Get("/watchlist", requireAuth, h.Watchlist.GetWatchlist)
		movies.Get("/:id", h.Movie.GetMovieByID)
		movies.Post("/", requireAuth, h.Movie.CreateMovie)
		movies.Put("/:id", requireAuth, h.Movie.UpdateMovie)
		movies.Delete("/:id", requireAuth, h.Movie.DeleteMovie)

		movies.Post("/:id/ratings", requireAuth, h.Movie.CreateRating)

		movies.Post("/:id/watchlist", requireAuth, h.Watchlist.AddToWatchlist)
		movies.Delete("/:id/watchlist", requireAuth, h.Watchlist.RemoveFromWatchlist)
	}

	// Named watchlists
	watchlists := v1.Group("/watchlists", requireAuth)
	{
		watchlists.Get("/", h.Watchlist.ListWatchlists)
		watchlists.Post("/", h.Watchlist.CreateWatchlist)
		watchlists.Get("/:id", h.Watchlist.GetWatchlistByID)
	}

	// Account routes
	auth := v1.Group("/auth", newAuthLimiter(authRateLimit))
	{
		auth.Post("/register", h.Auth.Register)
		auth.Post("/login", h.Auth.Login)
		auth.Get("/reset-password/:username", h.Auth.GetSecurityQuestion)
		auth.Post("/reset-password/:username", h.Auth.ResetPassword)
	}
}

func newAuthLimiter(limit int) fiber.Handler {
	if limit < 1 {
		limit = 1
	}
	return limiter.New(limiter.Config{
		Max:        limit,
		Expiration: time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return utils.ErrorResponse(c, fiber.StatusTooManyRequests, "Too many requests, please try again later")
		},
	})
}
