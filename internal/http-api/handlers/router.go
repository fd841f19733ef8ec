package handlers

import (
	"cinelog/internal/http-api/service"
	"cinelog/internal/middleware/auth"
	"cinelog/internal/middleware/ratelimit"

	"github.com/gin-gonic/gin"
)

// Handlers bundles every route handler the server mounts.
type Handlers struct {
	Auth      *AuthHandler
	Account   *AccountHandler
	Movie     *MovieHandler
	Series    *SeriesHandler
	Episode   *EpisodeHandler
	Actor     *ActorHandler
	Director  *DirectorHandler
	Genre     *GenreHandler
	Comment   *CommentHandler
	Rating    *RatingHandler
	Favorite  *FavoriteHandler
	Watchlist *WatchlistHandler
}

// RegisterRoutes mounts the whole API surface. Reads are public,
// catalog mutations are admin-only, user content requires a login.
func RegisterRoutes(r *gin.Engine, h Handlers, authSvc service.AuthService, limiter *ratelimit.PerIP, uploadDir string) {
	r.Static("/images", uploadDir)

	api := r.Group("/api")

	authGroup := api.Group("/auth", limiter.Middleware())
	{
		authGroup.POST("/register", h.Auth.Register)
		authGroup.POST("/login", h.Auth.Login)
		authGroup.POST("/refresh", h.Auth.Refresh)
		authGroup.POST("/logout", h.Auth.Logout)
	}

	authed := api.Group("", auth.RequireAuth(authSvc))
	admin := authed.Group("", auth.RequireAdmin())

	// Users
	authed.GET("/users/me", h.Account.Me)
	authed.PUT("/users/me", h.Account.UpdateMe)
	admin.GET("/users", h.Account.List)
	admin.GET("/users/:id", h.Account.Get)
	admin.PUT("/users/:id/role", h.Account.SetRole)
	admin.DELETE("/users/:id", h.Account.Delete)

	// Movies
	api.GET("/movies", h.Movie.List)
	api.GET("/movies/all", h.Movie.ListAll)
	api.GET("/movies/search", h.Movie.Search)
	api.GET("/movies/year", h.Movie.FilterByYear)
	api.GET("/movies/sort", h.Movie.Sort)
	api.GET("/movies/genre/:id", h.Movie.ByGenre)
	api.GET("/movies/actor/:id", h.Movie.ByActor)
	api.GET("/movies/director/:id", h.Movie.ByDirector)
	api.GET("/movies/:id", h.Movie.Get)
	api.GET("/movies/:id/comments", h.Comment.ByMovie)
	api.GET("/movies/:id/rating", h.Rating.MovieAverage)
	admin.POST("/movies", h.Movie.Create)
	admin.PUT("/movies/:id", h.Movie.Update)
	admin.DELETE("/movies/:id", h.Movie.Delete)

	// Series
	api.GET("/series", h.Series.List)
	api.GET("/series/all", h.Series.ListAll)
	api.GET("/series/search", h.Series.Search)
	api.GET("/series/year", h.Series.FilterByYear)
	api.GET("/series/sort", h.Series.Sort)
	api.GET("/series/genre/:id", h.Series.ByGenre)
	api.GET("/series/actor/:id", h.Series.ByActor)
	api.GET("/series/director/:id", h.Series.ByDirector)
	api.GET("/series/:id", h.Series.Get)
	api.GET("/series/:id/episodes", h.Episode.BySeries)
	api.GET("/series/:id/comments", h.Comment.BySeries)
	api.GET("/series/:id/rating", h.Rating.SeriesAverage)
	admin.POST("/series", h.Series.Create)
	admin.PUT("/series/:id", h.Series.Update)
	admin.DELETE("/series/:id", h.Series.Delete)

	// Episodes
	api.GET("/episodes", h.Episode.List)
	api.GET("/episodes/:id", h.Episode.Get)
	admin.POST("/episodes", h.Episode.Create)
	admin.PUT("/episodes/:id", h.Episode.Update)
	admin.DELETE("/episodes/:id", h.Episode.Delete)

	// Actors
	api.GET("/actors", h.Actor.List)
	api.GET("/actors/:id", h.Actor.Get)
	admin.POST("/actors", h.Actor.Create)
	admin.PUT("/actors/:id", h.Actor.Update)
	admin.DELETE("/actors/:id", h.Actor.Delete)

	// Directors
	api.GET("/directors", h.Director.List)
	api.GET("/directors/:id", h.Director.Get)
	admin.POST("/directors", h.Director.Create)
	admin.PUT("/directors/:id", h.Director.Update)
	admin.DELETE("/directors/:id", h.Director.Delete)

	// Genres
	api.GET("/genres", h.Genre.List)
	api.GET("/genres/:id", h.Genre.Get)
	admin.POST("/genres", h.Genre.Create)
	admin.PUT("/genres/:id", h.Genre.Update)
	admin.DELETE("/genres/:id", h.Genre.Delete)

	// Comments
	api.GET("/comments/:id", h.Comment.Get)
	authed.GET("/comments/mine", h.Comment.Mine)
	authed.POST("/comments", h.Comment.Create)
	authed.PUT("/comments/:id", h.Comment.Update)
	authed.DELETE("/comments/:id", h.Comment.Delete)

	// Ratings
	authed.GET("/ratings/mine", h.Rating.Mine)
	authed.GET("/ratings/check", h.Rating.Check)
	authed.POST("/ratings", h.Rating.Create)
	authed.DELETE("/ratings/:id", h.Rating.Delete)

	// Favorites
	authed.GET("/favorites", h.Favorite.List)
	authed.GET("/favorites/check", h.Favorite.Contains)
	authed.POST("/favorites", h.Favorite.Add)
	authed.DELETE("/favorites/:id", h.Favorite.Remove)

	// Watchlist
	authed.GET("/watchlist", h.Watchlist.List)
	authed.GET("/watchlist/check", h.Watchlist.Contains)
	authed.POST("/watchlist", h.Watchlist.Add)
	authed.DELETE("/watchlist/:id", h.Watchlist.Remove)
}
