package router

import (
	"net/http"

	"filmoteca/config"
	"filmoteca/controllers"
	"filmoteca/middleware"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Initialize wires all routes and middlewares.
// Public auth routes + the catalog, authenticated favorites, and
// admin-gated film mutations.
func Initialize(r *gin.Engine, cfg config.Configuration) {
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(Logger())

	// front assets (CSS, JS, images)
	r.Static("/public", cfg.StaticDir)

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "route not found",
			"message": "route " + c.Request.URL.Path + " does not exist on this server",
		})
	})

	api := r.Group("/api")

	// Public (no auth)
	api.POST("/signup", controllers.Signup)
	api.POST("/login", controllers.Login)
	api.POST("/logout", controllers.Logout)
	api.GET("/recoverpassword", controllers.RecoverPassword)
	api.GET("/restorepassword", controllers.RestorePassword)

	// Google OAuth
	api.GET("/auth/google", controllers.GoogleLogin)
	api.GET("/auth/google/callback", controllers.GoogleCallback)

	// Catalog (public reads)
	api.GET("/films", controllers.GetFilms)
	api.GET("/films/:id", controllers.GetFilmByID)

	// Authenticated routes (session cookie required)
	auth := api.Group("")
	auth.Use(controllers.AuthRequired())
	auth.GET("/me", controllers.Me)
	auth.GET("/favorites", controllers.GetFavorites)
	auth.POST("/favorites", controllers.AddFavorite)
	auth.DELETE("/favorites/:id", controllers.RemoveFavorite)

	// Admin routes (catalog mutations)
	admin := auth.Group("")
	admin.Use(Adminizer())
	admin.POST("/films", controllers.CreateFilm)
	admin.PUT("/films/:id", controllers.UpdateFilm)
	admin.DELETE("/films/:id", controllers.DeleteFilm)

	logrus.Info("routes initialized")
}
