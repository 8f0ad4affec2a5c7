package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fmendezl/boolfind/api/handlers"
	"github.com/fmendezl/boolfind/config"
	"github.com/fmendezl/boolfind/db/indexdb"
	"github.com/fmendezl/boolfind/logger"
	"github.com/fmendezl/boolfind/services/index"
	"github.com/fmendezl/boolfind/ui"
	"github.com/fmendezl/boolfind/validation"
)

func setupRoutes(router *gin.Engine, logger logger.Logger, cfg *config.Config, indexStore indexdb.DB, indexService *index.Service, validator *validation.Validator) {
	router.GET("/health", health())

	// Serve static UI files
	router.StaticFS("/ui", http.FS(ui.Files))
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/ui/static/index.html")
	})

	handlers.SetupSearch(router, logger, indexStore, validator, cfg.GetDefaultTop())
	handlers.SetupIndex(router, logger, indexService, validator, cfg.GetCorpusPath())
}

func health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	}
}

func newRouter() *gin.Engine {
	router := gin.Default()
	router.UseRawPath = true
	router.Use(_CORSMiddleware())
	router.Use(gin.Recovery())
	router.Use(requestIDMiddleware())

	return router
}
