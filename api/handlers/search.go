package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fmendezl/boolfind/db/indexdb"
	"github.com/fmendezl/boolfind/logger"
	"github.com/fmendezl/boolfind/services/index"
	"github.com/fmendezl/boolfind/services/search"
	"github.com/fmendezl/boolfind/validation"
)

type SearchRequest struct {
	Query string `form:"q" json:"q" validate:"required,valid_query,min=1,max=200"`
	Top   int    `form:"top" json:"top" validate:"min=0,max=100"`
}

func (r *SearchRequest) setDefaults(defaultTop int) {
	if r.Top == 0 {
		r.Top = defaultTop
	}
}

func SetupSearch(router *gin.Engine, logger logger.Logger, indexStore indexdb.DB, validator *validation.Validator, defaultTop int) {
	service := search.New(logger, indexStore)
	router.GET("/search", handleSearch(service, indexStore, logger, validator, defaultTop))
}

func handleSearch(service *search.Service, indexStore indexdb.DB, logger logger.Logger, validator *validation.Validator, defaultTop int) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := SearchRequest{}
		if err := c.ShouldBindQuery(&request); err != nil {
			logger.Warn("could not extract expected params from search request", "err", err.Error())
			c.Abort()
			writeSearchError(c, http.StatusBadRequest, "failed to extract search parameters")
			return
		}
		request.setDefaults(defaultTop)

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate search request", "err", err.Error())
			c.Abort()
			writeSearchError(c, http.StatusBadRequest, err.Error())
			return
		}

		if !indexStore.Ready() {
			c.Abort()
			writeSearchError(c, http.StatusServiceUnavailable, index.ErrIndexNotReady.Error())
			return
		}

		result, err := service.Search(request.Query, request.Top)
		if err != nil {
			logger.Warn("search failed", "query", request.Query, "err", err.Error())
			c.Abort()
			writeSearchError(c, http.StatusBadRequest, err.Error())
			return
		}

		c.JSON(http.StatusOK, result)
	}
}
