package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fmendezl/boolfind/logger"
	"github.com/fmendezl/boolfind/services/index"
	"github.com/fmendezl/boolfind/validation"
)

type IndexRequest struct {
	CorpusPath string `json:"corpus_path" validate:"valid_corpus_path"`
}

type IndexResponse struct {
	ID string `json:"request_id"`
}

type IndexStatusResponse struct {
	Progress int `json:"progress"`
}

type IndexRequestsResponse struct {
	RequestIDs []string `json:"request_ids"`
}

func SetupIndex(router *gin.Engine, logger logger.Logger, service *index.Service, validator *validation.Validator, defaultCorpusPath string) {
	router.POST("/index", handleBuildIndex(service, logger, validator, defaultCorpusPath))
	router.GET("/index/status/:id", handleIndexStatus(service, logger))
	router.GET("/index/requests", handleIndexRequests(service, logger))
	router.GET("/index/export", handleIndexExport(service, logger))
}

func handleBuildIndex(service *index.Service, logger logger.Logger, validator *validation.Validator, defaultCorpusPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		request := IndexRequest{}
		if err := c.ShouldBindJSON(&request); err != nil {
			logger.Warn("could not extract expected params from index request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusUnprocessableEntity, []string{"failed to extract request body parameters"})
			return
		}

		if err := validator.Validate(request); err != nil {
			logger.Warn("could not validate index request", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusNotAcceptable, []string{err.Error()})
			return
		}

		corpusPath := request.CorpusPath
		if corpusPath == "" {
			corpusPath = defaultCorpusPath
		}

		requestID := uuid.New().String()
		if err := service.Build(corpusPath, requestID); err != nil {
			if errors.Is(err, index.ErrBuildInProgress) {
				c.Abort()
				writeResponse(c, nil, http.StatusConflict, []string{err.Error()})
				return
			}
			logger.Error("could not start index build", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusInternalServerError, []string{err.Error()})
			return
		}

		writeResponse(c, IndexResponse{ID: requestID}, http.StatusAccepted, nil)
	}
}

func handleIndexStatus(service *index.Service, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.Param("id")

		status, err := service.GetStatus(requestID)
		if err != nil {
			logger.Warn("could not get index build status", "request_id", requestID, "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusNotFound, []string{err.Error()})
			return
		}

		writeResponse(c, IndexStatusResponse{Progress: status}, http.StatusOK, nil)
	}
}

func handleIndexRequests(service *index.Service, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestIDs, err := service.ListRequests()
		if err != nil {
			logger.Error("could not list index build requests", "err", err.Error())
			c.Abort()
			writeResponse(c, nil, http.StatusInternalServerError, []string{err.Error()})
			return
		}

		writeResponse(c, IndexRequestsResponse{RequestIDs: requestIDs}, http.StatusOK, nil)
	}
}

func handleIndexExport(service *index.Service, logger logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		pretty := c.Query("pretty") == "true"
		compress := c.Query("gzip") == "true"

		// Readiness is checked before the download headers go out, so an
		// error body is never served under the attachment content type.
		if !service.Ready() {
			c.Abort()
			writeSearchError(c, http.StatusServiceUnavailable, index.ErrIndexNotReady.Error())
			return
		}

		if compress {
			c.Header("Content-Type", "application/gzip")
			c.Header("Content-Disposition", `attachment; filename="postings.json.gz"`)
		} else {
			c.Header("Content-Type", "application/json")
		}

		if err := service.ExportJSON(c.Writer, pretty, compress); err != nil {
			logger.Error("could not export index", "err", err.Error())
			c.Abort()
			writeSearchError(c, http.StatusInternalServerError, err.Error())
			return
		}
	}
}
