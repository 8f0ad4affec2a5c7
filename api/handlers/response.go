package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type response struct {
	Data   any      `json:"data"`
	Errors []string `json:"errors"`
}

func writeResponse(c *gin.Context, data interface{}, statusCode int, errors []string) {

	if statusCode == http.StatusNoContent {
		c.JSON(statusCode, nil)
		return

	}

	response := response{
		Data:   data,
		Errors: errors,
	}

	c.JSON(statusCode, response)
}

// searchError is the error shape of the search endpoint, kept flat because
// browser clients read the "error" field directly.
type searchError struct {
	Error string `json:"error"`
}

func writeSearchError(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, searchError{Error: message})
}
