package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/fmendezl/boolfind/logger"
)

// Doer issues HTTP requests. Satisfied by *http.Client; tests substitute it.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Result struct {
	DocID    int    `json:"docid"`
	Category string `json:"categoria"`
	Snippet  string `json:"snippet"`
}

type Response struct {
	Total   int      `json:"total"`
	Results []Result `json:"results"`
}

type Client struct {
	baseURL    string
	httpClient Doer
	logger     logger.Logger
}

func New(baseURL string, httpClient Doer, logger logger.Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     logger,
	}
}

// Search issues GET /search?q=<query>&top=<top> and decodes the result.
// Server-reported failures come back as *ServerError, everything else
// (network, undecodable body) as *TransportError.
func (c *Client) Search(ctx context.Context, query string, top int) (*Response, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("top", strconv.Itoa(top))

	requestURL := fmt.Sprintf("%s/search?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("search request failed", "url", requestURL, "err", err.Error())
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var serverErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(resp.Body).Decode(&serverErr); err != nil || serverErr.Error == "" {
			return nil, &ServerError{StatusCode: resp.StatusCode, Message: genericErrorMessage}
		}
		return nil, &ServerError{StatusCode: resp.StatusCode, Message: serverErr.Error}
	}

	var response Response
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		c.logger.Warn("could not decode search response", "err", err.Error())
		return nil, &TransportError{Err: err}
	}

	return &response, nil
}
