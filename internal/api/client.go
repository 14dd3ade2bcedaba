package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/ScribblerCoder/whale-admin/internal/model"
)

// API routing constants
const (
	AdminPrefix = "/api/v1/plugins/ctfd-whale/admin"

	PathImagesList    = "/images/list"
	PathImagesDetail  = "/images"
	PathImagesRefresh = "/images/refresh"
	PathContainer     = "/container"
)

// Client-side behavior constants
const (
	imageNamesCacheKey = "images/list"
	cacheTTL           = 30 * time.Second
	cacheSweepInterval = time.Minute

	// Paces user-triggered calls so rapid double clicks do not hammer the API
	requestInterval = 200 * time.Millisecond
	requestBurst    = 2

	maxResponseBytes = 4 << 20

	// DefaultTimeout is the fallback request timeout for the stock transport
	DefaultTimeout = 15 * time.Second
)

// envelope is the JSON wrapper every whale admin endpoint responds with
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client talks to one CTFd instance's whale admin namespace
type Client struct {
	baseURL string
	token   string
	http    Doer
	limiter *rate.Limiter
	cache   *gocache.Cache
	flight  singleflight.Group
}

// NewClient creates a client with a stock HTTP transport and the given timeout
func NewClient(baseURL, token string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return NewClientWithDoer(baseURL, token, &http.Client{Timeout: timeout})
}

// NewClientWithDoer creates a client on top of an injected transport. Used by
// host applications that wrap their own HTTP client, and by tests.
func NewClientWithDoer(baseURL, token string, doer Doer) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    doer,
		limiter: rate.NewLimiter(rate.Every(requestInterval), requestBurst),
		cache:   gocache.New(cacheTTL, cacheSweepInterval),
	}
}

// ListImageNames returns the plain image names for the dropdown, in the order
// the server sent them. Results are cached briefly; concurrent calls for the
// same list are coalesced into a single request.
func (c *Client) ListImageNames(ctx context.Context) ([]string, error) {
	if cached, ok := c.cache.Get(imageNamesCacheKey); ok {
		return cached.([]string), nil
	}

	v, err, _ := c.flight.Do(imageNamesCacheKey, func() (interface{}, error) {
		var data struct {
			Images []string `json:"images"`
			Prefix string   `json:"prefix"`
		}
		if _, err := c.do(ctx, http.MethodGet, PathImagesList, nil, &data); err != nil {
			return nil, err
		}
		c.cache.Set(imageNamesCacheKey, data.Images, gocache.DefaultExpiration)
		return data.Images, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]string), nil
}

// DescribeImages returns the full image records with size/created metadata
func (c *Client) DescribeImages(ctx context.Context) ([]model.Image, error) {
	var data struct {
		Images []model.Image `json:"images"`
		Prefix string        `json:"prefix"`
		Total  int           `json:"total"`
	}
	if _, err := c.do(ctx, http.MethodGet, PathImagesDetail, nil, &data); err != nil {
		return nil, err
	}
	return data.Images, nil
}

// RefreshImages asks the server to rebuild its image cache. The local list
// cache is invalidated so the next ListImageNames hits the server again.
func (c *Client) RefreshImages(ctx context.Context) (string, error) {
	msg, err := c.do(ctx, http.MethodPost, PathImagesRefresh, nil, nil)
	if err != nil {
		return msg, err
	}
	c.cache.Delete(imageNamesCacheKey)
	return msg, nil
}

// ListContainers returns one page of alive containers
func (c *Client) ListContainers(ctx context.Context, page, perPage int) (*model.ContainerPage, error) {
	query := url.Values{}
	query.Set("page", strconv.Itoa(page))
	query.Set("per_page", strconv.Itoa(perPage))

	var result model.ContainerPage
	if _, err := c.do(ctx, http.MethodGet, PathContainer, query, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// RenewContainer extends the lifetime of the given user's container
func (c *Client) RenewContainer(ctx context.Context, userID int) (string, error) {
	query := url.Values{}
	query.Set("user_id", strconv.Itoa(userID))
	return c.do(ctx, http.MethodPatch, PathContainer, query, nil)
}

// RemoveContainer destroys the given user's container
func (c *Client) RemoveContainer(ctx context.Context, userID int) (string, error) {
	query := url.Values{}
	query.Set("user_id", strconv.Itoa(userID))
	return c.do(ctx, http.MethodDelete, PathContainer, query, nil)
}

// do performs one request against the admin namespace and unwraps the response
// envelope. It returns the envelope message; a success=false envelope becomes a
// *ServerError, everything else a wrapped transport/decode error.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, out interface{}) (string, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return "", err
	}

	endpoint := c.baseURL + AdminPrefix + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-Id", uuid.NewString())
	if c.token != "" {
		req.Header.Set("Authorization", "Token "+c.token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		// The plugin wraps even its 500s in the envelope; anything else is
		// not the API we expect.
		if resp.StatusCode >= http.StatusBadRequest {
			return "", fmt.Errorf("server returned %s", resp.Status)
		}
		return "", fmt.Errorf("decode response: %w", err)
	}

	if !env.Success {
		return env.Message, &ServerError{Message: env.Message}
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return env.Message, fmt.Errorf("decode payload: %w", err)
		}
	}
	return env.Message, nil
}
