package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"go-auth-api/internal/core/cache"
)

// ErrUpstream marks failures of the third-party posts API; handlers map it to
// 502 instead of a generic server error.
var ErrUpstream = errors.New("upstream request failed")

const postsCacheKey = "external:posts"

// ExternalService forwards requests to the configured upstream posts API and
// hands the raw JSON back. GET responses are cached in redis when a cache is
// wired; with a nil cache every call goes straight upstream.
type ExternalService struct {
	client   *http.Client
	baseURL  string
	cache    *cache.Cache
	cacheTTL time.Duration
}

func NewExternalService(baseURL string, timeout time.Duration, c *cache.Cache, cacheTTL time.Duration) *ExternalService {
	return &ExternalService{
		client:   &http.Client{Timeout: timeout},
		baseURL:  baseURL,
		cache:    c,
		cacheTTL: cacheTTL,
	}
}

func (s *ExternalService) FetchPosts(ctx context.Context) ([]byte, error) {
	if s.cache == nil {
		return s.fetch(ctx)
	}
	return s.cache.GetOrLoad(ctx, postsCacheKey, s.cacheTTL, s.fetch)
}

func (s *ExternalService) fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return s.do(req)
}

func (s *ExternalService) CreatePost(ctx context.Context, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	req.Header.Set("Content-Type", "application/json")
	return s.do(req)
}

func (s *ExternalService) do(req *http.Request) ([]byte, error) {
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: status %d", ErrUpstream, resp.StatusCode)
	}
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	return b, nil
}
