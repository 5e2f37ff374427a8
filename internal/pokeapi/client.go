package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
)

const (
	DefaultBaseURL = "https://pokeapi.co/api/v2/"
)

var ErrNotFound = errors.New("resource not found")

// Cache stores decoded responses keyed by their full resource url, base url included.
type Cache interface {
	// set, with value being a structure
	Set(key string, value any) error
	// get, with return values being first an unmarshalled structure, then bool whether somethnig was found, and then error if something went wrong
	Get(key string, value any) (bool, error)
}

// StatusError is returned for any non 2xx answer from pokeapi.
type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("pokeapi %q answered with status %d", e.Endpoint, e.StatusCode)
}

func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

type Client struct {
	cache   Cache
	client  http.Client
	baseURL string
}

type Option func(*Client)

// WithBaseURL points the client at another pokeapi instance. A trailing slash is added when missing.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		if !strings.HasSuffix(baseURL, "/") {
			baseURL += "/"
		}
		c.baseURL = baseURL
	}
}

func NewClient(cache Cache, client http.Client, opts ...Option) *Client {
	c := &Client{
		cache:   cache,
		client:  client,
		baseURL: DefaultBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

// ResourceURL renders the canonical url of a resource, e.g. ResourceURL("version-group", "9").
func (c *Client) ResourceURL(endpoint, id string) string {
	return c.baseURL + endpoint + "/" + id + "/"
}

func resourceEndpoint(endpoint, id string) string {
	return endpoint + "/" + id + "/"
}

func do[T any](ctx context.Context, c *Client, endpoint string) (*T, error) {
	key := c.baseURL + endpoint
	value := new(T)
	found, err := c.cache.Get(key, value)
	if err != nil {
		return nil, err
	}
	if found {
		return value, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, key, nil)
	if err != nil {
		return nil, err
	}
	slog.Debug("fetching from pokeapi", slog.String("endpoint", endpoint))
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	v := new(T)
	err = json.Unmarshal(body, v)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", endpoint, err)
	}

	// a failed cache write does not fail the fetch
	if err := c.cache.Set(key, v); err != nil {
		slog.Warn("caching pokeapi response", slog.String("key", key), slog.Any("error", err))
	}
	return v, nil
}

// Pokemon fetches a pokemon by id or name.
func (c *Client) Pokemon(ctx context.Context, idOrName string) (*Pokemon, error) {
	return do[Pokemon](ctx, c, resourceEndpoint("pokemon", idOrName))
}

// Move fetches a move by id or name.
func (c *Client) Move(ctx context.Context, idOrName string) (*Move, error) {
	return do[Move](ctx, c, resourceEndpoint("move", idOrName))
}

// VersionGroup fetches a version group by id or name.
func (c *Client) VersionGroup(ctx context.Context, idOrName string) (*VersionGroup, error) {
	return do[VersionGroup](ctx, c, resourceEndpoint("version-group", idOrName))
}

// ResolveVersionGroup turns a version group reference into the url pokeapi uses
// for it inside pokemon move details. Refs that already are urls are returned
// untouched and without a lookup.
func (c *Client) ResolveVersionGroup(ctx context.Context, ref string) (string, *VersionGroup, error) {
	if strings.HasPrefix(ref, "http://") || strings.HasPrefix(ref, "https://") {
		return ref, nil, nil
	}
	vg, err := c.VersionGroup(ctx, ref)
	if err != nil {
		return "", nil, fmt.Errorf("resolving version group %q: %w", ref, err)
	}
	return c.ResourceURL("version-group", strconv.Itoa(vg.ID)), vg, nil
}
