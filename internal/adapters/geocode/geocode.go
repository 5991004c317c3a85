// Package geocode resolves place names the gazetteer does not know.
// It is an external collaborator: the core parser never imports it, and a
// failed lookup is reported as "not found" rather than an error so callers
// treat a dead geocoder and an unknown place the same way
package geocode

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"time"

	"tripparse/internal/platform/logger"
)

const (
	defaultTimeout = 2 * time.Second
	defaultUA      = "tripparse-geocode"
	maxBody        = 1 << 20
)

// Place is one resolved location
type Place struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// Resolver looks a free-text place name up. Implementations return
// (nil, nil) when the name cannot be resolved
type Resolver interface {
	Resolve(ctx context.Context, name string) (*Place, error)
}

// Options configures the Client
type Options struct {
	BaseURL   string // required; the service's /search endpoint
	UserAgent string
	Timeout   time.Duration
}

// Client is a minimal HTTP Resolver. Any transport, decode or upstream
// error resolves to (nil, nil) after a debug log; the parse pipeline must
// not fail because a best-effort collaborator did
type Client struct {
	http *http.Client
	opts Options
	log  logger.Logger
}

// NewClient creates a Client with sane defaults
func NewClient(o Options) *Client {
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Client{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("geocode"),
	}
}

type wirePlace struct {
	City        string `json:"city"`
	Name        string `json:"name"`
	CountryCode string `json:"country_code"`
}

// Resolve queries the upstream geocoder for name
func (c *Client) Resolve(ctx context.Context, name string) (*Place, error) {
	if c.opts.BaseURL == "" || name == "" {
		return nil, nil
	}

	u := c.opts.BaseURL + "?q=" + url.QueryEscape(name) + "&limit=1"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, nil
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.opts.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("name", name).Msg("geocode request failed")
		return nil, nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.Debug().Int("status", resp.StatusCode).Str("name", name).Msg("geocode non-200")
		return nil, nil
	}

	var rows []wirePlace
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBody)).Decode(&rows); err != nil || len(rows) == 0 {
		return nil, nil
	}

	city := rows[0].City
	if city == "" {
		city = rows[0].Name
	}
	if city == "" {
		return nil, nil
	}
	return &Place{City: city, Country: rows[0].CountryCode}, nil
}
