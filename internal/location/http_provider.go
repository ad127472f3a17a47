// SPDX-License-Identifier: Apache-2.0

package location

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/d-code000/YetAnotherNote/internal/config"
	"github.com/d-code000/YetAnotherNote/internal/logger"
	"github.com/d-code000/YetAnotherNote/models"
)

const defaultRequestTimeout = 5 * time.Second

// positionResponse is the JSON payload returned by the positioning endpoint.
type positionResponse struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type httpProvider struct {
	client   *resty.Client
	endpoint string

	logger *logger.Logger
}

// NewHTTPProvider constructs a [Provider] that queries cfg.Endpoint over
// HTTP. An empty endpoint is a valid configuration: every lookup then fails
// with [ErrPermissionDenied], mirroring a device with location access
// switched off.
func NewHTTPProvider(cfg config.ClientLocation, log *logger.Logger) (Provider, error) {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	endpoint := strings.TrimSpace(cfg.Endpoint)
	if endpoint != "" {
		normalized, err := normalizeEndpoint(endpoint)
		if err != nil {
			return nil, fmt.Errorf("invalid location endpoint: %w", err)
		}
		endpoint = normalized
	}

	cli := resty.New().
		SetTimeout(timeout)

	return &httpProvider{client: cli, endpoint: endpoint, logger: log}, nil
}

func normalizeEndpoint(raw string) (string, error) {
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("endpoint must include host and scheme")
	}

	return u.String(), nil
}

// CurrentCoordinate implements [Provider]. It GETs the configured endpoint
// and decodes a {"latitude": ..., "longitude": ...} body.
func (p *httpProvider) CurrentCoordinate(ctx context.Context) (models.Coordinate, error) {
	if p.endpoint == "" {
		p.logger.Debug().Str("func", "CurrentCoordinate").Msg("no location endpoint configured")
		return models.Coordinate{}, ErrPermissionDenied
	}

	resp, err := p.client.R().
		SetContext(ctx).
		Get(p.endpoint)
	if err != nil {
		p.logger.Warn().Err(err).Str("func", "CurrentCoordinate").Msg("location request failed")
		return models.Coordinate{}, fmt.Errorf("%w: %w", ErrNoFix, err)
	}
	if err = mapLocationError(resp); err != nil {
		p.logger.Warn().Err(err).Str("func", "CurrentCoordinate").Msg("location request rejected")
		return models.Coordinate{}, err
	}

	var position positionResponse
	if err = json.Unmarshal(resp.Body(), &position); err != nil {
		p.logger.Warn().Err(err).Str("func", "CurrentCoordinate").Msg("malformed location response")
		return models.Coordinate{}, fmt.Errorf("%w: %w", ErrNoFix, err)
	}

	return models.Coordinate{Latitude: position.Latitude, Longitude: position.Longitude}, nil
}

func mapLocationError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrPermissionDenied
	default:
		return fmt.Errorf("%w: http %d", ErrNoFix, resp.StatusCode())
	}
}
