package provider

//go:generate go run go.uber.org/mock/mockgen -source=./client.go -destination=../mocks/provider_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"boxes/config"
	"boxes/infras/otel"
	"boxes/shared/constant"
	"boxes/shared/failure"
)

const (
	workshopsResource = "places/workshops"
)

// Fetcher retrieves the current workshop list from the external provider.
type Fetcher interface {
	FetchWorkshops(ctx context.Context) ([]WorkshopRecord, error)
}

type client struct {
	baseURL  string
	username string
	password string
	http     *http.Client
	otel     otel.Otel
}

func NewClient(cfg *config.Config, ot otel.Otel) Fetcher {
	timeout := time.Duration(cfg.External.Workshop.TimeoutSeconds) * time.Second

	return &client{
		baseURL:  strings.TrimSuffix(cfg.External.Workshop.BaseURL, "/"),
		username: cfg.External.Workshop.Username,
		password: cfg.External.Workshop.Password,
		otel:     ot,
		http: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				DialContext: (&net.Dialer{
					Timeout:   10 * time.Second,
					KeepAlive: 30 * time.Second,
				}).DialContext,
				MaxIdleConns:        100,
				IdleConnTimeout:     90 * time.Second,
				TLSHandshakeTimeout: 10 * time.Second,
			},
		},
	}
}

// FetchWorkshops issues the read against the provider's workshops resource.
// Transport failures of any kind surface as one opaque lookup error; the
// underlying cause is only logged.
func (c *client) FetchWorkshops(ctx context.Context) ([]WorkshopRecord, error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".workshop.FetchWorkshops")
	defer scope.End()

	endpoint := c.baseURL + "/" + workshopsResource
	scope.SetAttribute(constant.OtelURLAttributeKey, endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("url", endpoint).Msg("failed to build workshop provider request")

		return nil, failure.ExternalLookupError
	}

	req.SetBasicAuth(c.username, c.password)
	req.Header.Set(constant.RequestHeaderAccept, constant.ContentTypeJSON)

	resp, err := c.http.Do(req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("url", endpoint).Msg("failed to reach workshop provider")

		return nil, failure.ExternalLookupError
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		log.Error().Int("status", resp.StatusCode).Str("url", endpoint).Msg("workshop provider returned non-success status")

		return nil, failure.ExternalLookupError
	}

	var records []WorkshopRecord

	if err = json.NewDecoder(resp.Body).Decode(&records); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("url", endpoint).Msg("failed to decode workshop provider response")

		return nil, failure.ExternalLookupError
	}

	return records, nil
}
