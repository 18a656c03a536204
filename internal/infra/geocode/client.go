// Package geocode implements the HTTP client for the external geocoding
// provider (autocomplete and reverse geocoding).
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	domainerrors "nosh/internal/domain/errors"
	"nosh/internal/domain/service"
	"nosh/internal/errors"
)

// requestTimeout bounds every provider call. On expiry the operation is
// abandoned and reported as a gateway timeout, never retried here; retry
// policy belongs to the caller.
const requestTimeout = 5 * time.Second

// Options configures the provider client.
type Options struct {
	BaseURL      string
	APIKey       string
	Radius       int  // autocomplete search radius in meters
	StrictBounds bool // restrict predictions to the radius
}

// Client talks to the geocoding provider over HTTP and implements
// service.GeocodingProvider.
type Client struct {
	opts       Options
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a provider client with the fixed request timeout.
func NewClient(opts Options, logger *slog.Logger) *Client {
	return &Client{
		opts: opts,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger,
	}
}

// autocompleteResponse is the provider's autocomplete payload.
type autocompleteResponse struct {
	Status      string `json:"status"`
	Predictions []struct {
		PlaceID     string `json:"place_id"`
		Description string `json:"description"`
		Geometry    struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"predictions"`
}

// errorResponse covers the provider's error body variants.
type errorResponse struct {
	ErrorMessage string `json:"error_message"`
	Message      string `json:"message"`
	Status       string `json:"status"`
}

// Autocomplete implements service.GeocodingProvider. The provider status
// is compared case-insensitively; "OK" and "ZERO_RESULTS" are both
// success, the latter yielding an empty slice.
func (c *Client) Autocomplete(ctx context.Context, input string) ([]service.Suggestion, error) {
	query := url.Values{}
	query.Set("input", input)
	query.Set("radius", strconv.Itoa(c.opts.Radius))
	query.Set("strictbounds", strconv.FormatBool(c.opts.StrictBounds))
	query.Set("api_key", c.opts.APIKey)

	body, err := c.get(ctx, "/autocomplete", query)
	if err != nil {
		return nil, err
	}

	var payload autocompleteResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, domainerrors.ErrGeocodingUpstream.WrapMessage("malformed autocomplete payload")
	}

	switch normalizeStatus(payload.Status) {
	case "OK":
	case "ZERO_RESULTS":
		return []service.Suggestion{}, nil
	default:
		c.logger.Warn("geocoding autocomplete returned non-success status",
			slog.String("status", payload.Status),
		)

		return nil, domainerrors.ErrGeocodingUpstream.WithDetails(
			"unexpected provider status: " + payload.Status)
	}

	suggestions := make([]service.Suggestion, 0, len(payload.Predictions))
	for _, p := range payload.Predictions {
		suggestions = append(suggestions, service.Suggestion{
			PlaceID:     p.PlaceID,
			Description: p.Description,
			Latitude:    p.Geometry.Location.Lat,
			Longitude:   p.Geometry.Location.Lng,
		})
	}

	return suggestions, nil
}

// ReverseGeocode implements service.GeocodingProvider. The provider's
// payload shape is not contractually fixed, so resolution runs through
// the ordered extraction pipeline in extract.go.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lng float64) (*service.ResolvedAddress, error) {
	query := url.Values{}
	query.Set("latlng", fmt.Sprintf("%v,%v", lat, lng))
	query.Set("api_key", c.opts.APIKey)

	body, err := c.get(ctx, "/reverse-geocode", query)
	if err != nil {
		return nil, err
	}

	var payload any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, domainerrors.ErrGeocodingUpstream.WrapMessage("malformed reverse-geocode payload")
	}

	resolved, ok := resolvePayload(payload, lat, lng)
	if !ok {
		return nil, errors.WithStack(domainerrors.ErrNoAddressForCoordinates)
	}

	return resolved, nil
}

// get issues a GET against the provider and maps transport failures to
// the domain error taxonomy.
func (c *Client) get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	reqURL := c.opts.BaseURL + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build provider request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			return nil, domainerrors.ErrGeocodingTimeout.WrapMessage("provider call timed out")
		}

		return nil, domainerrors.ErrGeocodingUpstream.WrapMessage("provider call failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerrors.ErrGeocodingUpstream.WrapMessage("failed to read provider response")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, c.upstreamError(resp.StatusCode, body)
	}

	return body, nil
}

// upstreamError passes the provider's message through when available.
func (c *Client) upstreamError(statusCode int, body []byte) error {
	var errBody errorResponse
	message := ""
	if err := json.Unmarshal(body, &errBody); err == nil {
		if errBody.ErrorMessage != "" {
			message = errBody.ErrorMessage
		} else if errBody.Message != "" {
			message = errBody.Message
		}
	}

	c.logger.Warn("geocoding provider returned error",
		slog.Int("status_code", statusCode),
		slog.String("message", message),
	)

	if message == "" {
		message = "provider returned status " + strconv.Itoa(statusCode)
	}

	return domainerrors.ErrGeocodingUpstream.WithDetails(message)
}

func normalizeStatus(status string) string {
	return strings.ToUpper(strings.TrimSpace(status))
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}
