package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/hakkadots/braille-client/internal/config"
	"github.com/hakkadots/braille-client/internal/logger"
	"github.com/hakkadots/braille-client/internal/utils"
	"github.com/hakkadots/braille-client/models"
)

// RequestIDHeader carries the client-generated request id.
const RequestIDHeader = "X-Request-ID"

type httpConversionAdapter struct {
	client      *utils.HTTPClient
	convertPath string

	logger *logger.Logger
}

// NewHTTPConversionAdapter constructs an HTTP/JSON implementation of
// [ConversionAdapter]. It normalises and validates the base URL from
// adapterCfg.HTTPAddress and configures the underlying HTTP client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPConversionAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ConversionAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	convertPath := adapterCfg.ConvertPath
	if convertPath == "" {
		convertPath = config.DefaultConvertPath
	}

	client := utils.NewJSONHTTPClient(baseURL, adapterCfg.RequestTimeout)

	return &httpConversionAdapter{client: client, convertPath: convertPath, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Convert implements [ConversionAdapter]. It POSTs req to the configured
// conversion path and decodes {"braille": "..."} from the response.
func (h *httpConversionAdapter) Convert(ctx context.Context, req models.ConversionRequest) (models.ConversionResponse, error) {
	r := h.client.R().
		SetContext(ctx).
		SetBody(req)
	if requestID, ok := utils.GetRequestIDFromContext(ctx); ok {
		r.SetHeader(RequestIDHeader, requestID)
	}

	resp, err := r.Post(h.convertPath)
	if err != nil {
		return models.ConversionResponse{}, fmt.Errorf("%w: convert request: %w", ErrTransport, err)
	}

	h.logger.Debug().
		Int("status", resp.StatusCode()).
		Dur("elapsed", resp.Time()).
		Msg("conversion service answered")

	if err = mapHTTPError(resp); err != nil {
		return models.ConversionResponse{}, err
	}

	return decodeConversionResponse(resp.Body())
}

// decodeConversionResponse requires a JSON object whose "braille" member is a
// string. An empty string is a valid transcription.
func decodeConversionResponse(body []byte) (models.ConversionResponse, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(body, &raw); err != nil {
		return models.ConversionResponse{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	field, ok := raw["braille"]
	if !ok || string(field) == "null" {
		return models.ConversionResponse{}, fmt.Errorf("%w: missing braille field", ErrMalformedResponse)
	}

	var braille string
	if err := json.Unmarshal(field, &braille); err != nil {
		return models.ConversionResponse{}, fmt.Errorf("%w: braille is not a string: %w", ErrMalformedResponse, err)
	}

	return models.ConversionResponse{Braille: braille}, nil
}
