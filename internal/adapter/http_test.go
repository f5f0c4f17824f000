// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/hakkadots/braille-client/internal/config"
	"github.com/hakkadots/braille-client/internal/logger"
	"github.com/hakkadots/braille-client/internal/utils"
	"github.com/hakkadots/braille-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeConversionService is a chi-routed stand-in for the remote service.
type fakeConversionService struct {
	calls    atomic.Int32
	lastBody atomic.Value // models.ConversionRequest
	lastID   atomic.Value // string
	respond  http.HandlerFunc
}

func newFakeConversionService(t *testing.T, respond http.HandlerFunc) (*fakeConversionService, *httptest.Server) {
	t.Helper()
	fake := &fakeConversionService{respond: respond}

	r := chi.NewRouter()
	r.Post("/convert", func(w http.ResponseWriter, r *http.Request) {
		fake.calls.Add(1)
		fake.lastID.Store(r.Header.Get(RequestIDHeader))

		var req models.ConversionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err == nil {
			fake.lastBody.Store(req)
		}
		fake.respond(w, r)
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return fake, srv
}

func writeBody(status int, body string) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

// newTestAdapter создаёт httpConversionAdapter, направленный на тестовый сервер
func newTestAdapter(t *testing.T, serverURL string) *httpConversionAdapter {
	t.Helper()
	adapterCfg := config.ClientAdapter{
		HTTPAddress:    serverURL,
		ConvertPath:    "/convert",
		RequestTimeout: 2 * time.Second,
	}

	a, err := NewHTTPConversionAdapter(adapterCfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpConversionAdapter)
}

// ── Convert ─────────────────────────────────────────────────────────────────

func TestConvert_Success(t *testing.T) {
	fake, srv := newFakeConversionService(t, writeBody(http.StatusOK, `{"braille":"⠎⠊⠁⠅"}`))

	a := newTestAdapter(t, srv.URL)
	ctx := utils.WithRequestID(context.Background(), "req-42")
	got, err := a.Convert(ctx, models.ConversionRequest{Text: "siang1", InputMode: models.InputModeSixian})

	require.NoError(t, err)
	assert.Equal(t, "⠎⠊⠁⠅", got.Braille)
	assert.Equal(t, int32(1), fake.calls.Load())
	assert.Equal(t, models.ConversionRequest{Text: "siang1", InputMode: models.InputModeSixian}, fake.lastBody.Load())
	assert.Equal(t, "req-42", fake.lastID.Load())
}

func TestConvert_SendsJSONHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/convert", r.URL.Path)
		assert.Contains(t, r.Header.Get("Content-Type"), "application/json")
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		assert.Empty(t, r.Header.Get(RequestIDHeader))

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, "siang1", raw["text"])
		_, hasMode := raw["inputMode"]
		assert.False(t, hasMode, "empty input mode must be omitted")

		_, _ = w.Write([]byte(`{"braille":"⠎"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Convert(context.Background(), models.ConversionRequest{Text: "siang1"})
	require.NoError(t, err)
}

func TestConvert_EmptyBrailleIsValid(t *testing.T) {
	_, srv := newFakeConversionService(t, writeBody(http.StatusOK, `{"braille":""}`))

	a := newTestAdapter(t, srv.URL)
	got, err := a.Convert(context.Background(), models.ConversionRequest{Text: "x"})

	require.NoError(t, err)
	assert.Empty(t, got.Braille)
}

func TestConvert_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr error
	}{
		{name: "bad request", status: http.StatusBadRequest, wantErr: ErrBadRequest},
		{name: "not found", status: http.StatusNotFound, wantErr: ErrNotFound},
		{name: "internal error", status: http.StatusInternalServerError, wantErr: ErrInternalServerError},
		{name: "bad gateway", status: http.StatusBadGateway, wantErr: ErrBadGateway},
		{name: "unavailable", status: http.StatusServiceUnavailable, wantErr: ErrServiceUnavailable},
		{name: "teapot", status: http.StatusTeapot, wantErr: ErrUnexpectedStatus},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, srv := newFakeConversionService(t, writeBody(tt.status, `{"error":"nope"}`))

			a := newTestAdapter(t, srv.URL)
			got, err := a.Convert(context.Background(), models.ConversionRequest{Text: "siang1"})

			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, got.Braille)
		})
	}
}

func TestConvert_MalformedBodies(t *testing.T) {
	bodies := map[string]string{
		"not json":       `<html>oops</html>`,
		"missing field":  `{"result":"⠎"}`,
		"null braille":   `{"braille":null}`,
		"number braille": `{"braille":7}`,
		"array body":     `["⠎"]`,
	}

	for name, body := range bodies {
		t.Run(name, func(t *testing.T) {
			_, srv := newFakeConversionService(t, writeBody(http.StatusOK, body))

			a := newTestAdapter(t, srv.URL)
			_, err := a.Convert(context.Background(), models.ConversionRequest{Text: "siang1"})

			assert.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestConvert_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	a := newTestAdapter(t, url)
	_, err := a.Convert(context.Background(), models.ConversionRequest{Text: "siang1"})

	assert.ErrorIs(t, err, ErrTransport)
}

func TestConvert_ContextCanceled(t *testing.T) {
	release := make(chan struct{})
	_, srv := newFakeConversionService(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	})
	defer close(release)

	a := newTestAdapter(t, srv.URL)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := a.Convert(ctx, models.ConversionRequest{Text: "siang1"})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConvert_CustomPath(t *testing.T) {
	r := chi.NewRouter()
	r.Post("/api/v2/convert", writeBody(http.StatusOK, `{"braille":"⠁"}`))
	srv := httptest.NewServer(r)
	defer srv.Close()

	a, err := NewHTTPConversionAdapter(config.ClientAdapter{
		HTTPAddress:    srv.URL + "/",
		ConvertPath:    "/api/v2/convert",
		RequestTimeout: time.Second,
	}, logger.Nop())
	require.NoError(t, err)

	got, err := a.Convert(context.Background(), models.ConversionRequest{Text: "a"})
	require.NoError(t, err)
	assert.Equal(t, "⠁", got.Braille)
}

// ── constructor ─────────────────────────────────────────────────────────────

func TestNewHTTPConversionAdapter_EmptyAddress(t *testing.T) {
	_, err := NewHTTPConversionAdapter(config.ClientAdapter{HTTPAddress: "  "}, logger.Nop())
	assert.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:5000", want: "http://localhost:5000"},
		{in: "https://braille.example.org/", want: "https://braille.example.org"},
		{in: " http://127.0.0.1:5000 ", want: "http://127.0.0.1:5000"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
