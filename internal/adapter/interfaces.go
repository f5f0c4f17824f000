// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer for talking to the remote
// braille conversion service.
//
// The primary abstraction is [ConversionAdapter], which decouples the service
// layer from the underlying protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPConversionAdapter]) built on resty.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrInternalServerError] for 500, [ErrMalformedResponse] for
// an unusable body).
package adapter

import (
	"context"

	"github.com/hakkadots/braille-client/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/conversion_adapter_mock.go -package=mock

// ConversionAdapter sends one conversion request to the remote service.
// Implementations are responsible for serialisation, request id propagation,
// and mapping transport-level errors to the sentinel values defined in this
// package.
type ConversionAdapter interface {
	// Convert posts req and returns the decoded response. A request id stored
	// in ctx (see utils.WithRequestID) is forwarded to the service. Returns an
	// error if the request fails, the service answers with a non-2xx status,
	// or the body carries no braille string.
	Convert(ctx context.Context, req models.ConversionRequest) (models.ConversionResponse, error)
}
