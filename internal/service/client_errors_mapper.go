// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/hakkadots/braille-client/internal/adapter"
	"github.com/hakkadots/braille-client/internal/app"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	return fmt.Errorf("%w: %w", ErrConversionService, err)
}

// alertKey picks the catalog key for a service error and its arguments.
func alertKey(err error) (string, []any) {
	var modeErr *inputModeError

	switch {
	case errors.As(err, &modeErr):
		return app.MsgUnknownInputMode, []any{modeErr.mode}
	case errors.Is(err, ErrValidation):
		return app.MsgEmptyInput, nil
	case errors.Is(err, ErrConversionService) && errors.Is(err, adapter.ErrTransport):
		return app.MsgServiceUnreachable, nil
	case errors.Is(err, ErrConversionService):
		return app.MsgConversionFailed, nil
	case errors.Is(err, ErrNothingToCopy):
		return app.MsgNothingToCopy, nil
	case errors.Is(err, ErrClipboard):
		return app.MsgCopyFailed, nil
	}

	return "", nil
}
