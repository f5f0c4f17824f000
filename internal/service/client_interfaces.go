package service

import (
	"context"
	"time"

	"github.com/hakkadots/braille-client/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock

// ConversionService owns the conversion request/response cycle of one
// session and reconciles the UI state with its outcome.
type ConversionService interface {
	// SubmitConversion trims and normalises rawText, sends it to the remote
	// service with inputMode (or the configured default when empty) and, if
	// no newer submission or reset happened meanwhile, stores the braille as
	// the session output. Blank text and unknown modes fail with
	// [ErrValidation] without any network call; remote failures wrap
	// [ErrConversionService] and leave the output untouched. A superseded
	// submission returns an outcome with Stale set and a nil error.
	SubmitConversion(ctx context.Context, rawText string, inputMode models.InputMode) (models.SubmitOutcome, error)

	// BeginSubmission is the synchronous half of SubmitConversion: it stores
	// rawText as the input, validates it and issues the sequence number that
	// later decides whether the result may be applied. Callers that run the
	// network half on another goroutine call it in submission order.
	BeginSubmission(rawText string, inputMode models.InputMode) (models.Submission, error)

	// RunSubmission sends sub and applies the result when no later
	// submission or reset was issued. A superseded submission is not sent.
	RunSubmission(ctx context.Context, sub models.Submission) (models.SubmitOutcome, error)

	// CopyOutput puts the current braille output on the clipboard and returns
	// the notice to show. Empty output fails with [ErrNothingToCopy] and never
	// touches the clipboard; clipboard failures wrap [ErrClipboard].
	CopyOutput(ctx context.Context) (string, error)

	// ResetState clears input, output and copy status and discards every
	// response still in flight.
	ResetState()

	// Alert renders err as the localised text of a blocking alert.
	Alert(err error) string

	// DefaultInputMode is the mode used for submissions without one.
	DefaultInputMode() models.InputMode
}

// HistoryService is the local log of successful conversions.
type HistoryService interface {
	// Record appends a successful conversion.
	Record(ctx context.Context, entry models.HistoryEntry) error
	// List returns entries matching filter, newest first.
	List(ctx context.Context, filter models.HistoryFilter) ([]models.HistoryEntry, error)
	// Prune removes entries older than retention and returns how many went.
	Prune(ctx context.Context, retention time.Duration) (int64, error)
	// Clear removes every entry.
	Clear(ctx context.Context) (int64, error)
}

// UIState is the port through which the service reads and writes the visible
// state of a session. Implementations must be safe for concurrent use.
type UIState interface {
	InputText() string
	SetInputText(text string)
	OutputBraille() string
	SetOutputBraille(braille string)
	CopyStatus() string
	SetCopyStatus(message string)
	Reset()
}

// RequestIDGenerator issues ids for outgoing conversion requests.
type RequestIDGenerator interface {
	Generate() string
}
