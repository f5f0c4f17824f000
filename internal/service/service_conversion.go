package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/unicode/norm"

	"github.com/hakkadots/braille-client/internal/adapter"
	"github.com/hakkadots/braille-client/internal/app"
	"github.com/hakkadots/braille-client/internal/clipboard"
	"github.com/hakkadots/braille-client/internal/logger"
	"github.com/hakkadots/braille-client/internal/utils"
	"github.com/hakkadots/braille-client/models"
)

type conversionService struct {
	conversionAdapter adapter.ConversionAdapter
	clipboard         clipboard.Clipboard
	state             UIState
	history           HistoryService
	ids               RequestIDGenerator
	printer           *app.Printer

	defaultMode models.InputMode
	autoCopy    bool

	// seq is the number of the latest submission or reset.
	seq atomic.Uint64
	// applyMu makes "is this still the latest?" and the state write one step.
	applyMu sync.Mutex

	logger *logger.Logger
}

// ConversionOptions carries the behaviour switches of a conversion session.
type ConversionOptions struct {
	DefaultInputMode models.InputMode
	AutoCopy         bool
}

// NewConversionService wires a [ConversionService] for one session.
func NewConversionService(
	conversionAdapter adapter.ConversionAdapter,
	cb clipboard.Clipboard,
	state UIState,
	history HistoryService,
	ids RequestIDGenerator,
	printer *app.Printer,
	opts ConversionOptions,
	logger *logger.Logger,
) ConversionService {
	return &conversionService{
		conversionAdapter: conversionAdapter,
		clipboard:         cb,
		state:             state,
		history:           history,
		ids:               ids,
		printer:           printer,
		defaultMode:       opts.DefaultInputMode,
		autoCopy:          opts.AutoCopy,
		logger:            logger,
	}
}

func (s *conversionService) DefaultInputMode() models.InputMode {
	return s.defaultMode
}

func (s *conversionService) SubmitConversion(ctx context.Context, rawText string, inputMode models.InputMode) (models.SubmitOutcome, error) {
	sub, err := s.BeginSubmission(rawText, inputMode)
	if err != nil {
		return models.SubmitOutcome{}, err
	}
	return s.RunSubmission(ctx, sub)
}

func (s *conversionService) BeginSubmission(rawText string, inputMode models.InputMode) (models.Submission, error) {
	s.state.SetInputText(rawText)

	text := norm.NFC.String(strings.TrimSpace(rawText))
	if text == "" {
		return models.Submission{}, fmt.Errorf("%w: empty text", ErrValidation)
	}

	mode, err := s.resolveMode(inputMode)
	if err != nil {
		return models.Submission{}, err
	}

	// the number is taken under applyMu so it orders against ResetState
	s.applyMu.Lock()
	seq := s.seq.Add(1)
	s.applyMu.Unlock()

	return models.Submission{
		Seq:       seq,
		RequestID: s.ids.Generate(),
		Request:   models.ConversionRequest{Text: text, InputMode: mode},
	}, nil
}

func (s *conversionService) RunSubmission(ctx context.Context, sub models.Submission) (models.SubmitOutcome, error) {
	seq, requestID := sub.Seq, sub.RequestID
	text, mode := sub.Request.Text, sub.Request.InputMode
	outcome := models.SubmitOutcome{RequestID: requestID, Seq: seq}
	log := s.logger.WithRequest(requestID, seq)

	if !s.isLatest(seq) {
		log.Info().Msg("submission superseded before sending, discarding")
		outcome.Stale = true
		return outcome, nil
	}

	ctx = log.WithContext(utils.WithRequestID(ctx, requestID))

	log.Debug().
		Str("input_mode", mode.String()).
		Int("text_len", len(text)).
		Msg("submitting conversion")

	resp, err := s.conversionAdapter.Convert(ctx, sub.Request)
	if err != nil {
		if !s.isLatest(seq) {
			log.Info().Err(err).Msg("superseded conversion failed, discarding")
			outcome.Stale = true
			return outcome, nil
		}

		log.Err(err).Msg("conversion failed")
		return outcome, mapAdapterError(err)
	}

	s.applyMu.Lock()
	if seq != s.seq.Load() {
		s.applyMu.Unlock()
		log.Info().Msg("superseded conversion answered, discarding")
		outcome.Stale = true
		return outcome, nil
	}

	s.state.SetOutputBraille(resp.Braille)
	outcome.Braille = resp.Braille
	outcome.CopyStatus, outcome.Copied = s.autoCopyOutput(log, resp.Braille)
	s.state.SetCopyStatus(outcome.CopyStatus)
	s.applyMu.Unlock()

	if err = s.history.Record(ctx, models.HistoryEntry{
		RequestID: requestID,
		Text:      text,
		InputMode: mode,
		Braille:   resp.Braille,
		CreatedAt: time.Now(),
	}); err != nil {
		log.Warn().Err(err).Msg("failed to record conversion history")
	}

	log.Info().Bool("copied", outcome.Copied).Msg("conversion applied")
	return outcome, nil
}

// resolveMode applies the default to an empty mode and accepts aliases.
func (s *conversionService) resolveMode(inputMode models.InputMode) (models.InputMode, error) {
	if strings.TrimSpace(inputMode.String()) == "" {
		return s.defaultMode, nil
	}

	mode, err := models.ParseInputMode(inputMode.String())
	if err != nil {
		return "", &inputModeError{mode: inputMode.String(), err: err}
	}
	return mode, nil
}

// autoCopyOutput must run under applyMu.
func (s *conversionService) autoCopyOutput(log *logger.Logger, braille string) (string, bool) {
	if !s.autoCopy || braille == "" {
		return "", false
	}

	if err := s.clipboard.WriteText(braille); err != nil {
		log.Warn().Err(err).Str("backend", s.clipboard.Name()).Msg("automatic copy failed")
		return s.printer.Text(app.MsgAutoCopyFailed), false
	}

	return s.printer.Text(app.MsgAutoCopied), true
}

func (s *conversionService) isLatest(seq uint64) bool {
	return s.seq.Load() == seq
}

func (s *conversionService) CopyOutput(ctx context.Context) (string, error) {
	output := s.state.OutputBraille()
	if output == "" {
		return "", ErrNothingToCopy
	}

	if err := s.clipboard.WriteText(output); err != nil {
		logger.FromContext(ctx).Err(err).Str("backend", s.clipboard.Name()).Msg("manual copy failed")
		return "", fmt.Errorf("%w: %w", ErrClipboard, err)
	}

	return s.printer.Text(app.MsgCopied), nil
}

func (s *conversionService) ResetState() {
	s.applyMu.Lock()
	defer s.applyMu.Unlock()

	s.seq.Add(1)
	s.state.Reset()
}

func (s *conversionService) Alert(err error) string {
	if err == nil {
		return ""
	}

	key, args := alertKey(err)
	switch key {
	case "":
		return err.Error()
	case app.MsgServiceUnreachable:
		return s.printer.Text(app.MsgConversionFailed) + " (" + s.printer.Text(app.MsgServiceUnreachable) + ")"
	}

	return s.printer.Text(key, args...)
}
