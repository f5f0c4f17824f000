package service

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/hakkadots/braille-client/internal/adapter"
	"github.com/hakkadots/braille-client/internal/app"
	"github.com/hakkadots/braille-client/internal/clipboard"
	"github.com/hakkadots/braille-client/internal/logger"
	"github.com/hakkadots/braille-client/internal/mock"
	"github.com/hakkadots/braille-client/internal/session"
	"github.com/hakkadots/braille-client/internal/utils"
	"github.com/hakkadots/braille-client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type conversionTestDeps struct {
	adapter   *mock.MockConversionAdapter
	clipboard *mock.MockClipboard
	history   *mock.MockHistoryService
	state     *session.Session
	printer   *app.Printer
}

// newTestConversionSvc builds a conversionService over mocks and a real session.
func newTestConversionSvc(t *testing.T, ctrl *gomock.Controller, autoCopy bool) (*conversionService, conversionTestDeps) {
	t.Helper()
	deps := conversionTestDeps{
		adapter:   mock.NewMockConversionAdapter(ctrl),
		clipboard: mock.NewMockClipboard(ctrl),
		history:   mock.NewMockHistoryService(ctrl),
		state:     session.New(models.DefaultDisplayPreferences()),
		printer:   app.NewPrinter(app.LocaleEnglish),
	}

	ids := mock.NewMockRequestIDGenerator(ctrl)
	ids.EXPECT().Generate().Return("req-1").AnyTimes()
	deps.clipboard.EXPECT().Name().Return("fake").AnyTimes()

	svc := NewConversionService(
		deps.adapter,
		deps.clipboard,
		deps.state,
		deps.history,
		ids,
		deps.printer,
		ConversionOptions{DefaultInputMode: models.InputModeSixian, AutoCopy: autoCopy},
		logger.Nop(),
	).(*conversionService)

	return svc, deps
}

// ── SubmitConversion ─────────────────────────────────────────────────────────

func TestConversionService_Submit_TrimsAndApplies(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestConversionSvc(t, ctrl, true)
	ctx := context.Background()

	gomock.InOrder(
		deps.adapter.EXPECT().
			Convert(gomock.Any(), models.ConversionRequest{Text: "siang1", InputMode: models.InputModeSixian}).
			DoAndReturn(func(ctx context.Context, _ models.ConversionRequest) (models.ConversionResponse, error) {
				requestID, ok := utils.GetRequestIDFromContext(ctx)
				assert.True(t, ok)
				assert.Equal(t, "req-1", requestID)
				return models.ConversionResponse{Braille: "⠎⠊⠁⠅"}, nil
			}),
		deps.clipboard.EXPECT().WriteText("⠎⠊⠁⠅").Return(nil),
		deps.history.EXPECT().Record(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, entry models.HistoryEntry) error {
				assert.Equal(t, "req-1", entry.RequestID)
				assert.Equal(t, "siang1", entry.Text)
				assert.Equal(t, models.InputModeSixian, entry.InputMode)
				assert.Equal(t, "⠎⠊⠁⠅", entry.Braille)
				assert.False(t, entry.CreatedAt.IsZero())
				return nil
			},
		),
	)

	outcome, err := svc.SubmitConversion(ctx, "  siang1  ", "")

	require.NoError(t, err)
	assert.Equal(t, "⠎⠊⠁⠅", outcome.Braille)
	assert.True(t, outcome.Copied)
	assert.False(t, outcome.Stale)
	assert.Equal(t, uint64(1), outcome.Seq)
	assert.Equal(t, "req-1", outcome.RequestID)

	state := deps.state.Snapshot()
	assert.Equal(t, "  siang1  ", state.InputText)
	assert.Equal(t, "⠎⠊⠁⠅", state.OutputBraille)
	assert.Equal(t, deps.printer.Text(app.MsgAutoCopied), state.CopyStatusMessage)
}

func TestConversionService_Submit_EmptyInputMakesNoCall(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		t.Run("blank", func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, deps := newTestConversionSvc(t, ctrl, true)
			deps.state.SetOutputBraille("⠁")

			_, err := svc.SubmitConversion(context.Background(), raw, models.InputModeHailu)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrValidation)
			assert.Equal(t, "⠁", deps.state.OutputBraille())
			assert.Equal(t, deps.printer.Text(app.MsgEmptyInput), svc.Alert(err))
		})
	}
}

func TestConversionService_Submit_UnknownInputMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestConversionSvc(t, ctrl, true)

	_, err := svc.SubmitConversion(context.Background(), "siang1", "klingon")

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.ErrorIs(t, err, models.ErrUnknownInputMode)
	assert.Equal(t, "Unsupported input mode: klingon", svc.Alert(err))
}

func TestConversionService_Submit_AliasMode(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestConversionSvc(t, ctrl, false)

	deps.adapter.EXPECT().
		Convert(gomock.Any(), models.ConversionRequest{Text: "ngai", InputMode: models.InputModeHailu}).
		Return(models.ConversionResponse{Braille: "⠝⠁⠊"}, nil)
	deps.history.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := svc.SubmitConversion(context.Background(), "ngai", "Hailu")

	require.NoError(t, err)
	assert.Equal(t, "⠝⠁⠊", outcome.Braille)
}

func TestConversionService_Submit_NormalizesToNFC(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestConversionSvc(t, ctrl, false)

	deps.adapter.EXPECT().
		Convert(gomock.Any(), models.ConversionRequest{Text: "\u00e2", InputMode: models.InputModeSixian}).
		Return(models.ConversionResponse{Braille: "⠡"}, nil)
	deps.history.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.SubmitConversion(context.Background(), "a\u0302", models.InputModeSixian)
	require.NoError(t, err)
}

func TestConversionService_Submit_ServiceErrorLeavesOutput(t *testing.T) {
	tests := []struct {
		name       string
		adapterErr error
		wantAlert  string
	}{
		{
			name:       "http 500",
			adapterErr: adapter.ErrInternalServerError,
			wantAlert:  "Conversion failed, please try again later!",
		},
		{
			name:       "malformed body",
			adapterErr: adapter.ErrMalformedResponse,
			wantAlert:  "Conversion failed, please try again later!",
		},
		{
			name:       "unreachable",
			adapterErr: errors.Join(adapter.ErrTransport, errors.New("connection refused")),
			wantAlert:  "Conversion failed, please try again later! (The conversion service is unreachable)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			svc, deps := newTestConversionSvc(t, ctrl, true)
			deps.state.SetOutputBraille("⠁")
			deps.state.SetCopyStatus("previous")

			deps.adapter.EXPECT().Convert(gomock.Any(), gomock.Any()).
				Return(models.ConversionResponse{}, tt.adapterErr)

			outcome, err := svc.SubmitConversion(context.Background(), "siang1", "")

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrConversionService)
			assert.ErrorIs(t, err, tt.adapterErr)
			assert.False(t, outcome.Stale)
			assert.Equal(t, "⠁", deps.state.OutputBraille())
			assert.Equal(t, "previous", deps.state.CopyStatus())
			assert.Equal(t, tt.wantAlert, svc.Alert(err))
		})
	}
}

func TestConversionService_Submit_AutoCopyFails(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestConversionSvc(t, ctrl, true)

	deps.adapter.EXPECT().Convert(gomock.Any(), gomock.Any()).Return(models.ConversionResponse{Braille: "⠎"}, nil)
	deps.clipboard.EXPECT().WriteText("⠎").Return(clipboard.ErrUnavailable)
	deps.history.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := svc.SubmitConversion(context.Background(), "s", "")

	require.NoError(t, err)
	assert.False(t, outcome.Copied)
	assert.Equal(t, "⠎", deps.state.OutputBraille())
	assert.Equal(t, deps.printer.Text(app.MsgAutoCopyFailed), deps.state.CopyStatus())
}

func TestConversionService_Submit_AutoCopyDisabledClearsStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestConversionSvc(t, ctrl, false)
	deps.state.SetCopyStatus("old status")

	deps.adapter.EXPECT().Convert(gomock.Any(), gomock.Any()).Return(models.ConversionResponse{Braille: "⠎"}, nil)
	deps.history.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	outcome, err := svc.SubmitConversion(context.Background(), "s", "")

	require.NoError(t, err)
	assert.False(t, outcome.Copied)
	assert.Empty(t, deps.state.CopyStatus())
}

func TestConversionService_Submit_EmptyBrailleSkipsCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestConversionSvc(t, ctrl, true)
	deps.state.SetOutputBraille("⠁")

	deps.adapter.EXPECT().Convert(gomock.Any(), gomock.Any()).Return(models.ConversionResponse{Braille: ""}, nil)
	deps.history.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	_, err := svc.SubmitConversion(context.Background(), "-", "")

	require.NoError(t, err)
	assert.Empty(t, deps.state.OutputBraille())
}

func TestConversionService_Submit_HistoryFailureIsNotFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestConversionSvc(t, ctrl, false)

	deps.adapter.EXPECT().Convert(gomock.Any(), gomock.Any()).Return(models.ConversionResponse{Braille: "⠎"}, nil)
	deps.history.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("disk full"))

	_, err := svc.SubmitConversion(context.Background(), "s", "")

	require.NoError(t, err)
	assert.Equal(t, "⠎", deps.state.OutputBraille())
}

// ── last submitted wins ──────────────────────────────────────────────────────

// blockingAdapter makes the request for text "first" wait until release is
// closed, while every other request answers immediately.
func blockingAdapter(deps conversionTestDeps, firstErr error, started chan<- struct{}, release <-chan struct{}) {
	deps.adapter.EXPECT().Convert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req models.ConversionRequest) (models.ConversionResponse, error) {
			if req.Text != "first" {
				return models.ConversionResponse{Braille: "⠃"}, nil
			}
			close(started)
			<-release
			if firstErr != nil {
				return models.ConversionResponse{}, firstErr
			}
			return models.ConversionResponse{Braille: "⠁"}, nil
		},
	).Times(2)
}

func TestConversionService_OverlappingSubmissions_LastSubmittedWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestConversionSvc(t, ctrl, true)
	started, release := make(chan struct{}), make(chan struct{})
	blockingAdapter(deps, nil, started, release)

	deps.clipboard.EXPECT().WriteText("⠃").Return(nil).Times(1)
	deps.history.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil).Times(1)

	var (
		wg           sync.WaitGroup
		firstOutcome models.SubmitOutcome
		firstErr     error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		firstOutcome, firstErr = svc.SubmitConversion(context.Background(), "first", "")
	}()
	<-started

	secondOutcome, err := svc.SubmitConversion(context.Background(), "second", "")
	require.NoError(t, err)
	assert.False(t, secondOutcome.Stale)

	close(release)
	wg.Wait()

	require.NoError(t, firstErr)
	assert.True(t, firstOutcome.Stale)
	assert.Less(t, firstOutcome.Seq, secondOutcome.Seq)
	assert.Equal(t, "⠃", deps.state.OutputBraille())
}

func TestConversionService_OverlappingSubmissions_StaleFailureDiscarded(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestConversionSvc(t, ctrl, false)
	started, release := make(chan struct{}), make(chan struct{})
	blockingAdapter(deps, adapter.ErrBadGateway, started, release)
	deps.history.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	var (
		wg           sync.WaitGroup
		firstOutcome models.SubmitOutcome
		firstErr     error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		firstOutcome, firstErr = svc.SubmitConversion(context.Background(), "first", "")
	}()
	<-started

	_, err := svc.SubmitConversion(context.Background(), "second", "")
	require.NoError(t, err)

	close(release)
	wg.Wait()

	assert.NoError(t, firstErr)
	assert.True(t, firstOutcome.Stale)
	assert.Equal(t, "⠃", deps.state.OutputBraille())
}

func TestConversionService_ResetDiscardsInFlight(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestConversionSvc(t, ctrl, true)
	started, release := make(chan struct{}), make(chan struct{})

	deps.adapter.EXPECT().Convert(gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, models.ConversionRequest) (models.ConversionResponse, error) {
			close(started)
			<-release
			return models.ConversionResponse{Braille: "⠁"}, nil
		},
	)

	done := make(chan models.SubmitOutcome)
	go func() {
		outcome, _ := svc.SubmitConversion(context.Background(), "first", "")
		done <- outcome
	}()
	<-started

	svc.ResetState()
	close(release)

	outcome := <-done
	assert.True(t, outcome.Stale)
	assert.True(t, deps.state.Snapshot().IsEmpty())
}

func TestConversionService_RunSubmission_LaterBeginWinsRegardlessOfRunOrder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestConversionSvc(t, ctrl, false)
	deps.adapter.EXPECT().
		Convert(gomock.Any(), models.ConversionRequest{Text: "second", InputMode: models.InputModeSixian}).
		Return(models.ConversionResponse{Braille: "⠃"}, nil)
	deps.history.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

	first, err := svc.BeginSubmission("first", "")
	require.NoError(t, err)
	second, err := svc.BeginSubmission("second", "")
	require.NoError(t, err)
	assert.Less(t, first.Seq, second.Seq)

	secondOutcome, err := svc.RunSubmission(context.Background(), second)
	require.NoError(t, err)
	assert.False(t, secondOutcome.Stale)

	firstOutcome, err := svc.RunSubmission(context.Background(), first)
	require.NoError(t, err)
	assert.True(t, firstOutcome.Stale)

	assert.Equal(t, "⠃", deps.state.OutputBraille())
	assert.Equal(t, "second", deps.state.InputText())
}

func TestConversionService_RunSubmission_ResetBeforeRunSkipsRequest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestConversionSvc(t, ctrl, true)
	deps.adapter.EXPECT().Convert(gomock.Any(), gomock.Any()).Times(0)

	sub, err := svc.BeginSubmission("siang1", models.InputModeDapu)
	require.NoError(t, err)
	assert.Equal(t, models.ConversionRequest{Text: "siang1", InputMode: models.InputModeDapu}, sub.Request)
	assert.Equal(t, "req-1", sub.RequestID)

	svc.ResetState()

	outcome, err := svc.RunSubmission(context.Background(), sub)
	require.NoError(t, err)
	assert.True(t, outcome.Stale)
	assert.True(t, deps.state.Snapshot().IsEmpty())
}

func TestConversionService_BeginSubmission_BlankTakesNoSequence(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestConversionSvc(t, ctrl, false)

	inFlight, err := svc.BeginSubmission("first", "")
	require.NoError(t, err)

	_, err = svc.BeginSubmission("   ", "")
	assert.ErrorIs(t, err, ErrValidation)
	assert.True(t, svc.isLatest(inFlight.Seq))
}

// ── CopyOutput ──────────────────────────────────────────────────────────────

func TestConversionService_CopyOutput_NothingToCopy(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestConversionSvc(t, ctrl, true)

	notice, err := svc.CopyOutput(context.Background())

	assert.Empty(t, notice)
	assert.ErrorIs(t, err, ErrNothingToCopy)
	assert.Equal(t, deps.printer.Text(app.MsgNothingToCopy), svc.Alert(err))
}

func TestConversionService_CopyOutput_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestConversionSvc(t, ctrl, true)
	deps.state.SetOutputBraille("⠎⠊⠁⠅")
	deps.clipboard.EXPECT().WriteText("⠎⠊⠁⠅").Return(nil)

	notice, err := svc.CopyOutput(context.Background())

	require.NoError(t, err)
	assert.Equal(t, deps.printer.Text(app.MsgCopied), notice)
}

func TestConversionService_CopyOutput_ClipboardError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestConversionSvc(t, ctrl, true)
	deps.state.SetOutputBraille("⠎")
	deps.state.SetCopyStatus("kept")
	deps.clipboard.EXPECT().WriteText("⠎").Return(clipboard.ErrUnavailable)

	_, err := svc.CopyOutput(context.Background())

	assert.ErrorIs(t, err, ErrClipboard)
	assert.ErrorIs(t, err, clipboard.ErrUnavailable)
	assert.Equal(t, "⠎", deps.state.OutputBraille())
	assert.Equal(t, "kept", deps.state.CopyStatus())
	assert.Equal(t, deps.printer.Text(app.MsgCopyFailed), svc.Alert(err))
}

// ── ResetState / Alert ──────────────────────────────────────────────────────

func TestConversionService_ResetState(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, deps := newTestConversionSvc(t, ctrl, true)
	deps.state.SetInputText("siang1")
	deps.state.SetOutputBraille("⠎")
	deps.state.SetCopyStatus("copied")

	svc.ResetState()
	svc.ResetState()

	assert.Equal(t, models.UIState{}, deps.state.Snapshot())
}

func TestConversionService_Alert_Fallbacks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _ := newTestConversionSvc(t, ctrl, true)

	assert.Empty(t, svc.Alert(nil))
	assert.Equal(t, "boom", svc.Alert(errors.New("boom")))
	assert.Equal(t, models.InputModeSixian, svc.DefaultInputMode())
}
