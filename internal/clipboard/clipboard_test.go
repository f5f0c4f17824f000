package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/hakkadots/braille-client/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPlatform(t *testing.T, unsupported bool, write func(string) error, tmux bool) {
	t.Helper()
	prevUnsupported, prevWrite, prevTmux := systemUnsupported, systemWriteAll, insideTmux
	t.Cleanup(func() {
		systemUnsupported, systemWriteAll, insideTmux = prevUnsupported, prevWrite, prevTmux
	})

	systemUnsupported = func() bool { return unsupported }
	systemWriteAll = write
	insideTmux = func() bool { return tmux }
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("tty closed") }

func TestNew_PrefersSystemClipboard(t *testing.T) {
	var got string
	stubPlatform(t, false, func(s string) error { got = s; return nil }, false)

	cb := New(&bytes.Buffer{}, logger.Nop())

	assert.Equal(t, "system", cb.Name())
	require.NoError(t, cb.WriteText("⠎⠊⠁⠅"))
	assert.Equal(t, "⠎⠊⠁⠅", got)
}

func TestSystemClipboard_WriteError(t *testing.T) {
	stubPlatform(t, false, func(string) error { return errors.New("xclip missing") }, false)

	err := New(nil, logger.Nop()).WriteText("⠁")
	assert.ErrorIs(t, err, ErrWriteFailed)
}

func TestNew_FallsBackToOSC52(t *testing.T) {
	stubPlatform(t, true, nil, false)
	var out bytes.Buffer

	cb := New(&out, logger.Nop())

	assert.Equal(t, "osc52", cb.Name())
	require.NoError(t, cb.WriteText("⠎⠊⠁⠅"))
	assert.Contains(t, out.String(), "\x1b]52;c;")
	assert.Contains(t, out.String(), base64.StdEncoding.EncodeToString([]byte("⠎⠊⠁⠅")))
}

func TestOSC52_TmuxPassthrough(t *testing.T) {
	stubPlatform(t, true, nil, true)
	var out bytes.Buffer

	require.NoError(t, New(&out, logger.Nop()).WriteText("⠁"))
	assert.Contains(t, out.String(), "\x1bPtmux;")
}

func TestOSC52_WriteError(t *testing.T) {
	stubPlatform(t, true, nil, false)

	err := New(failingWriter{}, logger.Nop()).WriteText("⠁")
	assert.ErrorIs(t, err, ErrWriteFailed)
}

func TestNew_Unavailable(t *testing.T) {
	stubPlatform(t, true, nil, false)

	cb := New(nil, logger.Nop())

	assert.Equal(t, "unavailable", cb.Name())
	assert.ErrorIs(t, cb.WriteText("⠁"), ErrUnavailable)
}
