package log_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MacroPower/dimgen/pkg/log"
)

func TestCreateHandlerWithStrings(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		wantErr error
		level   string
		format  string
		want    []string
		notWant []string
	}{
		"text": {
			level:   "warn",
			format:  "text",
			want:    []string{"uh oh", "line=5"},
			notWant: []string{"debugging"},
		},
		"logfmt": {
			level:  "debug",
			format: "logfmt",
			want:   []string{"msg=debugging", "msg=\"uh oh\"", "line=5"},
		},
		"json upper case": {
			level:  "INFO",
			format: "JSON",
			want:   []string{`"msg":"uh oh"`, `"line":5`},
		},
		"unknown level": {
			level:   "trace",
			format:  "text",
			wantErr: log.ErrUnknownLevel,
		},
		"unknown format": {
			level:   "warn",
			format:  "xml",
			wantErr: log.ErrUnknownFormat,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			buf := &bytes.Buffer{}

			h, err := log.CreateHandlerWithStrings(buf, tc.level, tc.format)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)

				return
			}

			require.NoError(t, err)

			logger := slog.New(h)
			logger.Debug("debugging")
			logger.Warn("uh oh", slog.Int("line", 5))

			for _, s := range tc.want {
				assert.Contains(t, buf.String(), s)
			}

			for _, s := range tc.notWant {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestCreateHandlerJSON(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	logger := slog.New(log.CreateHandler(buf, slog.LevelInfo, log.FormatJSON))
	logger.Info("grouped", slog.Int("groups", 3))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "grouped", got["msg"])
	assert.InDelta(t, 3, got["groups"], 0)
}
