package log

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    log.Level
		wantErr bool
	}{
		{input: "debug", want: log.DebugLevel},
		{input: "INFO", want: log.InfoLevel},
		{input: "", want: log.InfoLevel},
		{input: " warn ", want: log.WarnLevel},
		{input: "warning", want: log.WarnLevel},
		{input: "error", want: log.ErrorLevel},
		{input: "verbose", want: log.InfoLevel, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseLevel(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestSetLevel_FiltersDebug(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)
	defer SetLevel(log.InfoLevel)

	SetLevel(log.InfoLevel)
	Debug("hidden")
	if buf.Len() != 0 {
		t.Errorf("debug message should be filtered at info level, got %q", buf.String())
	}

	SetLevel(log.DebugLevel)
	Debug("shown", "sections", 6)
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("debug message should be logged at debug level, got %q", buf.String())
	}
}

func TestWarn(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(os.Stderr)

	Warn("extension section is blank", "source", "sections[1]")
	if !strings.Contains(buf.String(), "extension section is blank") || !strings.Contains(buf.String(), "sections[1]") {
		t.Errorf("expected warning with source, got %q", buf.String())
	}
}
