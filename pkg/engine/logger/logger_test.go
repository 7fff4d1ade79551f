package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestPlainFormatter(t *testing.T) {
	ts := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name string
		data logrus.Fields
		want string
	}{
		{
			name: "component and fields",
			data: logrus.Fields{"component": "loader", "slot": 3, "interval": "500ms"},
			want: "[2025-01-02T03:04:05Z] [INFO] [loader] started interval=500ms slot=3\n",
		},
		{
			name: "no component",
			data: logrus.Fields{},
			want: "[2025-01-02T03:04:05Z] [INFO] started\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := &logrus.Entry{
				Logger:  logrus.New(),
				Time:    ts,
				Level:   logrus.InfoLevel,
				Message: "started",
				Data:    tt.data,
			}
			out, err := PlainFormatter{}.Format(entry)
			if err != nil {
				t.Fatalf("Format() error: %v", err)
			}
			if got := string(out); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNamed_WritesToOutput(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	t.Cleanup(func() { SetOutput(nopWriter{}) })

	Named("console").WithField("code", 0).Info("exiting")

	got := buf.String()
	if !strings.Contains(got, "[console] exiting code=0") {
		t.Errorf("log line = %q, want component, message and field", got)
	}
}

func TestSetupFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "test.log")

	closer, resolved, err := SetupFile(path, logrus.DebugLevel)
	if err != nil {
		t.Fatalf("SetupFile error: %v", err)
	}
	t.Cleanup(func() { SetOutput(nopWriter{}) })

	Named("test").Debug("hello")
	closer.Close()

	if resolved != path {
		t.Errorf("resolved path = %q, want %q", resolved, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(data), "[DEBUG] [test] hello") {
		t.Errorf("log file = %q, want debug line", data)
	}
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name    string
		want    Level
		wantErr bool
	}{
		{"", logrus.InfoLevel, false},
		{"debug", logrus.DebugLevel, false},
		{"WARN", logrus.WarnLevel, false},
		{"chatty", logrus.InfoLevel, true},
	}

	for _, tt := range tests {
		got, err := ParseLevel(tt.name)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseLevel(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.name, got, tt.want)
		}
	}
}
