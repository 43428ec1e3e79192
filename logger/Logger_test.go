package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
)

func TestInitWritesJSONToRotatingFile(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "pong.log")
	props := "logFilename=" + logFile + "\nmaxSize=1\nmaxBackups=1\nmaxAge=1\ncompress=false\nlevel=Warn\n"
	if err := os.WriteFile(filepath.Join(dir, "logger.properties"), []byte(props), 0o644); err != nil {
		t.Fatal(err)
	}

	l := New()
	if err := l.Init(dir); err != nil {
		t.Fatalf("Init: %v", err)
	}
	l.Info("dropped below Warn")
	l.Warn("kept")

	data, err := os.ReadFile(logFile)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	lines := bytes.Split(bytes.TrimSpace(data), []byte("\n"))
	if len(lines) != 1 {
		t.Fatalf("expected exactly one log line, got %q", data)
	}

	var entry map[string]interface{}
	if err := json.Unmarshal(lines[0], &entry); err != nil {
		t.Fatalf("log line is not JSON: %v", err)
	}
	if entry["msg"] != "kept" || entry["level"] != "warning" {
		t.Fatalf("unexpected entry %v", entry)
	}
}

func TestInitMissingProperties(t *testing.T) {
	if err := New().Init(t.TempDir()); err == nil {
		t.Fatalf("expected error without logger.properties")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]logrus.Level{
		"Trace":   logrus.TraceLevel,
		"Info":    logrus.InfoLevel,
		"Warn":    logrus.WarnLevel,
		"Error":   logrus.ErrorLevel,
		"Fatal":   logrus.FatalLevel,
		"":        logrus.DebugLevel,
		"verbose": logrus.DebugLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestIsTrace(t *testing.T) {
	var buf bytes.Buffer
	l := New()
	l.SetOutput(&buf)

	if l.IsTrace() {
		t.Fatalf("default level must not trace")
	}
	l.SetLevel("Trace")
	l.Trace("frame")
	if !l.IsTrace() || !bytes.Contains(buf.Bytes(), []byte(`"msg":"frame"`)) {
		t.Fatalf("expected trace output, got %q", buf.String())
	}
}
