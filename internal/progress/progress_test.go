package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes    int64
		expected string
	}{
		{0, "0B"},
		{512, "512B"},
		{1024, "1.0KB"},
		{1536, "1.5KB"},
		{1048576, "1.0MB"},
		{52428800, "50.0MB"},
		{1073741824, "1.0GB"},
	}

	for _, tt := range tests {
		result := formatBytes(tt.bytes)
		if result != tt.expected {
			t.Errorf("formatBytes(%d) = %s, want %s", tt.bytes, result, tt.expected)
		}
	}
}

func TestWriterCopiesAllBytes(t *testing.T) {
	dest := &bytes.Buffer{}
	output := &bytes.Buffer{}

	pw := NewWriter(dest, 1000, output)
	data := make([]byte, 100)
	for i := 0; i < 10; i++ {
		n, err := pw.Write(data)
		if err != nil {
			t.Fatalf("Write failed: %v", err)
		}
		if n != 100 {
			t.Errorf("Write returned %d, want 100", n)
		}
		time.Sleep(120 * time.Millisecond)
	}
	pw.Finish()

	if dest.Len() != 1000 {
		t.Errorf("total written = %d, want 1000", dest.Len())
	}
	if !strings.Contains(output.String(), "%") {
		t.Errorf("expected a percentage in progress output, got: %q", output.String())
	}
}

func TestWriterUnknownTotal(t *testing.T) {
	dest := &bytes.Buffer{}
	output := &bytes.Buffer{}

	pw := NewWriter(dest, 0, output)
	if _, err := pw.Write(make([]byte, 256)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	time.Sleep(150 * time.Millisecond)
	if _, err := pw.Write(make([]byte, 256)); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	pw.Finish()

	if dest.Len() != 512 {
		t.Errorf("total written = %d, want 512", dest.Len())
	}
}

func TestShouldShowRespectsOverride(t *testing.T) {
	orig := IsTerminalFunc
	defer func() { IsTerminalFunc = orig }()

	IsTerminalFunc = func(int) bool { return false }
	if ShouldShow() {
		t.Error("expected ShouldShow to be false for non-terminal stdout")
	}
	IsTerminalFunc = func(int) bool { return true }
	if !ShouldShow() {
		t.Error("expected ShouldShow to be true for terminal stdout")
	}
}
