package logtail

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var expectedAll []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("Line %d", i)
		content.WriteString(line + "\n")
		expectedAll = append(expectedAll, line)
	}

	if err := os.WriteFile(logPath, []byte(content.String()), 0644); err != nil {
		t.Fatalf("failed to create test log file: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{
			name:     "read all (0)",
			maxLines: 0,
			expected: expectedAll,
		},
		{
			name:     "read all (negative)",
			maxLines: -1,
			expected: expectedAll,
		},
		{
			name:     "read partial (3)",
			maxLines: 3,
			expected: expectedAll[7:],
		},
		{
			name:     "read partial (5)",
			maxLines: 5,
			expected: expectedAll[5:],
		},
		{
			name:     "read exactly all (10)",
			maxLines: 10,
			expected: expectedAll,
		},
		{
			name:     "read more than exists (20)",
			maxLines: 20,
			expected: expectedAll,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read returned error: %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read(%d) = %v, want %v", tt.maxLines, got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	lines, err := Read(filepath.Join(t.TempDir(), "missing.log"), 10)
	if err != nil {
		t.Fatalf("Read returned error for missing file: %v", err)
	}
	if lines != nil {
		t.Fatalf("Read = %v, want nil", lines)
	}
}

func TestLineLevel(t *testing.T) {
	tests := []struct {
		line   string
		want   slog.Level
		wantOK bool
	}{
		{`time=2026-01-02T10:00:00Z level=INFO msg="marquee starting"`, slog.LevelInfo, true},
		{`time=2026-01-02T10:00:00Z level=WARN msg="store unavailable"`, slog.LevelWarn, true},
		{`time=2026-01-02T10:00:00Z level=ERROR msg=boom`, slog.LevelError, true},
		{`level=DEBUG`, slog.LevelDebug, true},
		{`plain text`, 0, false},
		{`level=LOUD msg=x`, 0, false},
	}
	for _, tt := range tests {
		got, ok := LineLevel(tt.line)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("LineLevel(%q) = %v, %v; want %v, %v", tt.line, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestFilter(t *testing.T) {
	lines := []string{
		`level=DEBUG msg="dropping superseded results"`,
		`level=INFO msg="marquee starting"`,
		`level=WARN msg="catalog request failed"`,
		`  continuation of the warning`,
		`level=INFO msg="poll created"`,
		`  continuation of info`,
	}

	got := Filter(lines, slog.LevelWarn)
	want := []string{lines[2], lines[3]}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Filter(warn) = %v, want %v", got, want)
	}

	if got := Filter(lines, slog.LevelDebug); len(got) != len(lines) {
		t.Fatalf("Filter(debug) kept %d lines, want %d", len(got), len(lines))
	}
}
