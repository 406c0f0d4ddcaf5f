package testutils

import (
	"fmt"
	"sync"
	"testing"
)

type errorCollector struct {
	errors []string
}

func (e *errorCollector) Errorf(format string, args ...any) {
	e.errors = append(e.errors, fmt.Sprintf(format, args...))
}

func TestRecordingLogger_Calls(t *testing.T) {
	rec := &RecordingLogger{}
	rec.Info("write started", "path", "/tmp/a")
	rec.Error("write failed", "path", "/tmp/a")
	rec.Debug("noise")

	if got := len(rec.Calls("")); got != 3 {
		t.Fatalf("expected 3 calls, got %d", got)
	}
	if got := len(rec.Calls("ERROR")); got != 1 {
		t.Errorf("expected 1 error call, got %d", got)
	}

	call, ok := rec.Find("ERROR", "failed")
	if !ok {
		t.Fatal("expected to find error call")
	}
	if FieldsToMap(t, call.Fields)["path"] != "/tmp/a" {
		t.Errorf("unexpected fields %v", call.Fields)
	}

	if _, ok := rec.Find("WARN", "anything"); ok {
		t.Error("did not expect a WARN call")
	}
}

func TestRecordingLogger_Concurrent(t *testing.T) {
	rec := &RecordingLogger{}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec.Info("tick", "i", i)
		}(i)
	}
	wg.Wait()

	if got := len(rec.Calls("INFO")); got != 50 {
		t.Errorf("expected 50 calls, got %d", got)
	}
}

func TestFieldsToMap(t *testing.T) {
	tests := []struct {
		name       string
		fields     []any
		expected   map[string]any
		wantErrors int
	}{
		{
			name:     "empty fields",
			fields:   []any{},
			expected: map[string]any{},
		},
		{
			name:     "multiple key-value pairs",
			fields:   []any{"command", "fetch", "status", 200, "ok", true},
			expected: map[string]any{"command": "fetch", "status": 200, "ok": true},
		},
		{
			name:       "missing value",
			fields:     []any{"command", "fetch", "dangling"},
			expected:   map[string]any{"command": "fetch"},
			wantErrors: 1,
		},
		{
			name:       "non-string key",
			fields:     []any{42, "value", "url", "http://x"},
			expected:   map[string]any{"url": "http://x"},
			wantErrors: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			collector := &errorCollector{}
			result := FieldsToMap(collector, tt.fields)

			if len(collector.errors) != tt.wantErrors {
				t.Errorf("expected %d reported errors, got %v", tt.wantErrors, collector.errors)
			}
			if len(result) != len(tt.expected) {
				t.Errorf("expected map length %d, got %d", len(tt.expected), len(result))
			}
			for key, want := range tt.expected {
				if result[key] != want {
					t.Errorf("key %q: expected %v, got %v", key, want, result[key])
				}
			}
		})
	}
}
