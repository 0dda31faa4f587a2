package observability

import (
	"strings"
	"testing"
	"time"
)

func TestParseSince(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr string
	}{
		{"empty defaults to 7d", "", now.AddDate(0, 0, -7), ""},
		{"whitespace defaults to 7d", "  ", now.AddDate(0, 0, -7), ""},
		{"days", "30d", now.AddDate(0, 0, -30), ""},
		{"hours", "24h", now.Add(-24 * time.Hour), ""},
		{"zero", "0d", now, ""},
		{"bad suffix", "7w", time.Time{}, "unsupported duration format"},
		{"not a number", "xd", time.Time{}, "invalid duration"},
		{"negative", "-5d", time.Time{}, "invalid duration"},
		{"too short", "d", time.Time{}, "invalid duration"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSince(tt.input, now)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !got.Equal(tt.want) {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}
