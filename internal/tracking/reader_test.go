package tracking

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	in := "0.0 0.5 0.5\n0.2 0.51 0.49 extra\n\n0.4 0.52 0.48\n"
	cols, err := Read(strings.NewReader(in), 3)
	if err != nil {
		t.Fatalf("read failed: %v", err)
	}

	if len(cols) != 3 || len(cols[0]) != 3 {
		t.Fatalf("expected 3 columns of 3 rows, got %d columns", len(cols))
	}
	if cols[1][2] != 0.52 || cols[2][1] != 0.49 {
		t.Errorf("unexpected values: %v", cols)
	}
}

func TestRead_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"non-numeric", "0.0 1.0\n0.2 abc\n"},
		{"short line", "0.0 1.0\n0.2\n"},
		{"nan", "0.0 1.0\n0.2 NaN\n"},
		{"inf", "0.0 1.0\n0.2 +Inf\n"},
		{"infinity", "0.0 1.0\ninfinity 3\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cols, err := Read(strings.NewReader(tt.in), 2)
			if !errors.Is(err, ErrMalformed) {
				t.Fatalf("expected ErrMalformed, got %v", err)
			}
			if !strings.Contains(err.Error(), "line 2") {
				t.Errorf("expected line number in %q", err)
			}
			if cols != nil {
				t.Error("expected no partial data")
			}
		})
	}
}

func TestReadTrack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tracking_data.dat")
	if err := os.WriteFile(path, []byte("0 0.5 0.5\n0.2 0.6 0.5\n0.4 0.7 0.5\n"), 0644); err != nil {
		t.Fatal(err)
	}

	track, err := ReadTrack(path)
	if err != nil {
		t.Fatalf("read track failed: %v", err)
	}
	if track.Len() != 3 {
		t.Errorf("expected 3 samples, got %d", track.Len())
	}
}

func TestReadTrack_MissingFile(t *testing.T) {
	if _, err := ReadTrack(filepath.Join(t.TempDir(), "missing.dat")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}

func TestSpeedRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSpeed(&buf, []float64{0.2, 0.4}, []float64{5.5, 6.25}); err != nil {
		t.Fatal(err)
	}
	if got := buf.String(); got != "0.200000 5.500000\n0.400000 6.250000\n" {
		t.Errorf("unexpected output %q", got)
	}

	path := filepath.Join(t.TempDir(), "player_speed.dat")
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatal(err)
	}
	ts, vs, err := ReadSpeed(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(ts) != 2 || vs[1] != 6.25 {
		t.Errorf("unexpected speed data: %v %v", ts, vs)
	}

	if err := WriteSpeed(&buf, []float64{1}, nil); err == nil {
		t.Error("expected length mismatch error")
	}
}
