package leveldata

import (
	"errors"
	"math"
	"os"
	"testing"
)

func TestLoadArenaLayout(t *testing.T) {
	layout, err := LoadArenaLayout(os.DirFS("testdata"), "arena.tmx")
	if err != nil {
		t.Fatalf("LoadArenaLayout: %v", err)
	}

	if layout.MapWidth != 1280 || layout.MapHeight != 720 {
		t.Errorf("map size = %dx%d, want 1280x720", layout.MapWidth, layout.MapHeight)
	}

	fractions := layout.SpawnFractions()
	want := [2]float64{0.3, 0.7}
	for i := range want {
		if math.Abs(fractions[i]-want[i]) > 1e-9 {
			t.Errorf("spawn fraction %d = %v, want %v", i, fractions[i], want[i])
		}
	}

	if got := layout.GroundRatio(); math.Abs(got-0.8) > 1e-9 {
		t.Errorf("GroundRatio() = %v, want 0.8", got)
	}
}

func TestLoadArenaLayoutErrors(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr error
	}{
		{name: "missing spawn", path: "one_spawn.tmx", wantErr: ErrIncompleteArena},
		{name: "missing file", path: "nope.tmx"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadArenaLayout(os.DirFS("testdata"), tt.path)
			if err == nil {
				t.Fatal("expected an error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
