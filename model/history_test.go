package model

import "testing"

func TestHistoryDetectsStillLife(t *testing.T) {
	g := mustEmpty(t, 6, 6)
	g.SetCells([]Coord{{2, 2}, {2, 3}, {3, 2}, {3, 3}})

	var h History
	if h.Observe(g) {
		t.Fatal("first observation reported stagnant")
	}
	g.Tick()
	if !h.Observe(g) {
		t.Fatal("block not reported stagnant")
	}
}

func TestHistoryDetectsOscillators(t *testing.T) {
	tests := []struct {
		name   string
		period int
		seed   func(g *Grid)
	}{
		{name: "blinker", period: 2, seed: func(g *Grid) { g.SetCells([]Coord{{5, 4}, {5, 5}, {5, 6}}) }},
		{name: "pulsar", period: 3, seed: func(g *Grid) { g.AddPulsar(12, 12) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustEmpty(t, 24, 24)
			tt.seed(g)

			var h History
			for gen := 0; gen < tt.period; gen++ {
				if h.Observe(g) {
					t.Fatalf("generation %d reported stagnant", gen)
				}
				g.Tick()
			}
			if !h.Observe(g) {
				t.Fatalf("period-%d cycle not detected", tt.period)
			}
		})
	}
}

func TestHistoryIgnoresGlider(t *testing.T) {
	g := mustEmpty(t, 32, 32)
	g.AddGlider(4, 4)

	var h History
	for gen := 0; gen < 12; gen++ {
		if h.Observe(g) {
			t.Fatalf("glider reported stagnant at generation %d", gen)
		}
		g.Tick()
	}
	if h.Len() != historyDepth {
		t.Fatalf("history holds %d entries, want %d", h.Len(), historyDepth)
	}

	h.Reset()
	if h.Len() != 0 {
		t.Fatal("Reset kept entries")
	}
}
