package model

import (
	"testing"

	"github.com/pkg/errors"
)

func TestNewStriped(t *testing.T) {
	g, err := NewStriped(9, 7)
	if err != nil {
		t.Fatal(err)
	}
	for row := range g.Height() {
		for col := range g.Width() {
			idx := row*g.Width() + col
			want := idx%2 == 0 || idx%7 == 0
			if got := g.Alive(row, col); got != want {
				t.Fatalf("cell %d alive = %v, want %v", idx, got, want)
			}
		}
	}
}

func TestNewRandomDrawsOncePerCell(t *testing.T) {
	calls := 0
	alternate := func() bool {
		calls++
		return calls%2 == 1
	}

	g, err := NewRandom(5, 3, alternate)
	if err != nil {
		t.Fatal(err)
	}
	if calls != 15 {
		t.Fatalf("decision source called %d times, want 15", calls)
	}
	for i, c := range g.LiveCells() {
		if idx := c.Row*5 + c.Col; idx != 2*i {
			t.Fatalf("live cell %d at index %d, want %d", i, idx, 2*i)
		}
	}
	if n := g.CountLivingCells(); n != 8 {
		t.Fatalf("%d cells alive, want 8", n)
	}
}

func TestNewWithGlider(t *testing.T) {
	g, err := NewWithGlider(DefaultSize, DefaultSize)
	if err != nil {
		t.Fatal(err)
	}
	want := make([]Coord, len(Glider.Cells))
	for i, c := range Glider.Cells {
		want[i] = Coord{Row: DefaultSize/2 + c.Row, Col: DefaultSize/2 + c.Col}
	}
	assertLive(t, g, want)
}

func TestNew(t *testing.T) {
	always := func() bool { return true }

	tests := []struct {
		policy  Policy
		width   int
		height  int
		src     DecisionSource
		live    int
		wantErr error
	}{
		{policy: PolicyEmpty, width: 8, height: 8, live: 0},
		{policy: PolicyStriped, width: 7, height: 2, live: 8},
		{policy: PolicyRandom, width: 3, height: 4, src: always, live: 12},
		{policy: PolicyGlider, width: 10, height: 10, live: 5},
		{policy: PolicyRandom, width: 3, height: 4, wantErr: ErrMissingDecisionSource},
		{policy: "spiral", width: 3, height: 4, wantErr: ErrUnknownPolicy},
		{policy: PolicyEmpty, width: 0, height: 4, wantErr: ErrInvalidDimension},
		{policy: PolicyGlider, width: 4, height: -1, wantErr: ErrInvalidDimension},
	}

	for _, tt := range tests {
		t.Run(string(tt.policy), func(t *testing.T) {
			g, err := New(tt.policy, tt.width, tt.height, tt.src)
			if tt.wantErr != nil {
				if errors.Cause(err) != tt.wantErr {
					t.Fatalf("got %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if g.Width() != tt.width || g.Height() != tt.height {
				t.Fatalf("dimensions = %dx%d", g.Width(), g.Height())
			}
			if int(g.Cells().Len()) != tt.width*tt.height {
				t.Fatalf("field length = %d", g.Cells().Len())
			}
			if n := g.CountLivingCells(); n != tt.live {
				t.Fatalf("%d cells alive, want %d", n, tt.live)
			}
		})
	}
}

func TestParsePolicy(t *testing.T) {
	for _, p := range Policies {
		got, err := ParsePolicy(string(p))
		if err != nil || got != p {
			t.Errorf("ParsePolicy(%q) = %q, %v", p, got, err)
		}
	}
	if _, err := ParsePolicy("Glider"); errors.Cause(err) != ErrUnknownPolicy {
		t.Errorf("got %v, want ErrUnknownPolicy", err)
	}
}
