package model

import "testing"

func TestCountLiveNeighborsStaysInBounds(t *testing.T) {
	g := NewGrid(4, 3)
	for y := 0; y < g.GetHeight(); y++ {
		for x := 0; x < g.GetWidth(); x++ {
			g.Set(x, y, true)
		}
	}

	// Corners, edges and interior must all count without faulting, and
	// never report more than 8 neighbors
	for y := 0; y < g.GetHeight(); y++ {
		for x := 0; x < g.GetWidth(); x++ {
			n := g.CountLiveNeighbors(x, y)
			if n < 0 || n > 8 {
				t.Fatalf("neighbors at (%d,%d) = %d, want 0..8", x, y, n)
			}
		}
	}

	if n := g.CountLiveNeighbors(0, 0); n != 3 {
		t.Errorf("corner neighbors = %d, want 3", n)
	}
	if n := g.CountLiveNeighbors(1, 0); n != 5 {
		t.Errorf("edge neighbors = %d, want 5", n)
	}
	if n := g.CountLiveNeighbors(1, 1); n != 8 {
		t.Errorf("interior neighbors = %d, want 8", n)
	}
}

func TestAdvanceAllDeadStaysDead(t *testing.T) {
	g := NewGrid(7, 5)
	next := g.Advance(nil)

	if next.Population() != 0 {
		t.Fatalf("all-dead grid advanced to population %d, want 0", next.Population())
	}
	if next.GetWidth() != 7 || next.GetHeight() != 5 {
		t.Fatalf("dimensions changed to %dx%d", next.GetWidth(), next.GetHeight())
	}
}

func TestAdvanceLoneCellDies(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(1, 1, true)

	next := g.Advance(nil)
	if next.Population() != 0 {
		t.Fatalf("isolated cell survived, population %d", next.Population())
	}
}

func TestAdvanceBlinkerOscillates(t *testing.T) {
	g := NewGrid(5, 5)
	g.Set(1, 2, true)
	g.Set(2, 2, true)
	g.Set(3, 2, true)

	vertical := g.Advance(nil)
	for y := 0; y < 5; y++ {
		for x := 0; x < 5; x++ {
			want := x == 2 && y >= 1 && y <= 3
			if vertical.Get(x, y) != want {
				t.Fatalf("after one step cell (%d,%d) alive=%v, expected %v", x, y, vertical.Get(x, y), want)
			}
		}
	}

	horizontal := vertical.Advance(nil)
	if !horizontal.Equal(g) {
		t.Fatal("blinker did not return to its original configuration after two steps")
	}
}

func TestAdvanceIsDeterministic(t *testing.T) {
	g := NewRandomGrid(16, 12, 0.5)

	first := g.Advance(nil)
	second := g.Advance(nil)
	if !first.Equal(second) {
		t.Fatal("two advances of the same grid produced different results")
	}
}

func TestAdvancePooledMatchesUnpooled(t *testing.T) {
	g := NewRandomGrid(10, 10, 0.3)
	pool := NewGridPool()

	pooled := g.Advance(pool)
	plain := g.Advance(nil)
	if !pooled.Equal(plain) {
		t.Fatal("pool-backed advance differs from plain advance")
	}

	// A recycled buffer must come back clean
	pool.Put(pooled)
	reused := pool.Get(10, 10)
	if reused.Population() != 0 {
		t.Fatalf("recycled grid has %d live cells, want 0", reused.Population())
	}
}

func TestNewRandomGridDegenerateProbabilities(t *testing.T) {
	dead := NewRandomGrid(8, 8, 0)
	if dead.Population() != 0 {
		t.Errorf("probability 0 produced %d live cells", dead.Population())
	}

	live := NewRandomGrid(8, 8, 1)
	if live.Population() != 64 {
		t.Errorf("probability 1 produced %d live cells, want 64", live.Population())
	}
}

func TestAddBorderWall(t *testing.T) {
	g := NewGrid(6, 4)
	g.AddBorderWall()

	for x := 0; x < g.GetWidth(); x++ {
		if !g.Get(x, 0) || !g.Get(x, g.GetHeight()-1) {
			t.Fatalf("border cell in column %d is dead", x)
		}
	}
	for y := 0; y < g.GetHeight(); y++ {
		if !g.Get(0, y) || !g.Get(g.GetWidth()-1, y) {
			t.Fatalf("border cell in row %d is dead", y)
		}
	}
	if interior := g.Population() - (2*g.GetWidth() + 2*(g.GetHeight()-2)); interior != 0 {
		t.Fatalf("border wall touched %d interior cells", interior)
	}
}

func TestGetOutOfBoundsReadsDead(t *testing.T) {
	g := NewGrid(3, 3)
	g.Set(0, 0, true)

	for _, pos := range [][2]int{{-1, 0}, {0, -1}, {3, 0}, {0, 3}, {-1, -1}, {3, 3}} {
		if g.Get(pos[0], pos[1]) {
			t.Errorf("out-of-bounds (%d,%d) read as live", pos[0], pos[1])
		}
	}
}
