package board

import "testing"

func TestStepFromOrigin(t *testing.T) {
	origin := Coords{Row: 0, Col: 0}

	tests := []struct {
		dir      Direction
		expected Coords
		ok       bool
	}{
		{Up, Coords{}, false},
		{UpRight, Coords{}, false},
		{Right, Coords{Row: 0, Col: 1}, true},
		{DownRight, Coords{Row: 1, Col: 1}, true},
		{Down, Coords{Row: 1, Col: 0}, true},
		{DownLeft, Coords{}, false},
		{Left, Coords{}, false},
		{UpLeft, Coords{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			got, ok := Step(origin, tt.dir, 1)
			if ok != tt.ok {
				t.Fatalf("Step(origin, %v, 1) ok = %v, want %v", tt.dir, ok, tt.ok)
			}
			if ok && got != tt.expected {
				t.Errorf("Step(origin, %v, 1) = %v, want %v", tt.dir, got, tt.expected)
			}
		})
	}
}

func TestStepInterior(t *testing.T) {
	origin := Coords{Row: 3, Col: 3} // "D:4"

	tests := []struct {
		dir      Direction
		k        int
		expected string
		ok       bool
	}{
		{Up, 1, "C:4", true},
		{Up, 3, "A:4", true},
		{Up, 4, "", false},
		{UpRight, 2, "B:6", true},
		{Right, 5, "D:9", true},
		{DownRight, 2, "F:6", true},
		{Down, 2, "F:4", true},
		{DownLeft, 3, "G:1", true},
		{DownLeft, 4, "", false},
		{Left, 3, "D:1", true},
		{Left, 4, "", false},
		{UpLeft, 3, "A:1", true},
		{UpLeft, 4, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.dir.String(), func(t *testing.T) {
			got, ok := Step(origin, tt.dir, tt.k)
			if ok != tt.ok {
				t.Fatalf("Step(%v, %v, %d) ok = %v, want %v", origin, tt.dir, tt.k, ok, tt.ok)
			}
			if ok && got.String() != tt.expected {
				t.Errorf("Step(%v, %v, %d) = %v, want %s", origin, tt.dir, tt.k, got, tt.expected)
			}
		})
	}
}

func TestRaySequence(t *testing.T) {
	ray := NewRay(Coords{Row: 2, Col: 0}, Up)

	c, ok := ray.Next()
	if !ok || (c != Coords{Row: 1, Col: 0}) {
		t.Fatalf("first Next() = %v, %v", c, ok)
	}
	c, ok = ray.Next()
	if !ok || (c != Coords{Row: 0, Col: 0}) {
		t.Fatalf("second Next() = %v, %v", c, ok)
	}
	if _, ok = ray.Next(); ok {
		t.Error("third Next() should be absent past row 0")
	}
	if _, ok = ray.Next(); ok {
		t.Error("Next() should stay absent once exhausted")
	}
}

func TestGridRayBounded(t *testing.T) {
	g, err := New(6)
	if err != nil {
		t.Fatal(err)
	}

	// From (4,4) heading DownRight only (5,5) is on a size-6 board.
	ray := g.Ray(Coords{Row: 4, Col: 4}, DownRight)
	pos, ok := ray.Next()
	if !ok || (pos.Coords() != Coords{Row: 5, Col: 5}) {
		t.Fatalf("first Next() = %v, %v", pos.Coords(), ok)
	}
	if _, ok = ray.Next(); ok {
		t.Error("ray should end at the board edge")
	}
}

func TestDirectionInverse(t *testing.T) {
	pairs := map[Direction]Direction{
		Up:        Down,
		UpRight:   DownLeft,
		Right:     Left,
		DownRight: UpLeft,
	}

	for d, inv := range pairs {
		if d.Inverse() != inv {
			t.Errorf("%v.Inverse() = %v, want %v", d, d.Inverse(), inv)
		}
		if inv.Inverse() != d {
			t.Errorf("%v.Inverse() = %v, want %v", inv, inv.Inverse(), d)
		}
	}

	for _, d := range Directions {
		if d.Inverse().Inverse() != d {
			t.Errorf("Inverse of %v is not involutive", d)
		}
	}
}
