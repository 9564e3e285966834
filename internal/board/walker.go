package board

// Step returns the coordinate k cells away from origin in the given
// direction. The second return is false when the move would need a negative
// row or column; no upper bound is applied here, so rays toward Right, Down,
// and DownRight are unbounded until a caller also checks grid membership.
func Step(origin Coords, dir Direction, k int) (Coords, bool) {
	dRow, dCol := dir.delta(k)
	row := origin.Row + dRow
	col := origin.Col + dCol
	if row < 0 || col < 0 {
		return Coords{}, false
	}
	return Coords{Row: row, Col: col}, true
}

// Ray is a forward-only cursor over the coordinates reached by walking one
// direction from an origin, starting one cell out. It is lazy and
// potentially infinite; callers stop iterating when Next reports absence or
// when their own bound (typically grid membership) is hit. A fresh Ray can
// be started from any origin, but an individual Ray is only consumed
// forward.
type Ray struct {
	origin Coords
	dir    Direction
	k      int
}

// NewRay starts a ray at origin heading in dir. The origin itself is not
// part of the sequence.
func NewRay(origin Coords, dir Direction) *Ray {
	return &Ray{origin: origin, dir: dir}
}

// Next advances the cursor and returns the next coordinate on the ray.
// It returns false once the ray leaves the non-negative quadrant, and keeps
// returning false afterwards.
func (r *Ray) Next() (Coords, bool) {
	r.k++
	return Step(r.origin, r.dir, r.k)
}
