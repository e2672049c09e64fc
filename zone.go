package main

// Point is a location in tempo/efficiency space.
type Point struct {
	X float64 // adjusted tempo
	Y float64 // adjusted efficiency margin
}

// Zone is a closed polygon in tempo/efficiency space. Vertices are listed
// in draw order; the closing edge back to the first vertex is implied.
type Zone struct {
	Vertices []Point
}

// excellenceZone is the trapezoid historically associated with deep
// tournament runs. Same corners the broadcast graphic uses.
var excellenceZone = Zone{Vertices: []Point{
	{64.5, 20}, // bottom left
	{70.2, 20}, // bottom right
	{72, 40},   // top right
	{62.5, 40}, // top left
}}

// Contains reports whether p lies inside the zone, using an even-odd ray
// cast toward +x. Edges are half-open: a point sitting exactly on the
// left or bottom edge counts as inside, on the right or top edge as
// outside, so no point can land in both buckets.
func (z Zone) Contains(p Point) bool {
	inside := false
	n := len(z.Vertices)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := z.Vertices[i], z.Vertices[j]
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		t := (p.Y - a.Y) / (b.Y - a.Y)
		if p.X < a.X+t*(b.X-a.X) {
			inside = !inside
		}
	}
	return inside
}

// classifyTeams splits the ratings table into teams inside and outside
// the excellence zone. Input order is preserved within each bucket.
func classifyTeams(teams []Team) (inside, outside []Team) {
	for _, t := range teams {
		if excellenceZone.Contains(Point{t.AdjTempo, t.AdjEM}) {
			inside = append(inside, t)
		} else {
			outside = append(outside, t)
		}
	}
	return inside, outside
}
