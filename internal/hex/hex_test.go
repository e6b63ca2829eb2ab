package hex

import "testing"

const testRadius = 8

// offsetsInBox returns every offset with |col|,|row| <= n.
func offsetsInBox(n int) []Offset {
	res := make([]Offset, 0, (2*n+1)*(2*n+1))
	for row := -n; row <= n; row++ {
		for col := -n; col <= n; col++ {
			res = append(res, Offset{Col: col, Row: row})
		}
	}
	return res
}

// bfsDistance counts steps over Neighbors from a to b, staying inside the box.
func bfsDistance(a, b Offset, n int) int {
	if a == b {
		return 0
	}
	inBox := func(o Offset) bool {
		return o.Col >= -n && o.Col <= n && o.Row >= -n && o.Row <= n
	}
	dist := map[Offset]int{a: 0}
	queue := []Offset{a}
	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nb := range Neighbors(cur) {
			if !inBox(nb) {
				continue
			}
			if _, seen := dist[nb]; seen {
				continue
			}
			dist[nb] = dist[cur] + 1
			if nb == b {
				return dist[nb]
			}
			queue = append(queue, nb)
		}
	}
	return -1
}

func TestNewCubeCorrectsS(t *testing.T) {
	tests := []struct {
		q, r, s int
		wantS   int
	}{
		{0, 0, 0, 0},
		{1, -1, 0, 0},
		{1, 2, 3, -3},
		{-4, 7, 100, -3},
		{5, 5, -10, -10},
	}

	for _, tt := range tests {
		c := NewCube(tt.q, tt.r, tt.s)
		if c.S != tt.wantS {
			t.Errorf("NewCube(%d, %d, %d).S = %d, want %d", tt.q, tt.r, tt.s, c.S, tt.wantS)
		}
		if c.Q+c.R+c.S != 0 {
			t.Errorf("NewCube(%d, %d, %d) = %v, components do not sum to zero", tt.q, tt.r, tt.s, c)
		}
	}
}

func TestCubeArithmeticKeepsInvariant(t *testing.T) {
	for q := -5; q <= 5; q++ {
		for r := -5; r <= 5; r++ {
			a := Axial(q, r)
			b := Axial(r, -q)
			for _, c := range []Cube{a.Add(b), a.Sub(b), a.Scale(3)} {
				if c.Q+c.R+c.S != 0 {
					t.Fatalf("%v breaks q+r+s == 0", c)
				}
			}
			if a.Add(b).Sub(b) != a {
				t.Errorf("%v + %v - %v != %v", a, b, b, a)
			}
		}
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b Cube
		want int
	}{
		{Axial(0, 0), Axial(0, 0), 0},
		{Axial(0, 0), Axial(1, 0), 1},
		{Axial(0, 0), Axial(2, -1), 2},
		{Axial(-3, 3), Axial(3, -3), 6},
		{Axial(1, 2), Axial(-2, 1), 4},
		{Axial(1, 2), Axial(-2, 2), 3},
	}

	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); got != tt.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
		if got := Distance(tt.b, tt.a); got != tt.want {
			t.Errorf("Distance(%v, %v) = %d, want %d", tt.b, tt.a, got, tt.want)
		}
	}
}

func TestOffsetRoundTrip(t *testing.T) {
	for _, o := range offsetsInBox(20) {
		c := ToCube(o)
		if c.Q+c.R+c.S != 0 {
			t.Fatalf("ToCube(%v) = %v, components do not sum to zero", o, c)
		}
		if back := ToOffset(c); back != o {
			t.Errorf("ToOffset(ToCube(%v)) = %v", o, back)
		}
	}
}

func TestCubeRoundTrip(t *testing.T) {
	for q := -15; q <= 15; q++ {
		for r := -15; r <= 15; r++ {
			c := Axial(q, r)
			if back := ToCube(ToOffset(c)); back != c {
				t.Errorf("ToCube(ToOffset(%v)) = %v", c, back)
			}
		}
	}
}

func TestNeighborsAreDistinctAndAtDistanceOne(t *testing.T) {
	for _, o := range offsetsInBox(testRadius) {
		seen := make(map[Offset]bool, 6)
		for i, n := range Neighbors(o) {
			if seen[n] {
				t.Errorf("Neighbors(%v) repeats %v", o, n)
			}
			seen[n] = true
			if d := OffsetDistance(o, n); d != 1 {
				t.Errorf("OffsetDistance(%v, %v) = %d, want 1", o, n, d)
			}
			if want := ToOffset(ToCube(o).Add(CubeDirections[i])); n != want {
				t.Errorf("Neighbors(%v)[%d] = %v, want %v", o, i, n, want)
			}
		}
	}
}

func TestNeighborWraps(t *testing.T) {
	o := Offset{Col: 2, Row: 3}
	if o.Neighbor(-1) != o.Neighbor(5) {
		t.Errorf("Neighbor(-1) = %v, want %v", o.Neighbor(-1), o.Neighbor(5))
	}
	if o.Neighbor(6) != o.Neighbor(0) {
		t.Errorf("Neighbor(6) = %v, want %v", o.Neighbor(6), o.Neighbor(0))
	}
}

func TestAdjacencySymmetry(t *testing.T) {
	cells := offsetsInBox(5)
	for _, a := range cells {
		for _, b := range cells {
			if IsAdjacent(a, b) != IsAdjacent(b, a) {
				t.Errorf("IsAdjacent(%v, %v) = %v but IsAdjacent(%v, %v) = %v",
					a, b, IsAdjacent(a, b), b, a, IsAdjacent(b, a))
			}
		}
	}
}

func TestAdjacencyMatchesNeighbors(t *testing.T) {
	cells := offsetsInBox(5)
	for _, a := range cells {
		nbs := Neighbors(a)
		for _, b := range cells {
			inList := false
			for _, n := range nbs {
				if n == b {
					inList = true
					break
				}
			}
			if IsAdjacent(a, b) != inList {
				t.Errorf("IsAdjacent(%v, %v) = %v, neighbor list says %v", a, b, IsAdjacent(a, b), inList)
			}
		}
	}
}

func TestDistanceMatchesBFS(t *testing.T) {
	// The box is padded so shortest paths between inner cells never need to leave it.
	const inner, box = 4, 10
	cells := offsetsInBox(inner)
	for _, a := range cells {
		for _, b := range cells {
			want := bfsDistance(a, b, box)
			if got := OffsetDistance(a, b); got != want {
				t.Errorf("OffsetDistance(%v, %v) = %d, BFS = %d", a, b, got, want)
			}
		}
	}
}

func TestRange(t *testing.T) {
	center := Offset{Col: 1, Row: -3}
	for radius := 0; radius <= 4; radius++ {
		got := Range(center, radius)
		if want := 1 + 3*radius*(radius+1); len(got) != want {
			t.Errorf("len(Range(%v, %d)) = %d, want %d", center, radius, len(got), want)
		}
		seen := make(map[Offset]bool, len(got))
		for _, o := range got {
			if seen[o] {
				t.Errorf("Range(%v, %d) repeats %v", center, radius, o)
			}
			seen[o] = true
			if d := OffsetDistance(center, o); d > radius {
				t.Errorf("Range(%v, %d) includes %v at distance %d", center, radius, o, d)
			}
		}
	}

	if got := Range(center, -1); got != nil {
		t.Errorf("Range(%v, -1) = %v, want nil", center, got)
	}
}
