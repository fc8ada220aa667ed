package geom

// QuadCell records which of the four sub-quadrants of one tile-column at one
// elevation are occupied by track. C00 is the (row 0, col 0) quadrant and so
// on; a tile shared by two pieces is legal as long as they claim disjoint
// quadrants.
type QuadCell struct {
	C00, C01, C10, C11 bool
}

// FullCell occupies all four quadrants.
var FullCell = QuadCell{true, true, true, true}

// Mirror reflects the cell across the x = 0 plane, swapping its columns.
func (q QuadCell) Mirror() QuadCell {
	return QuadCell{q.C01, q.C00, q.C11, q.C10}
}

// Rotate permutes the quadrants for a 90 degree clockwise rotation about the
// vertical axis.
func (q QuadCell) Rotate() QuadCell {
	return QuadCell{q.C01, q.C11, q.C00, q.C10}
}

// Merge combines two cells. It reports false when any quadrant is claimed by
// both sides; otherwise the result is the union of the two footprints.
func (q QuadCell) Merge(o QuadCell) (QuadCell, bool) {
	if q.C00 && o.C00 {
		return QuadCell{}, false
	}
	if q.C01 && o.C01 {
		return QuadCell{}, false
	}
	if q.C10 && o.C10 {
		return QuadCell{}, false
	}
	if q.C11 && o.C11 {
		return QuadCell{}, false
	}
	return QuadCell{
		C00: q.C00 || o.C00,
		C01: q.C01 || o.C01,
		C10: q.C10 || o.C10,
		C11: q.C11 || o.C11,
	}, true
}
