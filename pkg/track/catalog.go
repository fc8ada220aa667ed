package track

import "github.com/balidani/coaster-generator/pkg/geom"

type pieceKey struct {
	id      PieceID
	heading geom.Heading
}

// Catalog holds every piece footprint in all four orientations. It is built
// once at startup and read-only afterwards.
type Catalog struct {
	pieces map[pieceKey]Piece
}

// NewCatalog expands the canonical shape tables into the full oriented
// catalogue: canonical right-handed shapes, then left-handed mirrors, then
// the four rotations of everything.
func NewCatalog() *Catalog {
	shapes := make(map[PieceID]Piece, len(rightHanded)+len(mirrorPairs))
	for id, piece := range rightHanded {
		shapes[id] = piece
	}
	for left, right := range mirrorPairs {
		shapes[left] = shapes[right].Mirror()
	}

	c := &Catalog{pieces: make(map[pieceKey]Piece, len(shapes)*4)}
	for id, piece := range shapes {
		c.pieces[pieceKey{id, geom.North}] = piece
		cur := piece
		for _, h := range []geom.Heading{geom.East, geom.South, geom.West} {
			cur = cur.Rotate()
			c.pieces[pieceKey{id, h}] = cur
		}
	}
	return c
}

// Piece returns the footprint of a piece oriented to the given heading.
func (c *Catalog) Piece(id PieceID, heading geom.Heading) (Piece, bool) {
	p, ok := c.pieces[pieceKey{id, heading}]
	return p, ok
}

// IDs returns every piece id the catalogue knows, in no particular order.
func (c *Catalog) IDs() []PieceID {
	seen := make(map[PieceID]struct{}, len(c.pieces)/4)
	var ids []PieceID
	for key := range c.pieces {
		if _, ok := seen[key.id]; ok {
			continue
		}
		seen[key.id] = struct{}{}
		ids = append(ids, key.id)
	}
	return ids
}
