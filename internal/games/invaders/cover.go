package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Cover is a destructible shield made of independent cells.
// A cell has no health: one hit removes it. An emptied cover stays in place
// until the next round.
type Cover struct {
	X, Y  int         // Anchor (top-left of the shape mask)
	cells []core.Rect // Remaining cells, in mask order
}

// NewCover builds a cover anchored at (x, y) from a shape mask of '1'/'0'
// rows. Every '1' becomes one cellSize x cellSize cell.
func NewCover(x, y int, shape []string, cellSize int) *Cover {
	c := &Cover{X: x, Y: y}
	for row, line := range shape {
		for col, flag := range line {
			if flag != '1' {
				continue
			}
			c.cells = append(c.cells, core.NewRect(x+col*cellSize, y+row*cellSize, cellSize, cellSize))
		}
	}
	return c
}

// Cells returns the remaining cells.
func (c *Cover) Cells() []core.Rect {
	return c.cells
}

// Len returns the number of remaining cells.
func (c *Cover) Len() int {
	return len(c.cells)
}

// Empty reports whether every cell has been destroyed.
func (c *Cover) Empty() bool {
	return len(c.cells) == 0
}

// Overlaps reports whether any remaining cell intersects r.
func (c *Cover) Overlaps(r core.Rect) bool {
	for _, cell := range c.cells {
		if cell.Intersects(r) {
			return true
		}
	}
	return false
}

// RemoveCellsCollidingWith deletes every cell intersecting r and returns
// how many were removed.
func (c *Cover) RemoveCellsCollidingWith(r core.Rect) int {
	kept := c.cells[:0]
	for _, cell := range c.cells {
		if !cell.Intersects(r) {
			kept = append(kept, cell)
		}
	}
	removed := len(c.cells) - len(kept)
	c.cells = kept
	return removed
}

// newCovers lays out count covers evenly across the world width:
// gap = (width - count*coverWidth) / (count+1), cover i at i*(coverWidth+gap)+gap.
func newCovers(w *world, count int, shape []string, cellSize, y int) []*Cover {
	coverWidth := 0
	for _, row := range shape {
		coverWidth = max(coverWidth, len(row))
	}
	coverWidth *= cellSize

	covers := make([]*Cover, 0, count)
	gap := float64(w.width-count*coverWidth) / float64(count+1)
	for i := range count {
		x := float64(i)*(float64(coverWidth)+gap) + gap
		covers = append(covers, NewCover(int(x), y, shape, cellSize))
	}
	return covers
}
