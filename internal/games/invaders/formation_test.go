package invaders

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

func newTestFormation(t *testing.T) *Formation {
	t.Helper()
	return NewFormation(testWorld(t), config.DefaultInvadersConfig().Formation)
}

func TestNewFormationGrid(t *testing.T) {
	f := newTestFormation(t)
	require.Equal(t, 55, f.Len())

	for i, a := range f.Aliens() {
		row, col := i/11, i%11
		assert.Equal(t, 75+col*55, a.X, "alien %d", i)
		assert.Equal(t, 110+row*55, a.Y, "alien %d", i)
		assert.Equal(t, kindForRow(row), a.Kind, "alien %d", i)
	}

	dx, dy := f.Direction()
	assert.Equal(t, 1, dx)
	assert.Equal(t, 1, dy)
}

func TestFormationMovesAsOne(t *testing.T) {
	f := newTestFormation(t)
	before := make([][2]int, f.Len())
	for i, a := range f.Aliens() {
		before[i] = [2]int{a.X, a.Y}
	}

	f.Move()

	for i, a := range f.Aliens() {
		assert.Equal(t, before[i][0]+1, a.X)
		assert.Equal(t, before[i][1]+1, a.Y)
	}
}

func TestFormationFlipsInSameFrame(t *testing.T) {
	tests := []struct {
		name   string
		setup  func(f *Formation)
		wantDX int
		wantDY int
	}{
		{
			name:   "right bound",
			setup:  func(f *Formation) { f.aliens[0].X = 800 - 25 - 48 + 1 },
			wantDX: -1,
			wantDY: 1,
		},
		{
			name:   "exactly at right bound keeps going",
			setup:  func(f *Formation) { f.aliens[0].X = 800 - 25 - 48 },
			wantDX: 1,
			wantDY: 1,
		},
		{
			name: "left bound",
			setup: func(f *Formation) {
				f.dx = -1
				f.aliens[54].X = 24
			},
			wantDX: 1,
			wantDY: 1,
		},
		{
			name:   "bottom bound",
			setup:  func(f *Formation) { f.aliens[54].Y = 590 - 32 + 1 },
			wantDX: 1,
			wantDY: -1,
		},
		{
			name: "top bound",
			setup: func(f *Formation) {
				f.dy = -1
				f.aliens[0].Y = 109
			},
			wantDX: 1,
			wantDY: 1,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newTestFormation(t)
			tt.setup(f)
			before := make([][2]int, f.Len())
			for i, a := range f.Aliens() {
				before[i] = [2]int{a.X, a.Y}
			}

			f.Move()

			dx, dy := f.Direction()
			assert.Equal(t, tt.wantDX, dx)
			assert.Equal(t, tt.wantDY, dy)
			// The new direction applies to every alien, including those
			// tested before the one that hit the bound.
			for i, a := range f.Aliens() {
				assert.Equal(t, before[i][0]+tt.wantDX, a.X, "alien %d", i)
				assert.Equal(t, before[i][1]+tt.wantDY, a.Y, "alien %d", i)
			}
		})
	}
}

func TestFormationFire(t *testing.T) {
	f := newTestFormation(t)
	clock := &testClock{rolls: []int{12}}

	assert.Nil(t, f.Fire(0, clock), "interval runs from time zero")
	assert.Empty(t, clock.calls)

	l := f.Fire(0.35, clock)
	require.NotNil(t, l)
	require.Len(t, clock.calls, 1)
	assert.Equal(t, [2]int{0, 54}, clock.calls[0])

	// Alien 12 is the bug at row 1, col 1.
	assert.Equal(t, 130+44/2, l.X)
	assert.Equal(t, 165+32, l.Y)
	assert.Equal(t, 6, l.Speed)
	assert.True(t, l.Active)

	assert.Nil(t, f.Fire(0.5, clock))
	assert.NotNil(t, f.Fire(0.8, clock))
}

func TestFormationFireWhenEmpty(t *testing.T) {
	f := newTestFormation(t)
	all := make([]int, f.Len())
	for i := range all {
		all[i] = i
	}
	f.Remove(all)
	require.True(t, f.Empty())

	clock := &testClock{}
	assert.Nil(t, f.Fire(100, clock))
	assert.Empty(t, clock.calls, "no shooter is drawn from an empty formation")

	// Moving an empty formation is a no-op.
	f.Move()
	dx, dy := f.Direction()
	assert.Equal(t, 1, dx)
	assert.Equal(t, 1, dy)
}

func TestFormationRemove(t *testing.T) {
	f := newTestFormation(t)
	first, sixth, seventh := f.aliens[0], f.aliens[5], f.aliens[6]

	removed := f.Remove([]int{0, 5, 5, 99, -1})
	assert.Equal(t, 2, removed)
	assert.Equal(t, 53, f.Len())
	assert.NotContains(t, f.Aliens(), first)
	assert.NotContains(t, f.Aliens(), sixth)
	assert.Same(t, seventh, f.Aliens()[4], "order is preserved")

	assert.Zero(t, f.Remove(nil))
}
