package core

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	require.Equal(t, 80, s.Width())
	require.Equal(t, 24, s.Height())

	for y := range s.Height() {
		for x := range s.Width() {
			require.Equal(t, ' ', s.Get(x, y), "new screen should be blank at (%d, %d)", x, y)
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorYellow)
	assert.Equal(t, 'X', s.Get(5, 5))
	assert.Equal(t, Cell{Rune: 'X', Color: ColorYellow}, s.GetCell(5, 5))

	// Out of bounds writes are ignored
	s.Set(-1, 0, 'A', ColorDefault)
	s.Set(100, 0, 'A', ColorDefault)
	s.Set(0, -1, 'A', ColorDefault)
	s.Set(0, 100, 'A', ColorDefault)

	assert.Equal(t, ' ', s.Get(-1, 0))
	assert.Equal(t, ' ', s.Get(100, 0))
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(0, 0, 10, 10), 'X', ColorRed)

	s.Clear()

	for y := range 10 {
		for x := range 10 {
			assert.Equal(t, blank, s.GetCell(x, y))
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawText(2, 1, "Hello", ColorGreen)

	assert.True(t, strings.HasPrefix(s.Row(1)[2:], "Hello"))
	assert.Equal(t, ColorGreen, s.GetCell(2, 1).Color)

	// Text should be clipped at boundaries
	s.DrawText(18, 0, "Hello", ColorDefault)
	assert.Equal(t, 'H', s.Get(18, 0))
	assert.Equal(t, 'e', s.Get(19, 0))
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(20, 5)
	s.DrawTextCentered(2, "Hi", ColorDefault)

	// "Hi" is 2 chars, centered in 20 chars should start at position 9
	assert.Equal(t, 'H', s.Get(9, 2))
	assert.Equal(t, 'i', s.Get(10, 2))
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawRect(NewRect(2, 2, 3, 3), '#', ColorYellow)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			assert.Equal(t, '#', s.Get(x, y))
		}
	}

	assert.Equal(t, ' ', s.Get(1, 1), "outside area untouched")
	assert.Equal(t, ' ', s.Get(5, 5), "outside area untouched")
}

func TestScreenString(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 0, "AAAAA", ColorDefault)
	s.DrawText(0, 1, "BBBBB", ColorDefault)
	s.DrawText(0, 2, "CCCCC", ColorDefault)

	assert.Equal(t, "AAAAA\nBBBBB\nCCCCC", s.String())
}

func TestScreenResize(t *testing.T) {
	s := NewScreen(10, 10)
	s.DrawText(0, 0, "Hello", ColorDefault)

	s.Resize(8, 4)
	assert.Equal(t, 8, s.Width())
	assert.Equal(t, 4, s.Height())
	assert.Equal(t, "        ", s.Row(0), "resize clears the buffer")
}

func TestScreenRow(t *testing.T) {
	s := NewScreen(10, 5)
	s.DrawText(0, 2, "Test", ColorDefault)

	row := s.Row(2)
	assert.True(t, strings.HasPrefix(row, "Test"))
	assert.Len(t, row, 10)

	assert.Equal(t, "          ", s.Row(-1))
}
