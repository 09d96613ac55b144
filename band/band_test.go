package band

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBand(t *testing.T) {
	assert := assert.New(t)

	bd := NewBand(0)
	assert.Equal(DEFAULT_SIZE, bd.Size())
	assert.Equal(0, bd.Index())
	for n := range bd.Size() {
		assert.Equal(byte(0), bd.Cell(n))
	}

	bd = NewBand(16)
	assert.Equal(16, bd.Size())
}

func TestBand_Right_Cyclic(t *testing.T) {
	assert := assert.New(t)

	for _, size := range []int{1, 2, 7, 2048} {
		bd := NewBand(size)
		for n := range size {
			bd.Right()
			assert.Equal((n+1)%size, bd.Index(), "size %v", size)
		}
		assert.Equal(0, bd.Index(), "size %v", size)
	}
}

func TestBand_Left_Cyclic(t *testing.T) {
	assert := assert.New(t)

	for _, size := range []int{1, 2, 7, 2048} {
		bd := NewBand(size)
		bd.Left()
		assert.Equal(size-1, bd.Index(), "size %v", size)
		for range size - 1 {
			bd.Left()
		}
		assert.Equal(0, bd.Index(), "size %v", size)
	}
}

func TestBand_Increment_Wrap(t *testing.T) {
	assert := assert.New(t)

	bd := NewBand(4)
	for v := range 256 {
		bd.Write(byte(v))
		for range 256 {
			bd.Increment()
		}
		assert.Equal(byte(v), bd.Read())
	}

	bd.Write(255)
	bd.Increment()
	assert.Equal(byte(0), bd.Read())
}

func TestBand_Decrement_Wrap(t *testing.T) {
	assert := assert.New(t)

	bd := NewBand(4)
	for v := range 256 {
		bd.Write(byte(v))
		for range 256 {
			bd.Decrement()
		}
		assert.Equal(byte(v), bd.Read())
	}

	bd.Write(0)
	bd.Decrement()
	assert.Equal(byte(255), bd.Read())
}

func TestBand_ReadWrite(t *testing.T) {
	assert := assert.New(t)

	bd := NewBand(3)
	bd.Write(0x41)
	bd.Right()
	bd.Write(0x42)
	bd.Right()
	bd.Right()

	assert.Equal(byte(0x41), bd.Read())
	assert.Equal(byte(0x42), bd.Cell(1))
	assert.Equal(byte(0x42), bd.Cell(-2))
	assert.Equal(byte(0x41), bd.Cell(3))
}

func TestBand_Reset(t *testing.T) {
	assert := assert.New(t)

	bd := NewBand(8)
	bd.Right()
	bd.Write(9)
	bd.Reset()

	assert.Equal(0, bd.Index())
	assert.Equal(byte(0), bd.Cell(1))
	assert.Equal(8, bd.Size())
}

func TestBand_Window(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name   string
		size   int
		index  int
		radius int
		first  int
		count  int
	}){
		{"middle", 16, 8, 2, 6, 5},
		{"left_edge", 16, 0, 2, 14, 5},
		{"right_edge", 16, 15, 2, 13, 5},
		{"clipped", 4, 0, 8, 15 % 4, 3},
		{"zero_radius", 4, 2, 0, 2, 1},
	}

	for _, entry := range table {
		bd := NewBand(entry.size)
		for n := range entry.size {
			bd.Write(byte(n))
			bd.Right()
		}
		for range entry.index {
			bd.Right()
		}

		first, cells := bd.Window(entry.radius)
		assert.Equal(entry.first, first, entry.name)
		assert.Len(cells, entry.count, entry.name)
		for n, cell := range cells {
			assert.Equal(byte((first+n)%entry.size), cell, entry.name)
		}
	}
}
