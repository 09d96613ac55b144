package emulator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStack_Push(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	assert.True(s.Empty())

	s.Push(12)
	assert.False(s.Empty())
	assert.Equal(1, s.Len())
	assert.Equal(12, s.Data[0])
}

func TestStack_Pop(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Push(3)
	s.Push(7)

	val, ok := s.Pop()
	assert.True(ok)
	assert.Equal(7, val)
	assert.Equal(1, s.Len())

	val, ok = s.Pop()
	assert.True(ok)
	assert.Equal(3, val)
	assert.True(s.Empty())
}

func TestStack_Pop_Empty(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	val, ok := s.Pop()
	assert.False(ok)
	assert.Equal(0, val)
}

func TestStack_Peek(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	_, ok := s.Peek()
	assert.False(ok)

	s.Push(3)
	s.Push(7)

	val, ok := s.Peek()
	assert.True(ok)
	assert.Equal(7, val)
	assert.Equal(2, s.Len())
}

func TestStack_Reset(t *testing.T) {
	assert := assert.New(t)

	s := &Stack{}
	s.Reset()
	assert.True(s.Empty())

	s.Push(1)
	s.Push(2)
	s.Reset()
	assert.True(s.Empty())
	assert.Equal(0, s.Len())
}
