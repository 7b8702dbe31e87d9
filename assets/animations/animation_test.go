package animations

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoopingWraps(t *testing.T) {
	a := NewAnimation(NewSequence(3, 2, true))
	seen := []int{}
	for i := 0; i < 7; i++ {
		a.Update()
		seen = append(seen, a.Image())
	}
	assert.Equal(t, []int{0, 1, 1, 2, 2, 0, 0}, seen)
	assert.False(t, a.Done())
}

func TestNonLoopingClampsAndFinishes(t *testing.T) {
	a := NewAnimation(NewSequence(2, 3, false))
	for i := 0; i < 4; i++ {
		a.Update()
		assert.False(t, a.Done(), "tick %d", i)
	}
	a.Update()
	assert.True(t, a.Done())
	assert.Equal(t, 5, a.Frame())

	for i := 0; i < 10; i++ {
		a.Update()
	}
	assert.Equal(t, 5, a.Frame())
	assert.Equal(t, 1, a.Image())
	assert.True(t, a.Done())
}

func TestCopySharesSequenceNotCursor(t *testing.T) {
	seq := NewSequence(4, 5, true)
	a := NewAnimation(seq)
	a.Update()
	a.Update()

	b := a.Copy()
	assert.Same(t, a.Sequence(), b.Sequence())
	assert.Equal(t, 0, b.Frame())
	assert.Equal(t, 2, a.Frame())
}

func TestSetFrameClamps(t *testing.T) {
	a := NewAnimation(NewSequence(4, 6, false))
	a.SetFrame(7)
	assert.Equal(t, 1, a.Image())
	a.SetFrame(100)
	assert.Equal(t, 23, a.Frame())
	a.SetFrame(-3)
	assert.Equal(t, 0, a.Frame())
}

func TestNewSequenceClamps(t *testing.T) {
	s := NewSequence(0, 0, true)
	assert.Equal(t, 1, s.Length())
}
