package animations

// Sequence is an immutable run of images shared by every entity showing it.
type Sequence struct {
	Images   int // number of images
	Duration int // ticks each image stays up
	Loop     bool
}

// NewSequence builds a sequence, clamping to at least one image shown for
// at least one tick.
func NewSequence(images, duration int, loop bool) *Sequence {
	return &Sequence{Images: max(images, 1), Duration: max(duration, 1), Loop: loop}
}

// Length is the number of ticks in one pass.
func (s *Sequence) Length() int {
	return s.Images * s.Duration
}

// Animation is a per-entity playback cursor over a shared Sequence.
type Animation struct {
	seq   *Sequence
	frame int
	done  bool
}

func NewAnimation(seq *Sequence) *Animation {
	return &Animation{seq: seq}
}

// Copy starts a fresh cursor over the same sequence.
func (a *Animation) Copy() *Animation {
	return &Animation{seq: a.seq}
}

func (a *Animation) Update() {
	n := a.seq.Length()
	if a.seq.Loop {
		a.frame = (a.frame + 1) % n
		return
	}
	a.frame = min(a.frame+1, n-1)
	if a.frame >= n-1 {
		a.done = true
	}
}

// Frame is the tick position inside the sequence.
func (a *Animation) Frame() int {
	return a.frame
}

// SetFrame jumps to a tick position, clamped to the sequence.
func (a *Animation) SetFrame(frame int) {
	a.frame = min(max(frame, 0), a.seq.Length()-1)
}

// Image is the index of the image currently shown.
func (a *Animation) Image() int {
	return a.frame / a.seq.Duration
}

// Done reports whether a non-looping animation has reached its last tick.
func (a *Animation) Done() bool {
	return a.done
}

func (a *Animation) Sequence() *Sequence {
	return a.seq
}
