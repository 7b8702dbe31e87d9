// Package assets resolves animation tags to shared image sequences.
package assets

import (
	"sync"

	"github.com/automoto/ninja-platformer/assets/animations"
	"github.com/automoto/ninja-platformer/config"
)

// Provider looks up the sequence for a tag such as "player/run".
type Provider interface {
	Lookup(tag string) (*animations.Sequence, bool)
}

// Catalog is a Provider over config.Animations. Sequences are built once
// per tag and shared.
type Catalog struct {
	mu   sync.Mutex
	defs map[string]config.AnimationDef
	seqs map[string]*animations.Sequence
}

// NewCatalog snapshots the given definitions.
func NewCatalog(defs map[string]config.AnimationDef) *Catalog {
	c := &Catalog{
		defs: make(map[string]config.AnimationDef, len(defs)),
		seqs: map[string]*animations.Sequence{},
	}
	for tag, def := range defs {
		c.defs[tag] = def
	}
	return c
}

// Default builds a catalog over the configured animations.
func Default() *Catalog {
	return NewCatalog(config.Animations)
}

func (c *Catalog) Lookup(tag string) (*animations.Sequence, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if seq, ok := c.seqs[tag]; ok {
		return seq, true
	}
	def, ok := c.defs[tag]
	if !ok {
		return nil, false
	}
	dur := def.Duration
	if dur == 0 {
		dur = config.DefaultImageDuration
	}
	seq := animations.NewSequence(def.Images, dur, def.Loop)
	c.seqs[tag] = seq
	return seq, true
}
