package assets

import (
	"testing"

	"github.com/automoto/ninja-platformer/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogLookup(t *testing.T) {
	c := NewCatalog(map[string]config.AnimationDef{
		"enemy/run":   {Images: 8, Duration: 4, Loop: true},
		"player/jump": {Images: 1, Loop: true},
	})

	run, ok := c.Lookup("enemy/run")
	require.True(t, ok)
	assert.Equal(t, 32, run.Length())

	again, _ := c.Lookup("enemy/run")
	assert.Same(t, run, again)

	jump, ok := c.Lookup("player/jump")
	require.True(t, ok)
	assert.Equal(t, config.DefaultImageDuration, jump.Duration)

	_, ok = c.Lookup("ghost/idle")
	assert.False(t, ok)
}

func TestDefaultCoversEveryAction(t *testing.T) {
	c := Default()
	for _, tag := range []string{"player/idle", "player/run", "player/jump", "player/wall_slide", "enemy/idle", "enemy/run", "boss/idle", "boss/run", "particles/leaf", "particles/particle"} {
		_, ok := c.Lookup(tag)
		assert.True(t, ok, tag)
	}
}
