package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticSource_UnboundNamesReadZero(t *testing.T) {
	src := &StaticSource{}
	assert.Zero(t, src.Axis("Horizontal"))
	assert.Zero(t, src.Axis("no such axis"))
	assert.False(t, src.Held("Sprint"))
}

func TestStaticSource_BoundValues(t *testing.T) {
	src := &StaticSource{
		Axes:    map[string]float64{"Horizontal": 0.5, "Mouse X": -1},
		Actions: map[string]bool{"Sprint": true},
	}
	assert.Equal(t, 0.5, src.Axis("Horizontal"))
	assert.Equal(t, -1.0, src.Axis("Mouse X"))
	assert.True(t, src.Held("Sprint"))
	assert.Zero(t, src.Axis("Vertical"))
}
