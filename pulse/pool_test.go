package pulse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolHandlesStartAtOne(t *testing.T) {
	p := newPool[string]("test")

	first := p.add("a")
	second := p.add("b")

	assert.Equal(t, uint32(1), first)
	assert.Equal(t, uint32(2), second)

	_, ok := p.get(0)
	assert.False(t, ok)
}

func TestPoolRemove(t *testing.T) {
	p := newPool[string]("test")
	id := p.add("a")

	item, ok := p.remove(id)
	require.True(t, ok)
	assert.Equal(t, "a", item)

	_, ok = p.get(id)
	assert.False(t, ok)

	// a second remove is reported, not fatal
	_, ok = p.remove(id)
	assert.False(t, ok)
}

func TestPoolDoesNotReuseHandles(t *testing.T) {
	p := newPool[int]("test")

	id := p.add(1)
	p.remove(id)

	assert.NotEqual(t, id, p.add(2))
}

func TestPoolDrain(t *testing.T) {
	p := newPool[int]("test")
	p.add(1)
	p.add(2)
	p.add(3)

	assert.ElementsMatch(t, []int{1, 2, 3}, p.drain())
	assert.Empty(t, p.drain())
}
