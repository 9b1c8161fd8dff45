package slimejump

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/treasure-arcade/internal/core"
)

func TestDefaultLayoutBuild(t *testing.T) {
	ents := DefaultLayout().Build(550)
	require.Len(t, ents, 16)

	counts := map[Kind]int{}
	for _, e := range ents {
		counts[e.Kind]++
	}
	assert.Equal(t, 10, counts[KindGround])
	assert.Equal(t, 5, counts[KindTrap])
	assert.Equal(t, 1, counts[KindTreasure])

	// Declaration order is kept: first ground, first trap, treasure last
	assert.Equal(t, core.NewRect(0, 550, 500, 50), ents[0].Rect)
	assert.Equal(t, core.NewRect(550, 450, 100, 20), ents[6].Rect)
	assert.Equal(t, core.NewRect(500, 540, 100, 10), ents[10].Rect)
	assert.Equal(t, Entity{Kind: KindTreasure, Rect: core.NewRect(2800, 500, 50, 50)}, ents[15])
}

func TestLayoutBuildIsDeterministic(t *testing.T) {
	a := DefaultLayout().Build(550)
	b := DefaultLayout().Build(550)
	assert.Equal(t, a, b)

	// Shifting the ground line moves everything with it
	c := DefaultLayout().Build(250)
	for i := range a {
		assert.Equal(t, a[i].Rect.Y-300, c[i].Rect.Y)
	}
}

func TestEntityKinds(t *testing.T) {
	assert.True(t, Entity{Kind: KindGround}.Solid())
	assert.True(t, Entity{Kind: KindTrap}.Lethal())
	assert.True(t, Entity{Kind: KindTreasure}.Goal())
	assert.False(t, Entity{Kind: KindTrap}.Solid())
	assert.Equal(t, "treasure", KindTreasure.String())
	assert.NotEqual(t, Entity{Kind: KindTrap}.Color(), Entity{Kind: KindGround}.Color())
}
