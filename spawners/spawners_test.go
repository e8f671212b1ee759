package spawners

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prime-catacombs/components"
	"prime-catacombs/ecs"
	"prime-catacombs/generation"
)

func TestCreateArchIsNamedAndTagged(t *testing.T) {
	world := ecs.NewWorld()
	var logged []string
	spawner := NewVisualSpawner(world, func(msg string) { logged = append(logged, msg) })

	number := generation.CatacombNumber{Value: "23", IsPrime: true}
	id := spawner.CreateArch(-1, number, "10111")

	comp, ok := world.GetComponent(id, components.Arch)
	require.True(t, ok)
	arch := comp.(*components.ArchComponent)
	assert.Equal(t, -1, arch.Position)
	assert.Equal(t, number, arch.Number)

	name, ok := world.GetComponent(id, components.Name)
	require.True(t, ok)
	assert.Equal(t, "archway 10111", name.(*components.NameComponent).Name)

	entity := world.GetEntity(id)
	assert.True(t, entity.HasTag(TagLayout))
	assert.True(t, entity.HasTag(TagWall))
	assert.Equal(t, []string{"archway 10111 created at -1"}, logged)
}

func TestLayoutVisualsShareTheLayoutTag(t *testing.T) {
	world := ecs.NewWorld()
	spawner := NewVisualSpawner(world, nil)

	graffiti := &generation.Graffiti{Text: "turn back"}
	ids := []ecs.EntityID{
		spawner.CreateBlankWall(0, graffiti),
		spawner.CreateTorch(0, 0.5),
		spawner.CreateFloor(-1, 1),
	}

	var tagged []ecs.EntityID
	for _, e := range world.GetEntitiesWithTag(TagLayout) {
		tagged = append(tagged, e.ID)
	}
	assert.Equal(t, ids, tagged)
	assert.Len(t, world.GetEntitiesWithTag(TagTorch), 1)

	comp, _ := world.GetComponent(ids[1], components.Torch)
	torch := comp.(*components.TorchComponent)
	assert.False(t, torch.Lit)
	assert.InDelta(t, 0.5, torch.Intensity, 1e-9)

	comp, _ = world.GetComponent(ids[0], components.BlankWall)
	assert.Same(t, graffiti, comp.(*components.BlankWallComponent).Graffiti)
}
