package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go-adventurer/internal/component"
	"go-adventurer/internal/event"
	"go-adventurer/internal/types"
	"go-adventurer/internal/utils"
)

func addHealingPowerup(w *testWorld, x, y float64, amount int) types.EntityID {
	return AddPowerup(w.ecs, component.Body{X: x, Y: y, Width: 50, Height: 50}, &component.Powerup{
		Name:          "Health Potion",
		Kind:          types.PowerupHealing,
		HealingAmount: amount,
	})
}

func TestHealingPowerup(t *testing.T) {
	w := newTestWorld(t, utils.NewPRNGService(1))
	adv := w.addAdventurer(1000, 1000, types.ClassWarrior)
	w.ecs.Creatures[adv].Hitpoints = 50
	id := addHealingPowerup(w, 1020, 1050, 10)

	w.powerups.Update()

	assert.Equal(t, 60, w.ecs.Creatures[adv].Hitpoints)
	assert.Equal(t, []string{"+10 HP"}, floatingTexts(w.ecs, adv))
	assert.True(t, w.ecs.Powerups[id].IsActivated(w.ecs.World.Now))
	assert.Equal(t, 1, w.recorder.count(event.PowerupCollected))

	w.advance(time.Second)
	w.powerups.Update()
	assert.Equal(t, 60, w.ecs.Creatures[adv].Hitpoints, "consumed once")
}

func TestHealingPowerupIgnoredAtFullHealth(t *testing.T) {
	w := newTestWorld(t, utils.NewPRNGService(1))
	adv := w.addAdventurer(1000, 1000, types.ClassWarrior)
	id := addHealingPowerup(w, 1020, 1050, 10)

	w.powerups.Update()

	assert.Equal(t, 100, w.ecs.Creatures[adv].Hitpoints)
	assert.False(t, w.ecs.Powerups[id].IsActivated(w.ecs.World.Now))
	assert.Empty(t, floatingTexts(w.ecs, adv))
	assert.Zero(t, w.recorder.count(event.PowerupCollected))
}

func TestItemPowerupGoesToInventory(t *testing.T) {
	w := newTestWorld(t, utils.NewPRNGService(1))
	id := w.player.NewAdventurer(types.ClassRogue)
	body := w.ecs.Bodies[id]
	body.X, body.Y = 1000, 1000

	weapon := component.NewWeapon("Test Weapon", types.SlotMainHand, types.RarityCommon, component.Weapon{
		WeaponType:  types.WeaponBow,
		AttackPower: 30,
	})
	AddPowerup(w.ecs, component.Body{X: 1020, Y: 1050, Width: 50, Height: 50}, &component.Powerup{
		Name: "Test Weapon",
		Kind: types.PowerupItem,
		Item: weapon,
	})

	w.powerups.Update()

	adv := w.ecs.Adventurers[id]
	require.Equal(t, []*component.Item{weapon}, adv.Inventory)
	assert.Equal(t, "Simple Bow", adv.Equipment[types.SlotMainHand].Name)
	assert.Equal(t, []string{"+Test Weapon"}, floatingTexts(w.ecs, id))
}

func TestPowerupBobs(t *testing.T) {
	w := newTestWorld(t, utils.NewPRNGService(1))
	id := addHealingPowerup(w, 500, 500, 10)

	w.powerups.Update()
	body := w.ecs.Bodies[id]
	assert.Equal(t, 500.0, w.ecs.Powerups[id].BaseY)
	assert.InDelta(t, 500.0, body.Y, 100.0/8+1e-9)
}
