package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-adventurer/internal/component"
	"go-adventurer/internal/types"
	"go-adventurer/internal/utils"
	"go-adventurer/internal/utils/mocks"
)

func TestIdleDumbMonsterStartsWandering(t *testing.T) {
	for _, roll := range []float64{0.9, 0.1} {
		ctrl := gomock.NewController(t)
		rng := mocks.NewMockRandom(ctrl)
		rng.EXPECT().Float64().Return(roll)

		w := newTestWorld(t, rng)
		id := w.addMonster(1000, 100, types.AttackRanged, types.IntelligenceDumb)
		c := w.ecs.Creatures[id]
		require.Equal(t, types.DirectionNone, c.DirectionX)

		w.advance(5001 * time.Millisecond)
		w.ai.Think(id)

		assert.NotEqual(t, types.DirectionNone, c.DirectionX)
		assert.Equal(t, w.ecs.World.Now, w.ecs.Monsters[id].LastThinkingBreak)
	}
}

func TestIdleMonsterNeverStaysStillWithSeededRandom(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		w := newTestWorld(t, utils.NewPRNGService(seed))
		id := w.addMonster(1000, 100, types.AttackRanged, types.IntelligenceDumb)
		w.advance(5001 * time.Millisecond)
		w.ai.Think(id)
		assert.NotEqual(t, types.DirectionNone, w.ecs.Creatures[id].DirectionX, "seed %d", seed)
	}
}

func TestMonsterPausesDuringThinkingBreak(t *testing.T) {
	w := newTestWorld(t, utils.NewPRNGService(1))
	id := w.addMonster(1000, 100, types.AttackRanged, types.IntelligenceDumb)
	c := w.ecs.Creatures[id]
	c.SetDirectionX(types.DirectionRight)

	w.advance(500 * time.Millisecond)
	w.ai.Think(id)
	assert.Equal(t, types.DirectionNone, c.DirectionX)
	assert.Equal(t, types.DirectionRight, c.LastDirection)

	// После перерыва продолжает в прежнюю сторону
	w.advance(time.Second)
	w.ai.Think(id)
	assert.Equal(t, types.DirectionRight, c.DirectionX)
}

func TestMeleeMonsterLocksAndAttacks(t *testing.T) {
	w := newTestWorld(t, utils.NewPRNGService(1))
	platform := w.addPlatform(0, 1200, 3000, 50)
	adv := w.addAdventurer(1150, 1050, types.ClassWarrior)
	monster := w.addMonster(1000, 1050, types.AttackMelee, types.IntelligenceDumb)
	w.ecs.Creatures[adv].Platform = platform
	w.ecs.Creatures[monster].Platform = platform
	w.ecs.Monsters[monster].LastThinkingBreak = t0.Add(-10 * time.Second)

	w.ai.Think(monster)
	assert.Equal(t, adv, w.ecs.Monsters[monster].LockedTarget)
	assert.Equal(t, 100, w.ecs.Creatures[adv].Hitpoints, "still in the thinking break")

	w.advance(1001 * time.Millisecond)
	w.ai.Think(monster)
	assert.Equal(t, 90, w.ecs.Creatures[adv].Hitpoints)
	assert.Equal(t, w.ecs.World.Now, w.ecs.Creatures[monster].LastAttack)
	assert.Equal(t, types.DirectionRight, w.ecs.Creatures[monster].DirectionX)

	w.advance(500 * time.Millisecond)
	w.ai.Think(monster)
	assert.Equal(t, 90, w.ecs.Creatures[adv].Hitpoints, "attack is on cooldown")
}

func TestMeleeRange(t *testing.T) {
	w := newTestWorld(t, utils.NewPRNGService(1))
	platform := w.addPlatform(0, 1200, 3000, 50)
	monster := w.addMonster(1000, 1050, types.AttackMelee, types.IntelligenceDumb)
	near := w.addCreature(1140, 1050, 100, 150, 10) // в пределах половины ширины
	far := w.addCreature(1160, 1050, 100, 150, 10)
	other := w.addCreature(1100, 1050, 100, 150, 10)
	for _, id := range []types.EntityID{monster, near, far} {
		w.ecs.Creatures[id].Platform = platform
	}

	assert.True(t, w.ai.IsWithinMeleeRange(monster, near))
	assert.False(t, w.ai.IsWithinMeleeRange(monster, far))
	assert.False(t, w.ai.IsWithinMeleeRange(monster, other), "must share a platform")
}

func TestDeadMonsterDropsTarget(t *testing.T) {
	w := newTestWorld(t, utils.NewPRNGService(1))
	adv := w.addAdventurer(1150, 1050, types.ClassWarrior)
	monster := w.addMonster(1000, 1050, types.AttackMelee, types.IntelligenceDumb)
	w.ecs.Monsters[monster].LockedTarget = adv
	w.ecs.Creatures[monster].Hitpoints = 0

	w.ai.Think(monster)
	assert.Equal(t, types.NoEntity, w.ecs.Monsters[monster].LockedTarget)
}

func TestMonsterTurnsAtPlatformEdge(t *testing.T) {
	w := newTestWorld(t, utils.NewPRNGService(1))
	platform := w.addPlatform(500, 1200, 600, 50)
	monster := w.addMonster(1000, 1050, types.AttackRanged, types.IntelligenceDumb)
	c := w.ecs.Creatures[monster]
	c.Platform = platform
	c.SetDirectionX(types.DirectionRight)

	w.ai.setMovementDirection(monster)
	assert.Equal(t, types.DirectionLeft, c.DirectionX)

	w.ecs.Bodies[monster].X = 500
	w.ai.setMovementDirection(monster)
	assert.Equal(t, types.DirectionRight, c.DirectionX)
}

func TestRangedMonsterShoots(t *testing.T) {
	tests := []struct {
		name         string
		intelligence types.Intelligence
		attack       types.MonsterRangedAttack
		kind         component.ProjectileKind
	}{
		{"dumb archer", types.IntelligenceDumb, types.RangedArrow, component.KindBallistic},
		{"smart archer", types.IntelligenceSmart, types.RangedArrow, component.KindBallistic},
		{"homing archer", types.IntelligenceDumb, types.RangedHomingArrow, component.KindHoming},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestWorld(t, utils.NewPRNGService(3))
			adv := w.addAdventurer(2000, 1050, types.ClassWarrior)
			monster := w.addMonster(1000, 1050, types.AttackRanged, tt.intelligence)
			w.ecs.Monsters[monster].RangedAttack = tt.attack

			w.ai.Attack(monster, adv)

			require.Len(t, w.ecs.Projectiles, 1)
			for _, p := range w.ecs.Projectiles {
				assert.Equal(t, tt.kind, p.Kind)
				assert.Equal(t, monster, p.CreatedBy)
			}
			assert.Equal(t, t0, w.ecs.Creatures[monster].LastAttack)
		})
	}
}

func TestMonsterUpdateAppliesPhysics(t *testing.T) {
	w := newTestWorld(t, utils.NewPRNGService(1))
	monster := w.addMonster(1000, 100, types.AttackRanged, types.IntelligenceDumb)

	w.ai.Update()
	assert.Equal(t, 115.0, w.ecs.Bodies[monster].Y)
}
