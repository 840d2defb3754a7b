package system

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"go-adventurer/internal/component"
	"go-adventurer/internal/config"
	"go-adventurer/internal/event"
	"go-adventurer/internal/types"
	"go-adventurer/internal/utils"
	"go-adventurer/internal/utils/mocks"
)

func TestProjectileLandsOnPlatform(t *testing.T) {
	w := newTestWorld(t, utils.NewPRNGService(1))
	platform := w.addPlatform(0, 1200, 3000, 50)
	id := w.addArrow(1000, 1200-28+3, 0, 5)

	w.projectiles.UpdateProjectile(id)

	p := w.ecs.Projectiles[id]
	assert.Equal(t, platform, p.AttachedPlatform)
	assert.Equal(t, t0.Add(config.ProjectileDespawn), p.DespawnTime)
	assert.False(t, p.IsFree())

	w.advance(config.ProjectileDespawn + time.Millisecond)
	w.projectiles.UpdateProjectile(id)
	assert.True(t, p.OutOfBounds)

	w.projectiles.RemoveOutOfBounds()
	assert.NotContains(t, w.ecs.Projectiles, id)
	assert.NotContains(t, w.ecs.Bodies, id)
}

func TestProjectileAttachesToSurvivor(t *testing.T) {
	w := newTestWorld(t, utils.NewPRNGService(1))
	target := w.addCreature(1050, 950, 100, 150, 100)
	id := w.addArrow(1000, 1000, 10, 0)

	w.projectiles.UpdateProjectile(id)

	p := w.ecs.Projectiles[id]
	assert.Equal(t, 90, w.ecs.Creatures[target].Hitpoints)
	assert.Equal(t, target, p.AttachedCreature)
	assert.Equal(t, 0.0, p.SpeedX)
	assert.Equal(t, 0.0, p.SpeedY)
	assert.Equal(t, t0.Add(config.ProjectileDespawn), p.DespawnTime)

	// Едет вместе с существом
	body := w.ecs.Bodies[id]
	assert.InDelta(t, 1000.0, body.X, 1e-9)
	assert.InDelta(t, 1025.0, body.Y, 1e-9)

	w.ecs.Bodies[target].X += 40
	w.projectiles.UpdateProjectile(id)
	assert.InDelta(t, 1040.0, body.X, 1e-9)
	assert.Equal(t, 90, w.ecs.Creatures[target].Hitpoints, "attached projectile does not hit again")
}

func TestProjectileReleasedWhenHostDies(t *testing.T) {
	w := newTestWorld(t, utils.NewPRNGService(1))
	target := w.addCreature(1050, 950, 100, 150, 100)
	id := w.addArrow(1000, 1000, 10, 0)
	w.projectiles.UpdateProjectile(id)
	require.Equal(t, target, w.ecs.Projectiles[id].AttachedCreature)

	w.ecs.Creatures[target].Hitpoints = 0
	w.projectiles.UpdateProjectile(id)

	p := w.ecs.Projectiles[id]
	assert.Equal(t, types.NoEntity, p.AttachedCreature)
	assert.True(t, p.DespawnTime.IsZero())
}

func TestProjectileKillSlowsDown(t *testing.T) {
	w := newTestWorld(t, utils.NewPRNGService(1))
	target := w.addCreature(1050, 950, 100, 150, 5)
	id := w.addArrow(1000, 1000, 10, 0)

	w.projectiles.UpdateProjectile(id)

	p := w.ecs.Projectiles[id]
	assert.True(t, w.ecs.Creatures[target].IsDead())
	assert.Equal(t, types.NoEntity, p.AttachedCreature)
	assert.InDelta(t, 1.0, p.SpeedX, 1e-9)
}

func TestProjectileIgnoresCreator(t *testing.T) {
	w := newTestWorld(t, utils.NewPRNGService(1))
	shooter := w.addCreature(1050, 950, 100, 150, 100)
	id := w.addArrow(1000, 1000, 10, 0)
	w.ecs.Projectiles[id].CreatedBy = shooter

	w.projectiles.UpdateProjectile(id)
	assert.Equal(t, 100, w.ecs.Creatures[shooter].Hitpoints)
	assert.True(t, w.ecs.Projectiles[id].IsFree())
}

func TestDodgedProjectileDoesNotRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	rng := mocks.NewMockRandom(ctrl)
	rng.EXPECT().Float64().Return(0.2).Times(1)

	w := newTestWorld(t, rng)
	rogue := w.addAdventurer(1050, 950, types.ClassRogue)
	id := w.addArrow(1000, 1000, 1, 0)

	w.projectiles.UpdateProjectile(id)
	w.projectiles.UpdateProjectile(id)

	p := w.ecs.Projectiles[id]
	assert.Equal(t, rogue, p.MissedCreature)
	assert.Equal(t, 100, w.ecs.Creatures[rogue].Hitpoints)
	assert.True(t, p.IsFree())
	assert.Equal(t, 1, w.recorder.count(event.DamageDodged))
}

func TestProjectileOutOfBoundsAtWall(t *testing.T) {
	w := newTestWorld(t, utils.NewPRNGService(1))
	left := w.addArrow(-5, 500, -10, 0)
	right := w.addArrow(2950, 500, 10, 0)

	w.projectiles.Update()

	assert.True(t, w.ecs.Projectiles[left].OutOfBounds)
	assert.Equal(t, 0.0, w.ecs.Bodies[left].X)
	assert.True(t, w.ecs.Projectiles[right].OutOfBounds)
	assert.Equal(t, 2900.0, w.ecs.Bodies[right].X)
}

func TestFreeProjectileFollowsBallisticArc(t *testing.T) {
	w := newTestWorld(t, utils.NewPRNGService(1))
	id := w.addArrow(1000, 500, 20, -10)

	w.projectiles.UpdateProjectile(id)

	p, body := w.ecs.Projectiles[id], w.ecs.Bodies[id]
	assert.InDelta(t, -2.5, p.SpeedY, 1e-9)
	assert.InDelta(t, 497.5, body.Y, 1e-9)
	assert.InDelta(t, 1020.0, body.X, 1e-9)
	assert.InDelta(t, -0.124354994, body.Angle, 1e-6)
}

func TestTransferKineticEnergyOnlyOpposingAxes(t *testing.T) {
	a := &component.Projectile{SpeedX: 10, SpeedY: 5, Mass: 1}
	b := &component.Projectile{SpeedX: -20, SpeedY: 3, Mass: 1}

	TransferKineticEnergy(a, b, 30)

	assert.InDelta(t, -14.0, a.SpeedX, 1e-9)
	assert.InDelta(t, 7.0, b.SpeedX, 1e-9)
	assert.Equal(t, 5.0, a.SpeedY, "same-sign axis untouched")
	assert.Equal(t, 3.0, b.SpeedY)
}

func TestTransferKineticEnergyUsesMassRatio(t *testing.T) {
	arrow := &component.Projectile{SpeedX: 10, SpeedY: 0, Mass: 1}
	bomb := &component.Projectile{SpeedX: -10, SpeedY: 0, Mass: 5}

	TransferKineticEnergy(arrow, bomb, 0)

	assert.InDelta(t, -50.0, arrow.SpeedX, 1e-9)
	assert.InDelta(t, 2.0, bomb.SpeedX, 1e-9)
}

func TestProjectileCollisionExchangesSpeed(t *testing.T) {
	w := newTestWorld(t, utils.NewPRNGService(1))
	a := w.addArrow(1000, 500, 10, 0)
	b := w.addArrow(1050, 505, -10, 0)

	w.projectiles.UpdateProjectile(a)

	assert.InDelta(t, -7.0, w.ecs.Projectiles[a].SpeedX, 1e-9)
	assert.InDelta(t, 7.0, w.ecs.Projectiles[b].SpeedX, 1e-9)
}

func addHoming(w *testWorld, x, y, speedX float64, target types.EntityID) types.EntityID {
	id := w.addArrow(x, y, speedX, 0)
	p := w.ecs.Projectiles[id]
	p.Kind = component.KindHoming
	p.Type = types.ProjectileHoming
	p.Homing = &component.Homing{
		Target:           target,
		MaxSpeed:         100,
		Agility:          config.HomingAgility,
		CreatedAt:        w.ecs.World.Now,
		AccelerationTime: config.HomingAcceleration,
	}
	return id
}

func TestHomingDisabledAfterProjectileCollision(t *testing.T) {
	w := newTestWorld(t, utils.NewPRNGService(1))
	target := w.addCreature(2500, 450, 100, 150, 100)
	homing := addHoming(w, 1000, 500, 10, target)
	other := addHoming(w, 1050, 505, -10, target)

	w.projectiles.UpdateProjectile(homing)

	hp, op := w.ecs.Projectiles[homing], w.ecs.Projectiles[other]
	assert.Equal(t, t0.Add(1500*time.Millisecond), hp.Homing.DisabledUntil)
	assert.Equal(t, t0.Add(1500*time.Millisecond), op.Homing.DisabledUntil, "both projectiles lose guidance")

	w.ecs.World.Now = t0.Add(1499 * time.Millisecond)
	assert.True(t, w.projectiles.HomingDisabled(hp))
	w.ecs.World.Now = t0.Add(1500 * time.Millisecond)
	assert.False(t, w.projectiles.HomingDisabled(hp), "guidance resumes while target lives")

	w.ecs.Creatures[target].Hitpoints = 0
	assert.True(t, w.projectiles.HomingDisabled(hp))
}

func TestHomingSteersTowardsTarget(t *testing.T) {
	w := newTestWorld(t, utils.NewPRNGService(1))
	target := w.addCreature(2000, 100, 100, 100, 100)
	id := addHoming(w, 1000, 1000, 0, target)

	w.projectiles.UpdateProjectile(id)

	p := w.ecs.Projectiles[id]
	// В начале скорость не больше 15% от максимальной
	assert.LessOrEqual(t, p.SpeedX, 15.0)
	assert.Greater(t, p.SpeedX, 0.0)
	assert.Less(t, p.SpeedY, 0.0, "moves up towards the target")

	w.advance(config.HomingAcceleration)
	for i := 0; i < 5; i++ {
		w.projectiles.UpdateProjectile(id)
	}
	require.True(t, p.IsFree())
	assert.Greater(t, p.SpeedX, 15.0, "speed ramps up")
}

func TestHomingImpactExpires(t *testing.T) {
	w := newTestWorld(t, utils.NewPRNGService(1))
	target := w.addCreature(1050, 950, 100, 150, 100)
	id := addHoming(w, 1000, 1000, 10, target)

	w.projectiles.UpdateProjectile(id)

	p := w.ecs.Projectiles[id]
	require.Equal(t, target, p.AttachedCreature)
	assert.Equal(t, t0, p.Homing.ImpactTime)
	assert.False(t, p.OutOfBounds)

	w.advance(config.HomingImpactDuration + time.Millisecond)
	w.projectiles.UpdateProjectile(id)
	assert.True(t, p.OutOfBounds)
}

func TestBombDetonatesOnceOnLanding(t *testing.T) {
	w := newTestWorld(t, utils.NewPRNGService(1))
	w.addPlatform(0, 1200, 3000, 50)
	near := w.addCreature(1100, 1050, 100, 150, 100) // центр в 150 от бомбы
	far := w.addCreature(1500, 1050, 100, 150, 100)
	dead := w.addCreature(1000, 1050, 100, 150, 0)

	id := w.ecs.AddProjectile(component.Body{X: 975, Y: 1200 - 50 + 2, Width: 50, Height: 50}, &component.Projectile{
		Kind:            component.KindBomb,
		Type:            types.ProjectileBomb,
		SpeedY:          5,
		Gravity:         7.5,
		AttackPower:     30,
		Mass:            config.BombMass,
		DespawnDuration: config.ProjectileDespawn,
		Bomb:            &component.Bomb{ExplosionSize: 2, DetonationDuration: config.BombDetonationDuration},
	})

	w.projectiles.UpdateProjectile(id)
	p := w.ecs.Projectiles[id]
	assert.Equal(t, t0, p.Bomb.Detonated)
	assert.Equal(t, 70, w.ecs.Creatures[near].Hitpoints)
	assert.Equal(t, 100, w.ecs.Creatures[far].Hitpoints)
	assert.Equal(t, 0, w.ecs.Creatures[dead].Hitpoints)

	w.advance(100 * time.Millisecond)
	w.projectiles.UpdateProjectile(id)
	assert.Equal(t, 70, w.ecs.Creatures[near].Hitpoints, "explodes only once")
	assert.False(t, p.OutOfBounds)
	assert.Equal(t, 1, w.recorder.count(event.BombDetonated))

	w.advance(200 * time.Millisecond)
	w.projectiles.UpdateProjectile(id)
	assert.True(t, p.OutOfBounds)
}

func TestAdventurerLootsLandedProjectile(t *testing.T) {
	w := newTestWorld(t, utils.NewPRNGService(1))
	platform := w.addPlatform(0, 1200, 3000, 50)
	adv := w.addAdventurer(1000, 1050, types.ClassWarrior)
	id := w.addArrow(1020, 1180, 0, 0)
	w.ecs.Projectiles[id].AttachedPlatform = platform
	w.ecs.Projectiles[id].ColorTheme = types.ThemeBlue

	w.projectiles.UpdateProjectile(id)

	assert.True(t, w.ecs.Projectiles[id].OutOfBounds)
	ammo := w.ecs.Adventurers[adv].Ammo
	require.Len(t, ammo, 1)
	assert.Equal(t, component.Ammo{Type: types.ProjectileArrow, ColorTheme: types.ThemeBlue}, ammo[0])
	assert.Equal(t, 1, w.recorder.count(event.AmmoLooted))
}

func TestAdventurerSkipsDisallowedAmmo(t *testing.T) {
	w := newTestWorld(t, utils.NewPRNGService(1))
	platform := w.addPlatform(0, 1200, 3000, 50)
	adv := w.addAdventurer(1000, 1050, types.ClassWarrior)
	id := w.addArrow(1020, 1180, 0, 0)
	w.ecs.Projectiles[id].AttachedPlatform = platform
	w.ecs.Projectiles[id].Type = types.ProjectileKnife

	w.projectiles.UpdateProjectile(id)

	assert.False(t, w.ecs.Projectiles[id].OutOfBounds)
	assert.Empty(t, w.ecs.Adventurers[adv].Ammo)
}
