// internal/system/projectile.go
package system

import (
	"math"
	"time"

	"go-adventurer/internal/component"
	"go-adventurer/internal/config"
	"go-adventurer/internal/entity"
	"go-adventurer/internal/event"
	"go-adventurer/internal/physics"
	"go-adventurer/internal/types"
	"go-adventurer/internal/utils"
)

// ProjectileSystem управляет полётом снарядов: столкновения, подбор, привязка и исчезновение
type ProjectileSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
	combatSystem    *CombatSystem
	physicsSystem   *PhysicsSystem
	behaviors       map[component.ProjectileKind]projectileBehavior
}

// projectileBehavior — то, чем варианты снарядов отличаются друг от друга
type projectileBehavior struct {
	potentialTargets func(s *ProjectileSystem, id types.EntityID, p *component.Projectile) []types.EntityID
	onCreatureHit    func(s *ProjectileSystem, id types.EntityID, p *component.Projectile, target types.EntityID)
	onProjectileHit  func(s *ProjectileSystem, id types.EntityID, p *component.Projectile)
	fly              func(s *ProjectileSystem, id types.EntityID, p *component.Projectile)
	afterUpdate      func(s *ProjectileSystem, id types.EntityID, p *component.Projectile)
}

func NewProjectileSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher, combatSystem *CombatSystem, physicsSystem *PhysicsSystem) *ProjectileSystem {
	ballistic := projectileBehavior{
		potentialTargets: defaultTargets,
		fly:              ballisticFlight,
	}
	homing := projectileBehavior{
		potentialTargets: homingTargets,
		onCreatureHit:    homingImpact,
		onProjectileHit:  disableHoming,
		fly:              homingFlight,
		afterUpdate:      expireImpact,
	}
	bomb := projectileBehavior{
		potentialTargets: func(*ProjectileSystem, types.EntityID, *component.Projectile) []types.EntityID { return nil },
		fly:              ballisticFlight,
		afterUpdate:      detonateOnLanding,
	}
	return &ProjectileSystem{
		ecs:             ecs,
		eventDispatcher: eventDispatcher,
		combatSystem:    combatSystem,
		physicsSystem:   physicsSystem,
		behaviors: map[component.ProjectileKind]projectileBehavior{
			component.KindBallistic: ballistic,
			component.KindHoming:    homing,
			component.KindBomb:      bomb,
		},
	}
}

// RemoveOutOfBounds убирает из игры снаряды, помеченные как вылетевшие
func (s *ProjectileSystem) RemoveOutOfBounds() {
	for _, id := range s.ecs.ProjectileIDs() {
		if s.ecs.Projectiles[id].OutOfBounds {
			s.ecs.RemoveEntity(id)
		}
	}
}

// Update продвигает все снаряды на один тик
func (s *ProjectileSystem) Update() {
	for _, id := range s.ecs.ProjectileIDs() {
		s.UpdateProjectile(id)
	}
}

// UpdateProjectile — один тик снаряда
func (s *ProjectileSystem) UpdateProjectile(id types.EntityID) {
	p, body := s.ecs.Projectiles[id], s.ecs.Bodies[id]
	if p == nil || body == nil {
		return
	}
	behavior := s.behaviors[p.Kind]
	now := s.ecs.World.Now

	// Существо, в котором застрял снаряд, умерло
	if p.AttachedCreature != types.NoEntity && !s.ecs.IsCreatureAlive(p.AttachedCreature) {
		p.AttachedCreature = types.NoEntity
		p.DespawnTime = time.Time{}
	}

	if !s.checkCollisions(id, p, behavior) {
		s.checkGameBounds(p, body)
	}

	if s.lootByAdventurer(id, p) {
		return
	}

	if p.IsFree() {
		behavior.fly(s, id, p)
		body.Angle = math.Atan2(p.SpeedY, p.SpeedX)
	}

	if p.AttachedCreature != types.NoEntity {
		if cb := s.ecs.Bodies[p.AttachedCreature]; cb != nil {
			body.X = cb.X - math.Cos(body.Angle)*(cb.Width/2)
			body.Y = cb.Y + cb.Height/2 - math.Sin(body.Angle)*(cb.Height/2)
		}
	}

	if !p.DespawnTime.IsZero() && now.After(p.DespawnTime) {
		p.OutOfBounds = true
		p.DespawnTime = time.Time{}
	}

	if behavior.afterUpdate != nil {
		behavior.afterUpdate(s, id, p)
	}
}

func (s *ProjectileSystem) checkCollisions(id types.EntityID, p *component.Projectile, b projectileBehavior) bool {
	if !p.IsFree() {
		return false
	}
	body := s.ecs.Bodies[id]
	now := s.ecs.World.Now

	// Платформа
	if platformID := s.physicsSystem.PlatformUnder(body, p.SpeedY); platformID != types.NoEntity {
		p.AttachedPlatform = platformID
		p.DespawnTime = now.Add(p.DespawnDuration)
		return true
	}

	// Существа
	if s.hitCreature(id, p, b) {
		return true
	}

	// Другие снаряды
	var flying []types.EntityID
	for _, otherID := range s.ecs.ProjectileIDs() {
		if otherID != id && !s.ecs.Projectiles[otherID].IsAttached() {
			flying = append(flying, otherID)
		}
	}
	if otherID := ProjectileCollision(s.ecs, id, flying); otherID != types.NoEntity {
		other := s.ecs.Projectiles[otherID]
		TransferKineticEnergy(p, other, config.EnergyLossPercent)
		if b.onProjectileHit != nil {
			b.onProjectileHit(s, id, p)
		}
		if ob := s.behaviors[other.Kind]; ob.onProjectileHit != nil {
			ob.onProjectileHit(s, otherID, other)
		}
		return true
	}

	return false
}

// hitCreature наносит урон первому задетому существу. Увернувшееся запоминается
// и больше не проверяется в этом полёте.
func (s *ProjectileSystem) hitCreature(id types.EntityID, p *component.Projectile, b projectileBehavior) bool {
	targets := UnitCollisions(s.ecs, s.ecs.Bodies[id].Hitbox(), b.potentialTargets(s, id, p))
	if len(targets) == 0 {
		return false
	}
	target := targets[0]
	if !s.combatSystem.TakeDamage(target, p.AttackPower) {
		p.MissedCreature = target
		return false
	}
	if s.ecs.IsCreatureAlive(target) {
		p.AttachedCreature = target
		p.DespawnTime = s.ecs.World.Now.Add(p.DespawnDuration)
		p.SpeedX, p.SpeedY = 0, 0
	} else {
		p.SpeedX /= config.SpentProjectileDivisor
		p.SpeedY /= config.SpentProjectileDivisor
	}
	if b.onCreatureHit != nil {
		b.onCreatureHit(s, id, p, target)
	}
	return true
}

// checkGameBounds помечает снаряд, ударившийся о боковую стену
func (s *ProjectileSystem) checkGameBounds(p *component.Projectile, body *component.Body) {
	if p.OutOfBounds {
		return
	}
	gameWidth := s.ecs.World.GameSize.Width
	if body.X < 0 {
		body.X = 0
		p.OutOfBounds = true
		return
	}
	if body.X+body.Width > gameWidth {
		body.X = gameWidth - body.Width
		p.OutOfBounds = true
	}
}

// lootByAdventurer — игрок подбирает лежащий на платформе снаряд подходящего типа
func (s *ProjectileSystem) lootByAdventurer(id types.EntityID, p *component.Projectile) bool {
	if p.AttachedPlatform == types.NoEntity {
		return false
	}
	advID, _, ok := s.ecs.Adventurer()
	if !ok {
		return false
	}
	if len(UnitCollisions(s.ecs, s.ecs.Bodies[id].Hitbox(), []types.EntityID{advID})) == 0 {
		return false
	}
	adventurer := s.ecs.Adventurers[advID]
	if adventurer == nil || !adventurer.AddAmmo(component.Ammo{Type: p.Type, ColorTheme: p.ColorTheme}) {
		return false
	}
	p.OutOfBounds = true
	s.dispatch(event.AmmoLooted, event.EntityData{ID: id})
	return true
}

func (s *ProjectileSystem) dispatch(t event.EventType, data any) {
	if s.eventDispatcher == nil {
		return
	}
	s.eventDispatcher.Dispatch(event.Event{Type: t, Data: data})
}

// defaultTargets — живые существа, кроме создателя и увернувшегося
func defaultTargets(s *ProjectileSystem, _ types.EntityID, p *component.Projectile) []types.EntityID {
	var targets []types.EntityID
	for _, cid := range LivingCreatures(s.ecs) {
		if cid != p.MissedCreature && cid != p.CreatedBy {
			targets = append(targets, cid)
		}
	}
	return targets
}

// ballisticFlight — гравитация, затем сдвиг
func ballisticFlight(s *ProjectileSystem, id types.EntityID, p *component.Projectile) {
	body := s.ecs.Bodies[id]
	w := s.ecs.World
	p.SpeedY = math.Min(p.SpeedY+p.Gravity*w.TickFactor, physics.TerminalVelocity(w.ViewportSize()))
	body.Y += p.SpeedY * w.TickFactor
	body.X += p.SpeedX * w.TickFactor
}

func homingTargets(s *ProjectileSystem, id types.EntityID, p *component.Projectile) []types.EntityID {
	if s.ecs.IsCreatureAlive(p.Homing.Target) {
		return []types.EntityID{p.Homing.Target}
	}
	return defaultTargets(s, id, p)
}

// homingImpact центрирует снаряд на цели и запускает вспышку попадания
func homingImpact(s *ProjectileSystem, id types.EntityID, p *component.Projectile, target types.EntityID) {
	body, tb := s.ecs.Bodies[id], s.ecs.Bodies[target]
	p.Homing.ImpactTime = s.ecs.World.Now
	body.X = tb.X + tb.Width/2 - body.Width/2
	body.Y = tb.Y + tb.Height/2 - body.Height/2
}

func disableHoming(s *ProjectileSystem, _ types.EntityID, p *component.Projectile) {
	p.Homing.DisabledUntil = s.ecs.World.Now.Add(config.HomingDisableDuration)
}

// HomingDisabled — наведение выключено после столкновения или из-за смерти цели до попадания
func (s *ProjectileSystem) HomingDisabled(p *component.Projectile) bool {
	h := p.Homing
	if h == nil {
		return true
	}
	return s.ecs.World.Now.Before(h.DisabledUntil) ||
		(!s.ecs.IsCreatureAlive(h.Target) && h.ImpactTime.IsZero())
}

// homingFlight разгоняет снаряд к центру цели. Без наведения летит как обычный.
func homingFlight(s *ProjectileSystem, id types.EntityID, p *component.Projectile) {
	if s.HomingDisabled(p) {
		ballisticFlight(s, id, p)
		return
	}
	body, tb := s.ecs.Bodies[id], s.ecs.Bodies[p.Homing.Target]
	if tb == nil {
		ballisticFlight(s, id, p)
		return
	}
	h := p.Homing
	w := s.ecs.World

	progress := math.Min(float64(w.Now.Sub(h.CreatedAt))/float64(h.AccelerationTime), 1)
	currentMaxSpeed := h.MaxSpeed*config.HomingMinSpeedShare + h.MaxSpeed*(1-config.HomingMinSpeedShare)*progress

	center := tb.Center()
	angle := math.Atan2(center.Y-body.Y, center.X-body.X)
	optimalX := math.Cos(angle) * math.Abs(currentMaxSpeed)
	optimalY := math.Sin(angle) * math.Abs(currentMaxSpeed)

	p.SpeedX += (optimalX - p.SpeedX) * h.Agility * w.TickFactor
	p.SpeedY += (optimalY - p.SpeedY) * h.Agility * w.TickFactor

	if math.Abs(p.SpeedX) > currentMaxSpeed {
		p.SpeedX = currentMaxSpeed * utils.Sign(p.SpeedX)
	}
	if math.Abs(p.SpeedY) > currentMaxSpeed {
		p.SpeedY = currentMaxSpeed * utils.Sign(p.SpeedY)
	}

	body.X += p.SpeedX * w.TickFactor
	body.Y += p.SpeedY * w.TickFactor
}

// expireImpact убирает самонаводящийся снаряд после вспышки попадания
func expireImpact(s *ProjectileSystem, _ types.EntityID, p *component.Projectile) {
	if p.Homing.ImpactTime.IsZero() {
		return
	}
	if s.ecs.World.Now.Sub(p.Homing.ImpactTime) > config.HomingImpactDuration {
		p.OutOfBounds = true
	}
}

// detonateOnLanding взрывает бомбу на платформе один раз, взрыв гаснет через DetonationDuration
func detonateOnLanding(s *ProjectileSystem, id types.EntityID, p *component.Projectile) {
	b := p.Bomb
	now := s.ecs.World.Now
	if !b.Detonated.IsZero() {
		if now.Sub(b.Detonated) > b.DetonationDuration {
			p.OutOfBounds = true
		}
		return
	}
	if p.AttachedPlatform == types.NoEntity {
		return
	}
	b.Detonated = now

	radius := b.ExplosionSize * physics.BaseUnitSize(s.ecs.World.ViewportSize())
	for _, cid := range CreaturesWithinRadius(s.ecs, s.ecs.Bodies[id].Center(), radius, LivingCreatures(s.ecs)) {
		s.combatSystem.TakeDamage(cid, p.AttackPower)
	}
	s.dispatch(event.BombDetonated, event.EntityData{ID: id})
}
