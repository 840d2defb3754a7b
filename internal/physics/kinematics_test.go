package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-adventurer/pkg/geom"
)

// 21:9, как окно игры
var testViewport = geom.Size{Width: 1920, Height: 1920 * 9.0 / 21.0}

func testJumper() Jumper {
	unit := BaseUnitSize(testViewport)
	return Jumper{
		Body:      geom.Rect{X: 0, Y: testViewport.Height - unit, Width: unit, Height: unit},
		MaxSpeedX: BaseUnitSpeed(testViewport),
		Gravity:   BaseGravity(testViewport),
		CanJump:   true,
	}
}

func platformAbove(j Jumper, x, heightDiff float64) geom.Rect {
	return geom.Rect{X: x, Y: j.Body.Y - heightDiff, Width: 100, Height: 1}
}

func TestBaseValues(t *testing.T) {
	vp := geom.Size{Width: 3000, Height: 1500}
	assert.Equal(t, 100.0, BaseUnitSize(vp))
	assert.Equal(t, 30.0, BaseUnitSpeed(vp))
	assert.Equal(t, 100.0, BaseProjectileSpeed(vp))
	assert.Equal(t, 15.0, BaseGravity(vp))
	assert.Equal(t, 150.0, TerminalVelocity(vp))
}

func TestBaseJumpSpeedWeakensPerJump(t *testing.T) {
	vp := geom.Size{Width: 3000, Height: 1500}
	assert.InDelta(t, -100.0, BaseJumpSpeed(vp, 0), 1e-9)
	assert.InDelta(t, -110.0, BaseJumpSpeed(vp, 1), 1e-9)
	assert.InDelta(t, -150.0, BaseJumpSpeed(vp, 5), 1e-9)
	assert.InDelta(t, -150.0, BaseJumpSpeed(vp, 9), 1e-9, "jump index is capped at 5")
}

func TestPeakHeight(t *testing.T) {
	// v²/(2g) по модулю
	assert.InDelta(t, -50.0, PeakHeight(-10, 1), 1e-9)
}

func TestCanJumpToPlatformRejectsAscending(t *testing.T) {
	j := testJumper()
	j.SpeedY = -1
	platform := geom.Rect{X: j.Body.X, Y: j.Body.Y, Width: 100, Height: 1}
	assert.False(t, CanJumpToPlatform(j, platform, testViewport))
}

func TestCanJumpToPlatformRejectsWithoutJumps(t *testing.T) {
	j := testJumper()
	j.JumpCount = 2
	j.CanJump = false
	assert.False(t, CanJumpToPlatform(j, platformAbove(j, 0, 10), testViewport))
}

func TestCanJumpToPlatformVertical(t *testing.T) {
	j := testJumper()
	single := MaxJumpReach(testViewport, j.Gravity, 1)
	double := MaxJumpReach(testViewport, j.Gravity, 0)

	assert.True(t, CanJumpToPlatform(j, platformAbove(j, 0, single*0.9), testViewport))
	assert.True(t, CanJumpToPlatform(j, platformAbove(j, 0, double*0.99), testViewport))
	assert.False(t, CanJumpToPlatform(j, platformAbove(j, 0, double+1), testViewport))
}

func TestDoubleJumpReachesFurtherThanSingle(t *testing.T) {
	j := testJumper()
	single := MaxJumpReach(testViewport, j.Gravity, 1)
	double := MaxJumpReach(testViewport, j.Gravity, 0)
	assert.Greater(t, double, single)

	for _, share := range []float64{0.1, 0.5, 0.9} {
		between := single + (double-single)*share
		fresh := j
		used := j
		used.JumpCount = 1

		assert.True(t, CanJumpToPlatform(fresh, platformAbove(j, 0, between), testViewport))
		assert.False(t, CanJumpToPlatform(used, platformAbove(j, 0, between), testViewport))
	}
}

func TestCanJumpToPlatformHorizontal(t *testing.T) {
	j := testJumper()
	reach := j.MaxSpeedX * MaxJumpTime(testViewport, j.Gravity) * 1.2
	centerX := j.Body.X + j.Body.Width/2

	near := platformAbove(j, centerX+reach*0.9, 0)
	far := platformAbove(j, centerX+reach*1.1, 0)

	assert.True(t, CanJumpToPlatform(j, near, testViewport))
	assert.False(t, CanJumpToPlatform(j, far, testViewport))
}

func TestCanJumpToPlatformBelow(t *testing.T) {
	j := testJumper()
	assert.True(t, CanJumpToPlatform(j, platformAbove(j, 150, -100), testViewport))
}

func TestCanDropToPlatform(t *testing.T) {
	current := geom.Rect{X: 100, Y: 300, Width: 200, Height: 20}

	tests := []struct {
		name   string
		target geom.Rect
		want   bool
	}{
		{"left edge lands", geom.Rect{X: 0, Y: 500, Width: 80, Height: 20}, true},
		{"right edge lands", geom.Rect{X: 320, Y: 500, Width: 100, Height: 20}, true},
		{"too far", geom.Rect{X: 400, Y: 500, Width: 100, Height: 20}, false},
		{"higher platform", geom.Rect{X: 0, Y: 200, Width: 80, Height: 20}, false},
		{"same height", geom.Rect{X: 0, Y: 300, Width: 80, Height: 20}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanDropToPlatform(50, current, tt.target))
		})
	}
}

func TestMaxJumpHeightMatchesAnalyticReach(t *testing.T) {
	j := testJumper()
	numeric := MaxJumpHeight(testViewport, j.Gravity, 0, j.Body.Height)
	analytic := MaxJumpReach(testViewport, j.Gravity, 0) - j.Body.Height/2
	assert.InEpsilon(t, analytic, numeric, 0.01)

	assert.Less(t, MaxJumpHeight(testViewport, j.Gravity, 1, j.Body.Height), numeric)
}

func TestIsStandingOn(t *testing.T) {
	platform := geom.Rect{X: 0, Y: 100, Width: 200, Height: 20}
	body := geom.Rect{X: 50, Y: 55, Width: 10, Height: 50} // низ на 105

	h := geom.NewHitbox(body, 0)
	assert.True(t, IsStandingOn(h, 0, platform))
	assert.False(t, IsStandingOn(h, -1, platform), "moving up never lands")

	deep := geom.NewHitbox(geom.Rect{X: 50, Y: 80, Width: 10, Height: 50}, 0) // низ на 130
	assert.False(t, IsStandingOn(deep, 0, platform))
	assert.True(t, IsStandingOn(deep, 40, platform), "tolerance grows with fall speed")

	aside := geom.NewHitbox(geom.Rect{X: 300, Y: 55, Width: 10, Height: 50}, 0)
	assert.False(t, IsStandingOn(aside, 0, platform))
}
