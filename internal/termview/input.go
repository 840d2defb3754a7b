package termview

import (
	"time"

	"github.com/gdamore/tcell/v2"

	game "go-adventurer/internal/app"
	"go-adventurer/internal/types"
)

// В терминале нет событий отпускания клавиши: нажатие держит направление keyTimeout
const keyTimeout = 150 * time.Millisecond

// Direction — удерживаемое направление движения
type Direction int

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// HeldKeys запоминает время последнего нажатия по направлениям
type HeldKeys struct {
	pressed map[Direction]time.Time
}

func NewHeldKeys() *HeldKeys {
	return &HeldKeys{pressed: make(map[Direction]time.Time)}
}

func (h *HeldKeys) Press(d Direction, now time.Time) {
	h.pressed[d] = now
	// Противоположное направление отпускается сразу
	switch d {
	case DirLeft:
		delete(h.pressed, DirRight)
	case DirRight:
		delete(h.pressed, DirLeft)
	case DirUp:
		delete(h.pressed, DirDown)
	case DirDown:
		delete(h.pressed, DirUp)
	}
}

func (h *HeldKeys) Held(d Direction, now time.Time) bool {
	last, ok := h.pressed[d]
	return ok && now.Sub(last) < keyTimeout
}

// Controller переводит события tcell в намерения игрока
type Controller struct {
	game     *game.Game
	view     *View
	keys     *HeldKeys
	charging bool
}

func NewController(g *game.Game, view *View) *Controller {
	return &Controller{game: g, view: view, keys: NewHeldKeys()}
}

// HandleEvent возвращает false, когда пользователь хочет выйти
func (c *Controller) HandleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return c.handleKey(ev, now)
	case *tcell.EventMouse:
		col, row := ev.Position()
		c.game.SetMouse(c.view.CellToScreen(col, row))
		if ev.Buttons()&tcell.Button1 != 0 {
			c.charge()
		} else if c.charging {
			c.release()
		}
	}
	return true
}

func (c *Controller) handleKey(ev *tcell.EventKey, now time.Time) bool {
	id := c.game.ECS.World.AdventurerID
	player := c.game.PlayerSystem

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		c.keys.Press(DirLeft, now)
	case tcell.KeyRight:
		c.keys.Press(DirRight, now)
	case tcell.KeyUp:
		c.keys.Press(DirUp, now)
	case tcell.KeyDown:
		c.keys.Press(DirDown, now)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'a':
			c.keys.Press(DirLeft, now)
		case 'd':
			c.keys.Press(DirRight, now)
		case 'w':
			c.keys.Press(DirUp, now)
		case 's':
			c.keys.Press(DirDown, now)
		case ' ':
			player.Jump(id, false)
		case 'c':
			player.ToggleCrouch(id)
		case 'f':
			if c.charging {
				c.release()
			} else {
				c.charge()
			}
		case '1':
			player.UseSpecialAbility(id, types.AbilityGuidedArrow)
		case '2':
			player.UseSpecialAbility(id, types.AbilityBomb)
		case 'p':
			c.game.TogglePaused()
		case 'r':
			if c.game.ECS.World.GameOver || c.game.ECS.World.GameWon {
				c.game.Start()
			}
		case '`':
			c.game.ToggleDebug()
		}
	}
	return true
}

func (c *Controller) charge() {
	if c.charging {
		return
	}
	c.charging = true
	c.game.PlayerSystem.ChargeRangedAttack(c.game.ECS.World.AdventurerID)
}

func (c *Controller) release() {
	c.charging = false
	c.game.PlayerSystem.RangedMouseAttack(c.game.ECS.World.AdventurerID)
}

// Apply передаёт удерживаемые направления игроку; вызывается каждый тик
func (c *Controller) Apply(now time.Time) {
	id, _, ok := c.game.ECS.Adventurer()
	if !ok {
		return
	}
	c.game.PlayerSystem.SetMovementIntent(id,
		c.keys.Held(DirLeft, now),
		c.keys.Held(DirRight, now),
		c.keys.Held(DirUp, now),
		c.keys.Held(DirDown, now),
	)
}
