package utils

import "time"

// Clock — источник времени симуляции. Все таймеры (кулдауны, неуязвимость,
// исчезновение снарядов) сравниваются с его показаниями.
type Clock interface {
	Now() time.Time
}

// SimClock — игровое время, которое стоит на месте во время паузы.
// Используется из одного потока (тик и отрисовка идут последовательно).
type SimClock struct {
	real        func() time.Time
	realStart   time.Time
	gameStart   time.Time
	paused      bool
	pauseStart  time.Time
	totalPaused time.Duration
}

// NewSimClock создаёт часы поверх реального времени
func NewSimClock() *SimClock {
	return newSimClock(time.Now)
}

func newSimClock(real func() time.Time) *SimClock {
	now := real()
	return &SimClock{real: real, realStart: now, gameStart: now}
}

// Now возвращает игровое время (заморожено во время паузы)
func (c *SimClock) Now() time.Time {
	if c.paused {
		return c.gameStart.Add(c.pauseStart.Sub(c.realStart) - c.totalPaused)
	}
	return c.gameStart.Add(c.real().Sub(c.realStart) - c.totalPaused)
}

// Pause останавливает игровое время
func (c *SimClock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pauseStart = c.real()
}

// Resume продолжает игровое время без скачка на длительность паузы
func (c *SimClock) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.totalPaused += c.real().Sub(c.pauseStart)
	c.pauseStart = time.Time{}
}

// IsPaused сообщает, стоит ли время
func (c *SimClock) IsPaused() bool {
	return c.paused
}

// ManualClock — часы для тестов, двигаются только вручную
type ManualClock struct {
	current time.Time
}

// NewManualClock создаёт часы с заданным начальным временем
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

func (c *ManualClock) Now() time.Time { return c.current }

// Advance сдвигает время вперёд
func (c *ManualClock) Advance(d time.Duration) { c.current = c.current.Add(d) }

// Set выставляет время
func (c *ManualClock) Set(t time.Time) { c.current = t }
