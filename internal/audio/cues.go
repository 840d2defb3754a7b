// Package audio озвучивает игровые события короткими синтезированными тонами.
package audio

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"

	"go-adventurer/internal/entity"
	"go-adventurer/internal/event"
)

const SampleRate = beep.SampleRate(44100)

// Tone — один сигнал: частота и длительность
type Tone struct {
	Freq     int
	Duration time.Duration
}

var (
	ToneHit       = Tone{Freq: 880, Duration: 50 * time.Millisecond}
	ToneHurt      = Tone{Freq: 220, Duration: 120 * time.Millisecond}
	ToneDodge     = Tone{Freq: 1320, Duration: 30 * time.Millisecond}
	ToneExplosion = Tone{Freq: 90, Duration: 250 * time.Millisecond}
	TonePickup    = Tone{Freq: 660, Duration: 80 * time.Millisecond}
	ToneLevelUp   = Tone{Freq: 990, Duration: 200 * time.Millisecond}
)

// Cues слушает диспетчер и проигрывает тон на каждое интересное событие
type Cues struct {
	ecs  *entity.ECS
	play func(...beep.Streamer)
}

// NewCues создаёт слушателя с произвольным выводом звука
func NewCues(ecs *entity.ECS, play func(...beep.Streamer)) *Cues {
	return &Cues{ecs: ecs, play: play}
}

// InitSpeaker поднимает звуковое устройство и возвращает слушателя, играющего через него
func InitSpeaker(ecs *entity.ECS) (*Cues, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("failed to init speaker: %w", err)
	}
	return NewCues(ecs, speaker.Play), nil
}

// Subscribe подписывает Cues на все озвучиваемые события
func (c *Cues) Subscribe(d *event.Dispatcher) {
	d.SubscribeAll(c,
		event.DamageTaken,
		event.DamageDodged,
		event.BombDetonated,
		event.AmmoLooted,
		event.PowerupCollected,
		event.LevelUp,
	)
}

func (c *Cues) OnEvent(e event.Event) {
	tone, ok := c.toneFor(e)
	if !ok {
		return
	}
	s, err := Stream(tone)
	if err != nil {
		return
	}
	c.play(s)
}

func (c *Cues) toneFor(e event.Event) (Tone, bool) {
	switch e.Type {
	case event.DamageTaken:
		if d, ok := e.Data.(event.DamageData); ok && d.Target == c.ecs.World.AdventurerID {
			return ToneHurt, true
		}
		return ToneHit, true
	case event.DamageDodged:
		return ToneDodge, true
	case event.BombDetonated:
		return ToneExplosion, true
	case event.AmmoLooted, event.PowerupCollected:
		return TonePickup, true
	case event.LevelUp:
		return ToneLevelUp, true
	}
	return Tone{}, false
}

// Stream — синусоида заданной длительности
func Stream(t Tone) (beep.Streamer, error) {
	sine, err := generators.SineTone(SampleRate, float64(t.Freq))
	if err != nil {
		return nil, err
	}
	return beep.Take(SampleRate.N(t.Duration), sine), nil
}
