// internal/component/visual.go
package component

import (
	"image/color"
	"time"
)

// FloatingText — всплывающая надпись над существом ("-30", "Dodge!", "+10 HP").
type FloatingText struct {
	Text       string
	Color      color.RGBA
	Expiration time.Time
}

// FloatingTexts — надписи одного существа, истёкшие удаляются каждый тик
type FloatingTexts struct {
	Entries []FloatingText
}

// Add добавляет надпись, которая исчезнет через d
func (f *FloatingTexts) Add(text string, d time.Duration, c color.RGBA, now time.Time) {
	f.Entries = append(f.Entries, FloatingText{Text: text, Color: c, Expiration: now.Add(d)})
}

// Prune убирает истёкшие надписи
func (f *FloatingTexts) Prune(now time.Time) {
	kept := f.Entries[:0]
	for _, e := range f.Entries {
		if e.Expiration.After(now) {
			kept = append(kept, e)
		}
	}
	f.Entries = kept
}
