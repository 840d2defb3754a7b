// internal/defs/loader.go
package defs

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed campaign.yaml
var defaultCampaign []byte

// Format selects the decoder for level definitions.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension. Anything that is not .json is YAML.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// DefaultCampaign returns the built-in campaign: the tutorial, six levels and the debug level.
func DefaultCampaign() (*Campaign, error) {
	return ParseCampaign(defaultCampaign, FormatYAML)
}

// LoadCampaign reads a campaign file and resolves every monster and platform in it.
func LoadCampaign(path string) (*Campaign, error) {
	file, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level definitions file: %w", err)
	}
	c, err := ParseCampaign(file, FormatFromPath(path))
	if err != nil {
		return nil, err
	}
	fmt.Printf("Loaded %d level definitions\n", len(c.Levels))
	return c, nil
}

// ParseCampaign decodes and validates campaign data.
func ParseCampaign(data []byte, format Format) (*Campaign, error) {
	var c Campaign
	var err error
	switch format {
	case FormatJSON:
		err = json.Unmarshal(data, &c)
	default:
		err = yaml.Unmarshal(data, &c)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal level definitions: %w", err)
	}

	if len(c.Levels) == 0 {
		return nil, ErrNoLevels
	}
	for i := range c.Levels {
		if err := c.prepare(&c.Levels[i]); err != nil {
			return nil, err
		}
	}
	if c.TestLevel != nil {
		if err := c.prepare(c.TestLevel); err != nil {
			return nil, err
		}
	}
	return &c, nil
}

func (c *Campaign) prepare(l *Level) error {
	if len(l.Tips) == 0 {
		l.Tips = c.Tips
	}
	if len(l.Platforms) == 0 {
		return fmt.Errorf("level %q has no platforms", l.Name)
	}
	for _, p := range l.Platforms {
		if _, _, err := p.Physics(); err != nil {
			return fmt.Errorf("level %q: %w", l.Name, err)
		}
	}
	l.Monsters = make([]MonsterTemplate, 0, len(l.MonsterSpecs))
	for _, spec := range l.MonsterSpecs {
		m, err := spec.Resolve()
		if err != nil {
			return fmt.Errorf("level %q: %w", l.Name, err)
		}
		l.Monsters = append(l.Monsters, m)
	}
	return nil
}

// Level returns a copy of the level at index so placement never mutates the campaign.
func (c *Campaign) Level(index int) (Level, bool) {
	if index < 0 || index >= len(c.Levels) {
		return Level{}, false
	}
	return c.Levels[index].Clone(), true
}

// Clone copies the slices a level owns.
func (l Level) Clone() Level {
	l.Tips = append([]string(nil), l.Tips...)
	l.Monsters = append([]MonsterTemplate(nil), l.Monsters...)
	l.Platforms = append([]PlatformTemplate(nil), l.Platforms...)
	l.Powerups = append([]PowerupTemplate(nil), l.Powerups...)
	return l
}
