package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Settings — параметры запуска, читаются из файла и переменных окружения ADVENTURER_*
type Settings struct {
	Seed          int64          `mapstructure:"seed"`
	Debug         bool           `mapstructure:"debug"`
	MaxTickFactor float64        `mapstructure:"max_tick_factor"`
	Campaign      CampaignConfig `mapstructure:"campaign"`
	Window        WindowConfig   `mapstructure:"window"`
	Player        PlayerConfig   `mapstructure:"player"`
	Sound         bool           `mapstructure:"sound"`
}

// CampaignConfig описывает, откуда брать уровни
type CampaignConfig struct {
	LevelsFile   string `mapstructure:"levels_file"`
	StartLevel   int    `mapstructure:"start_level"`
	RandomLevels int    `mapstructure:"random_levels"`
}

// WindowConfig — размер окна хоста
type WindowConfig struct {
	Width  int    `mapstructure:"width"`
	Height int    `mapstructure:"height"`
	Title  string `mapstructure:"title"`
}

// PlayerConfig — стартовые параметры искателя приключений
type PlayerConfig struct {
	Class          string  `mapstructure:"class"`
	Hitpoints      int     `mapstructure:"hitpoints"`
	AttackPower    float64 `mapstructure:"attack_power"`
	AttackCooldown int     `mapstructure:"attack_cooldown_ms"`
	AttackDuration int     `mapstructure:"attack_duration_ms"`
}

// DefaultSettings возвращает настройки по умолчанию
func DefaultSettings() Settings {
	return Settings{
		MaxTickFactor: MaxTickFactor,
		Window: WindowConfig{
			Width:  ScreenWidth,
			Height: ScreenHeight,
			Title:  "Adventurer",
		},
		Player: PlayerConfig{
			Class:          "rogue",
			Hitpoints:      100,
			AttackPower:    10,
			AttackCooldown: 100,
			AttackDuration: 100,
		},
		Sound: true,
	}
}

// LoadSettings читает настройки. Пустой путь означает только окружение и значения по умолчанию.
func LoadSettings(path string) (Settings, error) {
	v := viper.New()
	setDefaults(v, DefaultSettings())
	v.SetEnvPrefix("ADVENTURER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Settings{}, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if s.MaxTickFactor <= 0 {
		s.MaxTickFactor = MaxTickFactor
	}
	return s, nil
}

// AutomaticEnv видит только ключи, о которых viper знает, поэтому регистрируем все значения по умолчанию
func setDefaults(v *viper.Viper, d Settings) {
	v.SetDefault("seed", d.Seed)
	v.SetDefault("debug", d.Debug)
	v.SetDefault("max_tick_factor", d.MaxTickFactor)
	v.SetDefault("sound", d.Sound)
	v.SetDefault("campaign.levels_file", d.Campaign.LevelsFile)
	v.SetDefault("campaign.start_level", d.Campaign.StartLevel)
	v.SetDefault("campaign.random_levels", d.Campaign.RandomLevels)
	v.SetDefault("window.width", d.Window.Width)
	v.SetDefault("window.height", d.Window.Height)
	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("player.class", d.Player.Class)
	v.SetDefault("player.hitpoints", d.Player.Hitpoints)
	v.SetDefault("player.attack_power", d.Player.AttackPower)
	v.SetDefault("player.attack_cooldown_ms", d.Player.AttackCooldown)
	v.SetDefault("player.attack_duration_ms", d.Player.AttackDuration)
}
