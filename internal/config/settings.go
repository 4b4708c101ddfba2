// internal/config/settings.go
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// HitboxMode выбирает форму хитбокса врага
type HitboxMode string

const (
	HitboxSymmetric HitboxMode = "symmetric"
	HitboxLegacy    HitboxMode = "legacy"
)

// Settings — настройки, которые можно переопределить YAML-файлом
type Settings struct {
	Seed        int64      `yaml:"seed"`
	Hitbox      HitboxMode `yaml:"hitbox"`
	StarPoints  int        `yaml:"star_points"`
	KeyPoints   int        `yaml:"key_points"`
	AssetsDir   string     `yaml:"assets_dir"`
	WindowScale float64    `yaml:"window_scale"`
	TPS         int        `yaml:"tps"`
	Locale      string     `yaml:"locale"`
}

// DefaultSettings возвращает настройки по умолчанию.
// Seed = 0 означает сид от текущего времени.
func DefaultSettings() Settings {
	return Settings{
		Hitbox:      HitboxSymmetric,
		StarPoints:  StarPoints,
		KeyPoints:   KeyPoints,
		WindowScale: 1,
		TPS:         DefaultTPS,
		Locale:      "en",
	}
}

// LoadSettings читает YAML-файл поверх значений по умолчанию.
// Пустой путь возвращает значения по умолчанию.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read settings file: %w", err)
	}
	return ParseSettings(data)
}

// ParseSettings разбирает YAML поверх значений по умолчанию и проверяет результат
func ParseSettings(data []byte) (Settings, error) {
	s := DefaultSettings()
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to unmarshal settings: %w", err)
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate отклоняет значения, с которыми игра не может работать
func (s Settings) Validate() error {
	var errs []error
	switch s.Hitbox {
	case HitboxSymmetric, HitboxLegacy:
	default:
		errs = append(errs, fmt.Errorf("unknown hitbox mode %q", s.Hitbox))
	}
	if s.StarPoints < 0 {
		errs = append(errs, fmt.Errorf("star_points must not be negative, got %d", s.StarPoints))
	}
	if s.KeyPoints < 0 {
		errs = append(errs, fmt.Errorf("key_points must not be negative, got %d", s.KeyPoints))
	}
	if s.WindowScale <= 0 {
		errs = append(errs, fmt.Errorf("window_scale must be positive, got %v", s.WindowScale))
	}
	if s.TPS <= 0 {
		errs = append(errs, fmt.Errorf("tps must be positive, got %d", s.TPS))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid settings: %w", errors.Join(errs...))
	}
	return nil
}
