// Package config loads simulation tuning from a YAML file. The physics
// constants are empirically tuned defaults with no derivation behind
// them, so they are treated as adjustable configuration rather than
// invariants.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/TFMV/forcegraph/physics"
)

var validate = validator.New()

// Settings is the on-disk tuning file
type Settings struct {
	Physics PhysicsSettings   `yaml:"physics"`
	Canvas  CanvasSettings    `yaml:"canvas"`
	Palette map[string]string `yaml:"palette,omitempty"` // type -> color render hint
}

// PhysicsSettings mirrors physics.Config with validation tags
type PhysicsSettings struct {
	Repulsion         float64 `yaml:"repulsion" validate:"gt=0"`
	Attraction        float64 `yaml:"attraction" validate:"gt=0"`
	Damping           float64 `yaml:"damping" validate:"gt=0,lte=1"`
	IdealDistance     float64 `yaml:"ideal_distance" validate:"gt=0"`
	CenterGravity     float64 `yaml:"center_gravity" validate:"gte=0"`
	MaxVelocity       float64 `yaml:"max_velocity" validate:"gt=0"`
	VelocityThreshold float64 `yaml:"velocity_threshold" validate:"gte=0,ltfield=MaxVelocity"`
}

// CanvasSettings sets the layout area
type CanvasSettings struct {
	Width  float64 `yaml:"width" validate:"gt=0"`
	Height float64 `yaml:"height" validate:"gt=0"`
}

// Default returns settings matching the engine's built-in constants
func Default() Settings {
	cfg := physics.DefaultConfig()
	return Settings{
		Physics: PhysicsSettings{
			Repulsion:         cfg.Repulsion,
			Attraction:        cfg.Attraction,
			Damping:           cfg.Damping,
			IdealDistance:     cfg.IdealDistance,
			CenterGravity:     cfg.CenterGravity,
			MaxVelocity:       cfg.MaxVelocity,
			VelocityThreshold: cfg.VelocityThreshold,
		},
		Canvas: CanvasSettings{Width: cfg.Width, Height: cfg.Height},
	}
}

// Load reads settings from path, falling back to defaults when path is
// empty or the file does not exist. File values overlay the defaults, so
// a partial tuning file only overrides what it names.
func Load(path string) (Settings, error) {
	settings := Default()
	if path == "" {
		return settings, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return Settings{}, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &settings); err != nil {
		return Settings{}, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Validate checks the settings against the struct tags
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			f := verrs[0]
			return fmt.Errorf("invalid config: field %s failed %s constraint", f.Namespace(), f.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// EngineConfig converts settings to the engine's config struct
func (s *Settings) EngineConfig() physics.Config {
	return physics.Config{
		Repulsion:         s.Physics.Repulsion,
		Attraction:        s.Physics.Attraction,
		Damping:           s.Physics.Damping,
		IdealDistance:     s.Physics.IdealDistance,
		CenterGravity:     s.Physics.CenterGravity,
		MaxVelocity:       s.Physics.MaxVelocity,
		VelocityThreshold: s.Physics.VelocityThreshold,
		Width:             s.Canvas.Width,
		Height:            s.Canvas.Height,
	}
}
