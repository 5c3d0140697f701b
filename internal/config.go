package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/Guerrilla-Interactive/ng-skeleton/app/outline"
)

// ErrUnknownKey is returned by Get and Set for keys Config does not have.
var ErrUnknownKey = errors.New("unknown config key")

// Config represents user settings stored on disk.
type Config struct {
	TemplateMode     string `json:"template_mode"`
	Bootstrap        bool   `json:"bootstrap"`
	DefaultPlacement string `json:"default_placement"`
	OutputPath       string `json:"output_path"`
}

// Default returns the settings used when no config file exists.
func Default() Config {
	return Config{
		TemplateMode:     string(outline.ModeFull),
		Bootstrap:        false,
		DefaultPlacement: outline.PlaceChild.String(),
		OutputPath:       "index.html",
	}
}

// Mode returns the template mode, falling back to full for bad values.
func (c Config) Mode() outline.Mode {
	m, err := outline.ParseMode(c.TemplateMode)
	if err != nil {
		return outline.ModeFull
	}
	return m
}

// Placement returns the default add placement, falling back to child.
func (c Config) Placement() outline.Placement {
	p, err := outline.ParsePlacement(c.DefaultPlacement)
	if err != nil {
		return outline.PlaceChild
	}
	return p
}

// Keys lists the settable keys sorted by name, the order config list and
// the settings screen show them in.
func Keys() []string {
	keys := []string{"template_mode", "bootstrap", "default_placement", "output_path"}
	sort.Strings(keys)
	return keys
}

// Get returns the string form of a setting.
func (c Config) Get(key string) (string, error) {
	switch key {
	case "template_mode":
		return c.TemplateMode, nil
	case "bootstrap":
		return strconv.FormatBool(c.Bootstrap), nil
	case "default_placement":
		return c.DefaultPlacement, nil
	case "output_path":
		return c.OutputPath, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
}

// Set validates and assigns a setting from its string form.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)
	switch key {
	case "template_mode":
		m, err := outline.ParseMode(value)
		if err != nil {
			return err
		}
		c.TemplateMode = string(m)
	case "bootstrap":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("bootstrap must be true or false: %w", err)
		}
		c.Bootstrap = b
	case "default_placement":
		p, err := outline.ParsePlacement(value)
		if err != nil {
			return err
		}
		c.DefaultPlacement = p.String()
	case "output_path":
		if value == "" {
			return fmt.Errorf("output_path cannot be empty")
		}
		c.OutputPath = value
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}
