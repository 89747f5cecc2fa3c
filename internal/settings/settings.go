// Package settings holds the configuration of the collections CLI.
package settings

import (
	"errors"
	"fmt"
	"strings"

	"github.com/a-peyrard/collections/arraylist"
	"github.com/a-peyrard/collections/config"
	"github.com/rs/zerolog"
)

// EnvPrefix prefixes every environment variable read by the CLI, e.g. COLLECTIONS_LOG_LEVEL.
const EnvPrefix = "COLLECTIONS"

// DefaultAppends is the number of appends of a growth experiment when none is configured.
const DefaultAppends = 1000

type (
	Settings struct {
		// InitialCapacity of the lists built by the CLI. Nil until loaded, 0 is a valid capacity.
		InitialCapacity *int   `mapstructure:"initial_capacity"`
		LogLevel        string `mapstructure:"log_level"`
		Growth          Growth `mapstructure:"growth"`
	}

	Growth struct {
		// Appends per experiment. Nil until loaded, 0 is a valid count.
		Appends     *int  `mapstructure:"appends"`
		Capacities  []int `mapstructure:"capacities"`
		Parallelism int   `mapstructure:"parallelism"`
	}
)

func (s *Settings) ApplyDefault() {
	if s.InitialCapacity == nil {
		s.InitialCapacity = ptr(arraylist.DefaultInitialCapacity)
	}
	if s.LogLevel == "" {
		s.LogLevel = zerolog.InfoLevel.String()
	}
}

func (g *Growth) ApplyDefault() {
	if g.Appends == nil {
		g.Appends = ptr(DefaultAppends)
	}
	if len(g.Capacities) == 0 {
		g.Capacities = []int{0, 1, arraylist.DefaultInitialCapacity}
	}
}

// Load reads the settings from the environment and, if not empty, the given file.
func Load(file string) (*Settings, error) {
	s, err := config.Load[Settings](config.WithEnvPrefix(EnvPrefix), config.WithFile(file))
	if err != nil {
		return nil, err
	}
	if err = s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return s, nil
}

// Validate checks the values that cannot be fixed by defaults.
func (s *Settings) Validate() error {
	var problems []error
	if s.InitialCapacity != nil && *s.InitialCapacity < 0 {
		problems = append(problems, fmt.Errorf("initial_capacity must not be negative, got %d", *s.InitialCapacity))
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(s.LogLevel)); err != nil {
		problems = append(problems, fmt.Errorf("log_level %q is not a valid level", s.LogLevel))
	}
	if s.Growth.Appends != nil && *s.Growth.Appends < 0 {
		problems = append(problems, fmt.Errorf("growth.appends must not be negative, got %d", *s.Growth.Appends))
	}
	for _, capacity := range s.Growth.Capacities {
		if capacity < 0 {
			problems = append(problems, fmt.Errorf("growth.capacities must not contain negative values, got %d", capacity))
		}
	}
	return errors.Join(problems...)
}

func ptr(v int) *int {
	return &v
}
