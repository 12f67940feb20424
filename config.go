package constellation

import (
	"errors"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/spf13/viper"
)

const (
	// ConfigEnv is the environment variable holding the directory of conf.toml.
	ConfigEnv = "CONSTELLATION_CONFIG"

	defaultCurveSamples      = 100
	defaultParallelThreshold = 64
)

// Settings tunes the geometry service. They never change the computed geometry,
// only how many points are sampled on the curves and how the work is spread.
type Settings struct {
	Workers           int    // goroutines for the pairwise visibility tests
	ParallelThreshold int    // minimum number of satellites before going parallel
	CurveSamples      int    // points per orbit outline and reference circle
	LogLevel          string // debug, info, warning or error
	ExtraBodies       Bodies // bodies added to (or replacing) the built-in table
}

// DefaultSettings returns the settings used when no configuration is found.
func DefaultSettings() Settings {
	return Settings{
		Workers:           runtime.NumCPU(),
		ParallelThreshold: defaultParallelThreshold,
		CurveSamples:      defaultCurveSamples,
		LogLevel:          "info",
	}
}

// Bodies returns the built-in body table with the configured bodies applied.
func (s Settings) Bodies() Bodies {
	objects := make([]CelestialObject, 0, len(s.ExtraBodies))
	for _, name := range s.ExtraBodies.Names() {
		objects = append(objects, s.ExtraBodies[name])
	}
	return DefaultBodies().With(objects...)
}

func (s Settings) String() string {
	return fmt.Sprintf("workers=%d parallel_threshold=%d curve_samples=%d log_level=%s extra_bodies=%v", s.Workers, s.ParallelThreshold, s.CurveSamples, s.LogLevel, s.ExtraBodies.Names())
}

// withDefaults fills the unset fields from DefaultSettings. A zero ParallelThreshold
// is kept: it means always parallel.
func (s Settings) withDefaults() Settings {
	def := DefaultSettings()
	if s.Workers < 1 {
		s.Workers = def.Workers
	}
	if s.CurveSamples < 1 {
		s.CurveSamples = def.CurveSamples
	}
	if s.LogLevel == "" {
		s.LogLevel = def.LogLevel
	}
	return s
}

// LoadSettings reads conf.toml from the provided directory.
// A missing file is not an error: the defaults are returned.
func LoadSettings(dir string) (Settings, error) {
	v := viper.New()
	v.SetConfigName("conf")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)
	def := DefaultSettings()
	v.SetDefault("general.workers", def.Workers)
	v.SetDefault("general.parallel_threshold", def.ParallelThreshold)
	v.SetDefault("general.curve_samples", def.CurveSamples)
	v.SetDefault("log.level", def.LogLevel)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Settings{}, fmt.Errorf("could not read %s/conf.toml: %w", dir, err)
		}
	}

	s := Settings{
		Workers:           v.GetInt("general.workers"),
		ParallelThreshold: v.GetInt("general.parallel_threshold"),
		CurveSamples:      v.GetInt("general.curve_samples"),
		LogLevel:          strings.ToLower(v.GetString("log.level")),
	}
	if s.Workers < 1 {
		return Settings{}, fmt.Errorf("general.workers must be at least 1, got %d", s.Workers)
	}
	if s.CurveSamples < 1 {
		return Settings{}, fmt.Errorf("general.curve_samples must be at least 1, got %d", s.CurveSamples)
	}
	if s.ParallelThreshold < 0 {
		return Settings{}, fmt.Errorf("general.parallel_threshold must not be negative, got %d", s.ParallelThreshold)
	}
	switch s.LogLevel {
	case "debug", "info", "warning", "warn", "error":
	default:
		return Settings{}, fmt.Errorf("unknown log.level `%s`", s.LogLevel)
	}

	if sub := v.Sub("bodies"); sub != nil {
		s.ExtraBodies = make(Bodies)
		for _, name := range sub.AllKeys() {
			radius := sub.GetFloat64(name)
			if radius <= 0 {
				return Settings{}, fmt.Errorf("bodies.%s radius must be strictly positive, got %f", name, radius)
			}
			s.ExtraBodies[strings.ToLower(name)] = CelestialObject{Name: name, Radius: radius}
		}
	}
	return s, nil
}

// SettingsFromEnv loads the settings from the directory in CONSTELLATION_CONFIG, if set.
func SettingsFromEnv() (Settings, error) {
	dir := os.Getenv(ConfigEnv)
	if dir == "" {
		return DefaultSettings(), nil
	}
	return LoadSettings(dir)
}
