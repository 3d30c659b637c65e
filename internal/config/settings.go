package config

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"
)

// Reminder describes an optional alarm attached to exported calendar events.
type Reminder struct {
	Enabled   bool   `yaml:"enabled"`
	Value     int    `yaml:"value"`
	Unit      string `yaml:"unit"`      // UnitDays, UnitHours or UnitMinutes
	Direction string `yaml:"direction"` // DirBefore or DirAfter
}

// Settings holds the user-tunable options read from the YAML settings file.
// Command-line flags take precedence over any value found here.
type Settings struct {
	Language string   `yaml:"language"`
	Debug    bool     `yaml:"debug"`
	LogFile  string   `yaml:"log_file"`
	Reminder Reminder `yaml:"reminder"`
}

// DefaultSettings returns the settings used when no file is provided.
func DefaultSettings() Settings {
	return Settings{
		Language: DefaultLanguage,
		Reminder: Reminder{
			Value:     DefaultReminderValue,
			Unit:      UnitDays,
			Direction: DirBefore,
		},
	}
}

// LoadSettings reads and validates the YAML file at path.
// An empty path yields DefaultSettings.
func LoadSettings(path string) (Settings, error) {
	s := DefaultSettings()
	if path == "" {
		return s, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("%s: %w", ErrConfigRead, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("%s: %w", ErrConfigParse, err)
	}
	if err := s.Validate(); err != nil {
		return s, fmt.Errorf("%s: %w", ErrConfigInvalid, err)
	}
	return s, nil
}

// Validate checks that every field holds a supported value.
func (s Settings) Validate() error {
	if !slices.Contains(SupportedLanguages, s.Language) {
		return fmt.Errorf("%s: %q", ErrLanguage, s.Language)
	}
	if !s.Reminder.Enabled {
		return nil
	}
	if s.Reminder.Value <= 0 {
		return errors.New(ErrReminderValue)
	}
	switch s.Reminder.Unit {
	case UnitDays, UnitHours, UnitMinutes:
	default:
		return fmt.Errorf("%s: %q", ErrReminderUnit, s.Reminder.Unit)
	}
	switch s.Reminder.Direction {
	case DirBefore, DirAfter:
	default:
		return fmt.Errorf("%s: %q", ErrReminderDir, s.Reminder.Direction)
	}
	return nil
}

// ReminderTrigger converts the reminder block to an ISO8601 duration
// suitable for a VALARM TRIGGER (e.g. "-P1D"). It returns "" when disabled.
func (s Settings) ReminderTrigger() string {
	r := s.Reminder
	if !r.Enabled {
		return ""
	}

	val := r.Value
	if val <= 0 {
		val = DefaultReminderValue
	}

	sign := ISOPeriodPrefix
	if r.Direction != DirAfter {
		sign = ISONegativePrefix
	}

	// Time components need the "T" designator inside the period.
	switch r.Unit {
	case UnitHours:
		return fmt.Sprintf("%sT%d%s", sign, val, ISOHour)
	case UnitMinutes:
		return fmt.Sprintf("%sT%d%s", sign, val, ISOMinute)
	default:
		return fmt.Sprintf("%s%d%s", sign, val, ISODay)
	}
}
