package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tartampluch/go-contacts/internal/config"
)

// TestConstants_Integrity ensures critical constants are not empty or malformed.
func TestConstants_Integrity(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"AppName", config.AppName},
		{"AppID", config.AppID},
		{"Version", config.Version},
		{"ICalVersion", config.ICalVersion},
		{"ICalProdid", config.ICalProdid},
		{"DateFormatInput", config.DateFormatInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEmpty(t, tt.value, "Critical constant %s should not be empty", tt.name)
		})
	}
}

// TestDefaults_Sanity checks that default values make sense logically.
func TestDefaults_Sanity(t *testing.T) {
	assert.Equal(t, 7, config.UpcomingWindowDays, "Upcoming window is one week")
	assert.Equal(t, 10, config.PhoneDigits)
	assert.Contains(t, config.TagPhone, "len=10")
	assert.Contains(t, config.SupportedLanguages, config.DefaultLanguage)
	assert.True(t, strings.HasPrefix(config.StubVCalendar, "BEGIN:VCALENDAR"))
}

func writeSettings(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadSettings_EmptyPathUsesDefaults(t *testing.T) {
	s, err := config.LoadSettings("")
	require.NoError(t, err)
	assert.Equal(t, config.DefaultSettings(), s)
	assert.Empty(t, s.ReminderTrigger(), "Reminders are disabled by default")
}

func TestLoadSettings_File(t *testing.T) {
	path := writeSettings(t, `
language: fr
debug: true
log_file: /tmp/contacts.log
reminder:
  enabled: true
  value: 2
  unit: d
  direction: before
`)

	s, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, "fr", s.Language)
	assert.True(t, s.Debug)
	assert.Equal(t, "/tmp/contacts.log", s.LogFile)
	assert.Equal(t, "-P2D", s.ReminderTrigger())
}

func TestLoadSettings_PartialFileKeepsDefaults(t *testing.T) {
	path := writeSettings(t, "debug: true\n")

	s, err := config.LoadSettings(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultLanguage, s.Language)
	assert.Equal(t, config.UnitDays, s.Reminder.Unit)
}

func TestLoadSettings_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"Malformed YAML", "language: [en", config.ErrConfigParse},
		{"Unknown language", "language: de", config.ErrLanguage},
		{"Bad unit", "reminder: {enabled: true, value: 1, unit: w, direction: before}", config.ErrReminderUnit},
		{"Bad direction", "reminder: {enabled: true, value: 1, unit: d, direction: during}", config.ErrReminderDir},
		{"Zero value", "reminder: {enabled: true, value: 0, unit: d, direction: before}", config.ErrReminderValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := config.LoadSettings(writeSettings(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLoadSettings_MissingFile(t *testing.T) {
	_, err := config.LoadSettings(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), config.ErrConfigRead)
}

// TestReminderTrigger tests the conversion of reminder settings to an ISO8601 trigger.
func TestReminderTrigger(t *testing.T) {
	tests := []struct {
		name        string
		reminder    config.Reminder
		wantTrigger string
	}{
		{"Disabled", config.Reminder{Enabled: false, Value: 1, Unit: config.UnitDays}, ""},
		{"1 Day Before", config.Reminder{Enabled: true, Value: 1, Unit: config.UnitDays, Direction: config.DirBefore}, "-P1D"},
		{"2 Hours After", config.Reminder{Enabled: true, Value: 2, Unit: config.UnitHours, Direction: config.DirAfter}, "PT2H"},
		{"30 Minutes Before", config.Reminder{Enabled: true, Value: 30, Unit: config.UnitMinutes, Direction: config.DirBefore}, "-PT30M"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := config.DefaultSettings()
			s.Reminder = tt.reminder
			assert.Equal(t, tt.wantTrigger, s.ReminderTrigger())
		})
	}
}
