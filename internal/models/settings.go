package models

import "time"

// WatsonConfig locates the watson binary.
type WatsonConfig struct {
	Path    string        `yaml:"path"` // empty = lookup in PATH
	Timeout time.Duration `yaml:"timeout"`
}

// IntervalsConfig holds the three polling cadences.
type IntervalsConfig struct {
	Title     time.Duration `yaml:"title"`
	Reconcile time.Duration `yaml:"reconcile"`
	Reminder  time.Duration `yaml:"reminder"`
}

// NotificationsConfig holds reminder notification settings.
type NotificationsConfig struct {
	Enabled bool   `yaml:"enabled"`
	Title   string `yaml:"title"`
}

// AppearanceConfig holds menu title settings.
type AppearanceConfig struct {
	Icon          string `yaml:"icon"`
	IdleLabel     string `yaml:"idle_label"`
	MaxTitleWidth int    `yaml:"max_title_width"`
}

// Settings represents global application settings.
// This corresponds to ~/.watsonbar/settings.yaml.
type Settings struct {
	Version       int                 `yaml:"version"`
	Watson        WatsonConfig        `yaml:"watson"`
	Intervals     IntervalsConfig     `yaml:"intervals"`
	Notifications NotificationsConfig `yaml:"notifications"`
	Appearance    AppearanceConfig    `yaml:"appearance"`
}

// NewSettings creates settings with default values.
func NewSettings() *Settings {
	return &Settings{
		Version: 1,
		Watson: WatsonConfig{
			Path:    "",
			Timeout: 10 * time.Second,
		},
		Intervals: IntervalsConfig{
			Title:     time.Second,
			Reconcile: time.Minute,
			Reminder:  30 * time.Minute,
		},
		Notifications: NotificationsConfig{
			Enabled: true,
			Title:   "Watson Time Tracker",
		},
		Appearance: AppearanceConfig{
			Icon:          "⏱",
			IdleLabel:     "Watson",
			MaxTitleWidth: 40,
		},
	}
}

// Normalize replaces missing or non-positive values with defaults.
func (s *Settings) Normalize() {
	def := NewSettings()
	if s.Version == 0 {
		s.Version = def.Version
	}
	if s.Watson.Timeout < 0 {
		s.Watson.Timeout = def.Watson.Timeout
	}
	if s.Intervals.Title <= 0 {
		s.Intervals.Title = def.Intervals.Title
	}
	if s.Intervals.Reconcile <= 0 {
		s.Intervals.Reconcile = def.Intervals.Reconcile
	}
	if s.Intervals.Reminder <= 0 {
		s.Intervals.Reminder = def.Intervals.Reminder
	}
	if s.Notifications.Title == "" {
		s.Notifications.Title = def.Notifications.Title
	}
	if s.Appearance.Icon == "" {
		s.Appearance.Icon = def.Appearance.Icon
	}
	if s.Appearance.IdleLabel == "" {
		s.Appearance.IdleLabel = def.Appearance.IdleLabel
	}
	if s.Appearance.MaxTitleWidth < 0 {
		s.Appearance.MaxTitleWidth = 0
	}
}
