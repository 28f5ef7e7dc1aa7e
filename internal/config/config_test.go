package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/watsonbar/watsonbar/internal/models"
)

func withHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	return home
}

func TestLoadSettingsDefaults(t *testing.T) {
	withHome(t)

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.Intervals.Title != time.Second || s.Intervals.Reconcile != time.Minute || s.Intervals.Reminder != 30*time.Minute {
		t.Errorf("Intervals = %+v, want 1s/1m/30m", s.Intervals)
	}
	if !s.Notifications.Enabled || s.Notifications.Title != "Watson Time Tracker" {
		t.Errorf("Notifications = %+v", s.Notifications)
	}
}

func TestLoadSettingsPartialFile(t *testing.T) {
	home := withHome(t)

	path := filepath.Join(home, GlobalDirName, SettingsFileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	content := "watson:\n  path: /opt/bin/watson\nintervals:\n  reminder: 45m\n  title: -1s\nappearance:\n  idle_label: \"\"\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if s.Watson.Path != "/opt/bin/watson" {
		t.Errorf("Watson.Path = %q", s.Watson.Path)
	}
	if s.Intervals.Reminder != 45*time.Minute {
		t.Errorf("Intervals.Reminder = %v, want 45m", s.Intervals.Reminder)
	}
	if s.Intervals.Title != time.Second {
		t.Errorf("Intervals.Title = %v, want default 1s for negative value", s.Intervals.Title)
	}
	if s.Intervals.Reconcile != time.Minute {
		t.Errorf("Intervals.Reconcile = %v, want default", s.Intervals.Reconcile)
	}
	if s.Appearance.IdleLabel != "Watson" {
		t.Errorf("Appearance.IdleLabel = %q, want default", s.Appearance.IdleLabel)
	}
}

func TestLoadSettingsInvalidYAML(t *testing.T) {
	home := withHome(t)
	path := filepath.Join(home, GlobalDirName, SettingsFileName)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("intervals: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(); err == nil {
		t.Error("LoadSettings() error = nil, want parse error")
	}
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	withHome(t)

	s := models.NewSettings()
	s.Intervals.Reminder = 15 * time.Minute
	s.Notifications.Enabled = false
	if err := SaveSettings(s); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}

	got, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings() error = %v", err)
	}
	if got.Intervals.Reminder != 15*time.Minute || got.Notifications.Enabled {
		t.Errorf("loaded %+v", got)
	}

	dir, _ := GlobalDir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if e.Name() != SettingsFileName {
			t.Errorf("unexpected leftover file %q", e.Name())
		}
	}
}

func TestAgentInfoLifecycle(t *testing.T) {
	withHome(t)

	running, info, err := IsAgentRunning()
	if err != nil || running || info != nil {
		t.Fatalf("IsAgentRunning() = %v, %v, %v; want no agent", running, info, err)
	}

	self := models.NewAgentInfo(os.Getpid(), models.ModeTray)
	if self.SessionID == "" {
		t.Error("NewAgentInfo() has empty session ID")
	}
	if err := SaveAgentInfo(self); err != nil {
		t.Fatalf("SaveAgentInfo() error = %v", err)
	}

	loaded, err := LoadAgentInfo()
	if err != nil {
		t.Fatalf("LoadAgentInfo() error = %v", err)
	}
	if loaded.SessionID != self.SessionID || loaded.Mode != models.ModeTray {
		t.Errorf("LoadAgentInfo() = %+v, want %+v", loaded, self)
	}

	// Our own PID is never reported as another running instance.
	if running, _, _ := IsAgentRunning(); running {
		t.Error("IsAgentRunning() = true for the current process")
	}

	if err := RemoveAgentInfo(); err != nil {
		t.Fatalf("RemoveAgentInfo() error = %v", err)
	}
	if err := RemoveAgentInfo(); err != nil {
		t.Errorf("second RemoveAgentInfo() error = %v", err)
	}
}
