package models

import (
	"time"

	"github.com/google/uuid"
)

// Run modes recorded in AgentInfo.
const (
	ModeTray       = "tray"
	ModeForeground = "foreground"
	ModeTUI        = "tui"
)

// AgentInfo describes the running watsonbar instance.
// This corresponds to ~/.watsonbar/agent.yaml.
type AgentInfo struct {
	Version   int       `yaml:"version"`
	SessionID string    `yaml:"session_id"`
	PID       int       `yaml:"pid"`
	Mode      string    `yaml:"mode"`
	StartedAt time.Time `yaml:"started_at"`
}

// NewAgentInfo creates agent info for the current process with a fresh
// session ID.
func NewAgentInfo(pid int, mode string) *AgentInfo {
	return &AgentInfo{
		Version:   1,
		SessionID: uuid.New().String(),
		PID:       pid,
		Mode:      mode,
		StartedAt: time.Now().UTC(),
	}
}
