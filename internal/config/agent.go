package config

import (
	"os"
	"syscall"

	"github.com/watsonbar/watsonbar/internal/models"
)

// LoadAgentInfo loads the running-instance info from ~/.watsonbar/agent.yaml.
// Returns nil if the file doesn't exist.
func LoadAgentInfo() (*models.AgentInfo, error) {
	path, err := GlobalAgentFile()
	if err != nil {
		return nil, err
	}

	if !FileExists(path) {
		return nil, nil
	}

	var info models.AgentInfo
	if err := LoadYAML(path, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// SaveAgentInfo saves the running-instance info to ~/.watsonbar/agent.yaml.
func SaveAgentInfo(info *models.AgentInfo) error {
	if err := EnsureGlobalDir(); err != nil {
		return err
	}

	path, err := GlobalAgentFile()
	if err != nil {
		return err
	}
	return SaveYAML(path, info)
}

// RemoveAgentInfo removes the agent.yaml file.
func RemoveAgentInfo() error {
	path, err := GlobalAgentFile()
	if err != nil {
		return err
	}

	if !FileExists(path) {
		return nil
	}
	return os.Remove(path)
}

// IsAgentRunning checks if another watsonbar process is still running.
// Returns true if agent.yaml exists and its PID is alive.
func IsAgentRunning() (bool, *models.AgentInfo, error) {
	info, err := LoadAgentInfo()
	if err != nil {
		return false, nil, err
	}
	if info == nil {
		return false, nil, nil
	}
	if info.PID == os.Getpid() {
		return false, info, nil
	}

	process, err := os.FindProcess(info.PID)
	if err != nil {
		return false, info, nil
	}

	// Signal 0 only checks that the process exists
	if err := process.Signal(syscall.Signal(0)); err != nil {
		_ = RemoveAgentInfo()
		return false, info, nil
	}

	return true, info, nil
}
