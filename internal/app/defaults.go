package app

import (
	"os"
	"path/filepath"
	"strings"
)

// DefaultSourcesListDir is where rosdep installs its sources list files.
const DefaultSourcesListDir = "/etc/ros/rosdep/sources.list.d"

const rosHomeEnv = "ROS_HOME"

// DefaultSourcesCacheDir resolves $ROS_HOME/rosdep/sources.cache, with
// ROS_HOME defaulting to ~/.ros.
func DefaultSourcesCacheDir() string {
	return filepath.Join(rosHome(), "rosdep", "sources.cache")
}

func rosHome() string {
	if value := strings.TrimSpace(os.Getenv(rosHomeEnv)); value != "" {
		return value
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".ros"
	}
	return filepath.Join(home, ".ros")
}
