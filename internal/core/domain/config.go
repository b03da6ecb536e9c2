package domain

import (
	"math"
	"strconv"
	"strings"
	"time"

	"go.trai.ch/zerr"
)

// DefaultIndexDelay is the pause granted to the registry index between groups.
const DefaultIndexDelay = 60 * time.Second

// DefaultRegistryCommand is the registry CLI binary.
const DefaultRegistryCommand = "cargo"

// ReleaseConfig is the validated release configuration of a workspace.
type ReleaseConfig struct {
	Layout Layout
	Plan   Plan
	// Version is empty when the workspace manifest should provide it.
	Version     string
	IndexDelay  time.Duration
	InstallHint string
	Registry    RegistryConfig
}

// RegistryConfig describes how to invoke the registry CLI.
type RegistryConfig struct {
	Command string
	Env     map[string]string
}

// maxDelaySeconds is the largest bare number of seconds a time.Duration holds.
const maxDelaySeconds = math.MaxInt64 / int64(time.Second)

// ParseDelay parses a delay given as a Go duration or a bare number of seconds.
// An empty value selects DefaultIndexDelay.
func ParseDelay(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultIndexDelay, nil
	}

	var delay time.Duration
	if secs, err := strconv.ParseInt(raw, 10, 64); err == nil {
		if secs > maxDelaySeconds {
			return 0, zerr.With(ErrInvalidDelay, "delay", raw)
		}
		delay = time.Duration(secs) * time.Second
	} else {
		delay, err = time.ParseDuration(raw)
		if err != nil {
			return 0, zerr.With(zerr.Wrap(err, ErrInvalidDelay.Error()), "delay", raw)
		}
	}

	if delay < 0 {
		return 0, zerr.With(ErrInvalidDelay, "delay", raw)
	}
	return delay, nil
}
