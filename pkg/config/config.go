// Package config reads the shim's settings from the environment.
package config

import (
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every key when reading the environment.
const EnvPrefix = "doxygen_action"

const (
	keyBinary        = "binary"
	keyPropagateExit = "propagate-exit"
	keyDebug         = "debug"
)

// Config holds the shim's settings.
type Config struct {
	Binary        string // DOXYGEN_ACTION_BINARY
	PropagateExit bool   // DOXYGEN_ACTION_PROPAGATE_EXIT
	Debug         bool   // DOXYGEN_ACTION_DEBUG
}

// Load reads Config from the environment, falling back to defaults.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	v.SetDefault(keyBinary, "doxygen")
	v.SetDefault(keyPropagateExit, false)
	v.SetDefault(keyDebug, false)

	cfg := Config{
		Binary:        strings.TrimSpace(v.GetString(keyBinary)),
		PropagateExit: v.GetBool(keyPropagateExit),
		Debug:         v.GetBool(keyDebug),
	}
	if cfg.Binary == "" {
		cfg.Binary = "doxygen"
	}
	return cfg
}
