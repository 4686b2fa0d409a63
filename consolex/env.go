package consolex

import (
	"errors"
	"fmt"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/Abraxas-365/termlogx/logx"
)

// ErrEnvNotValid wraps every FromEnv failure.
var ErrEnvNotValid = errors.New("consolex: environment variables not valid")

type envConfig struct {
	Module string `env:"LOG_MODULE" envDefault:"main"`
	Level  string `env:"LOG_LEVEL" envDefault:"INFO"`
	Color  string `env:"LOG_COLOR" envDefault:"auto"`
}

// FromEnv builds a configuration from LOG_MODULE, LOG_LEVEL and LOG_COLOR.
// The core never reads the environment on its own; call this explicitly when
// environment-driven setup is wanted, then customize and Build as usual.
func FromEnv() (*Config, error) {
	var vars envConfig
	if err := env.Parse(&vars); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvNotValid, err.Error())
	}

	level, err := logx.ParseLevel(vars.Level)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEnvNotValid, err.Error())
	}

	c := New(vars.Module, level)

	switch strings.ToLower(vars.Color) {
	case "auto":
		c.Color(ColorAuto)
	case "always", "true":
		c.Color(ColorAlways)
	case "never", "false":
		c.Color(ColorNever)
	default:
		return nil, fmt.Errorf("%w: LOG_COLOR must be auto, always or never", ErrEnvNotValid)
	}

	return c, nil
}
