package opts

import (
	"io"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/afero"
	"github.com/walteh/dtfix/pkg/log"
	"gitlab.com/tozd/go/errors"
)

// RootOpts contains shared options used by all commands. The flag fields are
// bound by the root command; Fs and Logger are filled in before any RunE.
type RootOpts struct {
	Root    string
	Debug   bool
	LogFile string

	Fs     afero.Fs
	Logger *log.Logger

	// closes the rotated log file, if any
	Closer io.Closer
}

// Env holds the flag defaults read from the environment. Flags win.
type Env struct {
	Root    string `env:"DTFIX_ROOT"     envDefault:"."`
	Debug   bool   `env:"DTFIX_DEBUG"    envDefault:"false"`
	LogFile string `env:"DTFIX_LOG_FILE"`
}

// LoadEnv parses the DTFIX_* variables
func LoadEnv() (*Env, error) {
	e := &Env{}
	if err := env.Parse(e); err != nil {
		return nil, errors.Errorf("parsing environment: %w", err)
	}
	return e, nil
}
