package types

import "errors"

// Config holds the resolved runtime configuration for the workbench CLI:
// where projects live and what command opens them by default.
type Config struct {
	Root     string `json:"root" yaml:"root"`
	Executor string `json:"executor" yaml:"executor"`
}

// Config validation errors.
var (
	ErrRootEmpty     = errors.New("projects root must not be empty")
	ErrExecutorEmpty = errors.New("executor must not be empty")
)

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if c.Root == "" {
		return ErrRootEmpty
	}
	if c.Executor == "" {
		return ErrExecutorEmpty
	}
	return nil
}
