package sim

import (
	"errors"
	"os/exec"

	log "github.com/sirupsen/logrus"
)

// CommandRunner is an interface for executing commands and getting the output/error
type CommandRunner interface {
	RunCommand(...string) (string, error)
}

// ExecCommandRunner runs commands on the host with os/exec.
type ExecCommandRunner struct{}

var _ CommandRunner = &ExecCommandRunner{}

func (e *ExecCommandRunner) RunCommand(args ...string) (string, error) {
	if len(args) == 0 {
		return "", errors.New("sim: empty command")
	}
	log.Debug("Running command: ", args)
	cmd := exec.Command(args[0], args[1:]...)
	out, err := cmd.CombinedOutput()
	log.Debug("Command output: ", string(out))
	return string(out), err
}

// FakeCommandRunner returns canned output and records every argv it was
// given, for tests that assert on the exact invocation.
type FakeCommandRunner struct {
	Output string
	ErrStr string
	Calls  [][]string
}

var _ CommandRunner = &FakeCommandRunner{}

func (f *FakeCommandRunner) RunCommand(args ...string) (string, error) {
	f.Calls = append(f.Calls, args)
	if f.ErrStr != "" {
		return f.Output, errors.New(f.ErrStr)
	}
	return f.Output, nil
}
