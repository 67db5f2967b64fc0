package sim

import "fmt"

// ValidVerdiModes lists the debug modes verdi accepts.
var ValidVerdiModes = []string{"syn", "rtl", "gate"}

// VerdiOptions describes a single verdi invocation.
type VerdiOptions struct {
	Mode     string   `yaml:"mode,omitempty"`
	SSF      string   `yaml:"ssf,omitempty"`
	UPF      string   `yaml:"upf,omitempty"`
	Filelist string   `yaml:"filelist,omitempty"`
	Sources  []string `yaml:"sources,omitempty"`
}

// Validate checks that Mode, if set, is one of the supported debug modes.
func (o *VerdiOptions) Validate() error {
	if o.Mode == "" {
		return nil
	}
	for _, mode := range ValidVerdiModes {
		if o.Mode == mode {
			return nil
		}
	}
	return fmt.Errorf("sim: invalid verdi mode %q: must be one of %v", o.Mode, ValidVerdiModes)
}

// Args builds the argument vector for launching verdi.
func (o *VerdiOptions) Args() []string {
	args := []string{"verdi"}
	if o.Mode != "" {
		args = append(args, "-mode", o.Mode)
	}
	if o.SSF != "" {
		args = append(args, "-ssf", o.SSF)
	}
	if o.UPF != "" {
		args = append(args, "-upf", o.UPF)
	}
	if o.Filelist != "" {
		args = append(args, "-f", o.Filelist)
	}
	args = append(args, o.Sources...)
	return args
}

// Verdi launches verdi debug sessions through a CommandRunner.
type Verdi struct {
	runner CommandRunner
}

func NewVerdi(runner CommandRunner) *Verdi {
	return &Verdi{runner: runner}
}

// Launch validates the options and starts a verdi session, returning the
// combined tool output.
func (v *Verdi) Launch(opts *VerdiOptions) (string, error) {
	if err := opts.Validate(); err != nil {
		return "", err
	}
	out, err := v.runner.RunCommand(opts.Args()...)
	if err != nil {
		return out, fmt.Errorf("sim: verdi launch failed: %w", err)
	}
	return out, nil
}
