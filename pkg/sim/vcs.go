package sim

import "fmt"

// DefaultTimescale is used when no timescale is configured.
const DefaultTimescale = "1ns/1ps"

// coverageMetrics selects the coverage types collected under -cm.
const coverageMetrics = "line+cond+fsm+branch+tgl"

// VCSOptions describes a single vcs invocation. The zero value is usable;
// DefaultVCSOptions fills in the conventional defaults.
type VCSOptions struct {
	Timescale     string   `yaml:"timescale,omitempty"`
	Debug         bool     `yaml:"debug,omitempty"`
	Coverage      bool     `yaml:"coverage,omitempty"`
	Full64        bool     `yaml:"full64,omitempty"`
	SystemVerilog bool     `yaml:"sverilog,omitempty"`
	Assertions    bool     `yaml:"assertions,omitempty"`
	Filelist      string   `yaml:"filelist,omitempty"`
	Includes      []string `yaml:"includes,omitempty"`
	Sources       []string `yaml:"sources,omitempty"`
	Run           bool     `yaml:"run,omitempty"`
	GUI           bool     `yaml:"gui,omitempty"`
	PlusArgs      []string `yaml:"plusargs,omitempty"`
}

// DefaultVCSOptions returns options with the conventional timescale set.
func DefaultVCSOptions() *VCSOptions {
	return &VCSOptions{Timescale: DefaultTimescale}
}

// CompileArgs builds the argument vector for the vcs compilation step.
func (o *VCSOptions) CompileArgs() []string {
	timescale := o.Timescale
	if timescale == "" {
		timescale = DefaultTimescale
	}

	args := []string{"vcs", "-timescale=" + timescale}
	if o.Debug {
		args = append(args, "-debug_all")
	}
	if o.Coverage {
		args = append(args, "-cm", coverageMetrics)
	}
	if o.Full64 {
		args = append(args, "-full64")
	}
	if o.SystemVerilog {
		args = append(args, "-sverilog")
	}
	if o.Assertions {
		args = append(args, "-assert", "svaext")
	}
	if o.Filelist != "" {
		args = append(args, "-f", o.Filelist)
	}
	args = append(args, o.Sources...)
	for _, inc := range o.Includes {
		args = append(args, "+incdir+"+inc)
	}
	return args
}

// SimArgs builds the argument vector for running the compiled simv binary.
func (o *VCSOptions) SimArgs() []string {
	args := []string{"./simv"}
	if o.GUI {
		args = append(args, "-gui")
	}
	args = append(args, o.PlusArgs...)
	return args
}

// VCS drives vcs compilation and simulation through a CommandRunner.
type VCS struct {
	runner CommandRunner
}

func NewVCS(runner CommandRunner) *VCS {
	return &VCS{runner: runner}
}

// Compile runs the vcs compilation step and returns the combined tool output.
func (v *VCS) Compile(opts *VCSOptions) (string, error) {
	out, err := v.runner.RunCommand(opts.CompileArgs()...)
	if err != nil {
		return out, fmt.Errorf("sim: vcs compilation failed: %w", err)
	}
	return out, nil
}

// Simulate runs the compiled simv binary and returns the combined tool output.
func (v *VCS) Simulate(opts *VCSOptions) (string, error) {
	out, err := v.runner.RunCommand(opts.SimArgs()...)
	if err != nil {
		return out, fmt.Errorf("sim: simulation failed: %w", err)
	}
	return out, nil
}
