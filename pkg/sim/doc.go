// Package sim wraps the Synopsys VCS and Verdi command-line tools.
//
// The package does not interpret tool behavior. It assembles argument
// vectors from explicit option structs and hands them to a CommandRunner,
// so the exact invocation is testable without the tools installed.
//
// # Overview
//
// The sim package provides:
//   - CommandRunner: A narrow seam for executing external commands
//   - VCSOptions / VCS: Compilation and simulation via vcs and ./simv
//   - VerdiOptions / Verdi: Debug sessions via verdi
//
// # Usage
//
//	opts := sim.DefaultVCSOptions()
//	opts.SystemVerilog = true
//	opts.Sources = []string{"rtl/top.sv"}
//
//	vcs := sim.NewVCS(&sim.ExecCommandRunner{})
//	out, err := vcs.Compile(opts)
//	if err != nil {
//		// compilation failed; out holds the tool's combined output
//	}
package sim
