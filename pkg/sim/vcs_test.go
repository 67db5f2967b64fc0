package sim

import (
	"reflect"
	"strings"
	"testing"
)

func TestCompileArgsDefaults(t *testing.T) {
	args := DefaultVCSOptions().CompileArgs()

	want := []string{"vcs", "-timescale=1ns/1ps"}
	if !reflect.DeepEqual(args, want) {
		t.Errorf("CompileArgs() = %v, want %v", args, want)
	}
}

func TestCompileArgsEmptyTimescale(t *testing.T) {
	opts := &VCSOptions{}
	args := opts.CompileArgs()

	if args[1] != "-timescale=1ns/1ps" {
		t.Errorf("args[1] = %s, want default timescale", args[1])
	}
}

func TestCompileArgsAllOptions(t *testing.T) {
	opts := &VCSOptions{
		Timescale:     "1ps/1fs",
		Debug:         true,
		Coverage:      true,
		Full64:        true,
		SystemVerilog: true,
		Assertions:    true,
		Filelist:      "files.f",
		Includes:      []string{"include/", "tb/include/"},
		Sources:       []string{"rtl/top.sv", "tb/tb_top.sv"},
	}

	want := []string{
		"vcs",
		"-timescale=1ps/1fs",
		"-debug_all",
		"-cm", "line+cond+fsm+branch+tgl",
		"-full64",
		"-sverilog",
		"-assert", "svaext",
		"-f", "files.f",
		"rtl/top.sv", "tb/tb_top.sv",
		"+incdir+include/", "+incdir+tb/include/",
	}
	if got := opts.CompileArgs(); !reflect.DeepEqual(got, want) {
		t.Errorf("CompileArgs() = %v, want %v", got, want)
	}
}

func TestSimArgs(t *testing.T) {
	opts := &VCSOptions{GUI: true, PlusArgs: []string{"+verbose", "+seed=42"}}

	want := []string{"./simv", "-gui", "+verbose", "+seed=42"}
	if got := opts.SimArgs(); !reflect.DeepEqual(got, want) {
		t.Errorf("SimArgs() = %v, want %v", got, want)
	}

	plain := &VCSOptions{}
	if got := plain.SimArgs(); !reflect.DeepEqual(got, []string{"./simv"}) {
		t.Errorf("SimArgs() = %v, want [./simv]", got)
	}
}

func TestVCSCompile(t *testing.T) {
	fake := &FakeCommandRunner{Output: "Compilation complete"}
	vcs := NewVCS(fake)

	opts := DefaultVCSOptions()
	opts.Sources = []string{"rtl/top.v"}

	out, err := vcs.Compile(opts)
	if err != nil {
		t.Fatalf("Compile failed: %v", err)
	}
	if out != "Compilation complete" {
		t.Errorf("output = %q", out)
	}

	if len(fake.Calls) != 1 {
		t.Fatalf("got %d runner calls, want 1", len(fake.Calls))
	}
	if !reflect.DeepEqual(fake.Calls[0], opts.CompileArgs()) {
		t.Errorf("runner argv = %v, want %v", fake.Calls[0], opts.CompileArgs())
	}
}

func TestVCSCompileError(t *testing.T) {
	fake := &FakeCommandRunner{ErrStr: "exit status 1"}
	vcs := NewVCS(fake)

	_, err := vcs.Compile(DefaultVCSOptions())
	if err == nil {
		t.Fatal("expected compilation error")
	}
	if !strings.Contains(err.Error(), "vcs compilation failed") {
		t.Errorf("error = %v", err)
	}
}

func TestVCSSimulate(t *testing.T) {
	fake := &FakeCommandRunner{}
	vcs := NewVCS(fake)

	opts := &VCSOptions{PlusArgs: []string{"+dump"}}
	if _, err := vcs.Simulate(opts); err != nil {
		t.Fatalf("Simulate failed: %v", err)
	}

	want := []string{"./simv", "+dump"}
	if len(fake.Calls) != 1 || !reflect.DeepEqual(fake.Calls[0], want) {
		t.Errorf("runner calls = %v, want [%v]", fake.Calls, want)
	}
}
