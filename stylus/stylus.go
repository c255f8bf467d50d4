// Package stylus provides a convenient interface for calling the Rust toolchain
// and the 'cargo stylus' deployment tool from Go.
package stylus

import (
	"context"
	"os/exec"
	"strings"
)

// WasmTarget is the compilation target required by Stylus programs.
const WasmTarget = "wasm32-unknown-unknown"

// DeployOpts parameterizes a 'cargo stylus deploy' invocation.
type DeployOpts struct {
	WasmFile   string
	Network    string
	Endpoint   string
	PrivateKey string
	Mnemonic   string
	JSONOutput bool
}

// CallOpts parameterizes a 'cargo stylus call' invocation against a deployed program.
type CallOpts struct {
	Address    string
	Function   string
	Args       []string
	Network    string
	Endpoint   string
	PrivateKey string
	Mnemonic   string
}

type Toolchain interface {
	RustcVersion(ctx context.Context) *Result
	StylusVersion(ctx context.Context) *Result
	InstalledTargets(ctx context.Context) *Result
	AddTarget(ctx context.Context, target string) *Result
	Build(ctx context.Context, target string) *Result
	Check(ctx context.Context, wasmFile, endpoint string) *Result
	Deploy(ctx context.Context, opts DeployOpts) *Result
	Call(ctx context.Context, opts CallOpts) *Result
}

func NewCargoToolchain(projectDir string, runner Runner) Toolchain {
	if runner == nil {
		runner = NewExecRunner()
	}

	return &cargoToolchain{
		projectDir: projectDir,
		runner:     runner,
	}
}

type cargoToolchain struct {
	projectDir string
	runner     Runner
}

func (t *cargoToolchain) RustcVersion(ctx context.Context) *Result {
	return t.runner.Run(ctx, t.projectDir, "rustc", "--version")
}

func (t *cargoToolchain) StylusVersion(ctx context.Context) *Result {
	return t.runner.Run(ctx, t.projectDir, "cargo", "stylus", "--version")
}

func (t *cargoToolchain) InstalledTargets(ctx context.Context) *Result {
	return t.runner.Run(ctx, t.projectDir, "rustup", "target", "list", "--installed")
}

func (t *cargoToolchain) AddTarget(ctx context.Context, target string) *Result {
	return t.runner.Run(ctx, t.projectDir, "rustup", "target", "add", target)
}

func (t *cargoToolchain) Build(ctx context.Context, target string) *Result {
	return t.runner.Run(ctx, t.projectDir, "cargo", "build", "--target", target, "--release")
}

func (t *cargoToolchain) Check(ctx context.Context, wasmFile, endpoint string) *Result {
	args := []string{"stylus", "check", "--wasm-file", wasmFile}
	if len(endpoint) > 0 {
		args = append(args, "--rpc-url", endpoint)
	}

	return t.runner.Run(ctx, t.projectDir, "cargo", args...)
}

func (t *cargoToolchain) Deploy(ctx context.Context, opts DeployOpts) *Result {
	args := []string{
		"stylus", "deploy",
		"--wasm-file", opts.WasmFile,
		"--network", opts.Network,
		"--rpc-url", opts.Endpoint,
	}
	args = appendCredential(args, opts.PrivateKey, opts.Mnemonic)
	if opts.JSONOutput {
		args = append(args, "--json")
	}

	return t.runner.Run(ctx, t.projectDir, "cargo", args...)
}

func (t *cargoToolchain) Call(ctx context.Context, opts CallOpts) *Result {
	args := []string{
		"stylus", "call",
		"--address", opts.Address,
		"--function", opts.Function,
		"--args", strings.Join(opts.Args, ","),
		"--network", opts.Network,
		"--rpc-url", opts.Endpoint,
	}
	args = appendCredential(args, opts.PrivateKey, opts.Mnemonic)

	return t.runner.Run(ctx, t.projectDir, "cargo", args...)
}

// appendCredential adds exactly one signing credential flag. A private key
// takes precedence when both are supplied.
func appendCredential(args []string, privateKey, mnemonic string) []string {
	if len(privateKey) > 0 {
		return append(args, "--private-key", privateKey)
	} else if len(mnemonic) > 0 {
		return append(args, "--mnemonic", mnemonic)
	}

	return args
}

// WhichCargo locates the cargo executable in $PATH.
func WhichCargo() (string, error) {
	return exec.LookPath("cargo")
}
