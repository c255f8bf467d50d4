package deployer

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oak-protocol/stylus-deploy/stylus"
)

// fakeRunner records every external invocation and lets a test script
// per-command results. Commands without a scripted result succeed with
// empty output.
type fakeRunner struct {
	cmds    [][]string
	respond func(name string, args []string) *stylus.Result
}

func (f *fakeRunner) Run(ctx context.Context, dir, name string, args ...string) *stylus.Result {
	f.cmds = append(f.cmds, append([]string{name}, args...))

	if f.respond != nil {
		if res := f.respond(name, args); res != nil {
			return res
		}
	}

	return &stylus.Result{Success: true}
}

func (f *fakeRunner) invocations(prefix ...string) int {
	var n int
	for _, cmd := range f.cmds {
		if hasPrefix(cmd, prefix) {
			n++
		}
	}

	return n
}

func hasPrefix(cmd, prefix []string) bool {
	if len(cmd) < len(prefix) {
		return false
	}
	for i := range prefix {
		if cmd[i] != prefix[i] {
			return false
		}
	}

	return true
}

func cmdIs(name string, args []string, prefix ...string) bool {
	return hasPrefix(append([]string{name}, args...), prefix)
}

func newTestDeployer(t *testing.T, runner *fakeRunner, extra ...option) Deployer {
	t.Helper()

	opts := append([]option{OptionRunner(runner)}, extra...)
	d, err := New(opts...)
	require.NoError(t, err)

	return d
}

// project dir with the wasm artifact already in place
func preparedProject(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	artifact := filepath.Join(dir, "target", "wasm32-unknown-unknown", "release", "oak_protocol.wasm")
	require.NoError(t, os.MkdirAll(filepath.Dir(artifact), 0755))
	require.NoError(t, os.WriteFile(artifact, make([]byte, 2048), 0644))

	return dir
}

var testCred = Credential{PrivateKey: "0xdeadbeef"}

func TestCheckRunsAllChecksOnFailure(t *testing.T) {
	runner := &fakeRunner{
		respond: func(name string, args []string) *stylus.Result {
			if cmdIs(name, args, "rustc", "--version") {
				return &stylus.Result{Err: os.ErrNotExist}
			}
			if cmdIs(name, args, "rustup", "target", "list") {
				return &stylus.Result{Success: true, Stdout: "wasm32-unknown-unknown\nx86_64-unknown-linux-gnu\n"}
			}
			return nil
		},
	}

	d := newTestDeployer(t, runner)

	err := d.Check(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rustc")

	// a failed rustc check must not short-circuit the remaining checks
	assert.Equal(t, 1, runner.invocations("cargo", "stylus", "--version"))
	assert.Equal(t, 1, runner.invocations("rustup", "target", "list"))
}

func TestCheckInstallsMissingTarget(t *testing.T) {
	runner := &fakeRunner{
		respond: func(name string, args []string) *stylus.Result {
			if cmdIs(name, args, "rustup", "target", "list") {
				return &stylus.Result{Success: true, Stdout: "x86_64-unknown-linux-gnu\n"}
			}
			return nil
		},
	}

	d := newTestDeployer(t, runner)

	require.NoError(t, d.Check(context.Background()))
	assert.Equal(t, 1, runner.invocations("rustup", "target", "add", "wasm32-unknown-unknown"))
}

func TestCheckTargetAlreadyInstalled(t *testing.T) {
	runner := &fakeRunner{
		respond: func(name string, args []string) *stylus.Result {
			if cmdIs(name, args, "rustup", "target", "list") {
				return &stylus.Result{Success: true, Stdout: "wasm32-unknown-unknown\n"}
			}
			return nil
		},
	}

	d := newTestDeployer(t, runner)

	require.NoError(t, d.Check(context.Background()))
	assert.Zero(t, runner.invocations("rustup", "target", "add"))
}

func TestBuildCommandFailure(t *testing.T) {
	runner := &fakeRunner{
		respond: func(name string, args []string) *stylus.Result {
			if cmdIs(name, args, "cargo", "build") {
				return &stylus.Result{ExitCode: 101, Stderr: "error[E0432]: unresolved import"}
			}
			return nil
		},
	}

	d := newTestDeployer(t, runner, OptionProjectDir(preparedProject(t)))

	err := d.Build(context.Background())
	assert.ErrorIs(t, err, ErrBuildFailed)
}

func TestBuildArtifactMissingDespiteZeroExit(t *testing.T) {
	runner := &fakeRunner{}

	d := newTestDeployer(t, runner, OptionProjectDir(t.TempDir()))

	err := d.Build(context.Background())
	assert.ErrorIs(t, err, ErrArtifactMissing)
}

func TestBuildSuccess(t *testing.T) {
	runner := &fakeRunner{}

	d := newTestDeployer(t, runner, OptionProjectDir(preparedProject(t)))

	require.NoError(t, d.Build(context.Background()))
	assert.Equal(t, 1, runner.invocations("cargo", "build", "--target", "wasm32-unknown-unknown", "--release"))
	assert.Zero(t, runner.invocations("cargo", "stylus", "check"))
}

func TestBuildWithOnChainVerification(t *testing.T) {
	runner := &fakeRunner{}

	d := newTestDeployer(t, runner,
		OptionProjectDir(preparedProject(t)),
		OptionVerifyOnChain(true),
	)

	require.NoError(t, d.Build(context.Background()))
	assert.Equal(t, 1, runner.invocations("cargo", "stylus", "check"))
}

func TestDeployNoCredentialNoSideEffects(t *testing.T) {
	runner := &fakeRunner{}

	d := newTestDeployer(t, runner)

	addr, err := d.Deploy(context.Background(), Credential{})
	assert.ErrorIs(t, err, ErrNoCredential)
	assert.Empty(t, addr)
	assert.Empty(t, runner.cmds)
}

func TestDeployParsesAddressFromOutput(t *testing.T) {
	runner := &fakeRunner{
		respond: func(name string, args []string) *stylus.Result {
			if cmdIs(name, args, "cargo", "stylus", "deploy") {
				return &stylus.Result{
					Success: true,
					Stdout:  "compressing program...\nContract deployed at: 0xABCDEF0123456789ABCDEF0123456789ABCDEF01 (gas used: 500000)\n",
				}
			}
			return nil
		},
	}

	d := newTestDeployer(t, runner)

	addr, err := d.Deploy(context.Background(), testCred)
	require.NoError(t, err)
	assert.Equal(t, "0xABCDEF0123456789ABCDEF0123456789ABCDEF01", addr)
}

func TestDeployCommandFailure(t *testing.T) {
	runner := &fakeRunner{
		respond: func(name string, args []string) *stylus.Result {
			if cmdIs(name, args, "cargo", "stylus", "deploy") {
				return &stylus.Result{ExitCode: 1, Stderr: "insufficient funds for gas"}
			}
			return nil
		},
	}

	d := newTestDeployer(t, runner)

	addr, err := d.Deploy(context.Background(), testCred)
	assert.ErrorIs(t, err, ErrDeployFailed)
	assert.Empty(t, addr)
}

func TestDeployUnparseableOutput(t *testing.T) {
	runner := &fakeRunner{
		respond: func(name string, args []string) *stylus.Result {
			if cmdIs(name, args, "cargo", "stylus", "deploy") {
				return &stylus.Result{Success: true, Stdout: "transaction confirmed in block 1234\n"}
			}
			return nil
		},
	}

	d := newTestDeployer(t, runner)

	addr, err := d.Deploy(context.Background(), testCred)
	assert.ErrorIs(t, err, ErrAddressParseFailed)
	assert.Empty(t, addr)
}

func TestDeployStructuredOutput(t *testing.T) {
	runner := &fakeRunner{
		respond: func(name string, args []string) *stylus.Result {
			if cmdIs(name, args, "cargo", "stylus", "deploy") {
				return &stylus.Result{
					Success: true,
					Stdout:  `{"deployment": {"address": "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf", "gasUsed": 500000}}`,
				}
			}
			return nil
		},
	}

	d := newTestDeployer(t, runner, OptionStructuredOutput(true))

	addr, err := d.Deploy(context.Background(), testCred)
	require.NoError(t, err)
	assert.Equal(t, "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf", addr)

	last := runner.cmds[len(runner.cmds)-1]
	assert.Equal(t, "--json", last[len(last)-1])
}

func TestDeployStructuredOutputFallsBackToLineScan(t *testing.T) {
	runner := &fakeRunner{
		respond: func(name string, args []string) *stylus.Result {
			if cmdIs(name, args, "cargo", "stylus", "deploy") {
				return &stylus.Result{
					Success: true,
					Stdout:  "deployed at address 0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf\n",
				}
			}
			return nil
		},
	}

	d := newTestDeployer(t, runner, OptionStructuredOutput(true))

	addr, err := d.Deploy(context.Background(), testCred)
	require.NoError(t, err)
	assert.Equal(t, "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf", addr)
}

func TestCallNoCredential(t *testing.T) {
	runner := &fakeRunner{}

	d := newTestDeployer(t, runner)

	err := d.Call(context.Background(), Credential{}, "0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf", "pause", nil)
	assert.ErrorIs(t, err, ErrNoCredential)
	assert.Empty(t, runner.cmds)
}

func TestCallInvalidAddress(t *testing.T) {
	runner := &fakeRunner{}

	d := newTestDeployer(t, runner)

	err := d.Call(context.Background(), testCred, "not-an-address", "pause", nil)
	assert.Error(t, err)
	assert.Empty(t, runner.cmds)
}

func TestInitRejectsInvalidAddresses(t *testing.T) {
	runner := &fakeRunner{}

	d := newTestDeployer(t, runner)

	err := d.Init(context.Background(), testCred,
		"0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf",
		"bogus",
		"0x2B5AD5c4795c026514f8317c7a215E218DcCD6cF",
	)
	assert.Error(t, err)
	assert.Empty(t, runner.cmds)
}

func TestInitCallFailure(t *testing.T) {
	runner := &fakeRunner{
		respond: func(name string, args []string) *stylus.Result {
			if cmdIs(name, args, "cargo", "stylus", "call") {
				return &stylus.Result{ExitCode: 1, Stderr: "execution reverted"}
			}
			return nil
		},
	}

	d := newTestDeployer(t, runner)

	err := d.Init(context.Background(), testCred,
		"0x7E5F4552091A69125d5DfCb7b8C2659029395Bdf",
		"0x2B5AD5c4795c026514f8317c7a215E218DcCD6cF",
		"0x6813Eb9362372EEF6200f3b1dbC3f819671cBA69",
	)
	assert.ErrorIs(t, err, ErrCallFailed)
}
