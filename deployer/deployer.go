package deployer

import (
	"context"

	"github.com/pkg/errors"

	"github.com/oak-protocol/stylus-deploy/stylus"
)

type option func(o *options) error

func New(opts ...option) (Deployer, error) {
	d := &deployer{
		options: defaultOptions(),
	}

	for _, o := range opts {
		if err := o(d.options); err != nil {
			err = errors.Wrap(err, "error in deployer option")
			return nil, err
		}
	}

	d.toolchain = stylus.NewCargoToolchain(d.options.ProjectDir, d.options.Runner)

	return d, nil
}

type Deployer interface {
	Check(ctx context.Context) error

	Build(ctx context.Context) error

	Deploy(ctx context.Context, cred Credential) (contractAddress string, err error)

	Call(
		ctx context.Context,
		cred Credential,
		contractAddress string,
		function string,
		args []string,
	) error

	Init(
		ctx context.Context,
		cred Credential,
		contractAddress string,
		ownerAddress string,
		treasuryAddress string,
	) error

	Run(ctx context.Context, cfg PipelineConfig) (*Outcome, error)
}

type deployer struct {
	options   *options
	toolchain stylus.Toolchain

	// artifact size in KB, recorded by Build for the deployment report
	artifactSizeKB float64
}

type options struct {
	Endpoint         string
	Network          string
	ProjectDir       string
	ArtifactPath     string
	Target           string
	StructuredOutput bool
	VerifyOnChain    bool
	ReportPath       string
	Runner           stylus.Runner
}

func defaultOptions() *options {
	return &options{
		Endpoint:     "https://sepolia-rollup.arbitrum.io/rpc",
		Network:      "sepolia",
		ProjectDir:   ".",
		ArtifactPath: "target/wasm32-unknown-unknown/release/oak_protocol.wasm",
		Target:       stylus.WasmTarget,
	}
}

func OptionEndpoint(uri string) option {
	return func(o *options) error {
		if len(uri) > 0 {
			o.Endpoint = uri
		}

		return nil
	}
}

func OptionNetwork(network string) option {
	return func(o *options) error {
		if len(network) > 0 {
			o.Network = network
		}

		return nil
	}
}

func OptionProjectDir(dir string) option {
	return func(o *options) error {
		if len(dir) > 0 {
			o.ProjectDir = dir
		}

		return nil
	}
}

func OptionArtifactPath(path string) option {
	return func(o *options) error {
		if len(path) > 0 {
			o.ArtifactPath = path
		}

		return nil
	}
}

func OptionTarget(target string) option {
	return func(o *options) error {
		if len(target) > 0 {
			o.Target = target
		}

		return nil
	}
}

func OptionStructuredOutput(enabled bool) option {
	return func(o *options) error {
		o.StructuredOutput = enabled
		return nil
	}
}

func OptionVerifyOnChain(enabled bool) option {
	return func(o *options) error {
		o.VerifyOnChain = enabled
		return nil
	}
}

func OptionReportPath(path string) option {
	return func(o *options) error {
		o.ReportPath = path
		return nil
	}
}

func OptionRunner(runner stylus.Runner) option {
	return func(o *options) error {
		o.Runner = runner
		return nil
	}
}
