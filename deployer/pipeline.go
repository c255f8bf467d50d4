package deployer

import (
	"context"

	log "github.com/xlab/suplog"
)

// PipelineConfig carries the run-scoped values that the environment supplies:
// the signing credential and the optional initialization addresses. The stages
// never read ambient process state themselves.
type PipelineConfig struct {
	Credential      Credential
	OwnerAddress    string
	TreasuryAddress string
}

// Outcome describes how far a pipeline run got. A deployed-but-uninitialized
// contract is still a successful run.
type Outcome struct {
	ContractAddress string
	Initialized     bool
	InitFailed      bool
}

// Run executes the full deployment pipeline: prerequisite check, credential
// gate, build, deploy, then optional initialization. Check, credential, build
// and deploy failures are fatal and returned as errors. An initialization
// failure after a successful deploy is a partial success, reported via the
// Outcome with a nil error.
//
// The credential gate runs before the build: a missing credential is a
// configuration error and there is no point compiling for a deploy that
// cannot be attempted.
func (d *deployer) Run(ctx context.Context, cfg PipelineConfig) (*Outcome, error) {
	if err := d.Check(ctx); err != nil {
		return nil, err
	}

	if !cfg.Credential.Present() {
		log.Errorln("set PRIVATE_KEY or MNEMONIC environment variable")
		log.Errorln("example: export PRIVATE_KEY=0x...")
		return nil, ErrNoCredential
	}

	if len(cfg.OwnerAddress) == 0 || len(cfg.TreasuryAddress) == 0 {
		log.Warningln("OWNER_ADDRESS and TREASURY_ADDRESS not set")
		log.Warningln("contract will be deployed but not initialized")
	}

	if err := d.Build(ctx); err != nil {
		return nil, err
	}

	contractAddress, err := d.Deploy(ctx, cfg.Credential)
	if err != nil {
		return nil, err
	}

	log.Infoln("contract deployed at:", contractAddress)

	out := &Outcome{ContractAddress: contractAddress}

	if len(cfg.OwnerAddress) == 0 || len(cfg.TreasuryAddress) == 0 {
		log.Infoln("to initialize manually, set OWNER_ADDRESS and TREASURY_ADDRESS and run:")
		log.Infoln("  stylus-deploy init --address", contractAddress)

		d.reportOutcome(out, cfg)
		return out, nil
	}

	if err := d.Init(ctx, cfg.Credential, contractAddress, cfg.OwnerAddress, cfg.TreasuryAddress); err != nil {
		out.InitFailed = true

		log.WithError(err).Warningln("contract deployed but initialization failed")
		log.Warningln("retry manually with: stylus-deploy init --address", contractAddress)

		d.reportOutcome(out, cfg)
		return out, nil
	}

	out.Initialized = true

	d.reportOutcome(out, cfg)
	return out, nil
}

func (d *deployer) reportOutcome(out *Outcome, cfg PipelineConfig) {
	if len(d.options.ReportPath) == 0 {
		return
	}

	report := Report{
		ContractAddress: out.ContractAddress,
		Network:         d.options.Network,
		Endpoint:        d.options.Endpoint,
		WasmFile:        d.options.ArtifactPath,
		WasmSizeKB:      d.artifactSizeKB,
		OwnerAddress:    cfg.OwnerAddress,
		TreasuryAddress: cfg.TreasuryAddress,
		Initialized:     out.Initialized,
	}

	if err := WriteReport(d.options.ReportPath, report); err != nil {
		log.WithError(err).Warningln("failed to write deployment report")
	} else {
		log.Infoln("deployment report written to", d.options.ReportPath)
	}
}
