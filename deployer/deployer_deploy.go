package deployer

import (
	"context"

	"github.com/pkg/errors"
	log "github.com/xlab/suplog"

	"github.com/oak-protocol/stylus-deploy/stylus"
)

var (
	ErrNoCredential       = errors.New("either a private key or a mnemonic must be supplied")
	ErrDeployFailed       = errors.New("failed to deploy contract")
	ErrAddressParseFailed = errors.New("could not parse contract address from deploy output")
)

// Deploy publishes the compiled artifact via cargo-stylus and returns the
// deployed contract address. A missing credential fails immediately, before
// any external process is started.
func (d *deployer) Deploy(ctx context.Context, cred Credential) (string, error) {
	if !cred.Present() {
		return "", ErrNoCredential
	}

	log.Infoln("deploying contract to", d.options.Network, "via", d.options.Endpoint)
	log.Infoln("deployment in progress (this may take a few minutes)")

	res := d.toolchain.Deploy(ctx, stylus.DeployOpts{
		WasmFile:   d.options.ArtifactPath,
		Network:    d.options.Network,
		Endpoint:   d.options.Endpoint,
		PrivateKey: cred.PrivateKey,
		Mnemonic:   cred.Mnemonic,
		JSONOutput: d.options.StructuredOutput,
	})
	if !res.Success {
		if res.Err != nil {
			log.WithError(res.Err).Errorln("failed to run cargo stylus deploy")
		} else {
			log.WithField("stderr", res.Stderr).Errorln("deployment failed")
		}

		return "", ErrDeployFailed
	}

	if d.options.StructuredOutput {
		if addr, ok := addressFromJSON(res.Stdout); ok {
			return addr, nil
		}

		// tool may have ignored the structured output flag,
		// fall through to the line scan
	}

	if addr, ok := ExtractAddress(res.CombinedOutput()); ok {
		return addr, nil
	}

	log.WithField("output", res.CombinedOutput()).Warningln("deploy succeeded but no address was found in tool output")

	return "", ErrAddressParseFailed
}
