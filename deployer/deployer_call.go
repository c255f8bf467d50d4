package deployer

import (
	"context"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/pkg/errors"
	log "github.com/xlab/suplog"

	"github.com/oak-protocol/stylus-deploy/stylus"
)

var ErrCallFailed = errors.New("contract call failed")

// initFunction is the one-time setup entry point every Oak Protocol
// deployment must have invoked before use.
const initFunction = "init"

// Call invokes a function on a deployed program through the cargo-stylus
// generic call interface. Arguments are passed comma-joined, as the tool
// expects them.
func (d *deployer) Call(
	ctx context.Context,
	cred Credential,
	contractAddress string,
	function string,
	args []string,
) error {
	if !cred.Present() {
		return ErrNoCredential
	}

	if !common.IsHexAddress(contractAddress) {
		return errors.Errorf("invalid contract address: %s", contractAddress)
	}

	res := d.toolchain.Call(ctx, stylus.CallOpts{
		Address:    contractAddress,
		Function:   function,
		Args:       args,
		Network:    d.options.Network,
		Endpoint:   d.options.Endpoint,
		PrivateKey: cred.PrivateKey,
		Mnemonic:   cred.Mnemonic,
	})
	if !res.Success {
		if res.Err != nil {
			log.WithError(res.Err).Errorln("failed to run cargo stylus call")
		} else {
			log.WithField("stderr", res.Stderr).Errorln("call reverted or errored")
		}

		return errors.Wrap(ErrCallFailed, function)
	}

	if out := strings.TrimSpace(res.Stdout); len(out) > 0 {
		log.Infoln(out)
	}

	return nil
}

// Init invokes the contract's initialization entry point with the owner and
// treasury addresses. Both addresses are validated before any external
// process is started.
func (d *deployer) Init(
	ctx context.Context,
	cred Credential,
	contractAddress string,
	ownerAddress string,
	treasuryAddress string,
) error {
	if !common.IsHexAddress(ownerAddress) {
		return errors.Errorf("invalid owner address: %s", ownerAddress)
	}
	if !common.IsHexAddress(treasuryAddress) {
		return errors.Errorf("invalid treasury address: %s", treasuryAddress)
	}

	log.Infoln("initializing contract at", contractAddress)
	log.Infoln("owner:", ownerAddress)
	log.Infoln("treasury:", treasuryAddress)

	if err := d.Call(ctx, cred, contractAddress, initFunction, []string{
		ownerAddress,
		treasuryAddress,
	}); err != nil {
		return err
	}

	log.Infoln("contract initialized successfully")

	return nil
}
