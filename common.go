package main

import (
	ethcmn "github.com/ethereum/go-ethereum/common"
	log "github.com/xlab/suplog"

	"github.com/oak-protocol/stylus-deploy/deployer"
)

func newDeployer() deployer.Deployer {
	d, err := deployer.New(
		deployer.OptionEndpoint(*rpcEndpoint),
		deployer.OptionNetwork(*networkName),
		deployer.OptionProjectDir(*projectDir),
		deployer.OptionArtifactPath(*wasmFile),
		deployer.OptionStructuredOutput(*jsonOutput),
		deployer.OptionVerifyOnChain(*verifyOnChain),
		deployer.OptionReportPath(*reportPath),
	)
	if err != nil {
		log.WithError(err).Fatalln("failed to init deployer")
	}

	return d
}

func requireCredential() deployer.Credential {
	cred, err := resolveCredential()
	if err != nil {
		log.WithError(err).Fatalln("failed to resolve signing credential")
	}

	if !cred.Present() {
		log.Fatalln("either PRIVATE_KEY or MNEMONIC must be set")
	}

	return cred
}

func requireAddress(name, value string) string {
	if !ethcmn.IsHexAddress(value) {
		log.WithField("value", value).Fatalf("%s is not a valid hex address", name)
	}

	return value
}
