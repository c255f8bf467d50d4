package main

import (
	"context"
	"fmt"
	"strings"

	cli "github.com/jawher/mow.cli"
	log "github.com/xlab/suplog"

	"github.com/oak-protocol/stylus-deploy/deployer"
)

func onRun(cmd *cli.Cmd) {
	cmd.Action = func() {
		banner("Oak Protocol Deployment")

		cred, err := resolveCredential()
		if err != nil {
			log.WithError(err).Fatalln("failed to resolve signing credential")
		}

		d := newDeployer()

		outcome, err := d.Run(context.Background(), deployer.PipelineConfig{
			Credential:      cred,
			OwnerAddress:    strings.TrimSpace(*ownerAddress),
			TreasuryAddress: strings.TrimSpace(*treasuryAddress),
		})
		if err != nil {
			log.Fatalln(err)
		}

		banner("Deployment Complete")
		fmt.Println("Contract Address:", outcome.ContractAddress)

		switch {
		case outcome.Initialized:
			fmt.Println("Owner:", *ownerAddress)
			fmt.Println("Treasury:", *treasuryAddress)
		case outcome.InitFailed:
			fmt.Println("Initialization failed, retry with the init command.")
		default:
			fmt.Println("Not initialized, set OWNER_ADDRESS and TREASURY_ADDRESS and use the init command.")
		}
	}
}

func banner(title string) {
	fmt.Println(strings.Repeat("=", 60))
	fmt.Println(title)
	fmt.Println(strings.Repeat("=", 60))
}
