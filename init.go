package main

import (
	"context"

	cli "github.com/jawher/mow.cli"
	log "github.com/xlab/suplog"
)

func onInit(cmd *cli.Cmd) {
	contractAddress := cmd.String(cli.StringOpt{
		Name:   "address",
		Desc:   "Address of the deployed program to initialize.",
		EnvVar: "STYLUS_PROGRAM_ID",
	})

	cmd.Spec = "[--address]"

	cmd.Action = func() {
		cred := requireCredential()
		d := newDeployer()

		addr := requireAddress("contract address", *contractAddress)
		owner := requireAddress("owner address", *ownerAddress)
		treasury := requireAddress("treasury address", *treasuryAddress)

		if err := d.Init(context.Background(), cred, addr, owner, treasury); err != nil {
			log.Fatalln(err)
		}
	}
}
