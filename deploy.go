package main

import (
	"context"
	"fmt"

	cli "github.com/jawher/mow.cli"
	log "github.com/xlab/suplog"
)

func onDeploy(cmd *cli.Cmd) {
	skipBuild := cmd.BoolOpt("skip-build", false, "Deploy an existing WASM artifact without rebuilding.")

	cmd.Action = func() {
		cred := requireCredential()
		d := newDeployer()

		if !*skipBuild {
			if err := d.Build(context.Background()); err != nil {
				log.Fatalln(err)
			}
		}

		contractAddress, err := d.Deploy(context.Background(), cred)
		if err != nil {
			log.Fatalln(err)
		}

		fmt.Println(contractAddress)
	}
}
