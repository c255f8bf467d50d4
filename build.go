package main

import (
	"context"

	cli "github.com/jawher/mow.cli"
	log "github.com/xlab/suplog"
)

func onBuild(cmd *cli.Cmd) {
	skipCheck := cmd.BoolOpt("skip-check", false, "Do not verify prerequisites before building.")

	cmd.Action = func() {
		d := newDeployer()

		if !*skipCheck {
			if err := d.Check(context.Background()); err != nil {
				log.Fatalln(err)
			}
		}

		if err := d.Build(context.Background()); err != nil {
			log.Fatalln(err)
		}

		log.Infoln("contract compiled successfully")
	}
}
