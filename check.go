package main

import (
	"context"

	cli "github.com/jawher/mow.cli"
	log "github.com/xlab/suplog"
)

func onCheck(cmd *cli.Cmd) {
	cmd.Action = func() {
		d := newDeployer()

		if err := d.Check(context.Background()); err != nil {
			log.Fatalln(err)
		}

		log.Infoln("all prerequisites satisfied")
	}
}
