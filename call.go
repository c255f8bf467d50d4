package main

import (
	"context"

	cli "github.com/jawher/mow.cli"
	log "github.com/xlab/suplog"
)

func onCall(cmd *cli.Cmd) {
	contractAddress := cmd.String(cli.StringOpt{
		Name:   "address",
		Desc:   "Address of the deployed program to interact with.",
		EnvVar: "STYLUS_PROGRAM_ID",
	})
	methodName := cmd.StringArg("METHOD", "", "Program function to call.")
	methodArgs := cmd.StringsArg("ARGS", []string{}, "Function arguments. Will be passed comma-joined.")

	cmd.Spec = "[--address] METHOD [ARGS...]"

	cmd.Action = func() {
		cred := requireCredential()
		d := newDeployer()

		addr := requireAddress("contract address", *contractAddress)

		if err := d.Call(context.Background(), cred, addr, *methodName, *methodArgs); err != nil {
			log.Fatalln(err)
		}
	}
}
