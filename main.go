package main

import (
	"fmt"
	"os"

	cli "github.com/jawher/mow.cli"
	log "github.com/xlab/suplog"
)

var app = cli.App("stylus-deploy", "Deploys the Oak Protocol Stylus contract to Arbitrum Sepolia. Requires cargo-stylus.")

func main() {
	app.Action = func() {
		fmt.Println("You should use either run, check, build, deploy, call or init command. See --help for more info.")
	}

	app.Command("run", "Runs the full pipeline: prerequisite check, build, deploy and optional init.", onRun)
	app.Command("check", "Verifies the Rust toolchain and cargo-stylus, installing the wasm32 target if missing.", onCheck)
	app.Command("build", "Compiles the contract to WASM in release mode.", onBuild)
	app.Command("deploy", "Deploys the compiled WASM artifact and prints the contract address.", onDeploy)
	app.Command("call", "Calls a function on an already deployed program.", onCall)
	app.Command("init", "Calls the init entry point on a deployed program with owner and treasury addresses.", onInit)

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
