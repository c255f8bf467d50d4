package main

import (
	cli "github.com/jawher/mow.cli"
)

// Arbitrum Sepolia RPC endpoint
const defaultRPCEndpoint = "https://sepolia-rollup.arbitrum.io/rpc"

var (
	rpcEndpoint = app.String(cli.StringOpt{
		Name:   "E endpoint",
		Desc:   "Specify the JSON-RPC endpoint of the target network.",
		EnvVar: "STYLUS_RPC_URL",
		Value:  defaultRPCEndpoint,
	})

	networkName = app.String(cli.StringOpt{
		Name:   "network",
		Desc:   "Specify the network identifier passed to cargo-stylus.",
		EnvVar: "STYLUS_NETWORK",
		Value:  "sepolia",
	})

	projectDir = app.String(cli.StringOpt{
		Name:   "C project-dir",
		Desc:   "Set the contract project dir where cargo is invoked.",
		EnvVar: "STYLUS_PROJECT_DIR",
		Value:  ".",
	})

	wasmFile = app.String(cli.StringOpt{
		Name:   "wasm-file",
		Desc:   "Set the expected path of the compiled WASM artifact, relative to the project dir.",
		EnvVar: "STYLUS_WASM_FILE",
		Value:  "target/wasm32-unknown-unknown/release/oak_protocol.wasm",
	})

	jsonOutput = app.Bool(cli.BoolOpt{
		Name:   "j json-output",
		Desc:   "Request structured (JSON) output from the deploy tool and parse the address from it.",
		EnvVar: "STYLUS_JSON_OUTPUT",
		Value:  false,
	})

	verifyOnChain = app.Bool(cli.BoolOpt{
		Name:   "verify",
		Desc:   "Run 'cargo stylus check' against the artifact after a successful build.",
		EnvVar: "STYLUS_VERIFY",
		Value:  false,
	})

	reportPath = app.String(cli.StringOpt{
		Name:   "report",
		Desc:   "Write a JSON deployment report to this path after a successful deploy.",
		EnvVar: "STYLUS_REPORT_FILE",
	})
)
