package main

import (
	"fmt"
	"strings"
	"syscall"

	cli "github.com/jawher/mow.cli"
	"github.com/pkg/errors"
	"golang.org/x/crypto/ssh/terminal"

	"github.com/oak-protocol/stylus-deploy/deployer"
)

var (
	privateKey = app.String(cli.StringOpt{
		Name:   "P private-key",
		Desc:   "Provide a raw private key of the deployment account in hex.",
		EnvVar: "PRIVATE_KEY",
	})

	mnemonic = app.String(cli.StringOpt{
		Name:   "M mnemonic",
		Desc:   "Provide a mnemonic phrase of the deployment account. A private key takes precedence.",
		EnvVar: "MNEMONIC",
	})

	privKeyStdin = app.Bool(cli.BoolOpt{
		Name:  "privkey-stdin",
		Desc:  "Read the private key from the terminal instead of the environment, keeping it out of shell history.",
		Value: false,
	})

	ownerAddress = app.String(cli.StringOpt{
		Name:   "owner",
		Desc:   "Owner address for contract initialization.",
		EnvVar: "OWNER_ADDRESS",
	})

	treasuryAddress = app.String(cli.StringOpt{
		Name:   "treasury",
		Desc:   "Treasury address for contract initialization.",
		EnvVar: "TREASURY_ADDRESS",
	})
)

func resolveCredential() (deployer.Credential, error) {
	cred := deployer.Credential{
		PrivateKey: strings.TrimSpace(*privateKey),
		Mnemonic:   strings.TrimSpace(*mnemonic),
	}

	if *privKeyStdin {
		pk, err := keyFromStdin()
		if err != nil {
			return deployer.Credential{}, err
		}

		cred.PrivateKey = pk
	}

	return cred, nil
}

func keyFromStdin() (string, error) {
	fmt.Print("Private key for deployment account: ")

	byteKey, err := terminal.ReadPassword(int(syscall.Stdin))
	fmt.Println()
	if err != nil {
		err = errors.Wrap(err, "failed to read private key from stdin")
		return "", err
	}

	return strings.TrimSpace(string(byteKey)), nil
}
