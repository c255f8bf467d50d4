package deployer

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	log "github.com/xlab/suplog"
)

var (
	ErrBuildFailed     = errors.New("failed to build contract")
	ErrArtifactMissing = errors.New("build artifact not found at expected path")
)

// Build compiles the contract in release mode and verifies that the wasm
// artifact landed at the expected path. The artifact path is a contract with
// cargo, a zero exit status alone is not trusted.
func (d *deployer) Build(ctx context.Context) error {
	log.Infoln("compiling contract to WASM")

	res := d.toolchain.Build(ctx, d.options.Target)
	if !res.Success {
		if res.Err != nil {
			log.WithError(res.Err).Errorln("failed to run cargo build")
		} else {
			log.WithField("stderr", res.Stderr).Errorln("compilation failed")
		}

		return ErrBuildFailed
	}

	artifactPath := filepath.Join(d.options.ProjectDir, d.options.ArtifactPath)

	fi, err := os.Stat(artifactPath)
	if err != nil {
		log.WithField("path", artifactPath).Warningln("WASM artifact not found at expected location")
		return ErrArtifactMissing
	}

	d.artifactSizeKB = float64(fi.Size()) / 1024
	log.Infoln(fmt.Sprintf("WASM size: %.2f KB", d.artifactSizeKB))

	if d.options.VerifyOnChain {
		log.Infoln("verifying program compatibility on-chain")

		if check := d.toolchain.Check(ctx, d.options.ArtifactPath, d.options.Endpoint); !check.Success {
			log.WithField("stderr", check.Stderr).Errorln("stylus check rejected the program")
			return errors.Wrap(ErrBuildFailed, "stylus check")
		}
	}

	return nil
}
