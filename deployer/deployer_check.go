package deployer

import (
	"context"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/xlab/suplog"
)

var ErrToolMissing = errors.New("required toolchain component is missing")

// Check verifies that the Rust toolchain, cargo-stylus and the wasm32 build
// target are available. A missing build target is installed on the spot, any
// other gap is reported for the user to fix. All checks run even when an
// earlier one fails, so that a single pass surfaces every missing component.
func (d *deployer) Check(ctx context.Context) error {
	var result *multierror.Error

	log.Infoln("checking prerequisites")

	if res := d.toolchain.RustcVersion(ctx); !res.Success {
		log.Errorln("Rust not found, install from https://rustup.rs/")
		result = multierror.Append(result, errors.Wrap(ErrToolMissing, "rustc"))
	} else {
		log.Infoln("rustc installed:", firstLine(res.Stdout))
	}

	if res := d.toolchain.StylusVersion(ctx); !res.Success {
		log.Errorln("cargo-stylus not found, install with: cargo install --force cargo-stylus")
		result = multierror.Append(result, errors.Wrap(ErrToolMissing, "cargo-stylus"))
	} else {
		log.Infoln("cargo-stylus installed:", firstLine(res.Stdout))
	}

	if err := d.checkBuildTarget(ctx); err != nil {
		result = multierror.Append(result, err)
	}

	return result.ErrorOrNil()
}

func (d *deployer) checkBuildTarget(ctx context.Context) error {
	res := d.toolchain.InstalledTargets(ctx)
	if !res.Success {
		log.WithField("stderr", res.Stderr).Errorln("failed to list installed rustup targets")
		return errors.Wrap(ErrToolMissing, "rustup")
	}

	if !strings.Contains(res.Stdout, d.options.Target) {
		log.Warningln("installing build target", d.options.Target)

		if add := d.toolchain.AddTarget(ctx, d.options.Target); !add.Success {
			log.WithField("stderr", add.Stderr).Errorln("failed to install build target")
			return errors.Wrap(ErrToolMissing, d.options.Target)
		}
	}

	log.Infoln("build target available:", d.options.Target)

	return nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		return s[:idx]
	}

	return s
}
