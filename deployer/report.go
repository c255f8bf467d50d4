package deployer

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/tidwall/sjson"
)

// Report is the machine-readable record of a deployment run. It intentionally
// has no field for the signing credential.
type Report struct {
	ContractAddress string
	Network         string
	Endpoint        string
	WasmFile        string
	WasmSizeKB      float64
	OwnerAddress    string
	TreasuryAddress string
	Initialized     bool
	Timestamp       time.Time
}

// WriteReport serializes the report to a JSON file at the given path.
func WriteReport(path string, r Report) error {
	if r.Timestamp.IsZero() {
		r.Timestamp = time.Now().UTC()
	}

	out := []byte(`{}`)

	fields := []struct {
		path  string
		value interface{}
	}{
		{"contractAddress", r.ContractAddress},
		{"network", r.Network},
		{"endpoint", r.Endpoint},
		{"wasmFile", r.WasmFile},
		{"wasmSizeKB", r.WasmSizeKB},
		{"ownerAddress", r.OwnerAddress},
		{"treasuryAddress", r.TreasuryAddress},
		{"initialized", r.Initialized},
		{"timestamp", r.Timestamp.Format(time.RFC3339)},
	}

	var err error
	for _, f := range fields {
		out, err = sjson.SetBytes(out, f.path, f.value)
		if err != nil {
			err = errors.Wrapf(err, "failed to set report field %s", f.path)
			return err
		}
	}

	if err := os.WriteFile(path, out, 0644); err != nil {
		err = errors.Wrap(err, "failed to write deployment report")
		return err
	}

	return nil
}
