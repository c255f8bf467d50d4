package deployer

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	ts := time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	require.NoError(t, WriteReport(path, Report{
		ContractAddress: "0xABCDEF0123456789ABCDEF0123456789ABCDEF01",
		Network:         "sepolia",
		Endpoint:        "https://sepolia-rollup.arbitrum.io/rpc",
		WasmFile:        "target/wasm32-unknown-unknown/release/oak_protocol.wasm",
		WasmSizeKB:      87.5,
		OwnerAddress:    "0x2B5AD5c4795c026514f8317c7a215E218DcCD6cF",
		TreasuryAddress: "0x6813Eb9362372EEF6200f3b1dbC3f819671cBA69",
		Initialized:     true,
		Timestamp:       ts,
	}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &report))
	assert.Equal(t, "0xABCDEF0123456789ABCDEF0123456789ABCDEF01", report["contractAddress"])
	assert.Equal(t, "sepolia", report["network"])
	assert.Equal(t, 87.5, report["wasmSizeKB"])
	assert.Equal(t, true, report["initialized"])
	assert.Equal(t, "2026-03-01T12:00:00Z", report["timestamp"])
}

func TestWriteReportDefaultsTimestamp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.json")

	require.NoError(t, WriteReport(path, Report{Network: "sepolia"}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &report))
	assert.NotEmpty(t, report["timestamp"])
}
