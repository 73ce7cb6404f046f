//go:build e2e && unix

package main

import (
	"fmt"
	"os"
	"path/filepath"
)

// SimulatorOptions shapes the simulated provider written to the test config
type SimulatorOptions struct {
	FailureRate float64
	MaxResults  int
}

// CreateTestWorkspace creates an isolated home directory for the app
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir
	return tmpDir, nil
}

// WriteConfig writes a config with a fast, deterministic simulator and
// returns its path
func (tf *TUITestFramework) WriteConfig(opts SimulatorOptions) (string, error) {
	if tf.workspace == "" {
		return "", fmt.Errorf("workspace not created")
	}

	content := fmt.Sprintf(`version = 1
log_file = "flightbook.log"

[search]
provider = "simulated"
rate_limit = 0.0

[simulator]
min_latency = "20ms"
max_latency = "40ms"
failure_rate = %.2f
max_results = %d
seed = 7

[ui]
currency_symbol = "$"
alt_screen = true
`, opts.FailureRate, opts.MaxResults)

	path := filepath.Join(tf.workspace, "flightbook.toml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}
