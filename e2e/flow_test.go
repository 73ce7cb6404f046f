//go:build e2e && unix

package main

import (
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func startWithConfig(t *testing.T, opts SimulatorOptions) *TUITestFramework {
	t.Helper()
	tf := NewTUITest(t)
	t.Cleanup(tf.Cleanup)

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")
	configPath, err := tf.WriteConfig(opts)
	require.NoError(t, err, "Failed to write config")

	require.NoError(t, tf.StartApp("-config", configPath), "Failed to start app")
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("Flight Booking"), "Should show the title")
	return tf
}

func TestSearchAndBookFlight(t *testing.T) {
	t.Parallel()
	tf := startWithConfig(t, SimulatorOptions{FailureRate: 0, MaxResults: 3})

	require.NoError(t, tf.Type("Paris"))
	require.NoError(t, tf.Tab())
	require.NoError(t, tf.Type("2025-06-01"))
	require.NoError(t, tf.Submit())

	if err := tf.WaitForE(func(s string) bool {
		return strings.Contains(ansiRe.ReplaceAllString(s, ""), "Available Flights")
	}, 5*time.Second, "flight list did not appear"); err != nil {
		tf.DumpTailOnFail(t, "search", 4096)
		t.Fatal(err)
	}
	require.True(t, tf.WaitForStatusMessage("Found", 3*time.Second), "Should report the result count")

	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("Booking Summary"), "Selecting a flight shows the summary")
	require.True(t, tf.SeePlain("[Selected]"), "Selected flight is marked")

	// Reselecting moves the mark to the next flight
	require.NoError(t, tf.Down())
	require.NoError(t, tf.Enter())
	require.True(t, tf.SeePlain("Total"), "Summary stays visible after reselecting")
}

func TestRoundtripShowsReturnDate(t *testing.T) {
	t.Parallel()
	tf := startWithConfig(t, SimulatorOptions{MaxResults: 1})

	require.NoError(t, tf.SendKeys(KeyShiftTab))
	require.NoError(t, tf.SendKeys(KeySpace))
	require.True(t, tf.SeePlain("Return Date"), "Roundtrip reveals the return date input")
}

func TestQuitFromResults(t *testing.T) {
	t.Parallel()
	tf := startWithConfig(t, SimulatorOptions{FailureRate: 0, MaxResults: 2})

	require.NoError(t, tf.Type("Oslo"))
	require.NoError(t, tf.Submit())
	require.True(t, tf.OutputContainsPlain("Available Flights", 5*time.Second), "Should list flights")

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()
	require.NoError(t, tf.Quit())

	select {
	case <-done:
		tf.cmd = nil
	case <-time.After(3 * time.Second):
		t.Fatal("Application did not exit on q")
	}
}

func TestFailedSearchShowsMessage(t *testing.T) {
	t.Parallel()
	tf := startWithConfig(t, SimulatorOptions{FailureRate: 1, MaxResults: 3})

	require.NoError(t, tf.Type("Tokyo"))
	require.NoError(t, tf.Submit())
	require.True(t,
		tf.OutputContainsPlain("An error occurred while searching for flights.", 5*time.Second),
		"Should show the search error")
}

func TestHelpPopup(t *testing.T) {
	t.Parallel()
	tf := startWithConfig(t, SimulatorOptions{MaxResults: 1})

	require.NoError(t, tf.SendKeys(KeyF1))
	require.True(t, tf.SeePlain("Flight Booking Help"), "F1 opens the help popup")
	require.True(t, tf.SeePlain("Open help in pager"), "Help lists the pager key")

	// Esc closes the popup and keys reach the form again
	require.NoError(t, tf.SendKeys(KeyEsc))
	require.NoError(t, tf.Type("Madrid"))
	require.True(t, tf.SeePlain("Madrid"), "Typing after closing help edits the form")
}

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := startWithConfig(t, SimulatorOptions{MaxResults: 1})

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	require.NoError(t, tf.SendCtrlC())

	select {
	case exitErr := <-done:
		if exitErr != nil {
			t.Logf("Process exited with: %v", exitErr)
		}
		tf.cmd = nil
	case <-time.After(3 * time.Second):
		t.Fatal("Application did not exit after Ctrl+C")
	}
}

func TestDefaultConfigIsCreated(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	workspace, err := tf.CreateTestWorkspace()
	require.NoError(t, err)
	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should receive ready signal")

	configPath := filepath.Join(workspace, ".config", "flightbook", "config.toml")
	require.Eventually(t, func() bool {
		_, err := os.Stat(configPath)
		return err == nil
	}, 3*time.Second, 50*time.Millisecond, "Default config should be written")
}

func TestHelpFlag(t *testing.T) {
	t.Parallel()

	if _, err := os.Stat(binPath); os.IsNotExist(err) {
		t.Skip("Test binary not found - TestMain may not have run yet")
	}

	out, err := exec.Command(binPath, "--help").CombinedOutput()
	require.NoError(t, err, "Help flag should exit cleanly")

	output := string(out)
	require.Contains(t, output, "-config")
	require.Contains(t, output, "-provider")
	require.Contains(t, output, "-endpoint")
}
