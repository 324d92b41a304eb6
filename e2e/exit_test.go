//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	tf.ServeInventory(sampleItems()...)
	require.NoError(t, tf.StartApp(), "Failed to start app")

	// Wait for TUI to initialize and render
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("LuxeGems"), "Should show store name")

	// Set up exit monitoring before sending 'q'
	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()

	t.Logf("Sending 'q' to quit application...")
	require.NoError(t, tf.Quit())

	select {
	case exitErr := <-done:
		require.NoError(t, exitErr, "quit should exit cleanly")
	case <-time.After(1500 * time.Millisecond):
		tf.DumpTailOnFail(t, "exit-failure", 4096)
		tf.SendCtrlC()
		t.Fatal("Application did not exit after q")
	}
}

func TestCtrlCExitsFromSearch(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	tf.ServeInventory(sampleItems()...)
	require.NoError(t, tf.StartApp())
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("3 of 3 items"))

	// q is typed into the search box, ctrl+c still quits
	require.NoError(t, tf.Search("q"))
	require.True(t, tf.SeePlain(`Search: "q"`))

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()
	require.NoError(t, tf.SendCtrlC())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("app did not exit after ctrl+c")
	}
}

func TestExitWithUnreachableBackend(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	// Nothing listens on the discard port; the request fails and the app stays usable
	require.NoError(t, tf.StartApp("-api", "http://127.0.0.1:9"))
	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.LogContains("unreachable", 5*time.Second), "failure should be logged")

	done := make(chan error, 1)
	go func() {
		done <- tf.cmd.Wait()
	}()
	require.NoError(t, tf.Quit())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("app did not exit after quit")
	}
}
