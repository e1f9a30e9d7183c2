//go:build e2e && unix

package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRowSelection(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	require.NoError(t, tf.StartSeeded("apple", "banana", "cherry"), "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("formgrid"), "Should show formgrid title")
	require.True(t, tf.SeePlain("0 of 3 selected"), "Counter should start at zero")

	// Toggle the row under the cursor
	tf.Select()
	require.True(t, tf.SeePlain("1 of 3 selected"), "Counter should reflect one checked row")

	// Move down and toggle a second row
	tf.Down()
	tf.Select()
	require.True(t, tf.SeePlain("2 of 3 selected"), "Counter should reflect two checked rows")

	// Checking the last row by hand completes the page and offers the
	// across-pages question
	tf.Down()
	tf.Select()
	require.True(t, tf.SeePlain("3 of 3 selected"), "Counter should reflect all rows checked")
	require.True(t, tf.SeePlain("Select all 3 matching? (y)"), "Completing the page by hand should offer the question")
}

func TestSelectAllOffersAcrossPages(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	require.NoError(t, tf.StartSeeded("apple", "banana", "cherry"), "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")
	require.True(t, tf.SeePlain("0 of 3 selected"), "Counter should start at zero")

	// Toggle every row on the page
	tf.ToggleAll()
	require.True(t, tf.SeePlain("3 of 3 selected"), "Every row should be checked")
	require.True(t, tf.SeePlain("Select all 3 matching? (y)"), "The across-pages question should appear")

	// Upgrade to the across-pages selection
	tf.ConfirmAcross()
	require.True(t, tf.SeePlain("All 3 selected across all pages"), "The across banner should replace the counter")
}

func TestEscapeClearsSelection(t *testing.T) {
	t.Parallel()
	tf := NewTUITest(t)
	defer tf.Cleanup()

	_, err := tf.CreateTestWorkspace()
	require.NoError(t, err, "Failed to create test workspace")

	require.NoError(t, tf.StartSeeded("apple", "banana"), "Failed to start app")

	require.True(t, tf.Ready(), "Should receive ready signal")

	tf.ToggleAll()
	require.True(t, tf.SeePlain("2 of 2 selected"), "Every row should be checked")

	tf.SendKeys(KeyEsc)
	require.True(t, tf.SeePlain("0 of 2 selected"), "Escape should clear the selection")
}
