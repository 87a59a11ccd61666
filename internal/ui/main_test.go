package ui

import (
	"os"
	"testing"

	"fyne.io/fyne/v2/test"
)

// TestMain starts the headless Fyne test app; the default theme looks up
// the current app's settings when resolving colors.
func TestMain(m *testing.M) {
	test.NewApp()
	os.Exit(m.Run())
}
