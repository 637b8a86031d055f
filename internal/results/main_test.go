package results

import (
	"os"
	"testing"

	"fyne.io/fyne/v2/test"
)

// Bound lists notify listeners through the running app, so every test needs one.
func TestMain(m *testing.M) {
	a := test.NewApp()
	code := m.Run()
	a.Quit()
	os.Exit(code)
}
