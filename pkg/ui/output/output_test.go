package output

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPlainUI(t *testing.T) {
	var buf bytes.Buffer
	ui := New(&buf, false)

	sp := ui.Start("Installing packages")
	sp.Success("Installed")
	ui.Error("Not able to install dependencies!")
	ui.Info("npm ERR! 404")
	ui.List("Created files:", []string{".env", "index.js"})
	ui.Success("Generated new site in /tmp/site")

	assert.Equal(t, "... Installing packages\n"+
		"OK Installed\n"+
		"ERROR Not able to install dependencies!\n"+
		"npm ERR! 404\n"+
		"Created files:\n  .env\n  index.js\n"+
		"OK Generated new site in /tmp/site\n", buf.String())
}

func TestPlainSpinnerFail(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, false).Start("Seeding").Fail("import failed")
	assert.Contains(t, buf.String(), "ERROR import failed")
}

func TestTerminalUIWritesToWriter(t *testing.T) {
	var buf bytes.Buffer
	ui := New(&buf, true)

	ui.Success("Generated new site")
	ui.List("Files", []string{"index.js"})

	assert.Contains(t, buf.String(), "Generated new site")
	assert.Contains(t, buf.String(), "index.js")
}
