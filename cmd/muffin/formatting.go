package muffin

import (
	"os"
	"strings"
	"text/template"

	"github.com/muffin-cms/muffin/pkg/ui/output"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

// formatBold renders s in bold when stdout is a terminal
func formatBold(s string) string {
	if !output.IsTerminal(os.Stdout) {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// formatBoldUpper returns the string in uppercase and bold
func formatBoldUpper(s string) string {
	return formatBold(strings.ToUpper(s))
}

// initTemplateFormatting adds custom formatting functions to Cobra templates
func initTemplateFormatting() {
	cobra.AddTemplateFuncs(template.FuncMap{
		"bold":      formatBold,
		"upper":     strings.ToUpper,
		"boldUpper": formatBoldUpper,
	})
}
