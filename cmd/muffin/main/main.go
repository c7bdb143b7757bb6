package main

import (
	"fmt"
	"os"

	"github.com/muffin-cms/muffin/cmd/muffin"
	"github.com/muffin-cms/muffin/pkg/ui/output/styles"
)

func main() {
	rootCmd := muffin.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
