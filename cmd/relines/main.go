package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/relines/internal/cli"
	"github.com/arthur-debert/relines/pkg/errors"
	"github.com/arthur-debert/relines/pkg/ui/styles"
)

func main() {
	rootCmd := cli.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		// Print the error in red
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))

		if e, ok := err.(*errors.Error); ok {
			if details := e.DetailString(); details != "" {
				fmt.Fprintln(os.Stderr, styles.GetStyle("Muted").Render("  "+details))
			}
		}

		os.Exit(1)
	}
}
