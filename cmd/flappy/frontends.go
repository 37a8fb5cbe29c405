package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-xp/internal/registry"
)

var frontendsCmd = &cobra.Command{
	Use:   "frontends",
	Short: "List all available frontends",
	Long:  `Shows a list of all frontends registered in this build.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		printFrontends(cmd.OutOrStdout(), registry.List())
	},
}

func printFrontends(w io.Writer, list []registry.FrontendInfo) {
	if len(list) == 0 {
		fmt.Fprintln(w, "No frontends available.")
		return
	}

	fmt.Fprintln(w, "Available frontends:")
	fmt.Fprintln(w)

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, f := range list {
		if len(f.ID) > maxIDLen {
			maxIDLen = len(f.ID)
		}
	}

	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, f := range list {
		fmt.Fprintf(w, "  %-*s  %s\n", maxIDLen, f.ID, f.Title)
	}
}
