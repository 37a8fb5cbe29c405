package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-xp/internal/config"
)

var flagTuningRaw bool

var tuningCmd = &cobra.Command{
	Use:   "tuning",
	Short: "Print the tuning constants",
	Long: `Prints the effective tuning constants (screen, bird, physics, pipes,
loop timing and palette) as YAML. With --raw the embedded document is
printed verbatim, comments included.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if flagTuningRaw {
			_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
			return err
		}

		t, err := config.Load()
		if err != nil {
			return err
		}
		data, err := t.Marshal()
		if err != nil {
			return err
		}
		_, err = cmd.OutOrStdout().Write(data)
		return err
	},
}

func init() {
	tuningCmd.Flags().BoolVar(&flagTuningRaw, "raw", false, "Print the embedded document verbatim")
}
