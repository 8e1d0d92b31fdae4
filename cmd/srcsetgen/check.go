package main

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/lumafold/srcsetgen/internal/config"
	"github.com/lumafold/srcsetgen/internal/logging"
	"github.com/lumafold/srcsetgen/internal/toolchain"
)

func newCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify that sips, cwebp, and avifenc are available",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			log, err := logging.NewLogger(&cfg)
			if err != nil {
				return err
			}
			defer log.Close()

			if !toolchain.RunCheck(log) {
				return errors.New("toolchain incomplete")
			}
			return nil
		},
	}
}
