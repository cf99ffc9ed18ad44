package main

import (
	"github.com/spf13/cobra"

	"github.com/menta2k/dataprep/pkg/enumerate"
	"github.com/menta2k/dataprep/pkg/mover"
)

func newMoveCommand(ctx *commandContext) *cobra.Command {
	var ext, onCollision string

	cmd := &cobra.Command{
		Use:   "move <source-dir> <dest-dir>",
		Short: "Move files between directories, optionally filtered by extension",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.logger()
			if err != nil {
				return err
			}

			if onCollision == "" {
				onCollision = cfg.Move.OnCollision
			}

			m, err := mover.New(logger, mover.Config{
				Filter:      enumerate.Filter(ext),
				OnCollision: mover.CollisionPolicy(onCollision),
			})
			if err != nil {
				return err
			}

			_, err = m.Run(args[0], args[1])
			return err
		},
	}

	cmd.Flags().StringVar(&ext, "ext", "", "only move files with this extension (e.g. .jpg)")
	cmd.Flags().StringVar(&onCollision, "on-collision", "", "collision policy: skip|overwrite")

	return cmd
}
