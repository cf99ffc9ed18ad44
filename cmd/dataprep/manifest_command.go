package main

import (
	"github.com/spf13/cobra"

	"github.com/menta2k/dataprep/pkg/labeler"
	"github.com/menta2k/dataprep/pkg/manifest"
)

func newManifestCommand(ctx *commandContext) *cobra.Command {
	var columns []string
	var label string
	var autoLabel bool
	var model, serverURL string

	cmd := &cobra.Command{
		Use:   "manifest <csv-file> <source-dir>",
		Short: "Write a CSV manifest listing a directory's files",
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

			if len(columns) == 0 {
				columns = cfg.Manifest.Columns
			}

			mcfg := manifest.Config{Columns: columns, Label: label}
			if autoLabel {
				if serverURL == "" {
					serverURL = cfg.Labeler.URL
				}
				if model == "" {
					model = cfg.Labeler.Model
				}
				labelClient, err := labeler.NewOllamaClient(serverURL)
				if err != nil {
					return err
				}
				mcfg.Labeler = labeler.New(logger, labelClient, labeler.Config{
					Model:       model,
					MaxSendSize: cfg.Labeler.MaxSendSize,
					SendQuality: cfg.Labeler.SendQuality,
				})
			}

			gen, err := manifest.New(logger, mcfg)
			if err != nil {
				return err
			}

			_, err = gen.Run(cmd.Context(), args[0], args[1])
			return err
		},
	}

	cmd.Flags().StringSliceVar(&columns, "columns", nil, "CSV columns in order (e.g. filename,label)")
	cmd.Flags().StringVar(&label, "label", "", "constant value for the label column")
	cmd.Flags().BoolVar(&autoLabel, "auto-label", false, "fill the label column using a vision model")
	cmd.Flags().StringVar(&model, "model", "", "vision model name for --auto-label")
	cmd.Flags().StringVar(&serverURL, "url", "", "Ollama server URL for --auto-label")

	return cmd
}
