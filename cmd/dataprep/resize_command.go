package main

import (
	"github.com/spf13/cobra"

	"github.com/menta2k/dataprep/pkg/enumerate"
	"github.com/menta2k/dataprep/pkg/resize"
	"github.com/menta2k/dataprep/pkg/types"
)

func newResizeCommand(ctx *commandContext) *cobra.Command {
	var width, height int
	var ext, format, resample string
	var quality int
	var lossless bool

	cmd := &cobra.Command{
		Use:   "resize <source-dir> <dest-dir>",
		Short: "Resize every image in a directory to an exact size",
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

			if quality == 0 {
				quality = cfg.Resize.Quality
			}
			if format == "" {
				format = cfg.Resize.Format
			}
			if resample == "" {
				resample = cfg.Resize.Resample
			}

			r, err := resize.New(logger, resize.Config{
				Size:     types.Dimension{Width: width, Height: height},
				Filter:   enumerate.Filter(ext),
				Format:   format,
				Quality:  quality,
				Lossless: lossless || cfg.Resize.Lossless,
				Resample: resample,
			})
			if err != nil {
				return err
			}

			_, err = r.Run(args[0], args[1])
			return err
		},
	}

	cmd.Flags().IntVar(&width, "width", 256, "output width in pixels")
	cmd.Flags().IntVar(&height, "height", 256, "output height in pixels")
	cmd.Flags().StringVar(&ext, "ext", "", "only process files with this extension (e.g. .jpg)")
	cmd.Flags().StringVar(&format, "format", "", "re-encode outputs as jpg|png|webp (default: keep source extension)")
	cmd.Flags().IntVar(&quality, "quality", 0, "JPEG/WebP output quality (1-100)")
	cmd.Flags().BoolVar(&lossless, "lossless", false, "WebP lossless mode")
	cmd.Flags().StringVar(&resample, "resample", "", "resampling kernel: lanczos|linear|box|nearest")

	return cmd
}
