package cmd

import (
	"fmt"

	"github.com/mmuldo/deltae/compare"
	"github.com/mmuldo/deltae/config"
	"github.com/mmuldo/deltae/image"
	"github.com/mmuldo/deltae/logger"
	"github.com/mmuldo/deltae/quantize"
	"github.com/mmuldo/deltae/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// topColors is how many of the most common output colors are logged at debug level.
const topColors = 4

func newQuantizeCmd(v *viper.Viper) *cobra.Command {
	quantizeCmd := &cobra.Command{
		Use:   "quantize <input_path> <output_path>",
		Short: "Reduce an image to a palette and grade the result",
		Long: `Quantizes the input to a fixed number of colors, writes the result as PNG
and prints the mean Delta E between the input and the quantized output.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}
			return runQuantize(cmd, args[0], args[1], v.GetInt(config.KeyColors), v.GetBool(config.KeyDither), cfg)
		},
	}

	quantizeCmd.Flags().IntP(config.KeyColors, "n", 16, "number of palette colors (2-256)")
	quantizeCmd.Flags().Bool(config.KeyDither, false, "apply Floyd-Steinberg dithering")
	v.BindPFlag(config.KeyColors, quantizeCmd.Flags().Lookup(config.KeyColors))
	v.BindPFlag(config.KeyDither, quantizeCmd.Flags().Lookup(config.KeyDither))

	return quantizeCmd
}

func runQuantize(cmd *cobra.Command, inputPath, outputPath string, colors int, dither bool, cfg *config.Config) error {
	src, err := image.Decode(inputPath)
	if err != nil {
		return fmt.Errorf("load input: %w", err)
	}

	out, err := quantize.Quantize(src, colors, dither)
	if err != nil {
		return err
	}
	if err := quantize.WritePNG(outputPath, out); err != nil {
		return err
	}

	before, after := quantize.Histogram(src), quantize.Histogram(out)
	entry := logger.WithFields(logrus.Fields{
		"input":         inputPath,
		"output":        outputPath,
		"colors_before": len(before),
		"colors_after":  len(after),
		"dither":        dither,
	})
	for i, sw := range quantize.Rank(after) {
		if i >= topColors {
			break
		}
		entry = entry.WithField(fmt.Sprintf("top%d", i), fmt.Sprintf("%v x%d", sw.Color, sw.Pixels))
	}
	entry.Debug("quantized")

	res, err := compare.Images(image.FromImage(src), image.FromImage(out), options(cfg))
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), report.FormatFloat(res.Mean))
	return nil
}
