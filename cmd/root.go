/*
Copyright © 2019 Matt Muldowney <matt.muldowney@gmail.com>

*/
package cmd

import (
	stderrors "errors"
	"fmt"

	"github.com/mitchellh/go-homedir"
	"github.com/mmuldo/deltae/colorspace"
	"github.com/mmuldo/deltae/compare"
	"github.com/mmuldo/deltae/config"
	apperrors "github.com/mmuldo/deltae/errors"
	"github.com/mmuldo/deltae/logger"
	"github.com/mmuldo/deltae/report"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Execute runs the deltae command line with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree with its own viper instance.
func NewRootCmd() *cobra.Command {
	var (
		cfgFile    string
		reportFile string
	)
	v := config.New()

	rootCmd := &cobra.Command{
		Use:   "deltae <original_path> <compressed_path>",
		Short: "Mean CIEDE2000 color difference between two images",
		Long: `Computes the perceptual color difference between an original image and a
compressed or otherwise processed version of it. Both images are converted
from sRGB through CIE XYZ to CIE Lab, a Delta E value is computed for every
pixel and the arithmetic mean is printed as a bare number.`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(v)
			if err != nil {
				return err
			}

			res, err := compare.Files(cmd.Context(), args[0], args[1], options(cfg))
			if err != nil {
				return err
			}

			if reportFile != "" {
				o, err := report.Render(reportFile, res)
				if err != nil {
					return err
				}
				fmt.Fprint(cmd.OutOrStdout(), o)
				return nil
			}

			fmt.Fprintln(cmd.OutOrStdout(), report.FormatFloat(res.Mean))
			return nil
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.deltae.yaml)")
	pf.String(config.KeyColorSpace, colorspace.DefaultName, "RGB colorspace of the input images")
	pf.String(config.KeyWhitePoint, string(colorspace.D65), "Lab reference white (D65, D50)")
	pf.String(config.KeyMethod, "CIE 2000", "color difference formula (CIE 2000, CIE 1976, CIE 1994)")
	pf.String(config.KeyLogLevel, "info", "log level (debug, info, warn, error)")
	pf.String(config.KeyLogFormat, "text", "log format (text, json)")
	rootCmd.Flags().StringVar(&reportFile, "report", "", "pongo2 template rendered instead of the bare number")

	for _, key := range []string{config.KeyColorSpace, config.KeyWhitePoint, config.KeyMethod, config.KeyLogLevel, config.KeyLogFormat} {
		v.BindPFlag(key, pf.Lookup(key))
	}

	rootCmd.AddCommand(newQuantizeCmd(v))

	return rootCmd
}

// initConfig reads the config file and applies the logging settings.
func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := homedir.Dir()
		if err != nil {
			return apperrors.NewConfigError("cannot find home directory", err)
		}
		v.AddConfigPath(home)
		v.SetConfigName(".deltae")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !stderrors.As(err, &notFound) {
			return apperrors.NewConfigError("cannot read config file", err)
		}
	}

	if err := logger.Configure(v.GetString(config.KeyLogLevel), v.GetString(config.KeyLogFormat)); err != nil {
		return apperrors.NewConfigError("invalid logging settings", err)
	}
	if f := v.ConfigFileUsed(); f != "" {
		logger.WithFields(logrus.Fields{"file": f}).Debug("using config file")
	}
	return nil
}

func options(cfg *config.Config) compare.Options {
	return compare.Options{
		ColorSpace: cfg.ColorSpace,
		WhitePoint: cfg.WhitePoint,
		Method:     cfg.Method,
	}
}
