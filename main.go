package main

import (
	"os"

	"github.com/mmuldo/deltae/cmd"
	apperrors "github.com/mmuldo/deltae/errors"
	"github.com/mmuldo/deltae/logger"
)

func main() {
	if err := cmd.Execute(); err != nil {
		logger.WithError(err).Error("deltae failed")
		os.Exit(apperrors.ExitCode(err))
	}
}
