package command

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	logLevel string
	logger   zerolog.Logger

	// Root is the fpdemo command tree's entry point.
	Root = &cobra.Command{
		Use:   "fpdemo",
		Short: "Run the reciprocal and square-root demos built on the fixed-point core.",
		Long: "fpdemo drives the two demo algorithms left as external collaborators of the\n" +
			"fixed-point arithmetic core: 1/x by Newton-Raphson iteration and sqrt(c) by\n" +
			"bisection. Both consume only the core's public API.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := zerolog.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			logger = zerolog.New(os.Stderr).Level(lvl).With().Timestamp().Logger()
			return nil
		},
		SilenceUsage: true,
	}
)

func init() {
	Root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn, error")
}
