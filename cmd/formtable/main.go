// Command formtable renders HTML tables from YAML or JSON data files.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "formtable",
		Short:         "Render HTML tables from data files",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	cmd.PersistentFlags().Bool("json-log", false, "Log in JSON format")

	cmd.AddCommand(newRenderCmd())
	cmd.AddCommand(newStrategiesCmd())
	return cmd
}

// newLogger writes to the command's stderr so rendered markup on stdout
// stays clean.
func newLogger(cmd *cobra.Command) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(cmd.ErrOrStderr())
	logger.SetLevel(logrus.InfoLevel)

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(logrus.DebugLevel)
	}
	if jsonLog, _ := cmd.Flags().GetBool("json-log"); jsonLog {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}
