package main

import (
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var logLevel string

var mainCommand = &cobra.Command{
	Use:   "nsudoku",
	Short: "N×N Sudoku solving service",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		switch strings.ToLower(logLevel) {
		case "debug":
			logrus.SetLevel(logrus.DebugLevel)
		case "warn":
			logrus.SetLevel(logrus.WarnLevel)
		case "error":
			logrus.SetLevel(logrus.ErrorLevel)
		default:
			logrus.SetLevel(logrus.InfoLevel)
		}
	},
}

func init() {
	mainCommand.PersistentFlags().StringVarP(&logLevel, "log-level", "l", "info", "debug|info|warn|error")
}

func main() {
	if err := mainCommand.Execute(); err != nil {
		logrus.Fatal(err)
	}
}
