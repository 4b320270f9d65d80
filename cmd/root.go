package cmd

import (
	"fmt"
	"os"

	"github.com/mlehner/strkit/cmd/match"
	"github.com/mlehner/strkit/cmd/perf"
	"github.com/mlehner/strkit/cmd/scan"
	"github.com/mlehner/strkit/cmd/util"
	"github.com/mlehner/strkit/lib/logging"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	Version = "0.3.1"
)

var (

	// RootCmd represents the base command when called without any subcommands
	RootCmd = &cobra.Command{
		Use:   "strkit",
		Short: "owned-string collections toolbox",
		Long: fmt.Sprintf(`strkit (v%s)

A library of owned strings, dynamic lists and sorted string-keyed
maps, with a small command line around its boundary helpers.`, Version),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.InitLoggers(util.GetLogLevel())
		},
	}
	versionCmd = &cobra.Command{
		Use:   "version",
		Short: "Print the version number of strkit",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("strkit v%s\n", Version)
		},
	}
)

func init() {
	// Initialize viper
	cobra.OnInitialize(util.InitConfig)

	// Add Commands
	RootCmd.AddCommand(scan.ScanCmd)
	RootCmd.AddCommand(match.MatchCmd)
	RootCmd.AddCommand(perf.PerfCmd)
	RootCmd.AddCommand(versionCmd)

	// Add Flags
	key := "log-level"
	RootCmd.PersistentFlags().String(key, "warn", util.WrapString("log level (debug, info, warn, error)"))
	_ = viper.BindPFlags(RootCmd.PersistentFlags())
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the RootCmd.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
