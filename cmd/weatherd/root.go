package weatherd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "weatherd",
	Short: "weatherd - a weather Q&A agent served over the A2A protocol",
	Long:  "weatherd exposes a single weather question-answering agent over the Agent-to-Agent (A2A) protocol, with agent-card discovery, an in-memory task store, and a liveness route.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ~/.weatherd/weatherd.toml)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(cardCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of weatherd",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("weatherd v%s\n", version)
	},
}
