package weatherd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nimbusworks/weatherd/pkg/config"
	"github.com/nimbusworks/weatherd/pkg/weather"
)

var (
	cardHost string
	cardPort int
)

var cardCmd = &cobra.Command{
	Use:   "card",
	Short: "Print the agent card the server would advertise",
	RunE:  runCard,
}

func init() {
	cardCmd.Flags().StringVar(&cardHost, "host", "0.0.0.0", "interface the server would bind")
	cardCmd.Flags().IntVar(&cardPort, "port", 8080, "port the server would listen on")
}

func runCard(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	host, port := cardHost, cardPort
	if !cmd.Flags().Changed("host") && cfg.Server.Host != "" {
		host = cfg.Server.Host
	}
	if !cmd.Flags().Changed("port") && cfg.Server.Port != 0 {
		port = cfg.Server.Port
	}

	url := config.ResolveAgentURL(cfg, host, port, nil)
	card := weather.Card(url, version)

	out, err := json.MarshalIndent(card, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding agent card: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
