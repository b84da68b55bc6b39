package weatherd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"github.com/nimbusworks/weatherd/pkg/config"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Check the health of the weather agent server",
	RunE:  runStatus,
}

func runStatus(cmd *cobra.Command, args []string) error {
	path := cfgFile
	if path == "" {
		path = config.DefaultConfigPath()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	url := fmt.Sprintf("http://127.0.0.1:%d/_healthz", cfg.Server.Port)

	client := &http.Client{Timeout: 3 * time.Second}
	resp, err := client.Get(url)
	if err != nil {
		fmt.Println("status: server is not running")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusOK {
		fmt.Println("status: server is healthy")
	} else {
		fmt.Printf("status: server returned %s\n", resp.Status)
	}
	return nil
}
