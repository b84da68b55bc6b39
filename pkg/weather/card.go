package weather

import (
	"trpc.group/trpc-go/trpc-a2a-go/server"
)

// Card builds the agent card advertised at the discovery route. The URL is
// the externally reachable address resolved at startup; it is fixed for
// the process lifetime.
func Card(url, version string) server.AgentCard {
	return server.AgentCard{
		Name:        "Weather Agent",
		Description: "Answers questions about current weather conditions in major cities",
		URL:         url,
		Version:     version,
		Capabilities: server.AgentCapabilities{
			Streaming: boolPtr(false),
		},
		DefaultInputModes:  []string{"text"},
		DefaultOutputModes: []string{"text"},
		Skills: []server.AgentSkill{
			{
				ID:          "weather_qa",
				Name:        "Weather Q&A",
				Description: stringPtr("Answers natural-language questions about current weather conditions"),
				InputModes:  []string{"text"},
				OutputModes: []string{"text"},
			},
		},
	}
}

func stringPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}
