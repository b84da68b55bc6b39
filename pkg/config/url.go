package config

import (
	"fmt"
	"os"
)

// Environment variables consulted when deriving the externally reachable
// agent URL. The container-app pair is set by managed container platforms;
// the agent-host variable is a manual override.
const (
	EnvContainerAppName = "CONTAINER_APP_NAME"
	EnvContainerDNS     = "CONTAINER_APP_ENV_DNS_SUFFIX"
	EnvAgentHost        = "A2A_AGENT_HOST"
)

// EnvLookup reports the value of an environment variable and whether it is
// set. os.LookupEnv satisfies it; tests inject their own.
type EnvLookup func(key string) (string, bool)

// URLSource is one candidate origin for the advertised agent URL.
type URLSource struct {
	Name    string
	Resolve func() (string, bool)
}

// AgentURLSources returns the ordered list of URL sources. The first
// source that resolves wins, so host and port only matter when nothing
// earlier matches.
func AgentURLSources(cfg *Config, host string, port int, lookup EnvLookup) []URLSource {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return []URLSource{
		{
			Name: "container-app",
			Resolve: func() (string, bool) {
				app, okApp := lookup(EnvContainerAppName)
				suffix, okSuffix := lookup(EnvContainerDNS)
				if !okApp || !okSuffix || app == "" || suffix == "" {
					return "", false
				}
				return fmt.Sprintf("https://%s.%s", app, suffix), true
			},
		},
		{
			Name: "env-override",
			Resolve: func() (string, bool) {
				v, ok := lookup(EnvAgentHost)
				if !ok || v == "" {
					return "", false
				}
				return v, true
			},
		},
		{
			Name: "config",
			Resolve: func() (string, bool) {
				if cfg == nil || cfg.Agent.ExternalURL == "" {
					return "", false
				}
				return cfg.Agent.ExternalURL, true
			},
		},
		{
			Name: "listen-addr",
			Resolve: func() (string, bool) {
				return fmt.Sprintf("http://%s:%d/", host, port), true
			},
		},
	}
}

// ResolveAgentURL walks the sources in priority order and returns the
// first match. The final listen-addr source always resolves, so the
// result is never empty.
func ResolveAgentURL(cfg *Config, host string, port int, lookup EnvLookup) string {
	for _, src := range AgentURLSources(cfg, host, port, lookup) {
		if url, ok := src.Resolve(); ok {
			return url
		}
	}
	return fmt.Sprintf("http://%s:%d/", host, port)
}
