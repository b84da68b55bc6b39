// Package weather implements the weather Q&A agent exposed over A2A.
package weather

import (
	"fmt"
	"strings"
)

// Outcome classifies how a question was answered, for metrics.
type Outcome string

const (
	OutcomeAnswered    Outcome = "answered"
	OutcomeUnknownCity Outcome = "unknown_city"
	OutcomeNoCity      Outcome = "no_city"
)

type Conditions struct {
	Summary  string
	TempC    int
	Humidity int
}

// Agent answers questions about current conditions from a fixed table.
// The sample ships no live weather backend, so answers are deterministic.
type Agent struct {
	conditions map[string]Conditions
}

func NewAgent() *Agent {
	return &Agent{
		conditions: map[string]Conditions{
			"lisbon":    {Summary: "sunny", TempC: 24, Humidity: 55},
			"london":    {Summary: "overcast with light rain", TempC: 14, Humidity: 82},
			"paris":     {Summary: "partly cloudy", TempC: 18, Humidity: 64},
			"berlin":    {Summary: "clear", TempC: 16, Humidity: 58},
			"new york":  {Summary: "humid and hazy", TempC: 27, Humidity: 74},
			"seattle":   {Summary: "drizzling", TempC: 13, Humidity: 88},
			"tokyo":     {Summary: "warm and muggy", TempC: 29, Humidity: 78},
			"sydney":    {Summary: "breezy", TempC: 21, Humidity: 60},
			"nairobi":   {Summary: "mild with scattered clouds", TempC: 22, Humidity: 50},
			"reykjavik": {Summary: "windy", TempC: 6, Humidity: 70},
		},
	}
}

// Answer resolves a free-text question to a conditions report. City
// matching is a case-insensitive substring scan over the known cities.
func (a *Agent) Answer(question string) (string, Outcome) {
	city, ok := a.findCity(question)
	if !ok {
		if looksLikeCityQuestion(question) {
			return "I don't have current conditions for that location. Try asking about a major city, e.g. \"What's the weather in London?\"", OutcomeUnknownCity
		}
		return "Ask me about the weather in a city, e.g. \"What's the weather in Lisbon?\"", OutcomeNoCity
	}

	c := a.conditions[city]
	return fmt.Sprintf("It's currently %s in %s, around %d°C with %d%% humidity.",
		c.Summary, titleCity(city), c.TempC, c.Humidity), OutcomeAnswered
}

func (a *Agent) findCity(question string) (string, bool) {
	q := strings.ToLower(question)
	for city := range a.conditions {
		if strings.Contains(q, city) {
			return city, true
		}
	}
	return "", false
}

// looksLikeCityQuestion guesses whether the question names some place the
// agent simply doesn't know, as opposed to not asking about weather at all.
func looksLikeCityQuestion(question string) bool {
	q := strings.ToLower(question)
	for _, marker := range []string{" in ", " for ", " at "} {
		if strings.Contains(q, marker) {
			return true
		}
	}
	return false
}

func titleCity(city string) string {
	words := strings.Fields(city)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
