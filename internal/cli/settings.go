package cli

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/viper"

	"github.com/katalvlaran/stepsearch/core"
	"github.com/katalvlaran/stepsearch/scenario"
	"github.com/katalvlaran/stepsearch/search"
)

// settings is the resolved configuration of one command invocation.
type settings struct {
	Scenario    string
	Algorithm   search.Algorithm
	Limit       int
	MaxLimit    int
	Interval    time.Duration
	LogLevel    log.Level
	MetricsAddr string
}

func loadSettings(v *viper.Viper) (settings, error) {
	alg, err := search.ParseAlgorithm(v.GetString(keyAlgorithm))
	if err != nil {
		return settings{}, err
	}
	lvl, err := log.ParseLevel(v.GetString(keyLogLevel))
	if err != nil {
		return settings{}, fmt.Errorf("cli: %w", err)
	}
	s := settings{
		Scenario:    v.GetString(keyScenario),
		Algorithm:   alg,
		Limit:       v.GetInt(keyLimit),
		MaxLimit:    v.GetInt(keyMaxLimit),
		Interval:    v.GetDuration(keyInterval),
		LogLevel:    lvl,
		MetricsAddr: v.GetString(keyMetricsAddr),
	}
	if s.Interval < 0 {
		return settings{}, fmt.Errorf("cli: interval %s is negative", s.Interval)
	}

	return s, nil
}

// params picks the limit that applies to the configured algorithm.
func (s settings) params() search.Params {
	switch s.Algorithm {
	case search.DepthLimited:
		return search.Params{Limit: s.Limit}
	case search.IterativeDeepening:
		return search.Params{Limit: s.MaxLimit}
	default:
		return search.Params{}
	}
}

// graph loads and builds the configured scenario.
func (s settings) graph() (*core.Graph, error) {
	if s.Scenario == "" {
		return nil, ErrNoScenario
	}
	f, err := scenario.Load(s.Scenario)
	if err != nil {
		return nil, err
	}
	g, _, err := scenario.Build(f)

	return g, err
}
