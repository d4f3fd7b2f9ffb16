package commands

import (
	"github.com/pkg/errors"

	"github.com/gophloop/loopforge/bench"
	"github.com/gophloop/loopforge/config"
)

// loadConfig returns the config at configPath, or the built-in default sweep
// if configPath is empty. A load failure is wrapped with pkg/errors for a
// stack trace, since this is the outermost I/O boundary an operator sees.
func loadConfig() (*config.Config, error) {
	if configPath == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, errors.Wrapf(err, "loading config from %s", configPath)
	}
	return cfg, nil
}

// engineKinds converts the config's engine name list into bench.EngineKind
// values, defaulting to both engines if the list is empty.
func engineKinds(names []string) []bench.EngineKind {
	if len(names) == 0 {
		return []bench.EngineKind{bench.EngineTarjan, bench.EngineFWBW}
	}
	out := make([]bench.EngineKind, len(names))
	for i, n := range names {
		out[i] = bench.EngineKind(n)
	}
	return out
}

// scenarios converts the config's scenario list into bench.Scenario values.
func scenarios(cfg *config.Config) []bench.Scenario {
	out := make([]bench.Scenario, len(cfg.Scenarios))
	for i, sc := range cfg.Scenarios {
		out[i] = bench.Scenario{Name: sc.Name, Kind: bench.Kind(sc.Kind), Size: sc.Size}
	}
	return out
}
