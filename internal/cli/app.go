package cli

import (
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/nextstep-io/jobtrust/internal/ai"
	"github.com/nextstep-io/jobtrust/internal/cache"
	"github.com/nextstep-io/jobtrust/internal/dictionary"
	"github.com/nextstep-io/jobtrust/internal/engine"
	"github.com/nextstep-io/jobtrust/internal/ingest"
	"github.com/nextstep-io/jobtrust/internal/model"
)

// app bundles the wired components behind a command
type app struct {
	cfg    *model.Config
	engine *engine.Engine
	loader *ingest.Loader
	log    hclog.Logger
}

// newApp builds the engine and loader from the effective configuration
func newApp(cfg *model.Config) (*app, error) {
	log := hclog.New(&hclog.LoggerOptions{
		Name:   "jobtrust",
		Level:  logLevel(),
		Output: os.Stderr,
	})

	dict := dictionary.Default()
	if cfg.DictionaryOverlay != "" {
		if err := dict.LoadOverlay(cfg.DictionaryOverlay); err != nil {
			return nil, fmt.Errorf("load dictionary overlay: %w", err)
		}
		log.Debug("dictionary overlay loaded", "path", cfg.DictionaryOverlay)
	}

	var adapter *ai.Adapter
	if cfg.AI.Provider != "" {
		if err := resolveAICredentials(&cfg.AI); err != nil {
			return nil, err
		}
		provider, err := ai.NewProvider(ai.ConfigFromModel(cfg.AI))
		if err != nil {
			return nil, fmt.Errorf("configure AI provider: %w", err)
		}
		adapter = ai.NewAdapter(provider, dict)
		log.Debug("AI provider configured", "provider", cfg.AI.Provider, "model", cfg.AI.Model)
	}

	var c cache.Cache
	if cfg.Cache.Enabled {
		c = cache.NewMemoryCache(cfg.Cache.TTL, cfg.Cache.MaxEntries)
	}

	return &app{
		cfg:    cfg,
		engine: engine.New(cfg, dict, adapter, c, log),
		loader: ingest.NewLoader(ingest.NewFetcher(cfg.HTTP), os.Stdin),
		log:    log,
	}, nil
}

// resolveAICredentials fills API keys from the environment when the
// configuration does not carry them.
func resolveAICredentials(cfg *model.AIConfig) error {
	switch cfg.Provider {
	case "openai":
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("OPENAI_API_KEY")
		}
		if cfg.APIKey == "" {
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
	case "anthropic", "claude":
		if cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("ANTHROPIC_API_KEY")
		}
		if cfg.APIKey == "" {
			return fmt.Errorf("ANTHROPIC_API_KEY environment variable not set")
		}
	case "ollama":
		if cfg.BaseURL == "" {
			cfg.BaseURL = os.Getenv("OLLAMA_BASE_URL")
		}
	}
	return nil
}

// effectiveConfig layers the config file over the defaults. Flags are
// applied by each command on top of what this returns.
func effectiveConfig() (*model.Config, error) {
	cfg := model.DefaultConfig()
	if path := viper.ConfigFileUsed(); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}
	if overlay := viper.GetString("dictionary_overlay"); overlay != "" {
		cfg.DictionaryOverlay = overlay
	}
	return cfg, nil
}

func logLevel() hclog.Level {
	if verbose {
		return hclog.Debug
	}
	return hclog.Warn
}
