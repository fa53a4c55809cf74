package provider

import (
	"fmt"
	"os"

	"projgen/config"
	"projgen/model"
)

// InitializeProvider creates the session's provider from the loaded configuration.
//
// The provider ID comes from choice when non-empty (the startup menu) and from
// cfg.Provider otherwise. The API key is resolved through the credential store,
// so environment variables win over credentials.toml. The configured model and
// base URL only apply when the chosen provider matches the one in settings.toml;
// switching providers from the menu falls back to that provider's defaults.
//
// Example:
//
//	p, err := provider.InitializeProvider(cfg, provider.ProviderTypeGroq)
func InitializeProvider(cfg *config.Config, choice ProviderType) (model.Provider, error) {
	providerType := choice
	if providerType == "" {
		providerType = MapProviderIDToType(cfg.Provider)
	}
	if providerType == "" {
		return nil, fmt.Errorf("no provider selected")
	}

	pc := Config{Type: providerType}
	if MapProviderIDToType(cfg.Provider) == providerType {
		pc.BaseURL = cfg.BaseURL
		pc.Model = cfg.Model
	}
	if cfg.CredentialStore != nil {
		pc.APIKey = cfg.CredentialStore.Get(string(providerType))
	} else {
		pc.APIKey = os.Getenv(config.APIKeyEnvVar(string(providerType)))
	}

	p, err := NewProvider(pc)
	if err != nil {
		if config.Debug {
			config.DebugLog.Debug().Err(err).Str("provider", string(providerType)).Msg("provider creation failed")
		}
		return nil, err
	}

	if config.Debug {
		config.DebugLog.Debug().
			Str("provider", p.Name()).
			Str("model", p.GetModel()).
			Bool("has_key", pc.APIKey != "").
			Msg("initialized provider")
	}
	return p, nil
}
