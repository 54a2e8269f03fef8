package gramkit

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// envConfig mirrors the environment surface: every field binds to a
// GRAMKIT_-prefixed variable (GRAMKIT_CLIENT_ID, GRAMKIT_ACCESS_TOKEN, ...).
type envConfig struct {
	ClientID       string `mapstructure:"client_id"`
	ClientSecret   string `mapstructure:"client_secret"`
	AccessToken    string `mapstructure:"access_token"`
	RedirectURI    string `mapstructure:"redirect_uri"`
	BaseURL        string `mapstructure:"base_url"`
	Format         string `mapstructure:"format"`
	Adapter        string `mapstructure:"adapter"`
	ProxyURL       string `mapstructure:"proxy_url"`
	UserAgent      string `mapstructure:"user_agent"`
	TimeoutSeconds int64  `mapstructure:"timeout_seconds"`
	SignRequests   bool   `mapstructure:"sign_requests"`
}

// OptionsFromEnv reads client configuration from the environment and returns
// the corresponding options, ready to pass to New. Unset variables fall back
// to the client defaults. Load a .env file beforehand (e.g. with godotenv)
// if desired; this function only consults the process environment.
func OptionsFromEnv() ([]Option, error) {
	v := viper.New()
	v.SetEnvPrefix("GRAMKIT")

	for _, key := range []string{
		"client_id", "client_secret", "access_token", "redirect_uri",
		"base_url", "format", "adapter", "proxy_url", "user_agent",
		"timeout_seconds", "sign_requests",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}
	v.SetDefault("timeout_seconds", int64(0))
	v.SetDefault("sign_requests", false)

	var cfg envConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal env config: %w", err)
	}

	var options []Option
	if cfg.ClientID != "" {
		options = append(options, WithClientID(cfg.ClientID))
	}
	if cfg.ClientSecret != "" {
		options = append(options, WithClientSecret(cfg.ClientSecret))
	}
	if cfg.AccessToken != "" {
		options = append(options, WithAccessToken(cfg.AccessToken))
	}
	if cfg.RedirectURI != "" {
		options = append(options, WithRedirectURI(cfg.RedirectURI))
	}
	if cfg.BaseURL != "" {
		options = append(options, WithBaseURL(cfg.BaseURL))
	}
	if cfg.Format != "" {
		switch Format(cfg.Format) {
		case FormatJSON, FormatRaw:
			options = append(options, WithFormat(Format(cfg.Format)))
		default:
			return nil, fmt.Errorf("invalid GRAMKIT_FORMAT %q", cfg.Format)
		}
	}
	if cfg.Adapter != "" {
		switch Adapter(cfg.Adapter) {
		case AdapterNetHTTP, AdapterResty:
			options = append(options, WithAdapter(Adapter(cfg.Adapter)))
		default:
			return nil, fmt.Errorf("invalid GRAMKIT_ADAPTER %q", cfg.Adapter)
		}
	}
	if cfg.ProxyURL != "" {
		options = append(options, WithProxy(cfg.ProxyURL))
	}
	if cfg.UserAgent != "" {
		options = append(options, WithUserAgent(cfg.UserAgent))
	}
	if cfg.TimeoutSeconds > 0 {
		options = append(options, WithTimeout(time.Duration(cfg.TimeoutSeconds)*time.Second))
	}
	if cfg.SignRequests {
		options = append(options, WithSignedRequests())
	}

	return options, nil
}
