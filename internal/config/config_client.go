package config

import (
	"fmt"
	"time"

	"dario.cat/mergo"
	"github.com/spf13/pflag"
)

const (
	defaultClientServerAddress  = "http://localhost:8080"
	defaultClientRequestTimeout = 10 * time.Second
	defaultClientRetries        = 2

	// Client flag names registered by [RegisterClientFlags].
	FlagServer  = "server"
	FlagTimeout = "timeout"
	FlagToken   = "token"
	FlagRetries = "retries"
)

// ClientConfig is the configuration of the command-line list client.
type ClientConfig struct {
	// ServerAddress is the base URL of the help-me-shop server.
	// Env: HMS_SERVER_ADDRESS
	ServerAddress string `env:"HMS_SERVER_ADDRESS"`
	// RequestTimeout is the timeout for a single outbound request.
	// Env: HMS_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"HMS_REQUEST_TIMEOUT"`
	// Token is a bearer token obtained from a previous login.
	// Env: HMS_TOKEN
	Token string `env:"HMS_TOKEN"`
	// Retries is the number of retries for transient failures.
	// Env: HMS_RETRIES
	Retries int `env:"HMS_RETRIES"`
}

// RegisterClientFlags adds the client flags to fs. Call it on the root
// command's persistent flag set.
func RegisterClientFlags(fs *pflag.FlagSet) {
	fs.StringP(FlagServer, "s", defaultClientServerAddress, "server base URL")
	fs.Duration(FlagTimeout, defaultClientRequestTimeout, "request timeout")
	fs.StringP(FlagToken, "t", "", "bearer token from a previous login")
	fs.Int(FlagRetries, defaultClientRetries, "retries for transient failures")
}

// GetClientConfig builds and validates the client configuration. Flags that
// were set explicitly take precedence over environment variables, which take
// precedence over built-in defaults. HMS_RETRIES=0 counts as unset; pass
// --retries 0 to disable retries.
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := parseEnv(cfg); err != nil {
		return nil, err
	}

	if err := mergo.Merge(cfg, defaultClientConfig()); err != nil {
		return nil, fmt.Errorf("error merging configs: %w", err)
	}

	if err := applyClientFlags(cfg, fs); err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func applyClientFlags(cfg *ClientConfig, fs *pflag.FlagSet) error {
	if fs == nil {
		return nil
	}

	var err error
	if fs.Changed(FlagServer) {
		if cfg.ServerAddress, err = fs.GetString(FlagServer); err != nil {
			return fmt.Errorf("error reading --%s: %w", FlagServer, err)
		}
	}
	if fs.Changed(FlagTimeout) {
		if cfg.RequestTimeout, err = fs.GetDuration(FlagTimeout); err != nil {
			return fmt.Errorf("error reading --%s: %w", FlagTimeout, err)
		}
	}
	if fs.Changed(FlagToken) {
		if cfg.Token, err = fs.GetString(FlagToken); err != nil {
			return fmt.Errorf("error reading --%s: %w", FlagToken, err)
		}
	}
	if fs.Changed(FlagRetries) {
		if cfg.Retries, err = fs.GetInt(FlagRetries); err != nil {
			return fmt.Errorf("error reading --%s: %w", FlagRetries, err)
		}
	}

	return nil
}

func defaultClientConfig() *ClientConfig {
	return &ClientConfig{
		ServerAddress:  defaultClientServerAddress,
		RequestTimeout: defaultClientRequestTimeout,
		Retries:        defaultClientRetries,
	}
}
