package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/vvka-141/loadnames/internal/config"
	"github.com/vvka-141/loadnames/pkg/loadnames"
)

// Environment variables consulted when the matching flag is not set.
const (
	envHost  = "LOADNAMES_HOST"
	envPort  = "LOADNAMES_PORT"
	envPath  = "LOADNAMES_PATH"
	envInput = "LOADNAMES_INPUT"
)

type loadFlagValues struct {
	host, path, message string
	port, retries       int
	timeout             time.Duration
}

// registerEndpointFlags adds the flags that only make sense when sending.
func registerEndpointFlags(cmd *cobra.Command, f *loadFlagValues) {
	cmd.Flags().StringVarP(&f.host, "host", "H", "",
		"Endpoint host\n"+
			"Precedence: --host > $"+envHost+" > loadnames.yaml > "+loadnames.DefaultHost)
	cmd.Flags().IntVarP(&f.port, "port", "p", 0,
		"Endpoint port\n"+
			"Precedence: --port > $"+envPort+" > loadnames.yaml > "+strconv.Itoa(loadnames.DefaultPort))
	cmd.Flags().StringVar(&f.path, "path", "",
		"Endpoint resource path\n"+
			"Precedence: --path > $"+envPath+" > loadnames.yaml > "+loadnames.DefaultPath)
	cmd.Flags().DurationVar(&f.timeout, "timeout", loadnames.DefaultTimeout,
		"Per-request timeout (0 waits indefinitely)\n"+
			"Examples: 500ms, 30s, 2m")
	cmd.Flags().IntVar(&f.retries, "retries", loadnames.DefaultRetryAttempts,
		"Retries per record on transient network errors (0 stops at the first failure)")
}

// registerMessageFlag adds --message, shared by load and preview.
func registerMessageFlag(cmd *cobra.Command, f *loadFlagValues) {
	cmd.Flags().StringVar(&f.message, "message", "",
		"Text printed after the last record (default \""+loadnames.DefaultCompletionMessage+"\")")
}

// buildLoadConfig resolves a LoadConfig from flags, environment, .env,
// loadnames.yaml in the working directory and built-in defaults, in that order.
func buildLoadConfig(cmd *cobra.Command, args []string, f *loadFlagValues, verbose bool) (loadnames.LoadConfig, error) {
	_ = godotenv.Load()

	cfg := loadnames.LoadConfig{
		InputPath:         loadnames.DefaultInputPath,
		Endpoint:          loadnames.DefaultEndpoint(),
		Timeout:           loadnames.DefaultTimeout,
		RetryAttempts:     loadnames.DefaultRetryAttempts,
		CompletionMessage: loadnames.DefaultCompletionMessage,
		Verbose:           verbose,
	}

	projectCfg, err := config.Load(".")
	if err != nil && !errors.Is(err, config.ErrConfigNotFound) {
		return loadnames.LoadConfig{}, fmt.Errorf("failed to load %s: %w: %w", config.ConfigFileName, loadnames.ErrInvalidConfig, err)
	}
	if projectCfg != nil {
		if err := applyProjectConfig(&cfg, projectCfg); err != nil {
			return loadnames.LoadConfig{}, err
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return loadnames.LoadConfig{}, err
	}

	applyFlags(cmd, &cfg, f)
	if len(args) > 0 {
		cfg.InputPath = args[0]
	}

	return cfg, nil
}

func applyProjectConfig(cfg *loadnames.LoadConfig, p *config.ProjectConfig) error {
	if p.Input != "" {
		cfg.InputPath = p.Input
	}
	if p.Endpoint.Scheme != "" {
		cfg.Endpoint.Scheme = p.Endpoint.Scheme
	}
	if p.Endpoint.Host != "" {
		cfg.Endpoint.Host = p.Endpoint.Host
	}
	if p.Endpoint.Port != 0 {
		cfg.Endpoint.Port = p.Endpoint.Port
	}
	if p.Endpoint.Path != "" {
		cfg.Endpoint.Path = p.Endpoint.Path
	}
	if p.Timeout != "" {
		parsed, err := time.ParseDuration(p.Timeout)
		if err != nil {
			return fmt.Errorf("invalid timeout in %s: %w: %w", config.ConfigFileName, loadnames.ErrInvalidConfig, err)
		}
		cfg.Timeout = parsed
	}
	if p.Retries != 0 {
		cfg.RetryAttempts = p.Retries
	}
	if p.Message != "" {
		cfg.CompletionMessage = p.Message
	}
	return nil
}

func applyEnv(cfg *loadnames.LoadConfig) error {
	if v := os.Getenv(envInput); v != "" {
		cfg.InputPath = v
	}
	if v := os.Getenv(envHost); v != "" {
		cfg.Endpoint.Host = v
	}
	if v := os.Getenv(envPort); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid $%s %q: %w", envPort, v, loadnames.ErrInvalidConfig)
		}
		cfg.Endpoint.Port = port
	}
	if v := os.Getenv(envPath); v != "" {
		cfg.Endpoint.Path = v
	}
	return nil
}

// applyFlags copies only flags the user set; unregistered flags report unchanged.
func applyFlags(cmd *cobra.Command, cfg *loadnames.LoadConfig, f *loadFlagValues) {
	flags := cmd.Flags()
	if flags.Changed("host") {
		cfg.Endpoint.Host = f.host
	}
	if flags.Changed("port") {
		cfg.Endpoint.Port = f.port
	}
	if flags.Changed("path") {
		cfg.Endpoint.Path = f.path
	}
	if flags.Changed("timeout") {
		cfg.Timeout = f.timeout
	}
	if flags.Changed("retries") {
		cfg.RetryAttempts = f.retries
	}
	if flags.Changed("message") {
		cfg.CompletionMessage = f.message
	}
}
