package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/vvka-141/loadnames/internal/files/filesystem"
	"github.com/vvka-141/loadnames/internal/httpclient"
	"github.com/vvka-141/loadnames/internal/logging"
	"github.com/vvka-141/loadnames/internal/services"
)

var loadCmd = &cobra.Command{
	Use:   "load [names-file]",
	Short: "POST one customer record per line of a names file",
	Long: `Load reads the names file line by line and POSTs one JSON record per line
to the customer endpoint, then prints a completion message.

For each line the record is:
  {"name": "<line>", "email": "<tokens reversed>@example.com"}
where the email is the lowercased name split on single spaces, reversed
and joined with dots. "Jane Doe" becomes doe.jane@example.com.

Responses are not inspected. The first network failure stops the run and
the completion message is not printed.

Arguments:
  names-file    Text file with one name per line (default: names.txt,
                or $LOADNAMES_INPUT, or input in loadnames.yaml)

Examples:
  # Load names.txt into http://localhost:8080/sdrdemo/rest/customer
  loadnames load

  # Load into another host and port
  loadnames load people.txt -H api.internal -p 9090

  # Retry transient failures and give up on a hung endpoint after 10s
  loadnames load people.txt --retries 3 --timeout 10s`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLoad,
}

var loadFlags loadFlagValues

func init() {
	rootCmd.AddCommand(loadCmd)
	registerEndpointFlags(loadCmd, &loadFlags)
	registerMessageFlag(loadCmd, &loadFlags)
}

func runLoad(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	cfg, err := buildLoadConfig(cmd, args, &loadFlags, verbose)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	logger.Verbose("Run %s: input=%s endpoint=%s timeout=%v retries=%d",
		uuid.NewString(), cfg.InputPath, cfg.Endpoint.URL(), cfg.Timeout, cfg.RetryAttempts)

	clientCfg := httpclient.DefaultConfig()
	clientCfg.Timeout = cfg.Timeout
	sender := httpclient.NewSender(httpclient.New(clientCfg), cfg.Endpoint, logger)

	loader := services.NewLoaderService(
		filesystem.NewOSFileSystem(),
		sender,
		logger,
		cmd.OutOrStdout(),
	)

	ctx, cancel := signalContext(cmd.Context(), "load")
	defer cancel()

	if _, err := loader.Run(ctx, cfg); err != nil {
		return fmt.Errorf("load failed: %w", err)
	}
	return nil
}

// signalContext returns a context cancelled on Ctrl+C or SIGTERM.
func signalContext(parent context.Context, op string) (context.Context, context.CancelFunc) {
	if parent == nil {
		parent = context.Background()
	}
	ctx, cancel := context.WithCancel(parent)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case <-sigChan:
			fmt.Fprintf(os.Stderr, "\n[INTERRUPT] Received interrupt signal, cancelling %s...\n", op)
			cancel()
		case <-ctx.Done():
		}
	}()

	return ctx, func() {
		signal.Stop(sigChan)
		cancel()
	}
}
