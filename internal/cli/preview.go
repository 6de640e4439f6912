package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vvka-141/loadnames/internal/files/filesystem"
	"github.com/vvka-141/loadnames/internal/logging"
	"github.com/vvka-141/loadnames/internal/services"
	"github.com/vvka-141/loadnames/pkg/loadnames"
)

var previewCmd = &cobra.Command{
	Use:   "preview [names-file]",
	Short: "Print the JSON record for every line without sending anything",
	Long: `Preview runs the same read and transform pass as load but prints each
JSON body to stdout, one per line, instead of POSTing it. No network
connection is made.

Examples:
  loadnames preview people.txt
  loadnames preview people.txt | jq -r .email`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

var previewFlags loadFlagValues

func init() {
	rootCmd.AddCommand(previewCmd)
	registerMessageFlag(previewCmd, &previewFlags)
}

func runPreview(cmd *cobra.Command, args []string) error {
	verbose := getVerboseFlag(cmd)

	cfg, err := buildLoadConfig(cmd, args, &previewFlags, verbose)
	if err != nil {
		return err
	}

	logger := logging.NewConsoleLogger(verbose)
	loader := services.NewLoaderService(
		filesystem.NewOSFileSystem(),
		loadnames.RecordSenderFunc(refuseSend),
		logger,
		cmd.OutOrStdout(),
	)

	ctx, cancel := signalContext(cmd.Context(), "preview")
	defer cancel()

	summary, err := loader.Preview(ctx, cfg)
	if err != nil {
		return fmt.Errorf("preview failed: %w", err)
	}
	logger.Verbose("Previewed %d line(s) from %s", summary.Lines, cfg.InputPath)
	return nil
}

// refuseSend guards the preview path: Preview never calls the sender.
func refuseSend(context.Context, loadnames.Record) error {
	return errors.New("preview does not send records")
}
