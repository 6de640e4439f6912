package services

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/vvka-141/loadnames/internal/files/filesystem"
	"github.com/vvka-141/loadnames/internal/files/lines"
	"github.com/vvka-141/loadnames/internal/httpclient"
	"github.com/vvka-141/loadnames/internal/record"
	"github.com/vvka-141/loadnames/internal/retry"
	"github.com/vvka-141/loadnames/pkg/loadnames"
)

// LoaderService reads names, derives records and sends them one at a time.
// Thread-Safety: NOT safe for concurrent Run() calls on the same instance.
type LoaderService struct {
	fsProvider filesystem.FileSystemProvider
	sender     loadnames.RecordSender
	logger     loadnames.Logger
	stdout     io.Writer
}

// NewLoaderService creates a LoaderService with all dependencies injected.
// Panics on nil dependencies.
func NewLoaderService(
	fsProvider filesystem.FileSystemProvider,
	sender loadnames.RecordSender,
	logger loadnames.Logger,
	stdout io.Writer,
) *LoaderService {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if sender == nil {
		panic("sender cannot be nil")
	}
	if logger == nil {
		panic("logger cannot be nil")
	}
	if stdout == nil {
		panic("stdout cannot be nil")
	}
	return &LoaderService{
		fsProvider: fsProvider,
		sender:     sender,
		logger:     logger,
		stdout:     stdout,
	}
}

// Run sends one record per line of cfg.InputPath, in file order, and prints
// the completion message once every line has been sent.
//
// The first send failure stops the run: later lines are not read and the
// completion message is not printed. If the input cannot be opened nothing
// is sent.
func (s *LoaderService) Run(ctx context.Context, cfg loadnames.LoadConfig) (loadnames.Summary, error) {
	if err := cfg.Validate(); err != nil {
		return loadnames.Summary{}, err
	}

	send := s.sendFunc(cfg)
	s.logger.Verbose("Loading %s into %s", cfg.InputPath, cfg.Endpoint.URL())
	if info, err := s.fsProvider.Stat(cfg.InputPath); err == nil {
		s.logger.Verbose("Input is %d bytes", info.Size())
	}

	var summary loadnames.Summary
	err := s.forEachRecord(ctx, cfg.InputPath, func(num int, rec loadnames.Record) error {
		summary.Lines = num
		s.logger.Verbose("line %d: %s <%s>", num, rec.Name, rec.Email)
		if err := send(ctx, rec); err != nil {
			return fmt.Errorf("failed to send line %d (%q): %w", num, rec.Name, err)
		}
		summary.Sent++
		return nil
	})
	if err != nil {
		return summary, err
	}

	s.logger.Verbose("Sent %d record(s)", summary.Sent)
	return summary, s.complete(cfg)
}

// Preview runs the same read and transform pass as Run but writes each
// JSON body to stdout instead of sending it.
func (s *LoaderService) Preview(ctx context.Context, cfg loadnames.LoadConfig) (loadnames.Summary, error) {
	if cfg.InputPath == "" {
		return loadnames.Summary{}, fmt.Errorf("InputPath is required: %w", loadnames.ErrInvalidConfig)
	}

	var summary loadnames.Summary
	err := s.forEachRecord(ctx, cfg.InputPath, func(num int, rec loadnames.Record) error {
		summary.Lines = num
		body, err := httpclient.EncodeRecord(rec)
		if err != nil {
			return fmt.Errorf("line %d: %w", num, err)
		}
		if _, err := fmt.Fprintf(s.stdout, "%s\n", body); err != nil {
			return fmt.Errorf("failed to write preview: %w", err)
		}
		return nil
	})
	if err != nil {
		return summary, err
	}

	return summary, s.complete(cfg)
}

// sendFunc wraps the sender in a retry executor when retries are enabled.
func (s *LoaderService) sendFunc(cfg loadnames.LoadConfig) func(context.Context, loadnames.Record) error {
	if cfg.RetryAttempts == 0 {
		return s.sender.Send
	}

	executor := retry.NewExecutor(
		retry.NewNetworkErrorClassifier(),
		retry.NewExponentialBackoff(cfg.RetryAttempts),
	).WithOnRetry(func(attempt int, err error, delay time.Duration) {
		s.logger.Info("Retry %d/%d in %v: %v", attempt+1, cfg.RetryAttempts, delay, err)
	})

	return func(ctx context.Context, rec loadnames.Record) error {
		return executor.Execute(ctx, func(ctx context.Context) error {
			return s.sender.Send(ctx, rec)
		})
	}
}

// forEachRecord opens path and calls fn for every line in order, stopping at
// the first error.
func (s *LoaderService) forEachRecord(ctx context.Context, path string, fn func(num int, rec loadnames.Record) error) error {
	f, err := s.fsProvider.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w: %w", path, loadnames.ErrFileAccess, err)
	}
	defer f.Close()

	seq := lines.NewSequence(f)
	for seq.Next() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("stopped before line %d: %w", seq.Number(), err)
		}
		if err := fn(seq.Number(), record.New(seq.Text())); err != nil {
			return err
		}
	}
	if err := seq.Err(); err != nil {
		return fmt.Errorf("failed to read %s after line %d: %w: %w", path, seq.Number(), loadnames.ErrFileAccess, err)
	}
	return nil
}

func (s *LoaderService) complete(cfg loadnames.LoadConfig) error {
	msg := cfg.CompletionMessage
	if msg == "" {
		msg = loadnames.DefaultCompletionMessage
	}
	if _, err := fmt.Fprintln(s.stdout, msg); err != nil {
		return fmt.Errorf("failed to write completion message: %w", err)
	}
	return nil
}
