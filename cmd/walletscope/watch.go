package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"walletScope/internal/config"
	"walletScope/internal/render"
	"walletScope/internal/wallet"
)

func runWatch(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if cfg.Interval <= 0 {
		return fmt.Errorf("interval must be positive")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reader, closeRPC, err := buildReader(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer closeRPC()

	sink, err := buildSink(cfg)
	if err != nil {
		return err
	}

	address := args[0]
	logger.Info("watch start",
		zap.String("address", address),
		zap.String("network", cfg.Network),
		zap.Duration("interval", cfg.Interval),
	)

	if err := watchOnce(ctx, cfg, reader, sink, address, logger); err != nil {
		return err
	}

	ticker := time.NewTicker(cfg.Interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("watch stop")
			return nil
		case <-ticker.C:
			if err := watchOnce(ctx, cfg, reader, sink, address, logger); err != nil {
				return err
			}
		}
	}
}

// watchOnce runs a single lookup. Transient failures are logged and the
// watch keeps going; only an invalid address ends it.
func watchOnce(ctx context.Context, cfg config.Config, reader *wallet.Reader, sink render.Sink, address string, logger *zap.Logger) error {
	lookupCtx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	view, err := reader.Read(lookupCtx, address)
	switch {
	case err == nil:
		return sink.WriteView(view)
	case errors.Is(err, wallet.ErrInvalidAddress):
		return err
	case errors.Is(err, wallet.ErrSuperseded), errors.Is(err, context.Canceled):
		return nil
	default:
		logger.Warn("lookup failed", zap.Error(err))
		return nil
	}
}
