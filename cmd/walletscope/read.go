package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"walletScope/internal/config"
	"walletScope/internal/protocol"
	"walletScope/internal/render"
	"walletScope/internal/suirpc"
	"walletScope/internal/wallet"
)

func runRead(cmd *cobra.Command, args []string) error {
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
	logger.Info("lookup start",
		zap.String("address", address),
		zap.String("network", cfg.Network),
	)

	lookupCtx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		lookupCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	view, err := reader.Read(lookupCtx, address)
	if err != nil {
		return err
	}
	if err := sink.WriteView(view); err != nil {
		return err
	}

	logger.Info("lookup complete",
		zap.String("address", view.Address),
		zap.Int("coins", len(view.Coins)),
		zap.Int("protocols", len(view.Protocols)),
		zap.Int("failures", len(view.Failures)),
	)
	return nil
}

func buildReader(ctx context.Context, cfg config.Config, logger *zap.Logger) (*wallet.Reader, func(), error) {
	url := cfg.RPCURL
	if url == "" {
		endpoint, err := suirpc.EndpointFor(cfg.Network)
		if err != nil {
			return nil, nil, err
		}
		url = endpoint
	}

	client, err := suirpc.Dial(ctx, url, suirpc.Options{
		RPS:          cfg.RPS,
		MaxRetries:   cfg.MaxRetries,
		RetryBackoff: cfg.RetryBackoff,
		Logger:       logger,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("connect rpc: %w", err)
	}

	registry := protocol.Default()
	for _, entry := range cfg.Protocols {
		signature, err := protocol.GenericSignature(entry.Name, entry.Prefixes, entry.Fields)
		if err != nil {
			client.Close()
			return nil, nil, fmt.Errorf("protocol %q: %w", entry.Name, err)
		}
		registry.Append(signature)
	}

	reader := wallet.NewReader(wallet.ReaderConfig{
		Network:  cfg.Network,
		TxLimit:  cfg.TxLimit,
		PageSize: cfg.PageSize,
		MaxPages: cfg.MaxPages,
	}, client, registry, logger)

	return reader, client.Close, nil
}

func buildSink(cfg config.Config) (render.Sink, error) {
	var primary render.Sink
	switch cfg.Format {
	case "table":
		primary = render.NewTableSink(os.Stdout)
	case "json":
		primary = render.NewJSONSink("")
	default:
		return nil, fmt.Errorf("unknown format %q", cfg.Format)
	}

	if cfg.Out == "" {
		return primary, nil
	}
	return render.Multi(primary, render.NewJSONSink(cfg.Out)), nil
}
