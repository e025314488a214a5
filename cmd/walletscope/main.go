package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	root := &cobra.Command{
		Use:          "walletscope",
		Short:        "Read-only Sui wallet inspector",
		SilenceUsage: true,
	}

	root.PersistentFlags().String("config", "", "config file path")

	readCmd := &cobra.Command{
		Use:   "read <address>",
		Short: "Read balances, recent activity and protocol positions for an address",
		Args:  cobra.ExactArgs(1),
		RunE:  runRead,
	}
	addLookupFlags(readCmd)
	root.AddCommand(readCmd)

	watchCmd := &cobra.Command{
		Use:   "watch <address>",
		Short: "Re-read an address on an interval",
		Args:  cobra.ExactArgs(1),
		RunE:  runWatch,
	}
	addLookupFlags(watchCmd)
	watchCmd.Flags().Duration("interval", 30*time.Second, "time between lookups")
	root.AddCommand(watchCmd)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func addLookupFlags(cmd *cobra.Command) {
	cmd.Flags().String("network", "mainnet", "sui network (mainnet, testnet, devnet)")
	cmd.Flags().String("rpc", "", "fullnode RPC URL, overrides the network endpoint")
	cmd.Flags().Int("tx-limit", 50, "recent transaction blocks to inspect")
	cmd.Flags().Int("page-size", 50, "owned objects per page")
	cmd.Flags().Int("max-pages", 20, "maximum owned object pages per lookup")
	cmd.Flags().Duration("timeout", 30*time.Second, "timeout per lookup")
	cmd.Flags().Float64("rps", 10, "client-side RPC rate limit, 0 disables")
	cmd.Flags().Int("max-retries", 3, "maximum retry attempts")
	cmd.Flags().Duration("retry-backoff", 500*time.Millisecond, "initial retry backoff")
	cmd.Flags().String("format", "table", "output format (table, json)")
	cmd.Flags().String("out", "", "also write each view to this JSON file")
	cmd.Flags().String("log-level", "info", "log level (debug, info, warn, error)")
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}
