package wallet

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"walletScope/internal/amount"
	"walletScope/internal/model"
)

const metadataConcurrency = 8

// Balances fetches every coin balance held by address and resolves display
// metadata per coin. A coin whose metadata is missing or unreadable degrades
// to fallback metadata instead of failing the call.
func (r *Reader) Balances(ctx context.Context, address string) ([]model.CoinBalance, error) {
	raw, err := r.rpc.GetAllBalances(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("fetch balances: %w", err)
	}

	pending := make([]model.CoinBalance, 0, len(raw))
	for _, entry := range raw {
		value, err := amount.ParseRaw(entry.TotalBalance)
		if err != nil {
			r.logger.Warn("skipping balance with malformed amount",
				zap.String("coin_type", entry.CoinType),
				zap.String("total_balance", entry.TotalBalance))
			continue
		}
		pending = append(pending, model.CoinBalance{CoinType: entry.CoinType, Raw: value})
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(metadataConcurrency)
	for i := range pending {
		i := i // per-iteration copy; required under go <1.22
		group.Go(func() error {
			meta := r.coinMetadata(groupCtx, pending[i].CoinType)
			display, err := amount.Format(pending[i].Raw, int(meta.Decimals), false)
			if err != nil {
				r.logger.Warn("falling back to raw balance display",
					zap.String("coin_type", pending[i].CoinType),
					zap.Error(err))
				display = pending[i].Raw.String()
			}
			pending[i].Metadata = meta
			pending[i].Display = display
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}

	sortBalances(pending)
	return pending, nil
}

// coinMetadata resolves metadata through the session cache, degrading to
// fallback metadata when the coin is unregistered or the lookup fails.
func (r *Reader) coinMetadata(ctx context.Context, coinType string) model.CoinMetadata {
	meta, err := r.metadata.Resolve(ctx, coinType, r.rpc.GetCoinMetadata)
	if err == nil {
		return meta
	}
	if errors.Is(err, ErrNoMetadata) {
		r.logger.Debug("coin metadata not registered", zap.String("coin_type", coinType))
	} else {
		r.logger.Warn("coin metadata lookup failed",
			zap.String("coin_type", coinType),
			zap.Error(err))
	}
	return model.FallbackMetadata(coinType)
}

// sortBalances orders by raw magnitude descending, coin type ascending on
// ties, so rendering is deterministic.
func sortBalances(balances []model.CoinBalance) {
	sort.Slice(balances, func(i, j int) bool {
		if cmp := balances[i].Raw.CmpAbs(balances[j].Raw); cmp != 0 {
			return cmp > 0
		}
		return balances[i].CoinType < balances[j].CoinType
	})
}
