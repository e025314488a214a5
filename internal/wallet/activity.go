package wallet

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"walletScope/internal/amount"
	"walletScope/internal/model"
)

// maxActivityEntries caps how many recent events a coin's activity group
// keeps after sorting.
const maxActivityEntries = 10

// ErrActivityFetch marks a failed activity query. Balances and positions
// still render when activity alone fails.
var ErrActivityFetch = errors.New("activity query failed")

// Activity returns recent signed balance deltas for address, grouped by coin
// type. Every requested coin type gets a group even when nothing matched it,
// so the join with balances never drops a coin.
func (r *Reader) Activity(ctx context.Context, address string, coinTypes []string) (map[string]model.ActivityGroup, error) {
	blocks, err := r.rpc.QueryTransactionBlocks(ctx, address, r.txLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrActivityFetch, err)
	}

	wanted := make(map[string]bool, len(coinTypes))
	events := make(map[string][]model.TransactionEvent, len(coinTypes))
	for _, coinType := range coinTypes {
		wanted[coinType] = true
		events[coinType] = nil
	}

	for _, block := range blocks {
		for _, change := range block.BalanceChanges {
			owner, err := NormalizeAddress(change.Owner)
			if err != nil || owner != address {
				continue
			}
			if !wanted[change.CoinType] {
				continue
			}
			delta, err := amount.ParseRaw(change.Amount)
			if err != nil {
				r.logger.Warn("skipping balance change with malformed amount",
					zap.String("digest", block.Digest),
					zap.String("coin_type", change.CoinType),
					zap.String("amount", change.Amount))
				continue
			}
			events[change.CoinType] = append(events[change.CoinType], model.TransactionEvent{
				Digest:      block.Digest,
				TimestampMs: block.TimestampMs,
				CoinType:    change.CoinType,
				Delta:       delta,
			})
		}
	}

	groups := make(map[string]model.ActivityGroup, len(coinTypes))
	for coinType, coinEvents := range events {
		sortEvents(coinEvents)
		if len(coinEvents) > maxActivityEntries {
			coinEvents = coinEvents[:maxActivityEntries]
		}

		group := model.ActivityGroup{CoinType: coinType}
		if len(coinEvents) > 0 {
			meta := r.coinMetadata(ctx, coinType)
			group.Entries = make([]model.ActivityEntry, 0, len(coinEvents))
			for _, event := range coinEvents {
				display, err := amount.Format(event.Delta, int(meta.Decimals), true)
				if err != nil {
					display = event.Delta.String()
				}
				group.Entries = append(group.Entries, model.ActivityEntry{
					Event:        event,
					DisplayDelta: display,
				})
			}
		}
		groups[coinType] = group
	}
	return groups, nil
}

// sortEvents orders newest first; equal timestamps fall back to digest order
// so repeated queries render identically.
func sortEvents(events []model.TransactionEvent) {
	sort.Slice(events, func(i, j int) bool {
		if events[i].TimestampMs != events[j].TimestampMs {
			return events[i].TimestampMs > events[j].TimestampMs
		}
		return events[i].Digest < events[j].Digest
	})
}
