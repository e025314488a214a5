package wallet

import (
	"context"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"walletScope/internal/model"
	"walletScope/internal/protocol"
)

var testAddress = "0x" + strings.Repeat("a1", 32)

// stubRPC implements RPC with per-method hooks; unset hooks return empty
// results. calls counts every RPC regardless of method.
type stubRPC struct {
	balances     func(ctx context.Context, address string) ([]model.RawBalance, error)
	metadata     func(ctx context.Context, coinType string) (*model.CoinMetadata, error)
	transactions func(ctx context.Context, address string, limit int) ([]model.TransactionBlock, error)
	objects      func(ctx context.Context, address, cursor string, pageSize int) (model.OwnedObjectsPage, error)

	calls atomic.Int64
}

func (s *stubRPC) GetAllBalances(ctx context.Context, address string) ([]model.RawBalance, error) {
	s.calls.Add(1)
	if s.balances == nil {
		return nil, nil
	}
	return s.balances(ctx, address)
}

func (s *stubRPC) GetCoinMetadata(ctx context.Context, coinType string) (*model.CoinMetadata, error) {
	s.calls.Add(1)
	if s.metadata == nil {
		return nil, nil
	}
	return s.metadata(ctx, coinType)
}

func (s *stubRPC) QueryTransactionBlocks(ctx context.Context, address string, limit int) ([]model.TransactionBlock, error) {
	s.calls.Add(1)
	if s.transactions == nil {
		return nil, nil
	}
	return s.transactions(ctx, address, limit)
}

func (s *stubRPC) GetOwnedObjects(ctx context.Context, address, cursor string, pageSize int) (model.OwnedObjectsPage, error) {
	s.calls.Add(1)
	if s.objects == nil {
		return model.OwnedObjectsPage{}, nil
	}
	return s.objects(ctx, address, cursor, pageSize)
}

func staticMetadata(entries map[string]model.CoinMetadata) func(context.Context, string) (*model.CoinMetadata, error) {
	return func(_ context.Context, coinType string) (*model.CoinMetadata, error) {
		meta, ok := entries[coinType]
		if !ok {
			return nil, nil
		}
		return &meta, nil
	}
}

func newTestReader(rpc RPC) *Reader {
	return NewReader(ReaderConfig{Network: "mainnet"}, rpc, protocol.Default(), zap.NewNop())
}
