// Package wallet reads coin balances, recent activity and protocol
// positions for a Sui address over JSON-RPC and joins them into a single
// read-only view.
package wallet

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"

	"walletScope/internal/model"
	"walletScope/internal/protocol"
)

// RPC is the node surface the reader consumes.
type RPC interface {
	GetAllBalances(ctx context.Context, address string) ([]model.RawBalance, error)
	GetCoinMetadata(ctx context.Context, coinType string) (*model.CoinMetadata, error)
	QueryTransactionBlocks(ctx context.Context, address string, limit int) ([]model.TransactionBlock, error)
	GetOwnedObjects(ctx context.Context, address string, cursor string, pageSize int) (model.OwnedObjectsPage, error)
}

// ErrSuperseded reports that a newer Read started while this one was in
// flight and its results were discarded.
var ErrSuperseded = errors.New("lookup superseded by a newer request")

const (
	defaultTxLimit  = 50
	defaultPageSize = 50
	defaultMaxPages = 20
)

type ReaderConfig struct {
	// Network is a label carried into the view, not a dialing hint.
	Network string
	// TxLimit bounds how many recent transaction blocks one activity query
	// inspects.
	TxLimit int
	// PageSize and MaxPages bound the owned-object scan.
	PageSize int
	MaxPages int
}

// Reader drives one lookup at a time. Starting a new Read cancels any
// lookup still in flight so stale results never reach a sink.
type Reader struct {
	rpc      RPC
	registry *protocol.Registry
	metadata *MetadataCache
	logger   *zap.Logger

	network  string
	txLimit  int
	pageSize int
	maxPages int

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

func NewReader(cfg ReaderConfig, rpc RPC, registry *protocol.Registry, logger *zap.Logger) *Reader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if registry == nil {
		registry = protocol.Default()
	}
	if cfg.TxLimit <= 0 {
		cfg.TxLimit = defaultTxLimit
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = defaultPageSize
	}
	if cfg.MaxPages <= 0 {
		cfg.MaxPages = defaultMaxPages
	}
	return &Reader{
		rpc:      rpc,
		registry: registry,
		metadata: NewMetadataCache(),
		logger:   logger,
		network:  cfg.Network,
		txLimit:  cfg.TxLimit,
		pageSize: cfg.PageSize,
		maxPages: cfg.MaxPages,
	}
}

// Read produces the wallet view for address. The address is validated before
// any RPC call. Section failures degrade to failure notes on the view; only
// an invalid address, cancellation or supersession fail the whole call.
func (r *Reader) Read(ctx context.Context, address string) (model.WalletView, error) {
	normalized, err := NormalizeAddress(address)
	if err != nil {
		return model.WalletView{}, err
	}

	runCtx, generation := r.begin(ctx)
	defer r.finish(generation)

	in := AssembleInput{
		Address:   normalized,
		Network:   r.network,
		FetchedAt: time.Now(),
	}

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		in.Balances, in.BalancesErr = r.Balances(runCtx, normalized)
	}()
	go func() {
		defer wg.Done()
		in.Protocols, in.PositionsErr = r.Positions(runCtx, normalized)
	}()
	wg.Wait()

	if r.stale(generation) {
		return model.WalletView{}, ErrSuperseded
	}
	if err := runCtx.Err(); err != nil {
		return model.WalletView{}, err
	}

	// Activity needs the balance coin set, so it runs after the join keys
	// are known.
	if in.BalancesErr == nil {
		coinTypes := make([]string, 0, len(in.Balances))
		for _, balance := range in.Balances {
			coinTypes = append(coinTypes, balance.CoinType)
		}
		in.Activity, in.ActivityErr = r.Activity(runCtx, normalized, coinTypes)
	}

	if r.stale(generation) {
		return model.WalletView{}, ErrSuperseded
	}
	if err := runCtx.Err(); err != nil {
		return model.WalletView{}, err
	}

	return AssembleView(in), nil
}

// begin cancels any lookup still in flight and registers a new generation.
func (r *Reader) begin(ctx context.Context) (context.Context, uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cancel != nil {
		r.cancel()
	}
	r.generation++
	runCtx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	return runCtx, r.generation
}

func (r *Reader) stale(generation uint64) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.generation != generation
}

// finish releases the run's context unless a newer lookup already took over.
func (r *Reader) finish(generation uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.generation != generation {
		return
	}
	if r.cancel != nil {
		r.cancel()
		r.cancel = nil
	}
}
