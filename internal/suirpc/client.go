// Package suirpc is a read-only client for the Sui fullnode JSON-RPC API.
// Calls are rate limited and retried with exponential backoff; failures are
// normalized into *Error.
package suirpc

import (
	"context"
	"errors"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"walletScope/internal/model"
)

// Options tunes a Client.
type Options struct {
	RPS          float64
	MaxRetries   int
	RetryBackoff time.Duration
	Logger       *zap.Logger
}

// Client issues named read calls against one fullnode endpoint.
type Client struct {
	rpcClient    *rpc.Client
	limiter      *rate.Limiter
	maxRetries   int
	retryBackoff time.Duration
	logger       *zap.Logger
}

// Dial connects to the fullnode at the given URL.
func Dial(ctx context.Context, rawURL string, opts Options) (*Client, error) {
	rpcClient, err := rpc.DialContext(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	var limiter *rate.Limiter
	if opts.RPS > 0 {
		burst := int(opts.RPS)
		if burst < 1 {
			burst = 1
		}
		limiter = rate.NewLimiter(rate.Limit(opts.RPS), burst)
	}

	return &Client{
		rpcClient:    rpcClient,
		limiter:      limiter,
		maxRetries:   opts.MaxRetries,
		retryBackoff: opts.RetryBackoff,
		logger:       logger,
	}, nil
}

// Close closes the underlying RPC client.
func (c *Client) Close() {
	if c.rpcClient != nil {
		c.rpcClient.Close()
	}
}

func (c *Client) call(ctx context.Context, result interface{}, method string, args ...interface{}) error {
	err := withRetry(ctx, c.maxRetries, c.retryBackoff, func(ctx context.Context) error {
		if c.limiter != nil {
			if err := c.limiter.Wait(ctx); err != nil {
				return err
			}
		}
		err := c.rpcClient.CallContext(ctx, result, method, args...)
		if err != nil {
			if errors.Is(err, rpc.ErrNoResult) {
				// Null result: the target is left unset.
				return nil
			}
			c.logger.Warn("rpc call failed", zap.String("method", method), zap.Error(err))
		}
		return err
	})
	return normalizeError(method, err)
}

// GetAllBalances returns one raw balance per coin type owned by the address.
// Entries with missing fields are dropped.
func (c *Client) GetAllBalances(ctx context.Context, address string) ([]model.RawBalance, error) {
	var out []rawBalance
	if err := c.call(ctx, &out, "suix_getAllBalances", address); err != nil {
		return nil, err
	}

	balances := make([]model.RawBalance, 0, len(out))
	for _, entry := range out {
		if entry.CoinType == "" || entry.TotalBalance == "" {
			continue
		}
		balances = append(balances, model.RawBalance{
			CoinType:     entry.CoinType,
			TotalBalance: entry.TotalBalance,
		})
	}
	return balances, nil
}

// GetCoinMetadata returns the registered metadata for a coin type, or nil
// when the coin has none.
func (c *Client) GetCoinMetadata(ctx context.Context, coinType string) (*model.CoinMetadata, error) {
	var out *coinMetadata
	if err := c.call(ctx, &out, "suix_getCoinMetadata", coinType); err != nil {
		return nil, err
	}
	if out == nil {
		return nil, nil
	}

	meta := &model.CoinMetadata{
		CoinType: coinType,
		Symbol:   out.Symbol,
		Name:     out.Name,
		Decimals: out.Decimals,
	}
	if out.IconURL != nil {
		meta.IconURL = *out.IconURL
	}
	return meta, nil
}

// QueryTransactionBlocks returns up to limit transactions involving the
// address as sender or recipient, newest first, with balance-change effects.
func (c *Client) QueryTransactionBlocks(ctx context.Context, address string, limit int) ([]model.TransactionBlock, error) {
	query := transactionQuery{
		Filter: transactionFilter{FromOrToAddress: addressFilter{Addr: address}},
		Options: transactionOptions{
			ShowBalanceChanges: true,
			ShowEffects:        true,
		},
	}

	var page transactionPage
	if err := c.call(ctx, &page, "suix_queryTransactionBlocks", query, nil, limit, true); err != nil {
		return nil, err
	}

	blocks := make([]model.TransactionBlock, 0, len(page.Data))
	for _, block := range page.Data {
		blocks = append(blocks, decodeTransactionBlock(block))
	}
	return blocks, nil
}

// GetOwnedObjects returns one page of objects owned by the address with
// type and content fields. An empty cursor starts from the beginning.
func (c *Client) GetOwnedObjects(ctx context.Context, address string, cursor string, pageSize int) (model.OwnedObjectsPage, error) {
	query := ownedObjectsQuery{
		Options: ownedObjectsOptions{ShowType: true, ShowContent: true},
	}

	var cursorArg interface{}
	if cursor != "" {
		cursorArg = cursor
	}

	var page ownedObjectsPage
	if err := c.call(ctx, &page, "suix_getOwnedObjects", address, query, cursorArg, pageSize); err != nil {
		return model.OwnedObjectsPage{}, err
	}

	out := model.OwnedObjectsPage{HasNextPage: page.HasNextPage}
	if page.NextCursor != nil {
		out.NextCursor = *page.NextCursor
	}
	out.Objects = make([]model.OwnedObject, 0, len(page.Data))
	for _, envelope := range page.Data {
		object, ok := decodeOwnedObject(envelope)
		if !ok {
			continue
		}
		out.Objects = append(out.Objects, object)
	}
	return out, nil
}
