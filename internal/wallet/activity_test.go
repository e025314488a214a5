package wallet

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"walletScope/internal/model"
)

const suiCoin = "0x2::sui::SUI"

func suiMetadata() map[string]model.CoinMetadata {
	return map[string]model.CoinMetadata{
		suiCoin: {CoinType: suiCoin, Symbol: "SUI", Name: "Sui", Decimals: 9},
	}
}

func TestActivityKeepsNewestEntries(t *testing.T) {
	blocks := make([]model.TransactionBlock, 0, 12)
	for i := 0; i < 12; i++ {
		blocks = append(blocks, model.TransactionBlock{
			Digest:      fmt.Sprintf("digest-%02d", i),
			TimestampMs: int64(1000 + i),
			BalanceChanges: []model.BalanceChange{
				{Owner: testAddress, CoinType: suiCoin, Amount: "1000000000"},
			},
		})
	}

	rpc := &stubRPC{
		transactions: func(context.Context, string, int) ([]model.TransactionBlock, error) {
			return blocks, nil
		},
		metadata: staticMetadata(suiMetadata()),
	}

	reader := newTestReader(rpc)
	groups, err := reader.Activity(context.Background(), testAddress, []string{suiCoin})
	if err != nil {
		t.Fatalf("activity: %v", err)
	}

	group := groups[suiCoin]
	if len(group.Entries) != maxActivityEntries {
		t.Fatalf("got %d entries, want %d", len(group.Entries), maxActivityEntries)
	}
	if group.Entries[0].Event.Digest != "digest-11" {
		t.Fatalf("newest entry first, got %s", group.Entries[0].Event.Digest)
	}
	if group.Entries[len(group.Entries)-1].Event.Digest != "digest-02" {
		t.Fatalf("oldest kept entry should be digest-02, got %s", group.Entries[len(group.Entries)-1].Event.Digest)
	}
	if group.Entries[0].DisplayDelta != "1" {
		t.Fatalf("display delta %q, want 1", group.Entries[0].DisplayDelta)
	}
}

func TestActivityTieBreaksOnDigest(t *testing.T) {
	blocks := []model.TransactionBlock{
		{Digest: "bravo", TimestampMs: 500, BalanceChanges: []model.BalanceChange{
			{Owner: testAddress, CoinType: suiCoin, Amount: "-2000000000"},
		}},
		{Digest: "alpha", TimestampMs: 500, BalanceChanges: []model.BalanceChange{
			{Owner: testAddress, CoinType: suiCoin, Amount: "3000000000"},
		}},
	}

	rpc := &stubRPC{
		transactions: func(context.Context, string, int) ([]model.TransactionBlock, error) {
			return blocks, nil
		},
		metadata: staticMetadata(suiMetadata()),
	}

	reader := newTestReader(rpc)
	groups, err := reader.Activity(context.Background(), testAddress, []string{suiCoin})
	if err != nil {
		t.Fatalf("activity: %v", err)
	}

	entries := groups[suiCoin].Entries
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].Event.Digest != "alpha" || entries[1].Event.Digest != "bravo" {
		t.Fatalf("digest tie break mismatch: %s, %s", entries[0].Event.Digest, entries[1].Event.Digest)
	}
	if entries[0].DisplayDelta != "3" || entries[1].DisplayDelta != "-2" {
		t.Fatalf("display deltas %q, %q", entries[0].DisplayDelta, entries[1].DisplayDelta)
	}
}

func TestActivityFiltersOwnerAndCoinSet(t *testing.T) {
	other := "0x" + strings.Repeat("f", 64)
	unprefixedOwner := strings.ToUpper(strings.TrimPrefix(testAddress, "0x"))

	blocks := []model.TransactionBlock{
		{Digest: "keep", TimestampMs: 900, BalanceChanges: []model.BalanceChange{
			{Owner: unprefixedOwner, CoinType: suiCoin, Amount: "100"},
			{Owner: other, CoinType: suiCoin, Amount: "999"},
			{Owner: testAddress, CoinType: "0xdba3::usdc::USDC", Amount: "555"},
			{Owner: testAddress, CoinType: suiCoin, Amount: "bogus"},
		}},
	}

	rpc := &stubRPC{
		transactions: func(context.Context, string, int) ([]model.TransactionBlock, error) {
			return blocks, nil
		},
		metadata: staticMetadata(suiMetadata()),
	}

	reader := newTestReader(rpc)
	groups, err := reader.Activity(context.Background(), testAddress, []string{suiCoin})
	if err != nil {
		t.Fatalf("activity: %v", err)
	}
	if len(groups) != 1 {
		t.Fatalf("got %d groups, want 1", len(groups))
	}

	entries := groups[suiCoin].Entries
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want only the owner match", len(entries))
	}
	if entries[0].Event.Delta.String() != "100" {
		t.Fatalf("kept delta %s, want 100", entries[0].Event.Delta.String())
	}
}

func TestActivityEmptyGroupForQuietCoin(t *testing.T) {
	rpc := &stubRPC{
		transactions: func(context.Context, string, int) ([]model.TransactionBlock, error) {
			return nil, nil
		},
	}

	reader := newTestReader(rpc)
	groups, err := reader.Activity(context.Background(), testAddress, []string{suiCoin})
	if err != nil {
		t.Fatalf("activity: %v", err)
	}

	group, ok := groups[suiCoin]
	if !ok {
		t.Fatalf("quiet coin should still get a group")
	}
	if group.CoinType != suiCoin || len(group.Entries) != 0 {
		t.Fatalf("unexpected group %+v", group)
	}
}

func TestActivityQueryFailure(t *testing.T) {
	rpc := &stubRPC{
		transactions: func(context.Context, string, int) ([]model.TransactionBlock, error) {
			return nil, errors.New("node down")
		},
	}

	reader := newTestReader(rpc)
	if _, err := reader.Activity(context.Background(), testAddress, []string{suiCoin}); !errors.Is(err, ErrActivityFetch) {
		t.Fatalf("expected ErrActivityFetch, got %v", err)
	}
}
