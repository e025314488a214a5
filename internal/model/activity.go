package model

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// TransactionEvent is one signed balance movement for one coin type caused
// by a single transaction. A transaction touching several coins yields one
// event per (digest, coin type) pair.
type TransactionEvent struct {
	Digest      string
	TimestampMs int64
	CoinType    string
	Delta       *big.Int
}

type transactionEventJSON struct {
	Digest      string `json:"digest"`
	TimestampMs int64  `json:"timestamp_ms"`
	CoinType    string `json:"coin_type"`
	Delta       string `json:"delta"`
}

// MarshalJSON encodes the delta as a decimal string.
func (e TransactionEvent) MarshalJSON() ([]byte, error) {
	delta := "0"
	if e.Delta != nil {
		delta = e.Delta.String()
	}
	return json.Marshal(transactionEventJSON{
		Digest:      e.Digest,
		TimestampMs: e.TimestampMs,
		CoinType:    e.CoinType,
		Delta:       delta,
	})
}

// UnmarshalJSON decodes a TransactionEvent, parsing the delta back into an
// integer.
func (e *TransactionEvent) UnmarshalJSON(data []byte) error {
	var a transactionEventJSON
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	delta := new(big.Int)
	if a.Delta != "" {
		if _, ok := delta.SetString(a.Delta, 10); !ok {
			return fmt.Errorf("invalid delta: %s", a.Delta)
		}
	}
	*e = TransactionEvent{
		Digest:      a.Digest,
		TimestampMs: a.TimestampMs,
		CoinType:    a.CoinType,
		Delta:       delta,
	}
	return nil
}

// ActivityEntry pairs an event with its formatted signed delta.
type ActivityEntry struct {
	Event        TransactionEvent `json:"event"`
	DisplayDelta string           `json:"display_delta"`
}

// ActivityGroup holds the recent entries for one coin type, most recent
// first, ties broken by digest lexical order.
type ActivityGroup struct {
	CoinType string          `json:"coin_type"`
	Entries  []ActivityEntry `json:"entries,omitempty"`
}
