package model

import (
	"encoding/json"
	"math/big"
	"reflect"
	"testing"
)

func TestTransactionEventJSONRoundTrip(t *testing.T) {
	original := TransactionEvent{
		Digest:      "8fJk2V9pQ3tR5mW7xL1nC4bD6eH8gA0sY2uZ4vX6wT9q",
		TimestampMs: 1700000000000,
		CoinType:    "0x2::sui::SUI",
		Delta:       big.NewInt(-42_000_000_000),
	}

	b, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded TransactionEvent
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	if !reflect.DeepEqual(original, decoded) {
		t.Fatalf("round-trip mismatch: %+v != %+v", original, decoded)
	}
}

func TestTransactionEventJSONStringDelta(t *testing.T) {
	event := TransactionEvent{
		Digest:      "abc",
		TimestampMs: 1700000000000,
		CoinType:    "0x2::sui::SUI",
		Delta:       big.NewInt(-1000),
	}

	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("marshal failed: %v", err)
	}

	var decoded map[string]interface{}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal failed: %v", err)
	}

	delta, ok := decoded["delta"].(string)
	if !ok {
		t.Fatalf("delta should be string")
	}
	if delta != "-1000" {
		t.Fatalf("delta mismatch: %s", delta)
	}
}
