package model

import (
	"encoding/json"
	"fmt"
	"math/big"
)

// CoinBalance is the aggregated balance for one coin type. Raw carries the
// exact integer amount; Display is always derived from Raw and the metadata
// decimals, never stored independently.
type CoinBalance struct {
	CoinType string
	Metadata CoinMetadata
	Raw      *big.Int
	Display  string
}

type coinBalanceJSON struct {
	CoinType  string       `json:"coin_type"`
	Metadata  CoinMetadata `json:"metadata"`
	RawAmount string       `json:"raw_amount"`
	Display   string       `json:"display_amount"`
}

// MarshalJSON encodes the raw amount as a decimal string to keep arbitrary
// precision across the wire.
func (b CoinBalance) MarshalJSON() ([]byte, error) {
	raw := "0"
	if b.Raw != nil {
		raw = b.Raw.String()
	}
	return json.Marshal(coinBalanceJSON{
		CoinType:  b.CoinType,
		Metadata:  b.Metadata,
		RawAmount: raw,
		Display:   b.Display,
	})
}

// UnmarshalJSON decodes a CoinBalance, parsing the raw amount back into an
// integer.
func (b *CoinBalance) UnmarshalJSON(data []byte) error {
	var a coinBalanceJSON
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	raw := new(big.Int)
	if a.RawAmount != "" {
		if _, ok := raw.SetString(a.RawAmount, 10); !ok {
			return fmt.Errorf("invalid raw amount: %s", a.RawAmount)
		}
	}
	*b = CoinBalance{
		CoinType: a.CoinType,
		Metadata: a.Metadata,
		Raw:      raw,
		Display:  a.Display,
	}
	return nil
}
