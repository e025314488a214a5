package model

import "strings"

// CoinMetadata captures on-chain coin metadata. Immutable once fetched.
type CoinMetadata struct {
	CoinType string `json:"coin_type"`
	Symbol   string `json:"symbol"`
	Name     string `json:"name"`
	Decimals uint8  `json:"decimals"`
	IconURL  string `json:"icon_url,omitempty"`
}

// DisplaySymbol returns the registered symbol, or the last path segment of
// the coin type when no symbol is registered.
func (m CoinMetadata) DisplaySymbol() string {
	if m.Symbol != "" {
		return m.Symbol
	}
	return FallbackSymbol(m.CoinType)
}

// FallbackSymbol derives a display symbol from the last :: segment of a
// coin type path.
func FallbackSymbol(coinType string) string {
	parts := strings.Split(coinType, "::")
	return parts[len(parts)-1]
}

// FallbackMetadata synthesizes metadata for a coin type whose on-chain
// record is unavailable: last path segment as symbol, zero decimals.
func FallbackMetadata(coinType string) CoinMetadata {
	return CoinMetadata{
		CoinType: coinType,
		Symbol:   FallbackSymbol(coinType),
		Decimals: 0,
	}
}

// RawBalance is one wire-level balance entry: the total held for a coin
// type, as a decimal string.
type RawBalance struct {
	CoinType     string `json:"coin_type"`
	TotalBalance string `json:"total_balance"`
}
