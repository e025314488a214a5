package model

// TransactionBlock is the normalized representation of one transaction from
// a history query: its digest, timestamp, and balance-change effects.
type TransactionBlock struct {
	Digest         string          `json:"digest"`
	TimestampMs    int64           `json:"timestamp_ms"`
	BalanceChanges []BalanceChange `json:"balance_changes,omitempty"`
}

// BalanceChange is one balance-change effect inside a transaction. Owner is
// the address whose balance moved; Amount is a signed decimal string.
type BalanceChange struct {
	Owner    string `json:"owner"`
	CoinType string `json:"coin_type"`
	Amount   string `json:"amount"`
}
