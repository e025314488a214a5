package model

// WalletView is the render-ready result of one wallet lookup. Sections that
// failed are listed in Failures; the remaining sections are still populated.
type WalletView struct {
	Address   string           `json:"address"`
	Network   string           `json:"network"`
	FetchedAt string           `json:"fetched_at"`
	Coins     []CoinActivity   `json:"coins"`
	Protocols []ProtocolCard   `json:"protocols"`
	Failures  []SectionFailure `json:"failures,omitempty"`
}

// CoinActivity joins one coin balance with its recent activity group.
type CoinActivity struct {
	Balance  CoinBalance   `json:"balance"`
	Activity ActivityGroup `json:"activity"`
}

// SectionFailure records that one view section could not be fetched.
type SectionFailure struct {
	Section string `json:"section"`
	Error   string `json:"error"`
}
