package wallet

import (
	"sort"
	"time"

	"walletScope/internal/model"
)

// AssembleInput carries the section results of one lookup, successful or
// not, into the final join.
type AssembleInput struct {
	Address   string
	Network   string
	FetchedAt time.Time

	Balances  []model.CoinBalance
	Activity  map[string]model.ActivityGroup
	Protocols []model.ProtocolCard

	BalancesErr  error
	ActivityErr  error
	PositionsErr error
}

// AssembleView joins section results into a WalletView. It is a pure
// function of its input: no fetching, no mutation of the input slices, and
// the same input always yields the same view.
func AssembleView(in AssembleInput) model.WalletView {
	view := model.WalletView{
		Address:   in.Address,
		Network:   in.Network,
		FetchedAt: in.FetchedAt.UTC().Format(time.RFC3339Nano),
	}

	if in.BalancesErr == nil {
		view.Coins = make([]model.CoinActivity, 0, len(in.Balances))
		for _, balance := range in.Balances {
			group, ok := in.Activity[balance.CoinType]
			if !ok {
				group = model.ActivityGroup{CoinType: balance.CoinType}
			}
			view.Coins = append(view.Coins, model.CoinActivity{Balance: balance, Activity: group})
		}
	}

	if in.PositionsErr == nil {
		view.Protocols = make([]model.ProtocolCard, len(in.Protocols))
		copy(view.Protocols, in.Protocols)
		sort.Slice(view.Protocols, func(i, j int) bool {
			return view.Protocols[i].Protocol < view.Protocols[j].Protocol
		})
	}

	appendFailure(&view, "balances", in.BalancesErr)
	appendFailure(&view, "activity", in.ActivityErr)
	appendFailure(&view, "positions", in.PositionsErr)
	return view
}

func appendFailure(view *model.WalletView, section string, err error) {
	if err == nil {
		return
	}
	view.Failures = append(view.Failures, model.SectionFailure{
		Section: section,
		Error:   err.Error(),
	})
}
