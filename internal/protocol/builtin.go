package protocol

import (
	"fmt"

	"walletScope/internal/amount"
	"walletScope/internal/model"
)

const suiDecimals = 9

// Builtin returns the signatures shipped with the binary, in evaluation
// order.
func Builtin() []Signature {
	return []Signature{
		{
			Protocol:     "Sui Staking",
			TypePrefixes: []string{"0x3::staking_pool::StakedSui"},
			Extract:      extractStakedSui,
		},
		{
			Protocol:     "Cetus",
			TypePrefixes: []string{"0x1eabed72c53feb3805120a081dc15963c204dc8d091542592abaf7a35689b2fb::position::Position"},
			Extract:      extractCetusPosition,
		},
		{
			Protocol:     "Suilend",
			TypePrefixes: []string{"0xf95b06141ed4a174f239417323bde3f209b972f5930d8521ea38a52aff3a6ddf::lending_market::ObligationOwnerCap"},
			Extract:      extractSuilendObligation,
		},
		{
			Protocol:     "NAVI",
			TypePrefixes: []string{"0xd899cf7d2b5db716bd2cf55599fb0d5ee38a3061e7b6bb6eebf73fa5bc4c81ca::account::AccountCap"},
			Extract:      extractNaviAccount,
		},
		{
			Protocol:     "Kriya",
			TypePrefixes: []string{"0xa0eba10b173538c8fecca1dff298e488402cc9ff374f8a12ca7758eebe830b66::spot_dex::KriyaLPToken"},
			Extract:      extractKriyaLP,
		},
	}
}

func extractStakedSui(object model.OwnedObject) ([]model.PositionField, error) {
	poolID, err := lookupPath(object.Fields, "pool_id")
	if err != nil {
		return nil, err
	}
	principal, err := lookupPath(object.Fields, "principal")
	if err != nil {
		return nil, err
	}
	staked, err := amount.FormatString(principal, suiDecimals, false)
	if err != nil {
		return nil, fmt.Errorf("%w: principal %q", ErrMissingField, principal)
	}

	return []model.PositionField{
		{Label: "pool", Value: poolID},
		{Label: "staked", Value: staked + " SUI"},
	}, nil
}

func extractCetusPosition(object model.OwnedObject) ([]model.PositionField, error) {
	pool, err := lookupPath(object.Fields, "pool")
	if err != nil {
		return nil, err
	}
	liquidity, err := lookupPath(object.Fields, "liquidity")
	if err != nil {
		return nil, err
	}

	fields := make([]model.PositionField, 0, 3)
	coinA, errA := lookupPath(object.Fields, "coin_type_a")
	coinB, errB := lookupPath(object.Fields, "coin_type_b")
	if errA == nil && errB == nil {
		pair := model.FallbackSymbol(coinA) + "/" + model.FallbackSymbol(coinB)
		fields = append(fields, model.PositionField{Label: "pair", Value: pair})
	}
	fields = append(fields,
		model.PositionField{Label: "pool", Value: pool},
		model.PositionField{Label: "liquidity", Value: liquidity},
	)
	return fields, nil
}

func extractSuilendObligation(object model.OwnedObject) ([]model.PositionField, error) {
	obligation, err := lookupPath(object.Fields, "obligation_id")
	if err != nil {
		return nil, err
	}
	return []model.PositionField{
		{Label: "obligation", Value: obligation},
	}, nil
}

func extractNaviAccount(object model.OwnedObject) ([]model.PositionField, error) {
	return []model.PositionField{
		{Label: "account", Value: object.ObjectID},
	}, nil
}

func extractKriyaLP(object model.OwnedObject) ([]model.PositionField, error) {
	poolID, err := lookupPath(object.Fields, "pool_id")
	if err != nil {
		return nil, err
	}

	fields := []model.PositionField{
		{Label: "pool", Value: poolID},
	}
	if lsp, err := lookupPath(object.Fields, "lsp"); err == nil {
		fields = append(fields, model.PositionField{Label: "lp tokens", Value: lsp})
	}
	return fields, nil
}
