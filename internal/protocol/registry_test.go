package protocol

import (
	"errors"
	"reflect"
	"testing"

	"walletScope/internal/model"
)

func TestRegistryFirstMatchWins(t *testing.T) {
	first, err := GenericSignature("First", []string{"0xaaa::pool::"}, nil)
	if err != nil {
		t.Fatalf("first signature: %v", err)
	}
	second, err := GenericSignature("Second", []string{"0xaaa::pool::Position"}, nil)
	if err != nil {
		t.Fatalf("second signature: %v", err)
	}

	registry := NewRegistry(first, second)

	matched, ok := registry.Match("0xaaa::pool::Position<0x2::sui::SUI>")
	if !ok {
		t.Fatalf("expected a match")
	}
	if matched.Protocol != "First" {
		t.Fatalf("first registered signature should win, got %s", matched.Protocol)
	}

	if _, ok := registry.Match("0xbbb::vault::Vault"); ok {
		t.Fatalf("unrelated type should not match")
	}
	if _, ok := registry.Match(""); ok {
		t.Fatalf("empty type should not match")
	}
}

func TestBuiltinMatchesKnownTypes(t *testing.T) {
	registry := Default()

	cases := []struct {
		objectType string
		protocol   string
	}{
		{"0x3::staking_pool::StakedSui", "Sui Staking"},
		{"0x1eabed72c53feb3805120a081dc15963c204dc8d091542592abaf7a35689b2fb::position::Position", "Cetus"},
		{"0xf95b06141ed4a174f239417323bde3f209b972f5930d8521ea38a52aff3a6ddf::lending_market::ObligationOwnerCap<0xf95b06141ed4a174f239417323bde3f209b972f5930d8521ea38a52aff3a6ddf::suilend::MAIN_POOL>", "Suilend"},
		{"0xa0eba10b173538c8fecca1dff298e488402cc9ff374f8a12ca7758eebe830b66::spot_dex::KriyaLPToken<0x2::sui::SUI, 0xdba3::usdc::USDC>", "Kriya"},
	}

	for _, tc := range cases {
		signature, ok := registry.Match(tc.objectType)
		if !ok {
			t.Fatalf("no match for %s", tc.objectType)
		}
		if signature.Protocol != tc.protocol {
			t.Fatalf("protocol mismatch for %s: got %s, want %s", tc.objectType, signature.Protocol, tc.protocol)
		}
	}
}

func TestExtractStakedSui(t *testing.T) {
	object := model.OwnedObject{
		ObjectID: "0x111",
		Type:     "0x3::staking_pool::StakedSui",
		Fields: map[string]interface{}{
			"pool_id":   "0x222",
			"principal": "5000000000",
		},
	}

	fields, err := extractStakedSui(object)
	if err != nil {
		t.Fatalf("extract staked sui: %v", err)
	}

	want := []model.PositionField{
		{Label: "pool", Value: "0x222"},
		{Label: "staked", Value: "5 SUI"},
	}
	if !reflect.DeepEqual(fields, want) {
		t.Fatalf("fields mismatch: %+v != %+v", fields, want)
	}
}

func TestExtractCetusPosition(t *testing.T) {
	object := model.OwnedObject{
		ObjectID: "0x333",
		Type:     "0x1eabed72c53feb3805120a081dc15963c204dc8d091542592abaf7a35689b2fb::position::Position",
		Fields: map[string]interface{}{
			"pool":        "0x444",
			"liquidity":   "123456789",
			"coin_type_a": "0x2::sui::SUI",
			"coin_type_b": "0xdba3::usdc::USDC",
		},
	}

	fields, err := extractCetusPosition(object)
	if err != nil {
		t.Fatalf("extract cetus position: %v", err)
	}

	want := []model.PositionField{
		{Label: "pair", Value: "SUI/USDC"},
		{Label: "pool", Value: "0x444"},
		{Label: "liquidity", Value: "123456789"},
	}
	if !reflect.DeepEqual(fields, want) {
		t.Fatalf("fields mismatch: %+v != %+v", fields, want)
	}
}

func TestExtractMissingFieldFails(t *testing.T) {
	object := model.OwnedObject{
		ObjectID: "0x111",
		Type:     "0x3::staking_pool::StakedSui",
		Fields:   map[string]interface{}{"pool_id": "0x222"},
	}

	if _, err := extractStakedSui(object); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField, got %v", err)
	}
}

func TestGenericSignatureExtractsNestedPath(t *testing.T) {
	signature, err := GenericSignature("Scallop", []string{"0xefe::obligation::"}, map[string]string{
		"market": "market.id",
		"shares": "shares",
	})
	if err != nil {
		t.Fatalf("generic signature: %v", err)
	}

	object := model.OwnedObject{
		ObjectID: "0x555",
		Type:     "0xefe::obligation::ObligationKey",
		Fields: map[string]interface{}{
			"market": map[string]interface{}{"id": "0x666"},
			"shares": float64(42),
		},
	}

	fields, err := signature.Extract(object)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}

	want := []model.PositionField{
		{Label: "market", Value: "0x666"},
		{Label: "shares", Value: "42"},
	}
	if !reflect.DeepEqual(fields, want) {
		t.Fatalf("fields mismatch: %+v != %+v", fields, want)
	}

	object.Fields = map[string]interface{}{"shares": float64(42)}
	if _, err := signature.Extract(object); !errors.Is(err, ErrMissingField) {
		t.Fatalf("expected ErrMissingField for absent path, got %v", err)
	}
}

func TestGenericSignatureValidation(t *testing.T) {
	if _, err := GenericSignature("", []string{"0x1::a::B"}, nil); err == nil {
		t.Fatalf("expected error for empty name")
	}
	if _, err := GenericSignature("NoPrefix", nil, nil); err == nil {
		t.Fatalf("expected error for missing prefixes")
	}
	if _, err := GenericSignature("Blank", []string{"   "}, nil); err == nil {
		t.Fatalf("expected error for blank prefixes")
	}
}
