package suirpc

import (
	"encoding/json"
	"strconv"

	"walletScope/internal/model"
)

// Wire shapes as the fullnode returns them. Numeric balance fields arrive
// as decimal strings and are carried as strings into the model layer.

type rawBalance struct {
	CoinType     string `json:"coinType"`
	TotalBalance string `json:"totalBalance"`
}

type coinMetadata struct {
	Decimals uint8   `json:"decimals"`
	Name     string  `json:"name"`
	Symbol   string  `json:"symbol"`
	IconURL  *string `json:"iconUrl"`
}

type transactionQuery struct {
	Filter  transactionFilter  `json:"filter"`
	Options transactionOptions `json:"options"`
}

type transactionFilter struct {
	FromOrToAddress addressFilter `json:"FromOrToAddress"`
}

type addressFilter struct {
	Addr string `json:"addr"`
}

type transactionOptions struct {
	ShowBalanceChanges bool `json:"showBalanceChanges"`
	ShowEffects        bool `json:"showEffects"`
	ShowInput          bool `json:"showInput"`
	ShowEvents         bool `json:"showEvents"`
	ShowObjectChanges  bool `json:"showObjectChanges"`
}

type transactionPage struct {
	Data        []transactionBlock `json:"data"`
	NextCursor  *string            `json:"nextCursor"`
	HasNextPage bool               `json:"hasNextPage"`
}

type transactionBlock struct {
	Digest         string          `json:"digest"`
	TimestampMs    string          `json:"timestampMs"`
	BalanceChanges []balanceChange `json:"balanceChanges"`
}

type balanceChange struct {
	Owner    json.RawMessage `json:"owner"`
	CoinType string          `json:"coinType"`
	Amount   string          `json:"amount"`
}

type ownedObjectsQuery struct {
	Options ownedObjectsOptions `json:"options"`
}

type ownedObjectsOptions struct {
	ShowType    bool `json:"showType"`
	ShowContent bool `json:"showContent"`
}

type ownedObjectsPage struct {
	Data        []ownedObjectEnvelope `json:"data"`
	NextCursor  *string               `json:"nextCursor"`
	HasNextPage bool                  `json:"hasNextPage"`
}

type ownedObjectEnvelope struct {
	Data *ownedObjectData `json:"data"`
}

type ownedObjectData struct {
	ObjectID string         `json:"objectId"`
	Type     string         `json:"type"`
	Content  *objectContent `json:"content"`
}

type objectContent struct {
	DataType string                 `json:"dataType"`
	Type     string                 `json:"type"`
	Fields   map[string]interface{} `json:"fields"`
}

func decodeTransactionBlock(block transactionBlock) model.TransactionBlock {
	changes := make([]model.BalanceChange, 0, len(block.BalanceChanges))
	for _, change := range block.BalanceChanges {
		changes = append(changes, model.BalanceChange{
			Owner:    ownerAddress(change.Owner),
			CoinType: change.CoinType,
			Amount:   change.Amount,
		})
	}

	return model.TransactionBlock{
		Digest:         block.Digest,
		TimestampMs:    parseTimestamp(block.TimestampMs),
		BalanceChanges: changes,
	}
}

func decodeOwnedObject(envelope ownedObjectEnvelope) (model.OwnedObject, bool) {
	data := envelope.Data
	if data == nil {
		return model.OwnedObject{}, false
	}

	objectType := data.Type
	var fields map[string]interface{}
	if data.Content != nil {
		if objectType == "" {
			objectType = data.Content.Type
		}
		fields = data.Content.Fields
	}
	if data.ObjectID == "" || objectType == "" {
		return model.OwnedObject{}, false
	}

	return model.OwnedObject{
		ObjectID: data.ObjectID,
		Type:     objectType,
		Fields:   fields,
	}, true
}

// ownerAddress extracts the owning address from an owner envelope, which is
// either a bare string or an object keyed by the owner kind. Shared and
// immutable owners yield an empty string.
func ownerAddress(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}

	var direct string
	if err := json.Unmarshal(raw, &direct); err == nil {
		return direct
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return ""
	}
	for _, key := range []string{"AddressOwner", "GasOwner", "ObjectOwner"} {
		nested, ok := envelope[key]
		if !ok {
			continue
		}
		var address string
		if err := json.Unmarshal(nested, &address); err == nil {
			return address
		}
	}
	return ""
}

// parseTimestamp converts a millisecond timestamp string; missing or
// malformed values yield 0, which renders as unknown and sorts last.
func parseTimestamp(value string) int64 {
	if value == "" {
		return 0
	}
	ts, err := strconv.ParseInt(value, 10, 64)
	if err != nil || ts < 0 {
		return 0
	}
	return ts
}
