package wallet

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"walletScope/internal/model"
	"walletScope/internal/protocol"
)

// Positions pages through the objects owned by address and keeps those with
// a recognized protocol signature, grouped into one card per protocol. A
// single object whose fields cannot be extracted degrades to a placeholder
// instead of failing the scan.
func (r *Reader) Positions(ctx context.Context, address string) ([]model.ProtocolCard, error) {
	byProtocol := make(map[string][]model.Position)

	cursor := ""
	for page := 0; page < r.maxPages; page++ {
		objects, err := r.rpc.GetOwnedObjects(ctx, address, cursor, r.pageSize)
		if err != nil {
			return nil, fmt.Errorf("fetch owned objects: %w", err)
		}

		for _, object := range objects.Objects {
			signature, ok := r.registry.Match(object.Type)
			if !ok {
				continue
			}
			position := r.buildPosition(signature, object)
			byProtocol[signature.Protocol] = append(byProtocol[signature.Protocol], position)
		}

		if !objects.HasNextPage || objects.NextCursor == "" {
			break
		}
		cursor = objects.NextCursor
	}

	names := make([]string, 0, len(byProtocol))
	for name := range byProtocol {
		names = append(names, name)
	}
	sort.Strings(names)

	cards := make([]model.ProtocolCard, 0, len(names))
	for _, name := range names {
		cards = append(cards, model.ProtocolCard{Protocol: name, Positions: byProtocol[name]})
	}
	return cards, nil
}

func (r *Reader) buildPosition(signature protocol.Signature, object model.OwnedObject) model.Position {
	fields, err := signature.Extract(object)
	if err != nil {
		r.logger.Warn("position extraction failed",
			zap.String("protocol", signature.Protocol),
			zap.String("object_id", object.ObjectID),
			zap.Error(err))
		fields = []model.PositionField{{Label: "note", Value: "position data unavailable"}}
	}
	return model.Position{
		Protocol:   signature.Protocol,
		ObjectID:   object.ObjectID,
		ObjectType: object.Type,
		Fields:     fields,
	}
}
