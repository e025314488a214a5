package model

// PositionField is one label/value pair extracted from a position object.
// Order is significant for display.
type PositionField struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Position is one detected protocol position.
type Position struct {
	Protocol   string          `json:"protocol"`
	ObjectID   string          `json:"object_id"`
	ObjectType string          `json:"object_type"`
	Fields     []PositionField `json:"fields,omitempty"`
}

// ProtocolCard groups the detected positions of one protocol.
type ProtocolCard struct {
	Protocol  string     `json:"protocol"`
	Positions []Position `json:"positions"`
}
