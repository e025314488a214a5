package model

// OwnedObject is the normalized representation of one ledger object owned
// by an address: its id, full type path, and decoded content fields.
type OwnedObject struct {
	ObjectID string                 `json:"object_id"`
	Type     string                 `json:"type"`
	Fields   map[string]interface{} `json:"fields,omitempty"`
}

// OwnedObjectsPage is one page of an owned-objects query.
type OwnedObjectsPage struct {
	Objects     []OwnedObject
	NextCursor  string
	HasNextPage bool
}
