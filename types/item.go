package types

// Item is the message clients send to the server. Keyed actions address
// the server's ordered key/value store; positional actions address its
// value sequence and carry no key.
type Item struct {
	Action string `json:"action"`
	Key    string `json:"key,omitempty"`
	Value  string `json:"value,omitempty"`
}

// Keyed actions.
const (
	AddItem     = "AddItem"
	GetItem     = "GetItem"
	GetAllItems = "GetAllItems"
	RemoveItem  = "RemoveItem"
)

// Positional actions.
const (
	AppendItem  = "AppendItem"
	PrependItem = "PrependItem"
	PopFirst    = "PopFirst"
	PopLast     = "PopLast"
)
