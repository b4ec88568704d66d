package feed

import (
	"math/big"

	"github.com/dxlabs/dxindex/internal/entity"
)

// EventType distinguishes the decoded event kinds.
type EventType int

const (
	// EventTypeAssetAdded represents a new asset listing (master variant).
	EventTypeAssetAdded EventType = iota + 1
	// EventTypeAssetBought represents an asset purchase (master variant).
	EventTypeAssetBought
	// EventTypePostCreated represents a new post listing (marketplace variant).
	EventTypePostCreated
	// EventTypePostSubscribed represents a post subscription (marketplace variant).
	EventTypePostSubscribed
	// EventTypeTransfer represents an ownership movement between positions.
	EventTypeTransfer
)

// String returns the wire name of the event type.
func (t EventType) String() string {
	switch t {
	case EventTypeAssetAdded:
		return "AssetAdded"
	case EventTypeAssetBought:
		return "AssetBought"
	case EventTypePostCreated:
		return "PostCreated"
	case EventTypePostSubscribed:
		return "PostSubscribed"
	case EventTypeTransfer:
		return "Transfer"
	default:
		return "Unknown"
	}
}

// AssetAdded is a decoded asset listing event.
type AssetAdded struct {
	AssetAddress   entity.Address
	Title          string
	ContentCid     string
	ThumbnailCid   string
	Author         entity.Address
	PriceInWei     *big.Int
	BlockTimestamp int64
}

// AssetBought is a decoded asset purchase event. The spend is derived by the
// engine as Amount times the asset's recorded price.
type AssetBought struct {
	AssetAddress   entity.Address
	Amount         *big.Int
	Buyer          entity.Address
	BlockTimestamp int64
}

// PostCreated is a decoded post listing event, keyed by token id.
type PostCreated struct {
	TokenID        *big.Int
	Title          string
	ContentCid     string
	ThumbnailCid   string
	Author         entity.Address
	PriceInWei     *big.Int
	BlockTimestamp int64
}

// PostSubscribed is a decoded subscription event. Unlike AssetBought the
// total cost arrives pre-computed in the event.
type PostSubscribed struct {
	TokenID        *big.Int
	Subscriber     entity.Address
	TotalCost      *big.Int
	BlockTimestamp int64
}

// Transfer is a decoded ownership movement. AssetAddress comes from the
// feed's delivery context (the emitting contract), not the event payload.
//
// A nil From marks issuance (mint); a nil To marks destruction (burn). Both
// are translated from the wire zero-address at decode time and are
// intentional no-ops in the engine.
type Transfer struct {
	AssetAddress entity.Address
	From         *entity.Address
	To           *entity.Address
	Value        *big.Int
}

// IsMint reports whether the transfer issues new supply.
func (t *Transfer) IsMint() bool { return t.From == nil }

// IsBurn reports whether the transfer destroys supply.
func (t *Transfer) IsBurn() bool { return t.To == nil }

// Event wraps one decoded event for dispatch. Exactly one of the payload
// pointers matching Type is non-nil.
type Event struct {
	Type           EventType
	AssetAdded     *AssetAdded
	AssetBought    *AssetBought
	PostCreated    *PostCreated
	PostSubscribed *PostSubscribed
	Transfer       *Transfer
}
