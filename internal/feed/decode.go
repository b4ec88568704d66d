package feed

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/text/unicode/norm"

	"github.com/dxlabs/dxindex/internal/entity"
)

// ErrMalformed marks an event rejected at the decode boundary: a missing or
// type-mismatched field. The whole event is rejected; nothing is partially
// applied.
var ErrMalformed = errors.New("malformed event")

// wireEvent is the raw JSON shape of one feed line. Pointer fields
// distinguish "absent" from "zero" so required-field checks are exact.
// Unbounded integers travel as decimal strings.
type wireEvent struct {
	Type string `json:"type"`

	AssetAddress      *string `json:"assetAddress"`
	AssetTitle        *string `json:"assetTitle"`
	AssetCid          *string `json:"assetCid"`
	ThumbnailCid      *string `json:"thumbnailCid"`
	Author            *string `json:"author"`
	CostInNativeInWei *string `json:"costInNativeInWei"`
	BlockTimestamp    *int64  `json:"blockTimestamp"`

	Amount *string `json:"amount"`
	Buyer  *string `json:"buyer"`

	TokenID    *string `json:"tokenId"`
	PostTitle  *string `json:"postTitle"`
	PostCid    *string `json:"postCid"`
	Subscriber *string `json:"subscriber"`
	TotalCost  *string `json:"totalCost"`

	From  *string `json:"from"`
	To    *string `json:"to"`
	Value *string `json:"value"`
}

// Decode parses one wire event into its decoded form.
func Decode(data []byte) (Event, error) {
	var w wireEvent
	if err := json.Unmarshal(data, &w); err != nil {
		return Event{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	switch w.Type {
	case "AssetAdded":
		return decodeAssetAdded(&w)
	case "AssetBought":
		return decodeAssetBought(&w)
	case "PostCreated":
		return decodePostCreated(&w)
	case "PostSubscribed":
		return decodePostSubscribed(&w)
	case "Transfer":
		return decodeTransfer(&w)
	case "":
		return Event{}, fmt.Errorf("%w: missing field %q", ErrMalformed, "type")
	default:
		return Event{}, fmt.Errorf("%w: unknown event type %q", ErrMalformed, w.Type)
	}
}

func decodeAssetAdded(w *wireEvent) (Event, error) {
	ev := AssetAdded{}
	var err error
	if ev.AssetAddress, err = requireAddress("assetAddress", w.AssetAddress); err != nil {
		return Event{}, err
	}
	if ev.Title, err = requireString("assetTitle", w.AssetTitle); err != nil {
		return Event{}, err
	}
	if ev.ContentCid, err = requireString("assetCid", w.AssetCid); err != nil {
		return Event{}, err
	}
	if ev.ThumbnailCid, err = requireString("thumbnailCid", w.ThumbnailCid); err != nil {
		return Event{}, err
	}
	if ev.Author, err = requireAddress("author", w.Author); err != nil {
		return Event{}, err
	}
	if ev.PriceInWei, err = requireUint("costInNativeInWei", w.CostInNativeInWei); err != nil {
		return Event{}, err
	}
	if ev.BlockTimestamp, err = requireTimestamp(w.BlockTimestamp); err != nil {
		return Event{}, err
	}
	return Event{Type: EventTypeAssetAdded, AssetAdded: &ev}, nil
}

func decodeAssetBought(w *wireEvent) (Event, error) {
	ev := AssetBought{}
	var err error
	if ev.AssetAddress, err = requireAddress("assetAddress", w.AssetAddress); err != nil {
		return Event{}, err
	}
	if ev.Amount, err = requireUint("amount", w.Amount); err != nil {
		return Event{}, err
	}
	if ev.Buyer, err = requireAddress("buyer", w.Buyer); err != nil {
		return Event{}, err
	}
	if ev.BlockTimestamp, err = requireTimestamp(w.BlockTimestamp); err != nil {
		return Event{}, err
	}
	return Event{Type: EventTypeAssetBought, AssetBought: &ev}, nil
}

func decodePostCreated(w *wireEvent) (Event, error) {
	ev := PostCreated{}
	var err error
	if ev.TokenID, err = requireUint("tokenId", w.TokenID); err != nil {
		return Event{}, err
	}
	if ev.Title, err = requireString("postTitle", w.PostTitle); err != nil {
		return Event{}, err
	}
	if ev.ContentCid, err = requireString("postCid", w.PostCid); err != nil {
		return Event{}, err
	}
	if ev.ThumbnailCid, err = requireString("thumbnailCid", w.ThumbnailCid); err != nil {
		return Event{}, err
	}
	if ev.Author, err = requireAddress("author", w.Author); err != nil {
		return Event{}, err
	}
	if ev.PriceInWei, err = requireUint("costInNativeInWei", w.CostInNativeInWei); err != nil {
		return Event{}, err
	}
	if ev.BlockTimestamp, err = requireTimestamp(w.BlockTimestamp); err != nil {
		return Event{}, err
	}
	return Event{Type: EventTypePostCreated, PostCreated: &ev}, nil
}

func decodePostSubscribed(w *wireEvent) (Event, error) {
	ev := PostSubscribed{}
	var err error
	if ev.TokenID, err = requireUint("tokenId", w.TokenID); err != nil {
		return Event{}, err
	}
	if ev.Subscriber, err = requireAddress("subscriber", w.Subscriber); err != nil {
		return Event{}, err
	}
	if ev.TotalCost, err = requireUint("totalCost", w.TotalCost); err != nil {
		return Event{}, err
	}
	if ev.BlockTimestamp, err = requireTimestamp(w.BlockTimestamp); err != nil {
		return Event{}, err
	}
	return Event{Type: EventTypePostSubscribed, PostSubscribed: &ev}, nil
}

func decodeTransfer(w *wireEvent) (Event, error) {
	ev := Transfer{}
	var err error
	if ev.AssetAddress, err = requireAddress("assetAddress", w.AssetAddress); err != nil {
		return Event{}, err
	}
	if ev.From, err = requireEndpoint("from", w.From); err != nil {
		return Event{}, err
	}
	if ev.To, err = requireEndpoint("to", w.To); err != nil {
		return Event{}, err
	}
	if ev.Value, err = requireUint("value", w.Value); err != nil {
		return Event{}, err
	}
	return Event{Type: EventTypeTransfer, Transfer: &ev}, nil
}

// requireString returns the NFC-normalized value of a required string field.
func requireString(field string, v *string) (string, error) {
	if v == nil {
		return "", fmt.Errorf("%w: missing field %q", ErrMalformed, field)
	}
	return norm.NFC.String(*v), nil
}

// requireAddress parses a required address field.
func requireAddress(field string, v *string) (entity.Address, error) {
	if v == nil {
		return entity.Address{}, fmt.Errorf("%w: missing field %q", ErrMalformed, field)
	}
	a, err := entity.ParseAddress(*v)
	if err != nil {
		return entity.Address{}, fmt.Errorf("%w: field %q: %v", ErrMalformed, field, err)
	}
	return a, nil
}

// requireEndpoint parses a Transfer endpoint, translating the wire
// zero-address sentinel into an explicit absent marker.
func requireEndpoint(field string, v *string) (*entity.Address, error) {
	a, err := requireAddress(field, v)
	if err != nil {
		return nil, err
	}
	if a.IsZero() {
		return nil, nil
	}
	return &a, nil
}

// requireUint parses a required unsigned decimal big integer field.
func requireUint(field string, v *string) (*big.Int, error) {
	if v == nil {
		return nil, fmt.Errorf("%w: missing field %q", ErrMalformed, field)
	}
	n, ok := new(big.Int).SetString(*v, 10)
	if !ok {
		return nil, fmt.Errorf("%w: field %q: not a decimal integer: %q", ErrMalformed, field, *v)
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("%w: field %q: negative value %q", ErrMalformed, field, *v)
	}
	return n, nil
}

// requireTimestamp validates a required block timestamp field.
func requireTimestamp(v *int64) (int64, error) {
	if v == nil {
		return 0, fmt.Errorf("%w: missing field %q", ErrMalformed, "blockTimestamp")
	}
	if *v < 0 {
		return 0, fmt.Errorf("%w: field %q: negative value %d", ErrMalformed, "blockTimestamp", *v)
	}
	return *v, nil
}
