package testutil

import (
	"math/big"

	"github.com/dxlabs/dxindex/internal/entity"
	"github.com/dxlabs/dxindex/internal/feed"
)

// Fixture defaults shared by the event builders.
const (
	FixtureCid       = "QmTest"
	FixtureThumbnail = "QmThumb"
	FixtureTimestamp = int64(1000000)
)

// Addr returns a deterministic test address ending in the given byte.
func Addr(last byte) entity.Address {
	var a entity.Address
	a[entity.AddressLength-1] = last
	return a
}

// AssetAdded builds a decoded asset listing event with fixture CIDs.
func AssetAdded(assetAddr, author entity.Address, title string, price int64) feed.Event {
	return feed.Event{
		Type: feed.EventTypeAssetAdded,
		AssetAdded: &feed.AssetAdded{
			AssetAddress:   assetAddr,
			Title:          title,
			ContentCid:     FixtureCid,
			ThumbnailCid:   FixtureThumbnail,
			Author:         author,
			PriceInWei:     big.NewInt(price),
			BlockTimestamp: FixtureTimestamp,
		},
	}
}

// AssetBought builds a decoded asset purchase event.
func AssetBought(assetAddr, buyer entity.Address, amount int64) feed.Event {
	return feed.Event{
		Type: feed.EventTypeAssetBought,
		AssetBought: &feed.AssetBought{
			AssetAddress:   assetAddr,
			Amount:         big.NewInt(amount),
			Buyer:          buyer,
			BlockTimestamp: FixtureTimestamp,
		},
	}
}

// PostCreated builds a decoded post listing event with fixture CIDs.
func PostCreated(tokenID int64, author entity.Address, title string, price int64) feed.Event {
	return feed.Event{
		Type: feed.EventTypePostCreated,
		PostCreated: &feed.PostCreated{
			TokenID:        big.NewInt(tokenID),
			Title:          title,
			ContentCid:     FixtureCid,
			ThumbnailCid:   FixtureThumbnail,
			Author:         author,
			PriceInWei:     big.NewInt(price),
			BlockTimestamp: FixtureTimestamp,
		},
	}
}

// PostSubscribed builds a decoded subscription event.
func PostSubscribed(tokenID int64, subscriber entity.Address, totalCost int64) feed.Event {
	return feed.Event{
		Type: feed.EventTypePostSubscribed,
		PostSubscribed: &feed.PostSubscribed{
			TokenID:        big.NewInt(tokenID),
			Subscriber:     subscriber,
			TotalCost:      big.NewInt(totalCost),
			BlockTimestamp: FixtureTimestamp,
		},
	}
}

// Transfer builds a decoded transfer event. Pass nil from/to for mint/burn.
func Transfer(assetAddr entity.Address, from, to *entity.Address, value int64) feed.Event {
	return feed.Event{
		Type: feed.EventTypeTransfer,
		Transfer: &feed.Transfer{
			AssetAddress: assetAddr,
			From:         from,
			To:           to,
			Value:        big.NewInt(value),
		},
	}
}

// AddrPtr returns a pointer to a copy of a, for transfer endpoints.
func AddrPtr(a entity.Address) *entity.Address {
	return &a
}
