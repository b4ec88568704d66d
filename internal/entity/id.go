package entity

import (
	"encoding/hex"
	"math/big"
)

// ID is an opaque entity identifier: a hex-encoded byte sequence or a
// synthetic composite string derived from one.
type ID string

// ZeroID is the zero identifier used for unset reference fields and as the
// GlobalStats singleton key.
const ZeroID ID = "0x00000000"

// GlobalStatsID keys the single GlobalStats row. Exactly one ever exists.
const GlobalStatsID = ZeroID

// AssetIDFromAddress derives an asset identifier from its contract address.
func AssetIDFromAddress(a Address) ID {
	return ID(a.Hex())
}

// AssetIDFromToken derives an asset identifier from a token id, using the
// token's big-endian bytes. Token zero maps to a single zero byte so the
// identifier is never empty.
func AssetIDFromToken(tokenID *big.Int) ID {
	b := tokenID.Bytes()
	if len(b) == 0 {
		b = []byte{0}
	}
	return ID("0x" + hex.EncodeToString(b))
}

// UserID derives the identifier shared by the Creator and Holder rows of one
// account address. The two kinds are stored separately; sharing the raw
// address as the key is what makes the dual-role user classification work.
func UserID(a Address) ID {
	return ID(a.Hex())
}

// PurchaseID derives the composite identifier of the unique position one
// holder has in one asset.
func PurchaseID(holder Address, asset ID) ID {
	return ID(holder.Hex() + "-" + string(asset))
}
