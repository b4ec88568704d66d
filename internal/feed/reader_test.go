package feed

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReader_DeliversInOrder(t *testing.T) {
	input := `{"type": "AssetAdded", "assetAddress": "` + addrAsset + `", "assetTitle": "A", "assetCid": "c", "thumbnailCid": "t", "author": "` + addrAuthor + `", "costInNativeInWei": "1000", "blockTimestamp": 1}

{"type": "AssetBought", "assetAddress": "` + addrAsset + `", "amount": "5", "buyer": "` + addrBuyer + `", "blockTimestamp": 2}
`

	r := NewReader(strings.NewReader(input))

	first, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, EventTypeAssetAdded, first.Type)

	second, err := r.Next()
	require.NoError(t, err)
	assert.Equal(t, EventTypeAssetBought, second.Type)
	assert.Equal(t, 3, r.Line(), "blank lines are skipped but still counted")

	_, err = r.Next()
	assert.ErrorIs(t, err, io.EOF)
}

func TestReader_MalformedLineReportsPosition(t *testing.T) {
	input := `{"type": "AssetBought", "assetAddress": "` + addrAsset + `", "amount": "5", "buyer": "` + addrBuyer + `", "blockTimestamp": 1}
{"type": "Nonsense"}
`

	r := NewReader(strings.NewReader(input))

	_, err := r.Next()
	require.NoError(t, err)

	_, err = r.Next()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformed)
	assert.Contains(t, err.Error(), "line 2")
}

func TestReader_EmptyFeed(t *testing.T) {
	r := NewReader(strings.NewReader(""))
	_, err := r.Next()
	assert.ErrorIs(t, err, io.EOF)
}
