package metadata_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vladislavprovich/nft-explorer/pkg/ipfs"
	"github.com/vladislavprovich/nft-explorer/pkg/metadata"
)

const gateway = "https://gw.test/ipfs/"

// staticResolver maps IPFS content to a single gateway without probing.
type staticResolver struct{}

func (staticResolver) Resolve(_ context.Context, uri string) string {
	if cid, ok := ipfs.CID(uri); ok {
		return gateway + cid
	}
	return uri
}

func TestExtractor_ImageURL_Priority(t *testing.T) {
	const fallback = "https://picsum.test/seed/x/400/400"

	tests := []struct {
		name string
		doc  string
		want string
	}{
		{
			name: "image wins over everything",
			doc:  `{"image":"https://a/1.png","image_url":"https://a/2.png","animation_url":"https://a/3.mp4"}`,
			want: "https://a/1.png",
		},
		{
			name: "image_url before imageUrl",
			doc:  `{"image_url":"https://a/2.png","imageUrl":"https://a/3.png"}`,
			want: "https://a/2.png",
		},
		{
			name: "imageUrl before animation_url",
			doc:  `{"imageUrl":"https://a/3.png","animation_url":"https://a/4.mp4"}`,
			want: "https://a/3.png",
		},
		{
			name: "animation_url before media",
			doc:  `{"animation_url":"https://a/4.mp4","media":"https://a/5.png"}`,
			want: "https://a/4.mp4",
		},
		{
			name: "media before mediaUrl",
			doc:  `{"media":"https://a/5.png","mediaUrl":"https://a/6.png"}`,
			want: "https://a/5.png",
		},
		{
			name: "properties image last",
			doc:  `{"properties":{"image":"https://a/7.png"}}`,
			want: "https://a/7.png",
		},
		{
			name: "ipfs image is resolved",
			doc:  `{"image":"ipfs://` + testCID + `/1.png"}`,
			want: gateway + testCID + "/1.png",
		},
		{
			name: "unresolvable candidate is skipped",
			doc:  `{"image":"ar://abc","image_url":"https://a/2.png"}`,
			want: "https://a/2.png",
		},
		{
			name: "empty document uses fallback",
			doc:  `{}`,
			want: fallback,
		},
		{
			name: "only unusable fields uses fallback",
			doc:  `{"image":"not a url","media":42}`,
			want: fallback,
		},
	}

	e := metadata.NewExtractor(staticResolver{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			md, err := metadata.Parse([]byte(tt.doc))
			assert.NoError(t, err)
			assert.Equal(t, tt.want, e.ImageURL(context.Background(), md, fallback))
		})
	}
}

func TestExtractor_Media(t *testing.T) {
	e := metadata.NewExtractor(staticResolver{})
	ctx := context.Background()

	t.Run("fallback extension is ignored", func(t *testing.T) {
		url, mediaType := e.Media(ctx, metadata.Empty(), "https://picsum.test/a.png")
		assert.Equal(t, "https://picsum.test/a.png", url)
		assert.Equal(t, metadata.DefaultMediaType, mediaType)
	})

	t.Run("nil metadata", func(t *testing.T) {
		url, mediaType := e.Media(ctx, nil, "https://picsum.test/a")
		assert.Equal(t, "https://picsum.test/a", url)
		assert.Equal(t, metadata.DefaultMediaType, mediaType)
	})

	t.Run("type inferred from resolved url", func(t *testing.T) {
		md := metadata.FromMap(map[string]any{"animation_url": "ipfs://" + testCID + "/clip.mp4"})
		url, mediaType := e.Media(ctx, md, "")
		assert.Equal(t, gateway+testCID+"/clip.mp4", url)
		assert.Equal(t, "video/mp4", mediaType)
	})

	t.Run("declared type wins", func(t *testing.T) {
		md := metadata.FromMap(map[string]any{"image": "https://a/x.png", "media_type": "image/webp"})
		_, mediaType := e.Media(ctx, md, "")
		assert.Equal(t, "image/webp", mediaType)
	})
}

func TestExtractor_Idempotent(t *testing.T) {
	e := metadata.NewExtractor(staticResolver{})
	ctx := context.Background()

	md := metadata.FromMap(map[string]any{"image": "ipfs://" + testCID})
	first := e.ImageURL(ctx, md, "")

	again := e.ImageURL(ctx, metadata.FromMap(map[string]any{"image": first}), "")
	assert.Equal(t, first, again)
}

func TestExtractor_CollectionImageURL(t *testing.T) {
	e := metadata.NewExtractor(staticResolver{})
	ctx := context.Background()

	md := metadata.FromMap(map[string]any{"collection": map[string]any{"image": "ipfs://" + testCID}})
	assert.Equal(t, gateway+testCID, e.CollectionImageURL(ctx, md, "fallback"))
	assert.Equal(t, "fallback", e.CollectionImageURL(ctx, metadata.Empty(), "fallback"))
}

func TestFirstResolved_ReportsStrategy(t *testing.T) {
	md := metadata.FromMap(map[string]any{"mediaUrl": "https://a/m.gif"})

	url, name, ok := metadata.FirstResolved(context.Background(), staticResolver{}, md, metadata.ImageStrategies)

	assert.True(t, ok)
	assert.Equal(t, "https://a/m.gif", url)
	assert.Equal(t, "mediaUrl", name)
}

func TestName(t *testing.T) {
	assert.Equal(t, "Doc", metadata.Name(&metadata.Metadata{Name: "Doc"}, "Raw", "1"))
	assert.Equal(t, "Raw", metadata.Name(metadata.Empty(), "Raw", "1"))
	assert.Equal(t, "NFT #9", metadata.Name(nil, "", "9"))
}
