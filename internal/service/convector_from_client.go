package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavprovich/nft-explorer/pkg/client/glacier"
	"github.com/vladislavprovich/nft-explorer/pkg/metadata"
	"github.com/vladislavprovich/nft-explorer/pkg/placeholder"
)

var errNoIdentity = errors.New("collectible has neither address nor tokenId")

type ConvectorFromClient struct {
	logger      *slog.Logger
	fetcher     MetadataFetcher
	extractor   *metadata.Extractor
	placeholder *placeholder.Generator
	now         func() time.Time
}

func NewConvectorFromClient(
	log *slog.Logger,
	fetcher MetadataFetcher,
	resolver URIResolver,
	ph *placeholder.Generator,
) *ConvectorFromClient {
	return &ConvectorFromClient{
		logger:      log,
		fetcher:     fetcher,
		extractor:   metadata.NewExtractor(resolver),
		placeholder: ph,
		now:         time.Now,
	}
}

// ID is the identity of a collectible across pages.
func ID(c glacier.Collectible) string {
	return fmt.Sprintf("%s-%s", c.Address, c.TokenID)
}

// ConvertFromCollectible resolves the collectible's metadata and assembles the NFT.
// A failed metadata fetch degrades to empty metadata; the returned error only reports
// that the collectible could not be assembled at all.
func (c *ConvectorFromClient) ConvertFromCollectible(
	ctx context.Context,
	raw glacier.Collectible,
) (NFT, error) {
	if raw.Address == "" && raw.TokenID == "" {
		return NFT{}, errNoIdentity
	}

	id := ID(raw)
	fallbackImage := c.placeholder.ForID(id)

	md := metadata.Empty()
	if raw.TokenURI != "" {
		fetched, err := c.fetcher.Fetch(ctx, raw.TokenURI)
		if err != nil {
			c.logger.WarnContext(ctx, "metadata unavailable, using empty metadata",
				slog.String("id", id),
				slog.Any("error", err),
			)
		} else if fetched != nil {
			md = fetched
		}
	}

	imageURL, mediaType := c.extractor.Media(ctx, md, fallbackImage)

	return NFT{
		ID:              id,
		ContractAddress: raw.Address,
		TokenID:         raw.TokenID,
		Name:            metadata.Name(md, raw.Name, raw.TokenID),
		Description:     metadata.Description(md),
		MediaType:       mediaType,
		MediaURL:        imageURL,
		ThumbnailURL:    imageURL,
		ImageURL:        imageURL,
		Creator:         orDefault(md.Creator, UnknownCreator),
		Collection: Collection{
			Name:        firstNonEmpty(md.CollectionName(), raw.Name, UnknownCollectionName),
			Description: orDefault(md.CollectionDescription(), DefaultCollectionDescription),
			ImageURL:    c.extractor.CollectionImageURL(ctx, md, imageURL),
			Symbol:      firstNonEmpty(md.CollectionSymbol(), raw.Symbol),
		},
		Metadata:  rawMetadata(md),
		Price:     priceOf(md),
		Owner:     orDefault(md.Owner, UnknownOwner),
		CreatedAt: c.now(),
		ErcType:   raw.ErcType,
	}, nil
}

// MinimalNFT is built from the raw collectible alone and cannot fail.
func (c *ConvectorFromClient) MinimalNFT(raw glacier.Collectible) NFT {
	id := ID(raw)
	image := c.placeholder.ForID(id)

	return NFT{
		ID:              id,
		ContractAddress: raw.Address,
		TokenID:         raw.TokenID,
		Name:            metadata.Name(nil, raw.Name, raw.TokenID),
		MediaType:       metadata.DefaultMediaType,
		MediaURL:        image,
		ThumbnailURL:    image,
		ImageURL:        image,
		Creator:         UnknownCreator,
		Collection: Collection{
			Name:        orDefault(raw.Name, UnknownCollectionName),
			Description: DefaultCollectionDescription,
			ImageURL:    image,
			Symbol:      raw.Symbol,
		},
		Metadata:  map[string]any{},
		Owner:     UnknownOwner,
		CreatedAt: c.now(),
		ErcType:   raw.ErcType,
	}
}

func rawMetadata(md *metadata.Metadata) map[string]any {
	if md == nil || md.Raw == nil {
		return map[string]any{}
	}
	return md.Raw
}

func priceOf(md *metadata.Metadata) decimal.Decimal {
	if md == nil || md.Price == nil {
		return decimal.Zero
	}
	return *md.Price
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
