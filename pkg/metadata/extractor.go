package metadata

import (
	"context"
	"fmt"

	"github.com/vladislavprovich/nft-explorer/pkg/ipfs"
)

// Resolver maps a content URI to a displayable URL.
type Resolver interface {
	Resolve(ctx context.Context, uri string) string
}

// Strategy picks one candidate field out of a document.
type Strategy struct {
	Name string
	Pick func(md *Metadata) string
}

// ImageStrategies is the priority order for a token's image.
var ImageStrategies = []Strategy{
	{Name: "image", Pick: func(md *Metadata) string { return md.Image }},
	{Name: "image_url", Pick: func(md *Metadata) string { return md.ImageURL }},
	{Name: "imageUrl", Pick: func(md *Metadata) string { return md.ImageURLCamel }},
	{Name: "animation_url", Pick: func(md *Metadata) string { return md.AnimationURL }},
	{Name: "media", Pick: func(md *Metadata) string { return md.Media }},
	{Name: "mediaUrl", Pick: func(md *Metadata) string { return md.MediaURL }},
	{Name: "properties.image", Pick: func(md *Metadata) string { return md.PropertiesImage() }},
}

// CollectionImageStrategies is the priority order for a collection's image.
var CollectionImageStrategies = []Strategy{
	{Name: "collection.image", Pick: func(md *Metadata) string { return md.CollectionImage() }},
}

// FirstResolved evaluates strategies in order and returns the first candidate the
// resolver turns into an absolute http(s) URL.
func FirstResolved(ctx context.Context, resolver Resolver, md *Metadata, strategies []Strategy) (string, string, bool) {
	if md == nil {
		return "", "", false
	}

	for _, s := range strategies {
		candidate := s.Pick(md)
		if candidate == "" {
			continue
		}

		resolved := resolver.Resolve(ctx, candidate)
		if ipfs.IsHTTPURL(resolved) {
			return resolved, s.Name, true
		}
	}

	return "", "", false
}

type Extractor struct {
	resolver Resolver
}

func NewExtractor(resolver Resolver) *Extractor {
	return &Extractor{resolver: resolver}
}

// ImageURL returns the best image of md, or fallback unchanged when no field resolves.
func (e *Extractor) ImageURL(ctx context.Context, md *Metadata, fallback string) string {
	if resolved, _, ok := FirstResolved(ctx, e.resolver, md, ImageStrategies); ok {
		return resolved
	}
	return fallback
}

// CollectionImageURL returns the collection image, or fallback.
func (e *Extractor) CollectionImageURL(ctx context.Context, md *Metadata, fallback string) string {
	if resolved, _, ok := FirstResolved(ctx, e.resolver, md, CollectionImageStrategies); ok {
		return resolved
	}
	return fallback
}

// Media returns the image URL together with its media type. The extension of the
// fallback is never used to infer a type.
func (e *Extractor) Media(ctx context.Context, md *Metadata, fallback string) (string, string) {
	if resolved, _, ok := FirstResolved(ctx, e.resolver, md, ImageStrategies); ok {
		return resolved, MediaType(md, resolved)
	}
	return fallback, MediaType(md, "")
}

// Name prefers the document, then the indexer's name, then a synthesized label.
func Name(md *Metadata, rawName, tokenID string) string {
	if md != nil && md.Name != "" {
		return md.Name
	}
	if rawName != "" {
		return rawName
	}
	return fmt.Sprintf("NFT #%s", tokenID)
}

func Description(md *Metadata) string {
	if md == nil {
		return ""
	}
	return md.Description
}
