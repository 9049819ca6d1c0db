package service

import (
	"context"
	"fmt"

	"github.com/vladislavprovich/nft-explorer/pkg/metadata"
)

func (s *Service) GetPlaceholderImage(id string) string {
	return s.placeholder.ForID(id)
}

func (s *Service) IsVideoMedia(mediaType string) bool {
	return metadata.IsVideoMedia(mediaType)
}

func (s *Service) ResolveURI(ctx context.Context, uri string) string {
	if s.resolver == nil {
		return uri
	}
	return s.resolver.Resolve(ctx, uri)
}

// FormatAddress shortens an address for display, e.g. 0x6915...7bd6.
func FormatAddress(address string, startChars, endChars int) string {
	if address == "" {
		return UnknownOwner
	}
	if startChars < 0 || endChars < 0 || len(address) <= startChars+endChars {
		return address
	}
	return fmt.Sprintf("%s...%s", address[:startChars], address[len(address)-endChars:])
}
