package service

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/vladislavprovich/nft-explorer/pkg/metadata"
	"github.com/vladislavprovich/nft-explorer/pkg/placeholder"
)

const mockContract = "0x8f12d7b9335e460ad8f5e3b47abe89f36f59953f"

var (
	mockAdjectives = []string{"Awesome", "Gorgeous", "Stunning", "Beautiful", "Amazing", "Incredible"}

	mockDescriptions = []string{
		"This is a beautiful mock NFT for testing",
		"Another beautiful mock NFT for testing",
		"Yet another beautiful mock NFT for testing",
		"A stunning NFT created for testing purposes",
		"This NFT was created as a mock for development",
	}
)

// MockNFTs returns count deterministic demo items.
func MockNFTs(count int, ph *placeholder.Generator, now time.Time) []NFT {
	if count <= 0 {
		return []NFT{}
	}
	if ph == nil {
		ph = placeholder.New(placeholder.Config{})
	}

	nfts := make([]NFT, count)
	for i := range nfts {
		image := ph.ForIndex(i)
		nfts[i] = NFT{
			ID:              fmt.Sprintf("mock-%d", i+1),
			ContractAddress: mockContract,
			TokenID:         strconv.Itoa(i + 1),
			Name:            fmt.Sprintf("%s NFT #%d", mockAdjectives[i%len(mockAdjectives)], i+1),
			Description:     mockDescriptions[i%len(mockDescriptions)],
			MediaType:       metadata.DefaultMediaType,
			MediaURL:        image,
			ThumbnailURL:    image,
			ImageURL:        image,
			Creator:         "Mock Creator",
			Collection: Collection{
				Name:        "Mock Collection",
				Description: "A collection of mock NFTs",
				ImageURL:    image,
			},
			Metadata:  map[string]any{},
			Price:     decimal.NewFromFloat(float64(i) + 0.5).Mul(decimal.NewFromFloat(0.5)),
			Owner:     "Anonymous",
			CreatedAt: now,
		}
	}

	return nfts
}

// MockPage wraps MockNFTs in a final page.
func MockPage(count int, ph *placeholder.Generator, now time.Time) *Page {
	nfts := MockNFTs(count, ph, now)
	return &Page{
		Collectibles: nfts,
		Total:        len(nfts),
		Page:         1,
		Limit:        count,
	}
}
