package service

import (
	"context"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/shopspring/decimal"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 50

	UnknownCreator               = "Unknown"
	UnknownOwner                 = "Unknown"
	UnknownCollectionName        = "Unknown Collection"
	DefaultCollectionDescription = "No description available"
)

type (
	FetchPageRequest struct {
		PageSize  int    `json:"pageSize"`
		PageToken string `json:"pageToken,omitempty"`
		Page      int    `json:"page,omitempty"`
	}

	Page struct {
		Collectibles  []NFT  `json:"collectibles"`
		NextPageToken string `json:"nextPageToken,omitempty"`
		Total         int    `json:"total"`
		Page          int    `json:"page"`
		Limit         int    `json:"limit"`
		HasMore       bool   `json:"hasMore"`
		Error         string `json:"error,omitempty"`
	}
)

type (
	NFT struct {
		ID              string          `json:"id"`
		ContractAddress string          `json:"contractAddress"`
		TokenID         string          `json:"tokenId"`
		Name            string          `json:"name"`
		Description     string          `json:"description"`
		MediaType       string          `json:"mediaType"`
		MediaURL        string          `json:"mediaUrl"`
		ThumbnailURL    string          `json:"thumbnailUrl"`
		ImageURL        string          `json:"imageUrl"`
		Creator         string          `json:"creator"`
		Collection      Collection      `json:"collection"`
		Metadata        map[string]any  `json:"metadata"`
		Price           decimal.Decimal `json:"price"`
		Owner           string          `json:"owner"`
		CreatedAt       time.Time       `json:"createdAt"`
		ErcType         string          `json:"ercType,omitempty"`
	}

	Collection struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		ImageURL    string `json:"imageUrl"`
		Symbol      string `json:"symbol,omitempty"`
	}
)

type HealthResponse struct {
	Status int `json:"status"`
}

func (r *FetchPageRequest) ValidateWithContext(ctx context.Context) error {
	return validation.ValidateStructWithContext(ctx, r,
		validation.Field(&r.PageSize, validation.Min(0), validation.Max(MaxPageSize)),
		validation.Field(&r.Page, validation.Min(0)),
		validation.Field(&r.PageToken, validation.Length(0, 1024)),
	)
}

// normalized applies the default page size and number and caps the size.
func (r *FetchPageRequest) normalized() FetchPageRequest {
	var out FetchPageRequest
	if r != nil {
		out = *r
	}
	if out.PageSize <= 0 {
		out.PageSize = DefaultPageSize
	}
	if out.PageSize > MaxPageSize {
		out.PageSize = MaxPageSize
	}
	if out.Page <= 0 {
		out.Page = 1
	}
	return out
}

// EmptyPage is the result of a page fetch that produced no collectibles.
func EmptyPage(req FetchPageRequest, err error) *Page {
	p := &Page{
		Collectibles: []NFT{},
		Page:         req.Page,
		Limit:        req.PageSize,
	}
	if err != nil {
		p.Error = err.Error()
	}
	return p
}
