package service

import (
	"context"
	"log/slog"

	"github.com/vladislavprovich/nft-explorer/internal/worker"
)

// FetchPage lists one page of collectibles and normalizes every item concurrently.
// It never fails: an unreachable indexing API yields an empty page with Error set,
// and an item that cannot be assembled falls back to its minimal form.
func (s *Service) FetchPage(ctx context.Context, req *FetchPageRequest) *Page {
	r := req.normalized()
	s.logger.InfoContext(ctx, "FetchPage",
		slog.Int("pageSize", r.PageSize),
		slog.String("pageToken", r.PageToken),
		slog.Int("page", r.Page),
	)

	clientResp, err := s.client.ListCollectibles(ctx, s.convectorToClient.ConvertToListCollectiblesRequest(r))
	if err != nil {
		s.logger.ErrorContext(ctx, "service client.ListCollectibles", slog.Any("error", err))
		return EmptyPage(r, err)
	}
	if clientResp == nil || len(clientResp.CollectibleBalances) == 0 {
		return EmptyPage(r, nil)
	}

	raw := clientResp.CollectibleBalances
	nfts := worker.Join(ctx, len(raw),
		func(ctx context.Context, i int) (NFT, error) {
			return s.convectorFromClient.ConvertFromCollectible(ctx, raw[i])
		},
		func(i int, err error) NFT {
			s.logger.WarnContext(ctx, "collectible transform failed, using minimal form",
				slog.String("id", ID(raw[i])),
				slog.Any("error", err),
			)
			return s.convectorFromClient.MinimalNFT(raw[i])
		},
		s.metrics,
	)

	return &Page{
		Collectibles:  nfts,
		NextPageToken: clientResp.NextPageToken,
		Total:         len(nfts),
		Page:          r.Page,
		Limit:         r.PageSize,
		HasMore:       clientResp.NextPageToken != "",
	}
}
