package handler

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/vladislavprovich/nft-explorer/internal/service"
)

// Collectibles answers 200 with a page even when the indexing API failed; the page's
// error field carries the reason.
func (h *ServiceHandler) Collectibles(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	req, err := parseFetchPageRequest(r)
	if err != nil {
		h.logger.WarnContext(ctx, "invalid collectibles query", slog.Any("error", err))
		h.sendError(ctx, w, http.StatusBadRequest, err)
		return
	}

	if err = req.ValidateWithContext(ctx); err != nil {
		h.logger.WarnContext(ctx, "collectibles query validation error", slog.Any("error", err))
		h.sendError(ctx, w, http.StatusBadRequest, err)
		return
	}

	page := h.service.FetchPage(ctx, req)
	h.sendJSON(ctx, w, http.StatusOK, page)
}

func parseFetchPageRequest(r *http.Request) (*service.FetchPageRequest, error) {
	q := r.URL.Query()
	req := &service.FetchPageRequest{PageToken: q.Get("pageToken")}

	var err error
	if v := q.Get("pageSize"); v != "" {
		if req.PageSize, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("pageSize: must be an integer")
		}
	}
	if v := q.Get("page"); v != "" {
		if req.Page, err = strconv.Atoi(v); err != nil {
			return nil, fmt.Errorf("page: must be an integer")
		}
	}

	return req, nil
}
