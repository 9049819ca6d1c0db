package handler

import (
	"errors"
	"net/http"
)

func (h *ServiceHandler) Placeholder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := r.URL.Query().Get("id")
	if id == "" {
		h.sendError(ctx, w, http.StatusBadRequest, errors.New("id: cannot be blank"))
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, URLResponse{URL: h.service.GetPlaceholderImage(id)})
}

func (h *ServiceHandler) ResolveIPFS(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	uri := r.URL.Query().Get("uri")
	if uri == "" {
		h.sendError(ctx, w, http.StatusBadRequest, errors.New("uri: cannot be blank"))
		return
	}

	h.sendJSON(ctx, w, http.StatusOK, URLResponse{URL: h.service.ResolveURI(ctx, uri)})
}

func (h *ServiceHandler) VideoMedia(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	mediaType := r.URL.Query().Get("type")
	h.sendJSON(ctx, w, http.StatusOK, VideoMediaResponse{
		MediaType: mediaType,
		IsVideo:   h.service.IsVideoMedia(mediaType),
	})
}
