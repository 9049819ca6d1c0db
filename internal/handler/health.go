package handler

import (
	"net/http"
)

func (h *ServiceHandler) Health(writer http.ResponseWriter, reader *http.Request) {
	ctx := reader.Context()

	resp, err := h.service.Health(ctx)
	if err != nil {
		h.sendError(ctx, writer, http.StatusInternalServerError, err)
		return
	}

	h.sendJSON(ctx, writer, http.StatusOK, resp)
}
