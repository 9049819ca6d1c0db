package handler

import (
	"context"
	"io"
	"log/slog"
	"net/http"

	"github.com/unrolled/render"

	"github.com/vladislavprovich/nft-explorer/internal/service"
)

type Handler interface {
	Collectibles(w http.ResponseWriter, r *http.Request)
	Placeholder(w http.ResponseWriter, r *http.Request)
	ResolveIPFS(w http.ResponseWriter, r *http.Request)
	VideoMedia(w http.ResponseWriter, r *http.Request)
	Health(writer http.ResponseWriter, reader *http.Request)
}

type ServiceHandler struct {
	service service.ExplorerService
	logger  *slog.Logger
	cfg     *Config
	render  *render.Render
}

func NewServiceHandler(srv service.ExplorerService, logger *slog.Logger, cfg *Config, render *render.Render) *ServiceHandler {
	return &ServiceHandler{
		service: srv,
		logger:  logger,
		cfg:     cfg,
		render:  render,
	}
}

type (
	URLResponse struct {
		URL string `json:"url"`
	}

	VideoMediaResponse struct {
		MediaType string `json:"mediaType"`
		IsVideo   bool   `json:"isVideo"`
	}

	ErrorResponse struct {
		Error string `json:"error"`
	}
)

func (h *ServiceHandler) sendJSON(ctx context.Context, w io.Writer, status int, body any) {
	if err := h.render.JSON(w, status, body); err != nil {
		h.logger.ErrorContext(ctx, "render JSON error", slog.Any("error", err))
	}
}

func (h *ServiceHandler) sendError(ctx context.Context, w io.Writer, status int, err error) {
	h.sendJSON(ctx, w, status, ErrorResponse{Error: err.Error()})
}
