package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/unrolled/render"

	"github.com/vladislavprovich/nft-explorer/internal/handler"
	"github.com/vladislavprovich/nft-explorer/internal/service"
	"github.com/vladislavprovich/nft-explorer/pkg/logger"
)

type mockExplorerService struct {
	mock.Mock
}

func (m *mockExplorerService) FetchPage(ctx context.Context, req *service.FetchPageRequest) *service.Page {
	args := m.Called(ctx, req)
	page, _ := args.Get(0).(*service.Page)
	return page
}

func (m *mockExplorerService) GetPlaceholderImage(id string) string {
	return m.Called(id).String(0)
}

func (m *mockExplorerService) IsVideoMedia(mediaType string) bool {
	return m.Called(mediaType).Bool(0)
}

func (m *mockExplorerService) ResolveURI(ctx context.Context, uri string) string {
	return m.Called(ctx, uri).String(0)
}

func (m *mockExplorerService) Health(ctx context.Context) (*service.HealthResponse, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*service.HealthResponse)
	return resp, args.Error(1)
}

func newRouter(srv service.ExplorerService) http.Handler {
	cfg := &handler.Config{
		Port:              "8080",
		Timeout:           5 * time.Second,
		WriteTimeout:      5 * time.Second,
		IdleTimeout:       5 * time.Second,
		HTTPClientTimeout: 5 * time.Second,
		APIVersion:        "v1",
	}
	log := logger.Discard()
	h := handler.NewServiceHandler(srv, log, cfg, render.New())

	return handler.NewRouter(h, log, cfg)
}

func do(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestServiceHandler_Collectibles(t *testing.T) {
	tests := []struct {
		name       string
		target     string
		wantReq    *service.FetchPageRequest
		wantStatus int
	}{
		{
			name:       "defaults",
			target:     "/api/v1/explorer/collectibles",
			wantReq:    &service.FetchPageRequest{},
			wantStatus: http.StatusOK,
		},
		{
			name:       "with token",
			target:     "/api/v1/explorer/collectibles?pageSize=20&page=2&pageToken=abc",
			wantReq:    &service.FetchPageRequest{PageSize: 20, Page: 2, PageToken: "abc"},
			wantStatus: http.StatusOK,
		},
		{
			name:       "page size not a number",
			target:     "/api/v1/explorer/collectibles?pageSize=ten",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "page size too large",
			target:     "/api/v1/explorer/collectibles?pageSize=51",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "negative page",
			target:     "/api/v1/explorer/collectibles?page=-1",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := new(mockExplorerService)
			if tt.wantReq != nil {
				srv.On("FetchPage", mock.Anything, tt.wantReq).Return(&service.Page{
					Collectibles: []service.NFT{{ID: "0xA-1", Name: "One"}},
					Total:        1,
					Page:         1,
					Limit:        10,
				})
			}

			rec := do(t, newRouter(srv), tt.target)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus != http.StatusOK {
				var body handler.ErrorResponse
				require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
				assert.NotEmpty(t, body.Error)
				srv.AssertNotCalled(t, "FetchPage", mock.Anything, mock.Anything)
				return
			}

			var page service.Page
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
			require.Len(t, page.Collectibles, 1)
			assert.Equal(t, "0xA-1", page.Collectibles[0].ID)
			srv.AssertExpectations(t)
		})
	}
}

func TestServiceHandler_Collectibles_UpstreamErrorIsOK(t *testing.T) {
	srv := new(mockExplorerService)
	srv.On("FetchPage", mock.Anything, mock.Anything).Return(&service.Page{
		Collectibles: []service.NFT{},
		Page:         1,
		Limit:        10,
		Error:        "indexer unavailable",
	})

	rec := do(t, newRouter(srv), "/api/v1/explorer/collectibles")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"collectibles":[],"total":0,"page":1,"limit":10,"hasMore":false,"error":"indexer unavailable"}`,
		rec.Body.String())
}

func TestServiceHandler_Placeholder(t *testing.T) {
	srv := new(mockExplorerService)
	srv.On("GetPlaceholderImage", "0xA-1").Return("https://img.test/seed/0xa-1/400/400")
	router := newRouter(srv)

	rec := do(t, router, "/api/v1/explorer/collectibles/placeholder?id=0xA-1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"url":"https://img.test/seed/0xa-1/400/400"}`, rec.Body.String())

	rec = do(t, router, "/api/v1/explorer/collectibles/placeholder")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServiceHandler_ResolveIPFS(t *testing.T) {
	srv := new(mockExplorerService)
	srv.On("ResolveURI", mock.Anything, "ipfs://Qm1").Return("https://dweb.link/ipfs/Qm1")
	router := newRouter(srv)

	rec := do(t, router, "/api/v1/explorer/ipfs/resolve?uri=ipfs://Qm1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"url":"https://dweb.link/ipfs/Qm1"}`, rec.Body.String())

	rec = do(t, router, "/api/v1/explorer/ipfs/resolve")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestServiceHandler_VideoMedia(t *testing.T) {
	srv := new(mockExplorerService)
	srv.On("IsVideoMedia", "video/mp4").Return(true)

	rec := do(t, newRouter(srv), "/api/v1/explorer/media/video?type=video/mp4")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"mediaType":"video/mp4","isVideo":true}`, rec.Body.String())
}

func TestServiceHandler_Health(t *testing.T) {
	srv := new(mockExplorerService)
	srv.On("Health", mock.Anything).Return(&service.HealthResponse{Status: http.StatusOK}, nil).Once()
	srv.On("Health", mock.Anything).Return(nil, errors.New("down")).Once()
	router := newRouter(srv)

	rec := do(t, router, "/health")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":200}`, rec.Body.String())

	rec = do(t, router, "/api/v1/explorer/health")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestConfig_ValidateWithContext(t *testing.T) {
	valid := handler.Config{
		Port:              "8080",
		Timeout:           time.Second,
		WriteTimeout:      time.Second,
		IdleTimeout:       time.Second,
		HTTPClientTimeout: time.Second,
		APIVersion:        "v1",
	}
	assert.NoError(t, valid.ValidateWithContext(context.Background()))

	invalid := valid
	invalid.Port = ""
	assert.Error(t, invalid.ValidateWithContext(context.Background()))
}
