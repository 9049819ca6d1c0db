package service

import (
	"context"
	"net/http"
)

func (s *Service) Health(_ context.Context) (*HealthResponse, error) {
	return &HealthResponse{
		Status: http.StatusOK,
	}, nil
}
