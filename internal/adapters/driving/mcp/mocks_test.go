package mcp

import (
	"context"

	"github.com/sifria-labs/mafteah-cli/internal/core/domain"
)

// mockSearchService is a mock implementation of driving.SearchService.
type mockSearchService struct {
	resp *domain.SearchResponse
	err  error
	got  domain.SearchRequest
}

func (m *mockSearchService) Search(
	_ context.Context,
	req domain.SearchRequest,
) (*domain.SearchResponse, error) {
	m.got = req
	if m.err != nil {
		return nil, m.err
	}
	if m.resp != nil {
		return m.resp, nil
	}
	return domain.NewSearchResponse(req.Query, 0, 0, nil), nil
}

// mockIndex is a mock implementation of driven.SearchIndex.
type mockIndex struct {
	count    uint64
	countErr error
}

func (m *mockIndex) Execute(
	context.Context,
	domain.Query,
	int,
) (*domain.IndexResult, error) {
	return &domain.IndexResult{}, nil
}

func (m *mockIndex) DocCount() (uint64, error) {
	if m.countErr != nil {
		return 0, m.countErr
	}
	return m.count, nil
}

func (m *mockIndex) Close() error { return nil }
