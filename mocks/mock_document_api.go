package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/MateusHenriVieira/intellidocs-frontend/internal/domain"
)

// MockDocumentAPI is a mock implementation of backend.DocumentAPI.
type MockDocumentAPI struct {
	mock.Mock
}

func (m *MockDocumentAPI) Upload(ctx context.Context, token, title, filename string, file io.Reader) (*domain.UploadResult, error) {
	args := m.Called(ctx, token, title, filename, file)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UploadResult), args.Error(1)
}

func (m *MockDocumentAPI) Search(ctx context.Context, token, query string, filters domain.SearchFilters) ([]domain.SearchResult, error) {
	args := m.Called(ctx, token, query, filters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.SearchResult), args.Error(1)
}

func (m *MockDocumentAPI) DocumentTypes(ctx context.Context, token string) ([]string, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockDocumentAPI) DeleteDocument(ctx context.Context, token string, id int64) error {
	args := m.Called(ctx, token, id)
	return args.Error(0)
}

func (m *MockDocumentAPI) Chat(ctx context.Context, token string, id int64, message string) (*domain.ChatReply, error) {
	args := m.Called(ctx, token, id, message)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ChatReply), args.Error(1)
}

func (m *MockDocumentAPI) PageMetadata(ctx context.Context, token string, id int64, page int) ([]domain.OCRWord, error) {
	args := m.Called(ctx, token, id, page)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OCRWord), args.Error(1)
}

func (m *MockDocumentAPI) DocumentLinks(ctx context.Context, token string, id int64) ([]domain.ShareLink, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ShareLink), args.Error(1)
}

func (m *MockDocumentAPI) CreateShareLink(ctx context.Context, token string, id int64, hours int) (*domain.ShareLink, error) {
	args := m.Called(ctx, token, id, hours)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShareLink), args.Error(1)
}

func (m *MockDocumentAPI) PublishDocument(ctx context.Context, token string, id int64) (*domain.ShareLink, error) {
	args := m.Called(ctx, token, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ShareLink), args.Error(1)
}

func (m *MockDocumentAPI) DownloadURL(tenantID, docID int64, page int) string {
	args := m.Called(tenantID, docID, page)
	return args.String(0)
}
