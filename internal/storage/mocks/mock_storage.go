package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/alidmz/txndoc-tools/internal/storage"
)

type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) ListObjects(ctx context.Context, prefix string) ([]storage.ObjectInfo, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]storage.ObjectInfo), args.Error(1)
}

func (m *MockObjectStorage) StatObject(ctx context.Context, key string) (storage.ObjectInfo, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(storage.ObjectInfo), args.Error(1)
}

func (m *MockObjectStorage) DownloadObject(ctx context.Context, key, destPath string) error {
	args := m.Called(ctx, key, destPath)
	return args.Error(0)
}

func (m *MockObjectStorage) UploadFile(ctx context.Context, key, srcPath string, metadata map[string]string) error {
	args := m.Called(ctx, key, srcPath, metadata)
	return args.Error(0)
}
