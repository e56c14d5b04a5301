package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/TradeUp_Go/internal/domain"
	"github.com/osse101/TradeUp_Go/internal/tradeup"
)

// MockCatalog mocks CatalogReader
type MockCatalog struct {
	mock.Mock
}

func (m *MockCatalog) Len() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockCatalog) ListTradeableIDs() []string {
	args := m.Called()
	return args.Get(0).([]string)
}

func (m *MockCatalog) Get(id string) (*domain.Item, error) {
	args := m.Called(id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockCatalog) GetByName(name string) (*domain.Item, error) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Item), args.Error(1)
}

func (m *MockCatalog) IDsByRarity(r domain.Rarity) []string {
	args := m.Called(r)
	return args.Get(0).([]string)
}

func (m *MockCatalog) Search(substr string) []string {
	args := m.Called(substr)
	return args.Get(0).([]string)
}

func (m *MockCatalog) Collections() []domain.Collection {
	args := m.Called()
	return args.Get(0).([]domain.Collection)
}

// MockAnalyzer mocks Analyzer
type MockAnalyzer struct {
	mock.Mock
}

func (m *MockAnalyzer) Analyze(ctx context.Context, items []*domain.Item) (*tradeup.Report, error) {
	args := m.Called(ctx, items)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tradeup.Report), args.Error(1)
}
