package pages

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ternarybob/pageobjects/internal/interfaces"
	"github.com/ternarybob/pageobjects/internal/models"
)

// MockElement is a mock implementation of interfaces.Element
type MockElement struct {
	mock.Mock
}

func (m *MockElement) FindElement(ctx context.Context, locator models.Locator) (interfaces.Element, error) {
	args := m.Called(ctx, locator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(interfaces.Element), args.Error(1)
}

func (m *MockElement) FindElements(ctx context.Context, locator models.Locator) ([]interfaces.Element, error) {
	args := m.Called(ctx, locator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]interfaces.Element), args.Error(1)
}

func (m *MockElement) Click(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockElement) Text(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockElement) Attribute(ctx context.Context, name string) (string, error) {
	args := m.Called(ctx, name)
	return args.String(0), args.Error(1)
}

// MockDriver is a mock implementation of interfaces.Driver
type MockDriver struct {
	mock.Mock
}

func (m *MockDriver) FindElement(ctx context.Context, locator models.Locator) (interfaces.Element, error) {
	args := m.Called(ctx, locator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(interfaces.Element), args.Error(1)
}

func (m *MockDriver) FindElements(ctx context.Context, locator models.Locator) ([]interfaces.Element, error) {
	args := m.Called(ctx, locator)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]interfaces.Element), args.Error(1)
}
