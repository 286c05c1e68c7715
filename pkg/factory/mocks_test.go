package factory_test

import (
	"github.com/stretchr/testify/mock"
)

// MockLocator is a mock implementation of factory.Locator.
type MockLocator struct {
	mock.Mock
}

func (m *MockLocator) Resolve(key string) (any, error) {
	args := m.Called(key)
	return args.Get(0), args.Error(1)
}

// MockRegistry also reports key presence like container.Registry.
type MockRegistry struct {
	MockLocator
}

func (m *MockRegistry) Has(key string) bool {
	args := m.Called(key)
	return args.Bool(0)
}
