package services

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/thomas-vilte/pr-autofill/internal/domain/models"
)

// MockVCSClient is a mock of the VCS provider used by DescriptionService.
type MockVCSClient struct {
	mock.Mock
}

func (m *MockVCSClient) GetPR(ctx context.Context, prNumber int) (models.PRData, error) {
	args := m.Called(ctx, prNumber)
	return args.Get(0).(models.PRData), args.Error(1)
}

func (m *MockVCSClient) ListChangedFiles(ctx context.Context, prNumber int) ([]models.ChangedFile, error) {
	args := m.Called(ctx, prNumber)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.ChangedFile), args.Error(1)
}

func (m *MockVCSClient) UpdatePRBody(ctx context.Context, prNumber int, body string) error {
	args := m.Called(ctx, prNumber, body)
	return args.Error(0)
}

// MockTicketManager is a mock of the issue tracker used by DescriptionService.
type MockTicketManager struct {
	mock.Mock
}

func (m *MockTicketManager) GetTicketInfo(ctx context.Context, key string) (models.TicketInfo, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(models.TicketInfo), args.Error(1)
}

// MockDescriptionGenerator is a mock of the AI provider used by DescriptionService.
type MockDescriptionGenerator struct {
	mock.Mock
}

func (m *MockDescriptionGenerator) GenerateDescription(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}
