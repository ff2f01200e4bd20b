package orders

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-OrderService/internal/domain"
	"github.com/m04kA/SMC-OrderService/internal/service/orders/models"
	"github.com/m04kA/SMC-OrderService/pkg/ptr"
)

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) ListByOwner(ctx context.Context, tgID int64) ([]*domain.Order, error) {
	args := m.Called(ctx, tgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) Upsert(ctx context.Context, order *domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func TestService_ListForUser(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewService(repo)

	now := time.Now()
	repo.On("ListByOwner", mock.Anything, int64(42)).Return([]*domain.Order{
		{
			PublicNo:  "A-0002",
			Item:      "куртка",
			Services:  domain.ServiceList{"wash"},
			Status:    "ready",
			CreatedAt: now,
			UpdatedAt: now,
		},
		{
			PublicNo:  "A-0001",
			Item:      "пальто",
			Services:  domain.ServiceList{"wash", "iron"},
			Status:    "in_progress",
			CreatedAt: now.Add(-time.Hour),
			UpdatedAt: now.Add(-time.Hour),
		},
	}, nil).Once()

	outputs, err := svc.ListForUser(context.Background(), 42)
	require.NoError(t, err)
	require.Len(t, outputs, 2)
	assert.Equal(t, "A-0002", outputs[0].PublicNo)
	assert.Equal(t, []string{"wash", "iron"}, outputs[1].Services)
	repo.AssertExpectations(t)
}

func TestService_ListForUser_Empty(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewService(repo)

	repo.On("ListByOwner", mock.Anything, int64(7)).Return([]*domain.Order{}, nil).Once()

	outputs, err := svc.ListForUser(context.Background(), 7)
	require.NoError(t, err)
	assert.Empty(t, outputs)
}

func TestService_ListForUser_RepoError(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewService(repo)

	repo.On("ListByOwner", mock.Anything, int64(7)).Return(nil, assert.AnError).Once()

	_, err := svc.ListForUser(context.Background(), 7)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestService_Upsert_NormalizesInput(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewService(repo)

	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(o *domain.Order) bool {
		return o.PublicNo == "A-0001" &&
			o.Item == "пальто" &&
			o.Status == "new" &&
			assert.ObjectsAreEqual(domain.ServiceList{"wash", "iron"}, o.Services)
	})).Return(nil).Once()

	order, err := svc.Upsert(context.Background(), &models.UpsertOrderInput{
		PublicNo: "  A-0001 ",
		Item:     " пальто ",
		Status:   "new",
		Services: []string{"  ", "wash", "", "iron"},
		Price:    ptr.To(int64(1500)),
	})
	require.NoError(t, err)
	assert.Equal(t, "A-0001", order.PublicNo)
	assert.Equal(t, int64(1500), ptr.Deref(order.Price))
	repo.AssertExpectations(t)
}

func TestService_Upsert_Validation(t *testing.T) {
	tests := []struct {
		name  string
		input *models.UpsertOrderInput
		field string
	}{
		{
			name:  "пустой public_no",
			input: &models.UpsertOrderInput{PublicNo: "  ", Item: "пальто", Status: "new"},
			field: "public_no",
		},
		{
			name:  "пустой item",
			input: &models.UpsertOrderInput{PublicNo: "A-0001", Item: "", Status: "new"},
			field: "item",
		},
		{
			name:  "пустой status",
			input: &models.UpsertOrderInput{PublicNo: "A-0001", Item: "пальто", Status: " "},
			field: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockOrderRepository)
			svc := NewService(repo)

			_, err := svc.Upsert(context.Background(), tt.input)
			require.ErrorIs(t, err, ErrInvalidInput)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.field, vErr.Field)
			repo.AssertNotCalled(t, "Upsert")
		})
	}
}

func TestService_Upsert_RepoError(t *testing.T) {
	repo := new(MockOrderRepository)
	svc := NewService(repo)

	repo.On("Upsert", mock.Anything, mock.Anything).Return(assert.AnError).Once()

	_, err := svc.Upsert(context.Background(), &models.UpsertOrderInput{
		PublicNo: "A-0001",
		Item:     "пальто",
		Status:   "new",
	})
	assert.ErrorIs(t, err, ErrInternal)
}
