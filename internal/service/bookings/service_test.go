package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/experience-booking/internal/domain"
	bookingStorage "github.com/m04kA/experience-booking/internal/infra/storage/booking"
	"github.com/m04kA/experience-booking/pkg/logger"
)

type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

func TestService_GetByID(t *testing.T) {
	date, err := domain.ParseDate("2025-10-29")
	require.NoError(t, err)
	code := "ADNAN10"
	createdAt := time.Date(2025, 10, 20, 9, 30, 0, 0, time.UTC)

	repo := &MockBookingRepository{}
	repo.On("GetByID", mock.Anything, "b-1").Return(&domain.Booking{
		ID:           "b-1",
		ExperienceID: "exp-1",
		Date:         date,
		Time:         "10:00 AM",
		Quantity:     2,
		Customer:     domain.Customer{Name: "Adnan", Email: "adnan@example.com"},
		PromoCode:    &code,
		Subtotal:     2400,
		Taxes:        120,
		Discount:     240,
		Total:        2280,
		CreatedAt:    createdAt,
	}, nil)

	resp, err := NewService(repo, logger.NewNop()).GetByID(context.Background(), "b-1")
	require.NoError(t, err)

	assert.Equal(t, "2025-10-29", resp.Date)
	assert.Equal(t, "Adnan", resp.CustomerName)
	assert.Equal(t, "adnan@example.com", resp.CustomerEmail)
	assert.Equal(t, &code, resp.PromoCode)
	assert.Equal(t, 2280.0, resp.Total)
	assert.Equal(t, createdAt, resp.CreatedAt)
	repo.AssertExpectations(t)
}

func TestService_GetByID_Errors(t *testing.T) {
	tests := []struct {
		name    string
		repoErr error
		wantErr error
	}{
		{name: "not found", repoErr: bookingStorage.ErrBookingNotFound, wantErr: ErrBookingNotFound},
		{name: "repository failure", repoErr: errors.New("boom"), wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockBookingRepository{}
			repo.On("GetByID", mock.Anything, "b-1").Return(nil, tt.repoErr)

			resp, err := NewService(repo, logger.NewNop()).GetByID(context.Background(), "b-1")

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
