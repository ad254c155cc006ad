package promos

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/experience-booking/internal/domain"
	"github.com/m04kA/experience-booking/internal/service/promos/models"
	"github.com/m04kA/experience-booking/pkg/logger"
)

type MockPromoRepository struct {
	mock.Mock
}

func (m *MockPromoRepository) Upsert(ctx context.Context, p *domain.Promo) (*domain.Promo, error) {
	args := m.Called(ctx, p)
	if err := args.Error(1); err != nil {
		return nil, err
	}
	return p, nil
}

func TestService_Create(t *testing.T) {
	repo := &MockPromoRepository{}
	repo.On("Upsert", mock.Anything, mock.MatchedBy(func(p *domain.Promo) bool {
		return p.Code == "SUMMER15" && p.Type == domain.PromoTypePercent && p.Amount == 15
	})).Return(nil, nil)

	resp, err := NewService(repo, logger.NewNop()).Create(context.Background(), &models.CreatePromoRequest{
		Code:   " summer15",
		Type:   "PERCENT",
		Amount: 15,
	})
	require.NoError(t, err)

	assert.Equal(t, "SUMMER15", resp.Code)
	assert.Equal(t, "percent", resp.Type)
	assert.Equal(t, "15% discount applied!", resp.Message)
	repo.AssertExpectations(t)
}

func TestService_Create_Errors(t *testing.T) {
	tests := []struct {
		name    string
		req     models.CreatePromoRequest
		repoErr error
		wantErr error
	}{
		{name: "unknown type", req: models.CreatePromoRequest{Code: "X", Type: "bogo", Amount: 1}, wantErr: ErrInvalidInput},
		{name: "blank code", req: models.CreatePromoRequest{Code: " ", Type: "flat", Amount: 1}, wantErr: ErrInvalidInput},
		{name: "percent over 100", req: models.CreatePromoRequest{Code: "X", Type: "percent", Amount: 150}, wantErr: ErrInvalidInput},
		{name: "zero flat", req: models.CreatePromoRequest{Code: "X", Type: "flat", Amount: 0}, wantErr: ErrInvalidInput},
		{name: "flat with three decimals", req: models.CreatePromoRequest{Code: "X", Type: "flat", Amount: 12.345}, wantErr: ErrInvalidInput},
		{name: "repository failure", req: models.CreatePromoRequest{Code: "X", Type: "flat", Amount: 50}, repoErr: errors.New("boom"), wantErr: ErrInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &MockPromoRepository{}
			if tt.repoErr != nil {
				repo.On("Upsert", mock.Anything, mock.Anything).Return(nil, tt.repoErr)
			}

			resp, err := NewService(repo, logger.NewNop()).Create(context.Background(), &tt.req)

			assert.Nil(t, resp)
			assert.ErrorIs(t, err, tt.wantErr)
			repo.AssertExpectations(t)
		})
	}
}
