package seed

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/experience-booking/internal/domain"
	"github.com/m04kA/experience-booking/pkg/logger"
)

type MockExperienceRepository struct {
	mock.Mock
}

func (m *MockExperienceRepository) Create(ctx context.Context, exp *domain.Experience) (*domain.Experience, error) {
	args := m.Called(ctx, exp)
	return exp, args.Error(0)
}

func (m *MockExperienceRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return int64(args.Int(0)), args.Error(1)
}

func (m *MockExperienceRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockPromoRepository struct {
	mock.Mock
}

func (m *MockPromoRepository) Upsert(ctx context.Context, p *domain.Promo) (*domain.Promo, error) {
	args := m.Called(ctx, p)
	return p, args.Error(0)
}

func (m *MockPromoRepository) DeleteAll(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return int64(args.Int(0)), args.Error(1)
}

type passThroughTx struct{}

func (passThroughTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestDemoCatalog_IsValid(t *testing.T) {
	experiences, err := DemoExperiences()
	require.NoError(t, err)
	require.Len(t, experiences, 6)

	for _, exp := range experiences {
		assert.NoError(t, exp.Validate(), exp.Title)
		assert.NotEmpty(t, exp.Thumbnail(), exp.Title)
	}
	for _, p := range DemoPromos() {
		assert.NoError(t, p.Validate(), p.Code)
	}

	assert.Equal(t, "Highway Delite", experiences[0].Title)
	assert.Equal(t, 1200.0, experiences[0].Price)
	assert.Equal(t, 33, experiences[0].RemainingCapacity())
}

func TestSeeder_Run_EmptyCatalog(t *testing.T) {
	experiences := &MockExperienceRepository{}
	promos := &MockPromoRepository{}

	promos.On("Upsert", mock.Anything, mock.Anything).Return(nil).Twice()
	experiences.On("Count", mock.Anything).Return(0, nil)
	experiences.On("Create", mock.Anything, mock.Anything).Return(nil).Times(6)

	result, err := NewSeeder(experiences, promos, passThroughTx{}, logger.NewNop()).Run(context.Background(), Options{})
	require.NoError(t, err)

	assert.Equal(t, &Result{ExperiencesCreated: 6, PromosUpserted: 2}, result)
	experiences.AssertExpectations(t)
	promos.AssertExpectations(t)
}

func TestSeeder_Run_SkipsExistingCatalog(t *testing.T) {
	experiences := &MockExperienceRepository{}
	promos := &MockPromoRepository{}

	promos.On("Upsert", mock.Anything, mock.Anything).Return(nil).Twice()
	experiences.On("Count", mock.Anything).Return(6, nil)

	result, err := NewSeeder(experiences, promos, passThroughTx{}, logger.NewNop()).Run(context.Background(), Options{})
	require.NoError(t, err)

	assert.True(t, result.Skipped)
	assert.Zero(t, result.ExperiencesCreated)
	experiences.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	experiences.AssertNotCalled(t, "DeleteAll", mock.Anything)
}

func TestSeeder_Run_Reset(t *testing.T) {
	experiences := &MockExperienceRepository{}
	promos := &MockPromoRepository{}

	experiences.On("DeleteAll", mock.Anything).Return(6, nil)
	promos.On("DeleteAll", mock.Anything).Return(2, nil)
	promos.On("Upsert", mock.Anything, mock.Anything).Return(nil).Twice()
	experiences.On("Count", mock.Anything).Return(0, nil)
	experiences.On("Create", mock.Anything, mock.Anything).Return(nil).Times(6)

	result, err := NewSeeder(experiences, promos, passThroughTx{}, logger.NewNop()).Run(context.Background(), Options{Reset: true})
	require.NoError(t, err)

	assert.Equal(t, 6, result.ExperiencesCreated)
	experiences.AssertExpectations(t)
	promos.AssertExpectations(t)
}

func TestSeeder_Run_StoreFailure(t *testing.T) {
	experiences := &MockExperienceRepository{}
	promos := &MockPromoRepository{}

	promos.On("Upsert", mock.Anything, mock.Anything).Return(errors.New("read-only transaction"))

	result, err := NewSeeder(experiences, promos, passThroughTx{}, logger.NewNop()).Run(context.Background(), Options{})

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrSeed)
}
