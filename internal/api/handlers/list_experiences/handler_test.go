package list_experiences

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	listExperiences "github.com/m04kA/experience-booking/internal/usecase/list_experiences"
	"github.com/m04kA/experience-booking/pkg/logger"
)

type MockListExperiencesUseCase struct {
	mock.Mock
}

func (m *MockListExperiencesUseCase) Execute(ctx context.Context) (*listExperiences.Response, error) {
	args := m.Called(ctx)
	resp, _ := args.Get(0).(*listExperiences.Response)
	return resp, args.Error(1)
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name           string
		setup          func(*MockListExperiencesUseCase)
		expectedStatus int
		expectedJSON   string
	}{
		{
			name: "catalog",
			setup: func(uc *MockListExperiencesUseCase) {
				uc.On("Execute", mock.Anything).Return(&listExperiences.Response{Items: []listExperiences.Item{
					{ID: "a", Title: "Highway Delite", PriceFrom: 1200, Thumbnail: "a.jpg", Capacity: 33},
				}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedJSON:   `[{"id":"a","title":"Highway Delite","priceFrom":1200,"thumbnail":"a.jpg","capacity":33}]`,
		},
		{
			name: "empty catalog is an empty array",
			setup: func(uc *MockListExperiencesUseCase) {
				uc.On("Execute", mock.Anything).Return(&listExperiences.Response{Items: []listExperiences.Item{}}, nil)
			},
			expectedStatus: http.StatusOK,
			expectedJSON:   `[]`,
		},
		{
			name: "store failure",
			setup: func(uc *MockListExperiencesUseCase) {
				uc.On("Execute", mock.Anything).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedJSON:   `{"message":"Internal server error"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &MockListExperiencesUseCase{}
			tt.setup(uc)

			w := httptest.NewRecorder()
			NewHandler(uc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/experiences", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedJSON, w.Body.String())
			uc.AssertExpectations(t)
		})
	}
}
