package create_booking

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/experience-booking/internal/domain"
	"github.com/m04kA/experience-booking/internal/service/bookings/models"
	createBooking "github.com/m04kA/experience-booking/internal/usecase/create_booking"
	"github.com/m04kA/experience-booking/pkg/logger"
)

type MockCreateBookingUseCase struct {
	mock.Mock
}

func (m *MockCreateBookingUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*createBooking.Response)
	return resp, args.Error(1)
}

const validBody = `{
	"experienceId": "4b1f7c8e-2f0a-4e55-9a51-0d6c1c0c7a10",
	"date": "2025-10-29",
	"time": "10:00 AM",
	"quantity": 2,
	"customer": {"name": "Adnan", "email": "adnan@example.com"},
	"promoCode": "adnan10"
}`

func confirmedBooking() *domain.Booking {
	date, _ := domain.ParseDate("2025-10-29")
	code := "ADNAN10"
	return &domain.Booking{
		ID:           "9f6f4c1e-7a55-4a38-8d7a-2f6a0f5a1b22",
		ExperienceID: "4b1f7c8e-2f0a-4e55-9a51-0d6c1c0c7a10",
		Date:         date,
		Time:         "10:00 AM",
		Quantity:     2,
		Customer:     domain.Customer{Name: "Adnan", Email: "adnan@example.com"},
		PromoCode:    &code,
		Subtotal:     2400,
		Taxes:        120,
		Discount:     240,
		Total:        2280,
		CreatedAt:    time.Date(2025, 10, 20, 10, 0, 0, 0, time.UTC),
	}
}

func TestHandler_Handle(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		idempotencyKey string
		setup          func(*MockCreateBookingUseCase)
		expectedStatus int
		expectedBody   string
	}{
		{
			name: "created",
			body: validBody,
			setup: func(uc *MockCreateBookingUseCase) {
				uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *createBooking.Request) bool {
					return r.Quantity == 2 && r.PromoCode == "adnan10" && r.Date.Format(domain.DateFormat) == "2025-10-29" &&
						r.CustomerEmail == "adnan@example.com" && r.IdempotencyKey == ""
				})).Return(&createBooking.Response{Booking: confirmedBooking()}, nil)
			},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "idempotent replay",
			body:           validBody,
			idempotencyKey: " order-42 ",
			setup: func(uc *MockCreateBookingUseCase) {
				uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *createBooking.Request) bool {
					return r.IdempotencyKey == "order-42"
				})).Return(&createBooking.Response{Booking: confirmedBooking(), Replayed: true}, nil)
			},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "malformed json",
			body:           `{"experienceId":`,
			setup:          func(*MockCreateBookingUseCase) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   msgInvalidRequestBody,
		},
		{
			name:           "zero quantity",
			body:           strings.Replace(validBody, `"quantity": 2`, `"quantity": 0`, 1),
			setup:          func(*MockCreateBookingUseCase) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "quantity must be greater than 0",
		},
		{
			name:           "quantity above INTEGER range",
			body:           strings.Replace(validBody, `"quantity": 2`, `"quantity": 9223372036854775807`, 1),
			setup:          func(*MockCreateBookingUseCase) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "quantity must be at most 2147483647",
		},
		{
			name:           "bad email",
			body:           strings.Replace(validBody, "adnan@example.com", "adnan", 1),
			setup:          func(*MockCreateBookingUseCase) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   "customer.email must be a valid email",
		},
		{
			name:           "bad date",
			body:           strings.Replace(validBody, "2025-10-29", "29/10/2025", 1),
			setup:          func(*MockCreateBookingUseCase) {},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   msgInvalidDate,
		},
		{
			name: "experience not found",
			body: validBody,
			setup: func(uc *MockCreateBookingUseCase) {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, createBooking.ErrNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   msgExperienceNotFound,
		},
		{
			name: "slot not found",
			body: validBody,
			setup: func(uc *MockCreateBookingUseCase) {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, createBooking.ErrSlotNotFound)
			},
			expectedStatus: http.StatusNotFound,
			expectedBody:   msgSlotNotFound,
		},
		{
			name: "capacity exceeded",
			body: validBody,
			setup: func(uc *MockCreateBookingUseCase) {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, createBooking.ErrCapacityExceeded)
			},
			expectedStatus: http.StatusConflict,
			expectedBody:   msgCapacityExceeded,
		},
		{
			name:           "idempotency key reused for another order",
			body:           validBody,
			idempotencyKey: "order-42",
			setup: func(uc *MockCreateBookingUseCase) {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, createBooking.ErrIdempotencyKeyReused)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			expectedBody:   msgIdempotencyKeyReused,
		},
		{
			name: "usecase validation",
			body: validBody,
			setup: func(uc *MockCreateBookingUseCase) {
				uc.On("Execute", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: customer name is required", createBooking.ErrInvalidInput))
			},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   `{"message":"customer name is required"}`,
		},
		{
			name: "persistence error hides details",
			body: validBody,
			setup: func(uc *MockCreateBookingUseCase) {
				uc.On("Execute", mock.Anything, mock.Anything).
					Return(nil, fmt.Errorf("%w: pq: connection refused", createBooking.ErrPersistence))
			},
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   "Internal server error",
		},
		{
			name: "unexpected error",
			body: validBody,
			setup: func(uc *MockCreateBookingUseCase) {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &MockCreateBookingUseCase{}
			tt.setup(uc)
			h := NewHandler(uc, logger.NewNop())

			req := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(tt.body))
			if tt.idempotencyKey != "" {
				req.Header.Set(HeaderIdempotencyKey, tt.idempotencyKey)
			}
			w := httptest.NewRecorder()

			h.Handle(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, w.Body.String(), strings.Trim(tt.expectedBody, "{}"))
			}
			uc.AssertExpectations(t)
		})
	}
}

func TestHandler_Handle_ResponseShape(t *testing.T) {
	uc := &MockCreateBookingUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(&createBooking.Response{Booking: confirmedBooking()}, nil)

	w := httptest.NewRecorder()
	NewHandler(uc, logger.NewNop()).Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(validBody)))

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Empty(t, w.Header().Get(HeaderIdempotentReplayed))

	var got models.BookingResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "2025-10-29", got.Date)
	assert.Equal(t, "10:00 AM", got.Time)
	assert.Equal(t, "Adnan", got.CustomerName)
	assert.Equal(t, 2400.0, got.Subtotal)
	assert.Equal(t, 120.0, got.Taxes)
	assert.Equal(t, 240.0, got.Discount)
	assert.Equal(t, 2280.0, got.Total)
	require.NotNil(t, got.PromoCode)
	assert.Equal(t, "ADNAN10", *got.PromoCode)
}
