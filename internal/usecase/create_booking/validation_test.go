package create_booking

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/experience-booking/internal/domain"
)

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Request)
		wantErr bool
	}{
		{name: "valid", modify: func(*Request) {}},
		{name: "valid with promo and key", modify: func(r *Request) { r.PromoCode = "adnan10"; r.IdempotencyKey = "k" }},
		{name: "missing experience", modify: func(r *Request) { r.ExperienceID = " " }, wantErr: true},
		{name: "zero date", modify: func(r *Request) { r.Date = time.Time{} }, wantErr: true},
		{name: "blank time", modify: func(r *Request) { r.Time = "" }, wantErr: true},
		{name: "negative quantity", modify: func(r *Request) { r.Quantity = -1 }, wantErr: true},
		{name: "largest quantity", modify: func(r *Request) { r.Quantity = domain.MaxBookingQuantity }},
		{name: "quantity beyond INTEGER range", modify: func(r *Request) { r.Quantity = domain.MaxBookingQuantity + 1 }, wantErr: true},
		{name: "blank name", modify: func(r *Request) { r.CustomerName = "  " }, wantErr: true},
		{name: "name too long", modify: func(r *Request) { r.CustomerName = strings.Repeat("a", 201) }, wantErr: true},
		{name: "cyrillic name within limit", modify: func(r *Request) { r.CustomerName = strings.Repeat("я", 150) }},
		{name: "cyrillic name too long", modify: func(r *Request) { r.CustomerName = strings.Repeat("я", 201) }, wantErr: true},
		{name: "email without at", modify: func(r *Request) { r.CustomerEmail = "adnan.example.com" }, wantErr: true},
		{name: "promo too long", modify: func(r *Request) { r.PromoCode = strings.Repeat("X", 65) }, wantErr: true},
		{name: "key too long", modify: func(r *Request) { r.IdempotencyKey = strings.Repeat("k", 129) }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest(t)
			tt.modify(req)

			err := validateRequest(req)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}
