package models

import (
	"time"

	"github.com/m04kA/experience-booking/internal/domain"
)

// CreatePromoRequest запрос на создание (или обновление) промокода
type CreatePromoRequest struct {
	Code   string  `json:"code"`
	Type   string  `json:"type"` // percent | flat
	Amount float64 `json:"amount"`
}

// PromoResponse промокод в формате ответа
type PromoResponse struct {
	Code      string    `json:"code"`
	Type      string    `json:"type"`
	Amount    float64   `json:"amount"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// FromDomainPromo конвертирует domain.Promo в PromoResponse
func FromDomainPromo(p *domain.Promo) *PromoResponse {
	return &PromoResponse{
		Code:      p.Code,
		Type:      string(p.Type),
		Amount:    p.Amount,
		Message:   p.Message(),
		CreatedAt: p.CreatedAt,
	}
}
