package validate_promo

import validatePromo "github.com/m04kA/experience-booking/internal/usecase/validate_promo"

// ValidatePromoRequest HTTP request model
type ValidatePromoRequest struct {
	Code string `json:"code"`
}

// ValidatePromoResponse HTTP response model.
// type и amount присутствуют только для действующего промокода.
type ValidatePromoResponse struct {
	Valid   bool     `json:"valid"`
	Type    *string  `json:"type,omitempty"`
	Amount  *float64 `json:"amount,omitempty"`
	Message string   `json:"message"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP модель
func FromUseCaseResponse(resp *validatePromo.Response) *ValidatePromoResponse {
	out := &ValidatePromoResponse{
		Valid:   resp.Valid,
		Amount:  resp.Amount,
		Message: resp.Message,
	}
	if resp.Type != nil {
		t := string(*resp.Type)
		out.Type = &t
	}
	return out
}
