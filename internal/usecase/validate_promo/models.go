package validate_promo

import "github.com/m04kA/experience-booking/internal/domain"

// MsgInvalidCode сообщение для неизвестного промокода
const MsgInvalidCode = "Invalid promo code"

// Request модель запроса на проверку промокода
type Request struct {
	Code string
}

// Response результат проверки. Type и Amount заполнены только при Valid == true.
type Response struct {
	Valid   bool
	Type    *domain.PromoType
	Amount  *float64
	Message string
}
