package list_experiences

import "errors"

// ErrInternal возвращается при внутренних ошибках usecase
var ErrInternal = errors.New("list_experiences: internal error")
