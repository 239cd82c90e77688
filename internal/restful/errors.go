package restful

import "errors"

// ErrVersionMismatch возвращается, когда ведущий сегмент пути является
// токеном версии, но не совпадает с поддерживаемой версией API
var ErrVersionMismatch = errors.New("unsupported API version")

// ErrMalformedQuery возвращается, когда query-компонент URL не удаётся
// декодировать
var ErrMalformedQuery = errors.New("malformed query string")
