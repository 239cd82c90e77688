// Package response сериализует результаты обработки запроса в единый
// JSON-конверт {"code","status","results"} и записывает его через один
// из поддерживаемых протоколов ответа.
package response

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

const contentTypeJSON = "application/json"

// Envelope — фиксированный трёхполевой JSON-конверт всех ответов.
type Envelope struct {
	Code    int    `json:"code"`
	Status  string `json:"status"`
	Results any    `json:"results"`
}

// NewEnvelope создает конверт, подставляя значения по умолчанию:
// стандартную фразу статуса для кода и пустой объект результатов.
func NewEnvelope(code int, status string, results any) Envelope {
	if status == "" {
		status = http.StatusText(code)
	}
	if results == nil {
		results = map[string]any{}
	}
	return Envelope{
		Code:    code,
		Status:  status,
		Results: results,
	}
}

// Emitter записывает JSON-конверты через обнаруженный протокол ответа.
type Emitter struct {
	logger *zap.Logger
}

// NewEmitter создает новый экземпляр Emitter.
func NewEmitter(logger *zap.Logger) *Emitter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Emitter{logger: logger}
}

// Emit строит конверт и записывает его обработчику в кодировке UTF-8 с
// Content-Type application/json. Возвращает true, если протокол
// обработчика распознан и запись была выполнена; доставку по сети
// гарантирует транспорт, а не эмиттер. При отсутствующем обработчике
// или нулевом коде запись не выполняется и возвращается false.
func (e *Emitter) Emit(handler any, code int, status string, results any) bool {
	if handler == nil || code == 0 {
		return false
	}

	sink, ok := Detect(handler)
	if !ok {
		e.logger.Warn("Unsupported response handler type")
		return false
	}

	envelope := NewEnvelope(code, status, results)
	body, err := json.Marshal(envelope)
	if err != nil {
		// Несериализуемый results — внутренняя ошибка вызывающего кода
		e.logger.Error("Error encoding response envelope", zap.Error(err))
		return false
	}

	sink.SetStatus(code)
	sink.SetHeader("Content-Type", contentTypeJSON)
	if err := sink.WriteBody(body); err != nil {
		e.logger.Error("Error writing response body", zap.Error(err))
	}
	sink.Finish()

	return true
}
