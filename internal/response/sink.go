package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Sink — абстракция протокола записи ответа. Эмиттер зависит только от
// неё; конкретные адаптеры приводят к ней низкоуровневый
// http.ResponseWriter и фреймворковый gin.Context.
type Sink interface {
	// SetStatus задает HTTP-статус ответа
	SetStatus(code int)
	// SetHeader задает заголовок ответа
	SetHeader(name, value string)
	// WriteBody записывает тело ответа
	WriteBody(body []byte) error
	// Finish завершает ответ
	Finish()
}

// Detect распознает протокол обработчика и возвращает адаптер для него.
// Неизвестный тип обработчика — не ошибка и не паника: второй результат
// false, и записи не происходит.
func Detect(handler any) (Sink, bool) {
	switch h := handler.(type) {
	case Sink:
		return h, true
	case *gin.Context:
		return NewGinSink(h), true
	case http.ResponseWriter:
		return NewWriterSink(h), true
	default:
		return nil, false
	}
}

// writerSink пишет ответ через низкоуровневый протокол
// http.ResponseWriter: статусная строка и заголовки уходят при первой
// записи тела.
type writerSink struct {
	w           http.ResponseWriter
	status      int
	wroteHeader bool
}

// NewWriterSink создает Sink поверх http.ResponseWriter.
func NewWriterSink(w http.ResponseWriter) Sink {
	return &writerSink{w: w, status: http.StatusOK}
}

func (s *writerSink) SetStatus(code int) {
	s.status = code
}

func (s *writerSink) SetHeader(name, value string) {
	s.w.Header().Set(name, value)
}

func (s *writerSink) WriteBody(body []byte) error {
	if !s.wroteHeader {
		s.w.WriteHeader(s.status)
		s.wroteHeader = true
	}
	_, err := s.w.Write(body)
	return err
}

func (s *writerSink) Finish() {
	if flusher, ok := s.w.(http.Flusher); ok {
		flusher.Flush()
	}
}

// ginSink пишет ответ через фреймворковый протокол gin.Context:
// отдельные вызовы статуса, заголовков, тела и явное завершение.
type ginSink struct {
	c *gin.Context
}

// NewGinSink создает Sink поверх gin.Context.
func NewGinSink(c *gin.Context) Sink {
	return &ginSink{c: c}
}

func (s *ginSink) SetStatus(code int) {
	s.c.Status(code)
}

func (s *ginSink) SetHeader(name, value string) {
	s.c.Header(name, value)
}

func (s *ginSink) WriteBody(body []byte) error {
	_, err := s.c.Writer.Write(body)
	return err
}

func (s *ginSink) Finish() {
	s.c.Writer.Flush()
}
