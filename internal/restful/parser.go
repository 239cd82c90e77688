package restful

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/InQaaaaGit/attest_api.git/internal/config"
	"go.uber.org/zap"
)

// Parser разбирает URL-строки запросов в канонические наборы параметров.
// Все операции чистые и не имеют состояния, кроме неизменяемой
// конфигурации, поэтому один Parser безопасно использовать из
// нескольких горутин.
type Parser struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewParser создает новый экземпляр Parser.
func NewParser(cfg *config.Config, logger *zap.Logger) *Parser {
	if cfg == nil {
		cfg = config.Default()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{
		cfg:    cfg,
		logger: logger,
	}
}

// Parse разбирает URL или путь с query-компонентом в канонический набор
// параметров:
//
//	[/]v<цифра>/seg1/val1/seg2/val2[?q1=v1&q2=v2]
//
// Сегменты пути группируются в пары слева направо, query-параметры
// накладываются поверх (при совпадении ключей побеждает query),
// согласованная версия записывается под ключом api_version.
//
// При токене версии с неподдерживаемой версией возвращается
// ErrVersionMismatch, при недекодируемом query — ErrMalformedQuery;
// частичный результат в обоих случаях не возвращается.
func (p *Parser) Parse(rawURL string) (*Params, error) {
	trimmed := strings.Trim(rawURL, "/")
	path, query, _ := strings.Cut(trimmed, "?")

	var segments []string
	if path != "" {
		segments = strings.Split(path, "/")
	}

	// Если первый сегмент — токен версии, он должен совпадать с
	// поддерживаемой версией и изымается из пути
	version := p.cfg.APIVersion
	if len(segments) > 0 && isVersionToken(segments[0]) {
		negotiated, err := p.negotiateVersion(segments[0])
		if err != nil {
			return nil, err
		}
		version = negotiated
		segments = segments[1:]
	}

	params := PairTokens(segments)

	queryPairs, err := parseQuery(query)
	if err != nil {
		return nil, err
	}
	for _, pair := range queryPairs {
		params.Set(pair.key, pair.value)
	}

	params.Set(VersionKey, version)
	return params, nil
}

// isVersionToken сообщает, выглядит ли сегмент как токен версии API:
// ровно два символа, первый — 'v'. Двухсимвольный сегмент данных,
// начинающийся с 'v', но не являющийся версией (например "vx"),
// неотличим от токена и будет отвергнут — это принятое ограничение
// формата URL.
func isVersionToken(segment string) bool {
	return len(segment) == 2 && segment[0] == 'v'
}

// negotiateVersion проверяет токен версии против текущей версии API.
func (p *Parser) negotiateVersion(token string) (string, error) {
	if token[1:] != p.cfg.APIVersion {
		p.logger.Debug("Rejected API version token",
			zap.String("token", token),
			zap.String("supported", p.cfg.APIVersion))
		return "", fmt.Errorf("%w: requested %q, supported v%s", ErrVersionMismatch, token, p.cfg.APIVersion)
	}
	return token[1:], nil
}

type queryPair struct {
	key   string
	value string
}

// parseQuery декодирует query-компонент в упорядоченный список пар
// key=value с процентным декодированием. Пары без '=' и пары с пустым
// значением отбрасываются; недекодируемая escape-последовательность —
// жёсткая ошибка ErrMalformedQuery.
func parseQuery(query string) ([]queryPair, error) {
	if query == "" {
		return nil, nil
	}

	var pairs []queryPair
	for _, field := range strings.Split(query, "&") {
		if field == "" {
			continue
		}
		rawKey, rawValue, found := strings.Cut(field, "=")
		if !found || rawValue == "" {
			continue
		}

		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedQuery, err)
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMalformedQuery, err)
		}

		pairs = append(pairs, queryPair{key: key, value: value})
	}
	return pairs, nil
}
