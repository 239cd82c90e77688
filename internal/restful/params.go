// Package restful реализует нормализацию параметров RESTful-запроса:
// разбор URL-строки в канонический упорядоченный набор ключ/значение,
// согласование версии API по ведущему сегменту пути и группировку
// плоского списка сегментов в пары.
package restful

// VersionKey — ключ, под которым в наборе параметров хранится
// согласованная версия API.
const VersionKey = "api_version"

// Param представляет одну пару ключ/значение канонического набора.
type Param struct {
	Key      string
	Value    string
	HasValue bool // false — ключ без значения (нечётный хвост пути)
}

// Params — канонический упорядоченный набор параметров запроса.
// Ключи уникальны и хранятся в порядке первого добавления; повторная
// запись ключа заменяет значение, не меняя позицию. После возврата из
// Parse набор считается неизменяемым и безопасен для конкурентного чтения.
type Params struct {
	pairs []Param
	index map[string]int
}

// NewParams создает пустой набор параметров.
func NewParams() *Params {
	return &Params{
		index: make(map[string]int),
	}
}

// Set записывает значение под ключом, сохраняя позицию существующего ключа.
func (p *Params) Set(key, value string) {
	p.set(Param{Key: key, Value: value, HasValue: true})
}

// SetAbsent записывает ключ с явно отсутствующим значением.
func (p *Params) SetAbsent(key string) {
	p.set(Param{Key: key})
}

func (p *Params) set(pair Param) {
	if i, ok := p.index[pair.Key]; ok {
		p.pairs[i] = pair
		return
	}
	p.index[pair.Key] = len(p.pairs)
	p.pairs = append(p.pairs, pair)
}

// Get возвращает значение ключа. Второй результат false, если ключа нет
// или его значение отсутствует.
func (p *Params) Get(key string) (string, bool) {
	i, ok := p.index[key]
	if !ok || !p.pairs[i].HasValue {
		return "", false
	}
	return p.pairs[i].Value, true
}

// Lookup возвращает пару целиком, включая признак отсутствующего значения.
func (p *Params) Lookup(key string) (Param, bool) {
	i, ok := p.index[key]
	if !ok {
		return Param{}, false
	}
	return p.pairs[i], true
}

// Has сообщает, присутствует ли ключ в наборе.
func (p *Params) Has(key string) bool {
	_, ok := p.index[key]
	return ok
}

// Keys возвращает ключи в порядке добавления.
func (p *Params) Keys() []string {
	keys := make([]string, len(p.pairs))
	for i, pair := range p.pairs {
		keys[i] = pair.Key
	}
	return keys
}

// Len возвращает количество ключей в наборе.
func (p *Params) Len() int {
	return len(p.pairs)
}

// Flatten разворачивает набор обратно в плоскую последовательность:
// ключи и значения чередуются в порядке добавления, отсутствующие
// значения пропускаются. Для набора, построенного PairTokens из
// последовательности чётной длины, Flatten возвращает исходные токены.
func (p *Params) Flatten() []string {
	tokens := make([]string, 0, len(p.pairs)*2)
	for _, pair := range p.pairs {
		tokens = append(tokens, pair.Key)
		if pair.HasValue {
			tokens = append(tokens, pair.Value)
		}
	}
	return tokens
}

// APIVersion возвращает согласованную версию API из набора.
func (p *Params) APIVersion() string {
	version, _ := p.Get(VersionKey)
	return version
}

// PairTokens группирует плоскую упорядоченную последовательность токенов
// в пары ключ/значение: токен с чётным индексом становится ключом,
// следующий за ним — значением. При нечётной длине последний ключ
// получает явно отсутствующее значение, а не отбрасывается. Пустая
// последовательность дает пустой набор. Функция чистая и тотальная.
func PairTokens(tokens []string) *Params {
	params := NewParams()
	for i := 0; i < len(tokens); i += 2 {
		if i+1 < len(tokens) {
			params.Set(tokens[i], tokens[i+1])
		} else {
			params.SetAbsent(tokens[i])
		}
	}
	return params
}
