// Package exclude проверяет списки исключений — предоставленные
// оператором регулярные выражения, которыми отфильтровываются пути
// измерений. Синтаксису входных строк доверять нельзя, поэтому ошибка
// компиляции — это данные результата, а не паника и не error.
package exclude

import (
	"regexp"
	"strings"
)

// Result — результат проверки шаблона или списка шаблонов.
// Для непустого входа заполнено ровно одно из полей Pattern и Err;
// для отсутствующего входа OK=true и оба поля пустые.
type Result struct {
	OK      bool
	Pattern *regexp.Regexp
	Err     string
}

// Compile проверяет один шаблон. Пустой шаблон считается отсутствующим
// и тривиально валидным. Ошибка компиляции никогда не поднимается к
// вызывающему — она возвращается сообщением в Result.
func Compile(pattern string) Result {
	if pattern == "" {
		return Result{OK: true}
	}

	compiled, err := regexp.Compile(pattern)
	if err != nil {
		return Result{Err: "Invalid regex: " + err.Error() + "."}
	}

	return Result{OK: true, Pattern: compiled}
}

// CompileList проверяет список шаблонов, объединяя их в одну
// альтернацию (p1)|(p2)|... — так принадлежность к списку исключений
// дальше проверяется одним вызовом Match вместо N. Пустой список
// тривиально валиден.
func CompileList(patterns []string) Result {
	if len(patterns) == 0 {
		return Result{OK: true}
	}

	combined := "(" + strings.Join(patterns, ")|(") + ")"
	return Compile(combined)
}
