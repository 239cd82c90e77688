// Package buildinfo предоставляет информацию о сборке бинарников модуля:
// версию, дату сборки и commit hash.
package buildinfo

import "fmt"

// Значения подставляются при сборке через -ldflags:
//
//	go build -ldflags "-X .../internal/buildinfo.Version=v1.0.0"
var (
	Version = "N/A"
	Date    = "N/A"
	Commit  = "N/A"
)

// Info содержит информацию о сборке приложения
type Info struct {
	Version string
	Date    string
	Commit  string
}

// Current возвращает информацию о текущей сборке.
func Current() Info {
	return Info{
		Version: Version,
		Date:    Date,
		Commit:  Commit,
	}
}

// String возвращает строковое представление информации о сборке
func (info Info) String() string {
	return fmt.Sprintf("Version: %s, Date: %s, Commit: %s", info.Version, info.Date, info.Commit)
}

// Print выводит информацию о сборке в консоль
func (info Info) Print() {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
