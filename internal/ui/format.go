// internal/ui/format.go
package ui

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Formatter печатает числа с разделителями разрядов для выбранной локали
type Formatter struct {
	printer *message.Printer
}

// NewFormatter создаёт форматтер. Неизвестная локаль заменяется английской.
func NewFormatter(locale string) *Formatter {
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.English
	}
	return &Formatter{printer: message.NewPrinter(tag)}
}

// Sprintf форматирует строку по правилам локали
func (f *Formatter) Sprintf(format string, args ...any) string {
	return f.printer.Sprintf(format, args...)
}
