// Package kvconfig содержит базовый контракт для конфигов, сгенерированных kvgen.
//
// Сгенерированный тип хранит типизированные поля и флаги "значение задано явно",
// а функции пакета реализуют общий жизненный цикл: Decode, Encode, Reset и Update.
package kvconfig

import (
	"strings"
	"sync"
)

// Config реализуется каждым сгенерированным типом конфига
type Config interface {
	// Clear сбрасывает все флаги явно заданных значений
	Clear()
	// SetDefaultIfEmpty проставляет дефолты полям, которые не были заданы явно
	SetDefaultIfEmpty()
	// EncodeTo пишет по одной строке key=value на поле в порядке объявления
	EncodeTo(e *Encoder)
	// UpdateConfig применяет одну пару key/value, неизвестный ключ игнорируется
	UpdateConfig(key, value string)
}

// Locker опционально реализуется конфигом, которому нужна синхронизация.
// Функции пакета берут блокировку на время всей операции.
type Locker interface {
	Config
	sync.Locker
}

func lock(c Config) func() {
	l, ok := c.(Locker)
	if !ok {
		return func() {}
	}
	l.Lock()
	return l.Unlock
}

// Encode возвращает текстовое представление конфига
func Encode(c Config) string {
	defer lock(c)()

	e := NewEncoder()
	c.EncodeTo(e)
	return e.Text()
}

// Decode сбрасывает флаги, применяет каждую строку key=value из text и
// проставляет дефолты незаданным полям. Строки без '=' пропускаются.
func Decode(c Config, text string) {
	defer lock(c)()

	c.Clear()
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimLeft(line, whitespace)
		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		c.UpdateConfig(strings.TrimRight(key, whitespace), strings.TrimRight(value, whitespace))
	}
	c.SetDefaultIfEmpty()
}

// Reset возвращает конфиг к дефолтным значениям
func Reset(c Config) {
	defer lock(c)()

	c.Clear()
	c.SetDefaultIfEmpty()
}

// Update применяет одну пару key/value, обрезая пробелы с обеих сторон
func Update(c Config, key, value string) {
	defer lock(c)()

	c.UpdateConfig(strings.TrimSpace(key), strings.TrimSpace(value))
}

// UpdateLine применяет одну строку вида key=value. Строка без '=' игнорируется.
func UpdateLine(c Config, line string) {
	defer lock(c)()

	if key, value, ok := strings.Cut(line, "="); ok {
		c.UpdateConfig(key, value)
	}
}

const whitespace = " \t\n\r\f\v"
