package kvconfig

import (
	"fmt"
	"strconv"
	"strings"
)

// Encoder собирает строки key=value
type Encoder struct {
	b strings.Builder
}

// NewEncoder создаёт пустой Encoder
func NewEncoder() *Encoder {
	return &Encoder{}
}

func (e *Encoder) line(key, value string) {
	e.b.WriteString(key)
	e.b.WriteByte('=')
	e.b.WriteString(value)
	e.b.WriteByte('\n')
}

func (e *Encoder) String(key, value string) { e.line(key, value) }

func (e *Encoder) Bool(key string, value bool) { e.line(key, strconv.FormatBool(value)) }

func (e *Encoder) Int(key string, value int) { e.line(key, strconv.Itoa(value)) }

func (e *Encoder) Float32(key string, value float32) {
	e.line(key, strconv.FormatFloat(float64(value), 'g', -1, 32))
}

func (e *Encoder) Float64(key string, value float64) {
	e.line(key, strconv.FormatFloat(value, 'g', -1, 64))
}

// Stringer пишет значение в его собственной текстовой форме
func (e *Encoder) Stringer(key string, value fmt.Stringer) { e.line(key, value.String()) }

// Text возвращает накопленный текст
func (e *Encoder) Text() string {
	return e.b.String()
}

// Reset очищает накопленный текст
func (e *Encoder) Reset() {
	e.b.Reset()
}
