package kvconfig

import (
	"strconv"
	"strings"
)

// ParseInt разбирает целое число. Вся строка, кроме окружающих пробелов,
// должна быть числом, иначе ok == false.
func ParseInt(s string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseFloat32 разбирает число одинарной точности
func ParseFloat32(s string) (float32, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 32)
	if err != nil {
		return 0, false
	}
	return float32(v), true
}

// ParseFloat64 разбирает число двойной точности
func ParseFloat64(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ParseBool возвращает true только для "1" и "true"
func ParseBool(s string) bool {
	return s == "1" || s == "true"
}
