package schema

import (
	"fmt"
	"go/token"
	"regexp"

	"github.com/vovanwin/kvgen/internal/model"
)

var (
	keyRe    = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*$`)
	optionRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)
)

// ReservedNames имена методов сгенерированного типа, которые не может занять поле
var ReservedNames = map[string]bool{
	"Clear":             true,
	"SetDefaultIfEmpty": true,
	"EncodeTo":          true,
	"UpdateConfig":      true,
}

// Validate проверяет документ схемы: ключи, имена в Go, правила enum.
// Возвращает первую найденную ошибку.
func Validate(s *model.Schema) error {
	keys := make(map[string]bool, len(s.Fields))
	names := make(map[string]string, len(s.Fields))

	for _, f := range s.Fields {
		if !keyRe.MatchString(f.Key) {
			return Invalid(s.Source, f.Key, "ключ должен быть идентификатором")
		}
		if keys[f.Key] {
			return Invalid(s.Source, f.Key, "ключ повторяется")
		}
		keys[f.Key] = true

		if !token.IsIdentifier(f.Name) || !token.IsExported(f.Name) {
			return Invalid(s.Source, f.Key, fmt.Sprintf("имя %q не является экспортируемым идентификатором Go", f.Name))
		}
		if ReservedNames[f.Name] {
			return Invalid(s.Source, f.Key, fmt.Sprintf("имя %q занято методом конфига", f.Name))
		}
		if other, ok := names[f.Name]; ok {
			return Invalid(s.Source, f.Key, fmt.Sprintf("имя %q совпадает с полем %s", f.Name, other))
		}
		names[f.Name] = f.Key

		if err := validateOptions(s.Source, f); err != nil {
			return err
		}
	}
	return nil
}

func validateOptions(source string, f *model.Field) error {
	if f.Kind != model.KindEnum {
		if f.HasOptions {
			return Invalid(source, f.Key, "options допустимы только для enum")
		}
		return nil
	}

	if len(f.Options) == 0 {
		return Invalid(source, f.Key, "enum требует непустой массив options")
	}
	seen := make(map[string]bool, len(f.Options))
	for _, opt := range f.Options {
		if !optionRe.MatchString(opt) {
			return Invalid(source, f.Key, fmt.Sprintf("вариант %q не является идентификатором", opt))
		}
		if seen[opt] {
			return Invalid(source, f.Key, fmt.Sprintf("вариант %q повторяется", opt))
		}
		seen[opt] = true
	}

	if !f.HasDefault {
		return nil
	}
	def, ok := f.Default.(string)
	if !ok || !seen[def] {
		return Invalid(source, f.Key, fmt.Sprintf("default %v не входит в options", f.Default))
	}
	return nil
}
