package parser

import (
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/vovanwin/kvgen/internal/model"
	"github.com/vovanwin/kvgen/internal/schema"
)

// OutputSuffix суффикс сгенерированного файла
const OutputSuffix = ".kv.go"

// ConfigSuffix суффикс имени сгенерированного типа
const ConfigSuffix = "KVConfig"

// fieldEntry одно объявление поля в документе схемы
type fieldEntry struct {
	Type    string   `yaml:"type" toml:"type"`
	Default any      `yaml:"default" toml:"default"`
	Options []string `yaml:"options" toml:"options"`
}

// ParseFile читает документ схемы. Формат определяется по расширению:
// .toml разбирается как TOML, остальное как JSON/YAML.
func ParseFile(path string) (*model.Schema, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, schema.Malformed(path, "чтение файла", err)
	}
	return Parse(path, b)
}

// Parse разбирает содержимое документа схемы, source используется для выбора формата и в ошибках
func Parse(source string, b []byte) (*model.Schema, error) {
	if strings.EqualFold(filepath.Ext(source), ".toml") {
		return parseTOML(source, b)
	}
	return parseYAML(source, b)
}

func entryToField(key string, e fieldEntry, hasDefault, hasOptions bool) *model.Field {
	kind, _ := model.ParseKind(e.Type)
	return &model.Field{
		Key:        key,
		Name:       ToGoName(key),
		TypeName:   e.Type,
		Kind:       kind,
		Default:    e.Default,
		HasDefault: hasDefault && e.Default != nil,
		Options:    e.Options,
		HasOptions: hasOptions,
	}
}

// ToGoName конвертирует snake_case в CamelCase
func ToGoName(s string) string {
	b := []rune(s)
	out := make([]rune, 0, len(b))
	capNext := true
	for _, r := range b {
		if r == '_' || r == '-' || r == ' ' {
			capNext = true
			continue
		}
		if capNext {
			if 'a' <= r && r <= 'z' {
				r = r - 'a' + 'A'
			}
			capNext = false
		}
		out = append(out, r)
	}
	return string(out)
}

// baseName имя файла без каталога и расширения
func baseName(source string) string {
	base := filepath.Base(source)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// ConfigPrefix возвращает префикс имён для документа: базовое имя файла,
// '.' и '-' считаются разделителями, каждая часть с заглавной буквы
// (my-app.v2.json -> MyAppV2).
func ConfigPrefix(source string) string {
	name := strings.NewReplacer(".", "_", "-", "_").Replace(baseName(source))
	title := cases.Title(language.Und)

	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		b.WriteString(title.String(part))
	}
	return b.String()
}

// ConfigName имя сгенерированного типа (test.json -> TestKVConfig)
func ConfigName(source string) string {
	return ConfigPrefix(source) + ConfigSuffix
}

// OutputName имя сгенерированного файла (test.json -> test.kv.go)
func OutputName(source string) string {
	return baseName(source) + OutputSuffix
}
