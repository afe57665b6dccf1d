package parser

import (
	"github.com/BurntSushi/toml"

	"github.com/vovanwin/kvgen/internal/model"
	"github.com/vovanwin/kvgen/internal/schema"
)

// parseTOML разбирает TOML документ, где каждое поле является таблицей:
//
//	[port]
//	type = "int"
//	default = 8080
func parseTOML(source string, b []byte) (*model.Schema, error) {
	var root map[string]fieldEntry
	md, err := toml.Decode(string(b), &root)
	if err != nil {
		return nil, schema.Malformed(source, "декодирование toml", err)
	}

	s := &model.Schema{Source: source}
	// MetaData.Keys возвращает ключи в порядке появления в документе
	for _, k := range md.Keys() {
		if len(k) != 1 {
			continue
		}
		key := k[0]
		e := root[key]
		s.Fields = append(s.Fields, entryToField(key, e, md.IsDefined(key, "default"), md.IsDefined(key, "options")))
	}
	return s, nil
}
