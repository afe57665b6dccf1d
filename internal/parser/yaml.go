package parser

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vovanwin/kvgen/internal/model"
	"github.com/vovanwin/kvgen/internal/schema"
)

// parseYAML разбирает JSON или YAML документ. yaml.Node сохраняет порядок ключей.
func parseYAML(source string, b []byte) (*model.Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(b, &doc); err != nil {
		return nil, schema.Malformed(source, "декодирование", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, schema.Malformed(source, "пустой документ", nil)
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, schema.Malformed(source, "документ должен быть объектом", nil)
	}

	s := &model.Schema{Source: source}
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]
		key := keyNode.Value

		if valNode.Kind != yaml.MappingNode {
			return nil, schema.Malformed(source, fmt.Sprintf("поле %s: объявление должно быть объектом", key), nil)
		}

		var e fieldEntry
		if err := valNode.Decode(&e); err != nil {
			return nil, schema.Malformed(source, fmt.Sprintf("поле %s", key), err)
		}

		s.Fields = append(s.Fields, entryToField(key, e, hasKey(valNode, "default"), hasKey(valNode, "options")))
	}
	return s, nil
}

func hasKey(m *yaml.Node, key string) bool {
	for i := 0; i+1 < len(m.Content); i += 2 {
		if m.Content[i].Value == key {
			return true
		}
	}
	return false
}
