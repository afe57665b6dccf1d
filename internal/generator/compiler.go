package generator

import (
	"fmt"
	"go/token"
	"log/slog"

	"github.com/dave/jennifer/jen"

	"github.com/vovanwin/kvgen/internal/model"
	"github.com/vovanwin/kvgen/internal/parser"
	"github.com/vovanwin/kvgen/internal/schema"
)

// artifacts результат компиляции одного документа. Все группы идут в порядке полей схемы.
type artifacts struct {
	Source   string
	TypeName string
	Enums    []*enumType

	Storage  []jen.Code // X int
	Flags    []jen.Code // hasX bool
	Clears   []jen.Code // c.hasX = false
	Defaults []jen.Code // if !c.hasX { c.X = 5 }
	Encodes  []jen.Code // e.Int("x", c.X)
	Decodes  []jen.Code // case "x": ...
}

// compile проверяет схему и строит artifacts. Поля обрабатываются строго по порядку.
func compile(s *model.Schema, log *slog.Logger) (*artifacts, error) {
	if err := schema.Validate(s); err != nil {
		return nil, err
	}

	prefix := parser.ConfigPrefix(s.Source)
	a := &artifacts{
		Source:   s.Source,
		TypeName: prefix + parser.ConfigSuffix,
	}
	if !token.IsIdentifier(a.TypeName) || !token.IsExported(a.TypeName) {
		return nil, schema.Invalid(s.Source, "", fmt.Sprintf("имя типа %q, полученное из имени файла, не является идентификатором Go", a.TypeName))
	}

	names := newNameSet(s.Source)
	if err := names.add("", a.TypeName, "New"+a.TypeName); err != nil {
		return nil, err
	}

	for _, f := range s.Fields {
		if _, known := model.ParseKind(f.TypeName); !known {
			log.Debug("неизвестный тип поля, используется строка", "source", s.Source, "field", f.Key, "type", f.TypeName)
		}

		fc := fieldCtx{Field: f}
		if f.Kind == model.KindEnum {
			fc.Enum = synthesizeEnum(prefix, f)
			if err := names.addEnum(fc.Enum); err != nil {
				return nil, err
			}
			a.Enums = append(a.Enums, fc.Enum)
		}

		spec := lookup(f.Kind)
		def, err := spec.defaultStmt(fc)
		if err != nil {
			return nil, &schema.SchemaError{Source: s.Source, Field: f.Key, Message: "default", Kind: schema.ErrInvalidSchema, Cause: err}
		}

		a.Storage = append(a.Storage, jen.Id(f.Name).Add(spec.Storage(fc)))
		a.Flags = append(a.Flags, jen.Id(flagName(f)).Bool())
		a.Clears = append(a.Clears, fc.flag().Op("=").False())
		a.Defaults = append(a.Defaults, def)
		a.Encodes = append(a.Encodes, spec.encodeStmt(fc))
		a.Decodes = append(a.Decodes, jen.Case(jen.Lit(f.Key)).Block(spec.decodeStmts(fc)...))
	}
	return a, nil
}

// nameSet следит, чтобы идентификаторы уровня пакета внутри одного файла не повторялись
type nameSet struct {
	source string
	seen   map[string]string
}

func newNameSet(source string) *nameSet {
	return &nameSet{source: source, seen: make(map[string]string)}
}

func (n *nameSet) add(field string, names ...string) error {
	for _, name := range names {
		if owner, ok := n.seen[name]; ok {
			msg := fmt.Sprintf("идентификатор %s уже используется", name)
			if owner != "" {
				msg += " полем " + owner
			}
			return schema.Invalid(n.source, field, msg)
		}
		n.seen[name] = field
	}
	return nil
}

func (n *nameSet) addEnum(e *enumType) error {
	if err := n.add(e.Key, e.Name); err != nil {
		return err
	}
	for _, m := range e.Members {
		if err := n.add(e.Key, m.Name); err != nil {
			return err
		}
	}
	return nil
}
