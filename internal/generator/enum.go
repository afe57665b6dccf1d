package generator

import (
	"fmt"

	"github.com/vovanwin/kvgen/internal/model"
	"github.com/vovanwin/kvgen/internal/parser"
)

// enumType тип, синтезированный для enum поля
type enumType struct {
	Name    string // <Prefix><Field>Options
	Key     string // Ключ поля, которому принадлежит тип
	Members []enumMember
}

// enumMember одна константа enum, порядковый номер совпадает с индексом в Members
type enumMember struct {
	Name   string // <Prefix><Field><Option>
	Option string // Вариант как он записан в схеме
}

// synthesizeEnum строит enum тип из options поля. Options должны быть уже проверены
// schema.Validate: непустые, уникальные, идентификаторы.
func synthesizeEnum(prefix string, f *model.Field) *enumType {
	base := prefix + f.Name
	e := &enumType{
		Name:    base + "Options",
		Key:     f.Key,
		Members: make([]enumMember, 0, len(f.Options)),
	}
	for _, opt := range f.Options {
		e.Members = append(e.Members, enumMember{
			Name:   base + parser.ToGoName(opt),
			Option: opt,
		})
	}
	return e
}

// member возвращает константу для дефолта. Без дефолта: первый вариант (ноль).
func (e *enumType) member(def any) (enumMember, error) {
	if def == nil {
		return e.Members[0], nil
	}
	for _, m := range e.Members {
		if m.Option == def {
			return m, nil
		}
	}
	return enumMember{}, fmt.Errorf("default %v не входит в options", def)
}
