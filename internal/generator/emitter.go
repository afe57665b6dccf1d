package generator

import (
	"fmt"
	"path/filepath"

	"github.com/dave/jennifer/jen"
)

// emit собирает artifacts в один файл. Решений о типах здесь нет: только раскладка.
func emit(a *artifacts, pkg string) *jen.File {
	f := jen.NewFile(pkg)
	f.HeaderComment("Code generated by kvgen. DO NOT EDIT.")
	f.HeaderComment("source: " + filepath.Base(a.Source))
	f.ImportName(RuntimePkg, "kvconfig")

	for _, e := range a.Enums {
		emitEnum(f, e)
	}

	t := a.TypeName
	recv := func() *jen.Statement { return jen.Id("c").Op("*").Id(t) }

	f.Comment(fmt.Sprintf("%s конфиг из %s", t, filepath.Base(a.Source)))
	f.Type().Id(t).StructFunc(func(g *jen.Group) {
		for _, s := range a.Storage {
			g.Add(s)
		}
		if len(a.Flags) > 0 {
			g.Line()
		}
		for _, fl := range a.Flags {
			g.Add(fl)
		}
	})

	f.Var().Id("_").Qual(RuntimePkg, "Config").Op("=").Parens(jen.Op("*").Id(t)).Call(jen.Nil())

	f.Comment(fmt.Sprintf("New%s создаёт конфиг с дефолтными значениями", t))
	f.Func().Id("New"+t).Params().Op("*").Id(t).Block(
		jen.Id("c").Op(":=").Op("&").Id(t).Values(),
		jen.Id("c").Dot("SetDefaultIfEmpty").Call(),
		jen.Return(jen.Id("c")),
	)

	f.Comment("Clear сбрасывает флаги явно заданных значений")
	f.Func().Params(recv()).Id("Clear").Params().Block(a.Clears...)

	f.Comment("SetDefaultIfEmpty проставляет дефолты полям, не заданным явно")
	f.Func().Params(recv()).Id("SetDefaultIfEmpty").Params().Block(a.Defaults...)

	f.Comment("EncodeTo пишет поля в формате key=value")
	f.Func().Params(recv()).Id("EncodeTo").Params(
		jen.Id("e").Op("*").Qual(RuntimePkg, "Encoder"),
	).Block(a.Encodes...)

	f.Comment("UpdateConfig применяет одну пару key/value, неизвестный ключ игнорируется")
	f.Func().Params(recv()).Id("UpdateConfig").Params(
		jen.Id("key"), jen.Id("value").String(),
	).Block(
		jen.Switch(jen.Id("key")).Block(a.Decodes...),
	)

	return f
}

func emitEnum(f *jen.File, e *enumType) {
	f.Comment(fmt.Sprintf("%s варианты поля %s", e.Name, e.Key))
	f.Type().Id(e.Name).Int()

	f.Const().DefsFunc(func(g *jen.Group) {
		for i, m := range e.Members {
			if i == 0 {
				g.Id(m.Name).Id(e.Name).Op("=").Iota()
				continue
			}
			g.Id(m.Name)
		}
	})

	f.Func().Params(jen.Id("o").Id(e.Name)).Id("String").Params().String().Block(
		jen.Switch(jen.Id("o")).BlockFunc(func(g *jen.Group) {
			for _, m := range e.Members {
				g.Case(jen.Id(m.Name)).Block(jen.Return(jen.Lit(m.Option)))
			}
		}),
		jen.Return(
			jen.Lit(e.Name+"(").Op("+").Qual("strconv", "Itoa").Call(jen.Id("int").Call(jen.Id("o"))).Op("+").Lit(")"),
		),
	)
}
