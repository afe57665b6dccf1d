package generator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/dave/jennifer/jen"

	"github.com/vovanwin/kvgen/internal/model"
)

// RuntimePkg пакет с базовым контрактом, которому соответствует сгенерированный код
const RuntimePkg = "github.com/vovanwin/kvgen/pkg/kvconfig"

// fieldCtx всё, что нужно registry для генерации кода одного поля
type fieldCtx struct {
	Field *model.Field
	Enum  *enumType // только для KindEnum
}

func (fc fieldCtx) value() *jen.Statement { return jen.Id("c").Dot(fc.Field.Name) }
func (fc fieldCtx) flag() *jen.Statement  { return jen.Id("c").Dot(flagName(fc.Field)) }

func flagName(f *model.Field) string { return "has" + f.Name }

// typeSpec описывает, как тип поля отображается в сгенерированный код
type typeSpec struct {
	// Storage тип поля в структуре
	Storage func(fc fieldCtx) jen.Code
	// Encoder метод kvconfig.Encoder, которым пишется значение
	Encoder string
	// EncodeValue выражение, передаваемое в Encoder
	EncodeValue func(fc fieldCtx) jen.Code
	// Parse функция kvconfig, которая превращает строку в значение.
	// Для AlwaysSets её результат присваивается напрямую,
	// иначе она возвращает (v, ok) и поле меняется только при ok.
	Parse string
	// Convert приводит разобранное значение к типу поля, nil: без приведения
	Convert func(fc fieldCtx, v jen.Code) jen.Code
	// AlwaysSets декодирование всегда помечает поле как заданное явно,
	// даже если строка не распознана (bool: мусор значит false)
	AlwaysSets bool
	// Default литерал дефолта; ошибка, если дефолт нельзя привести к типу
	Default func(fc fieldCtx) (jen.Code, error)
}

var registry = map[model.Kind]typeSpec{
	model.KindString: stringSpec,
	model.KindBool: {
		Storage:     func(fieldCtx) jen.Code { return jen.Bool() },
		Encoder:     "Bool",
		EncodeValue: func(fc fieldCtx) jen.Code { return fc.value() },
		Parse:       "ParseBool",
		AlwaysSets:  true,
		Default: func(fc fieldCtx) (jen.Code, error) {
			return jen.Lit(truthy(fc.Field.Default)), nil
		},
	},
	model.KindInt: {
		Storage:     func(fieldCtx) jen.Code { return jen.Int() },
		Encoder:     "Int",
		EncodeValue: func(fc fieldCtx) jen.Code { return fc.value() },
		Parse:       "ParseInt",
		Default: func(fc fieldCtx) (jen.Code, error) {
			v, err := coerceInt(fc.Field.Default)
			if err != nil {
				return nil, err
			}
			return jen.Lit(v), nil
		},
	},
	model.KindFloat: {
		Storage:     func(fieldCtx) jen.Code { return jen.Float32() },
		Encoder:     "Float32",
		EncodeValue: func(fc fieldCtx) jen.Code { return fc.value() },
		Parse:       "ParseFloat32",
		Default: func(fc fieldCtx) (jen.Code, error) {
			v, err := coerceFloat(fc.Field.Default, math.MaxFloat32)
			if err != nil {
				return nil, err
			}
			return jen.Lit(float32(v)), nil
		},
	},
	model.KindDouble: {
		Storage:     func(fieldCtx) jen.Code { return jen.Float64() },
		Encoder:     "Float64",
		EncodeValue: func(fc fieldCtx) jen.Code { return fc.value() },
		Parse:       "ParseFloat64",
		Default: func(fc fieldCtx) (jen.Code, error) {
			v, err := coerceFloat(fc.Field.Default, math.MaxFloat64)
			if err != nil {
				return nil, err
			}
			return jen.Lit(v), nil
		},
	},
	model.KindIP: {
		Storage:     func(fieldCtx) jen.Code { return jen.Qual(RuntimePkg, "IPAddress") },
		Encoder:     "Stringer",
		EncodeValue: func(fc fieldCtx) jen.Code { return fc.value() },
		Parse:       "ParseIPAddress",
		AlwaysSets:  true,
		Default: func(fc fieldCtx) (jen.Code, error) {
			s := text(fc.Field.Default)
			if s == "" {
				return jen.Qual(RuntimePkg, "IPAddress").Values(), nil
			}
			return jen.Qual(RuntimePkg, "ParseIPAddress").Call(jen.Lit(s)), nil
		},
	},
	model.KindEnum: {
		Storage:     func(fc fieldCtx) jen.Code { return jen.Id(fc.Enum.Name) },
		Encoder:     "Int",
		EncodeValue: func(fc fieldCtx) jen.Code { return jen.Id("int").Call(fc.value()) },
		Parse:       "ParseInt",
		Convert: func(fc fieldCtx, v jen.Code) jen.Code {
			return jen.Id(fc.Enum.Name).Call(v)
		},
		Default: func(fc fieldCtx) (jen.Code, error) {
			m, err := fc.Enum.member(fc.Field.Default)
			if err != nil {
				return nil, err
			}
			return jen.Id(m.Name), nil
		},
	},
}

// stringSpec также используется для неизвестных типов
var stringSpec = typeSpec{
	Storage:     func(fieldCtx) jen.Code { return jen.String() },
	Encoder:     "String",
	EncodeValue: func(fc fieldCtx) jen.Code { return fc.value() },
	AlwaysSets:  true,
	Default: func(fc fieldCtx) (jen.Code, error) {
		return jen.Lit(text(fc.Field.Default)), nil
	},
}

// lookup возвращает описание типа. Для Kind без записи используется строка.
func lookup(k model.Kind) typeSpec {
	if spec, ok := registry[k]; ok {
		return spec
	}
	return stringSpec
}

// encodeStmt e.<Encoder>("key", value)
func (spec typeSpec) encodeStmt(fc fieldCtx) jen.Code {
	return jen.Id("e").Dot(spec.Encoder).Call(jen.Lit(fc.Field.Key), spec.EncodeValue(fc))
}

// decodeStmts тело ветки case для ключа поля
func (spec typeSpec) decodeStmts(fc fieldCtx) []jen.Code {
	convert := spec.Convert
	if convert == nil {
		convert = func(_ fieldCtx, v jen.Code) jen.Code { return v }
	}

	if spec.AlwaysSets {
		var v jen.Code = jen.Id("value")
		if spec.Parse != "" {
			v = jen.Qual(RuntimePkg, spec.Parse).Call(jen.Id("value"))
		}
		return []jen.Code{
			fc.value().Op("=").Add(convert(fc, v)),
			fc.flag().Op("=").True(),
		}
	}

	return []jen.Code{
		jen.If(
			jen.List(jen.Id("v"), jen.Id("ok")).Op(":=").Qual(RuntimePkg, spec.Parse).Call(jen.Id("value")),
			jen.Id("ok"),
		).Block(
			fc.value().Op("=").Add(convert(fc, jen.Id("v"))),
			fc.flag().Op("=").True(),
		),
	}
}

// defaultStmt if !c.hasX { c.X = <default> }
func (spec typeSpec) defaultStmt(fc fieldCtx) (jen.Code, error) {
	def, err := spec.Default(fc)
	if err != nil {
		return nil, err
	}
	return jen.If(jen.Op("!").Add(fc.flag())).Block(
		fc.value().Op("=").Add(def),
	), nil
}

// text приводит дефолт к строке, nil: пустая строка
func text(v any) string {
	switch v := v.(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprint(v)
	}
}

// truthy истинность дефолта: false, 0, "" и пустые коллекции ложны
func truthy(v any) bool {
	switch v := v.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case int:
		return v != 0
	case int64:
		return v != 0
	case uint64:
		return v != 0
	case float64:
		return v != 0
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		return true
	}
}

func coerceInt(v any) (int, error) {
	switch v := v.(type) {
	case nil:
		return 0, nil
	case bool:
		if v {
			return 1, nil
		}
		return 0, nil
	case int:
		return v, nil
	case int64:
		if v > math.MaxInt || v < math.MinInt {
			return 0, fmt.Errorf("default %d не помещается в int", v)
		}
		return int(v), nil
	case uint64:
		if v > math.MaxInt {
			return 0, fmt.Errorf("default %d не помещается в int", v)
		}
		return int(v), nil
	case float64:
		if math.IsNaN(v) || v >= math.MaxInt || v < math.MinInt {
			return 0, fmt.Errorf("default %v не помещается в int", v)
		}
		return int(v), nil
	case string:
		s := strings.TrimSpace(v)
		if n, err := strconv.Atoi(s); err == nil {
			return n, nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("default %q не является числом", v)
		}
		return coerceInt(f)
	default:
		return 0, fmt.Errorf("default типа %T нельзя привести к int", v)
	}
}

func coerceFloat(v any, limit float64) (float64, error) {
	var f float64
	switch v := v.(type) {
	case nil:
		return 0, nil
	case bool:
		if v {
			f = 1
		}
	case int:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint64:
		f = float64(v)
	case float64:
		f = v
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0, fmt.Errorf("default %q не является числом", v)
		}
		f = parsed
	default:
		return 0, fmt.Errorf("default типа %T нельзя привести к числу", v)
	}
	if math.IsNaN(f) || math.Abs(f) > limit {
		return 0, fmt.Errorf("default %v вне диапазона", v)
	}
	return f, nil
}
