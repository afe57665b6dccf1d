package model

// Kind представляет абстрактный тип поля схемы
type Kind int

const (
	KindString Kind = iota
	KindBool
	KindInt
	KindFloat
	KindDouble
	KindIP
	KindEnum
)

func (k Kind) String() string {
	switch k {
	case KindString:
		return "str"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindDouble:
		return "double"
	case KindIP:
		return "ip"
	case KindEnum:
		return "enum"
	default:
		return "unknown"
	}
}

// kindNames сопоставляет имена типов из схемы с Kind.
// Первым идёт короткое имя, затем длинные синонимы.
var kindNames = map[string]Kind{
	"str":                    KindString,
	"string":                 KindString,
	"bool":                   KindBool,
	"boolean":                KindBool,
	"int":                    KindInt,
	"integer":                KindInt,
	"float":                  KindFloat,
	"double":                 KindDouble,
	"double-precision-float": KindDouble,
	"ip":                     KindIP,
	"ip-address":             KindIP,
	"enum":                   KindEnum,
	"enumeration":            KindEnum,
}

// ParseKind возвращает Kind для имени типа. Пустое имя означает строку.
// Для неизвестного имени возвращается KindString и known == false:
// такое поле ведёт себя как строковое.
func ParseKind(name string) (kind Kind, known bool) {
	if name == "" {
		return KindString, true
	}
	if k, ok := kindNames[name]; ok {
		return k, true
	}
	return KindString, false
}

// Field описывает одно поле схемы
type Field struct {
	Key        string   // Ключ из схемы, он же ключ в строке key=value
	Name       string   // Имя в Go (CamelCase)
	TypeName   string   // Тип как он записан в схеме
	Kind       Kind     // Тип поля
	Default    any      // Дефолт из схемы, nil если не задан
	HasDefault bool     // Был ли дефолт указан явно
	Options    []string // Варианты для enum
	HasOptions bool     // Был ли указан ключ options
}

// Schema представляет один документ схемы. Порядок Fields совпадает с порядком в документе.
type Schema struct {
	Source string // Путь к файлу схемы
	Fields []*Field
}

// Lookup возвращает поле по ключу
func (s *Schema) Lookup(key string) (*Field, bool) {
	for _, f := range s.Fields {
		if f.Key == key {
			return f, true
		}
	}
	return nil, false
}
