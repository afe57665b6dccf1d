package generator

import (
	"context"
	"errors"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovanwin/kvgen/internal/model"
	kvparser "github.com/vovanwin/kvgen/internal/parser"
	"github.com/vovanwin/kvgen/internal/schema"
)

const testSchema = `{
  "str_cfg": {"type": "str", "default": "hello"},
  "bool_cfg": {"type": "bool", "default": true},
  "int_cfg": {"type": "int", "default": 42},
  "float_cfg": {"type": "float", "default": 3.5},
  "double_cfg": {"type": "double", "default": 2.5},
  "ip_cfg": {"type": "ip", "default": "127.0.0.1"},
  "enum_cfg": {"type": "enum", "options": ["enum1", "enum2", "enum3"], "default": "enum2"}
}`

func generate(t *testing.T, source, content string) string {
	t.Helper()
	s, err := kvparser.Parse(source, []byte(content))
	require.NoError(t, err)

	src, err := GenerateSource(s, Options{PackageName: "config"})
	require.NoError(t, err)

	_, err = parser.ParseFile(token.NewFileSet(), "out.go", src, parser.ParseComments)
	require.NoError(t, err, "сгенерированный код должен разбираться:\n%s", src)
	return string(src)
}

func generateErr(t *testing.T, source, content string) error {
	t.Helper()
	s, err := kvparser.Parse(source, []byte(content))
	require.NoError(t, err)

	_, err = GenerateSource(s, Options{PackageName: "config"})
	require.Error(t, err)
	return err
}

func TestGenerateSource(t *testing.T) {
	out := generate(t, "test.json", testSchema)

	for _, want := range []string{
		"// Code generated by kvgen. DO NOT EDIT.",
		"package config",
		`"github.com/vovanwin/kvgen/pkg/kvconfig"`,
		`"strconv"`,
		"type TestKVConfig struct {",
		"var _ kvconfig.Config = (*TestKVConfig)(nil)",
		"func NewTestKVConfig() *TestKVConfig {",
		"func (c *TestKVConfig) Clear() {",
		"func (c *TestKVConfig) SetDefaultIfEmpty() {",
		"func (c *TestKVConfig) EncodeTo(e *kvconfig.Encoder) {",
		"func (c *TestKVConfig) UpdateConfig(key, value string) {",

		// enum
		"type TestEnumCfgOptions int",
		"TestEnumCfgEnum1 TestEnumCfgOptions = iota",
		"func (o TestEnumCfgOptions) String() string {",
		`return "enum2"`,

		// clear
		"c.hasStrCfg = false",
		"c.hasEnumCfg = false",

		// defaults
		"if !c.hasStrCfg {",
		`c.StrCfg = "hello"`,
		"c.BoolCfg = true",
		"c.IntCfg = 42",
		"float32(3.5)",
		"c.DoubleCfg = 2.5",
		`c.IpCfg = kvconfig.ParseIPAddress("127.0.0.1")`,
		"c.EnumCfg = TestEnumCfgEnum2",

		// encode
		`e.String("str_cfg", c.StrCfg)`,
		`e.Bool("bool_cfg", c.BoolCfg)`,
		`e.Int("int_cfg", c.IntCfg)`,
		`e.Float32("float_cfg", c.FloatCfg)`,
		`e.Float64("double_cfg", c.DoubleCfg)`,
		`e.Stringer("ip_cfg", c.IpCfg)`,
		`e.Int("enum_cfg", int(c.EnumCfg))`,

		// decode
		"switch key {",
		`case "str_cfg":`,
		"c.StrCfg = value",
		"c.BoolCfg = kvconfig.ParseBool(value)",
		"c.IpCfg = kvconfig.ParseIPAddress(value)",
		"if v, ok := kvconfig.ParseInt(value); ok {",
		"if v, ok := kvconfig.ParseFloat32(value); ok {",
		"if v, ok := kvconfig.ParseFloat64(value); ok {",
		"c.EnumCfg = TestEnumCfgOptions(v)",
	} {
		assert.Contains(t, out, want)
	}
}

func TestGenerateSourceKeepsFieldOrder(t *testing.T) {
	out := generate(t, "test.json", testSchema)

	keys := []string{"str_cfg", "bool_cfg", "int_cfg", "float_cfg", "double_cfg", "ip_cfg", "enum_cfg"}
	needles := map[string]func(key string) string{
		"decode": func(key string) string { return `case "` + key + `":` },
		"encode": func(key string) string { return `("` + key + `", ` },
	}
	for name, needle := range needles {
		prev := -1
		for _, k := range keys {
			idx := strings.Index(out, needle(k))
			require.GreaterOrEqual(t, idx, 0, "%s: %s", name, k)
			assert.Greater(t, idx, prev, "%s: поле %s нарушает порядок", name, k)
			prev = idx
		}
	}
}

func TestGenerateSourceDefaultsWithoutDeclaredDefault(t *testing.T) {
	out := generate(t, "zero.json", `{
  "s": {"type": "str"},
  "b": {"type": "bool"},
  "i": {"type": "int"},
  "ip": {"type": "ip"},
  "mode": {"type": "enum", "options": ["first", "second"]}
}`)

	assert.Contains(t, out, `c.S = ""`)
	assert.Contains(t, out, "c.B = false")
	assert.Contains(t, out, "c.I = 0")
	assert.Contains(t, out, "c.Ip = kvconfig.IPAddress{}")
	assert.Contains(t, out, "c.Mode = ZeroModeFirst")
}

func TestGenerateSourceDefaultCoercion(t *testing.T) {
	out := generate(t, "coerce.json", `{
  "from_string": {"type": "int", "default": "7"},
  "from_float": {"type": "int", "default": 7.9},
  "flag_str": {"type": "bool", "default": "yes"},
  "flag_zero": {"type": "bool", "default": 0},
  "text_num": {"type": "str", "default": 15}
}`)

	assert.Contains(t, out, "c.FromString = 7")
	assert.Contains(t, out, "c.FromFloat = 7")
	assert.Contains(t, out, "c.FlagStr = true")
	assert.Contains(t, out, "c.FlagZero = false")
	assert.Contains(t, out, `c.TextNum = "15"`)
}

func TestUnknownTypeBehavesLikeString(t *testing.T) {
	unknown := generate(t, "u.json", `{"x": {"type": "mystery", "default": "v"}}`)
	str := generate(t, "u.json", `{"x": {"type": "str", "default": "v"}}`)
	missing := generate(t, "u.json", `{"x": {"default": "v"}}`)

	assert.Equal(t, str, unknown)
	assert.Equal(t, str, missing)
}

func TestAlwaysSetsPolicy(t *testing.T) {
	always := map[model.Kind]bool{
		model.KindString: true,
		model.KindBool:   true,
		model.KindIP:     true,
		model.KindInt:    false,
		model.KindFloat:  false,
		model.KindDouble: false,
		model.KindEnum:   false,
	}
	for kind, want := range always {
		assert.Equal(t, want, lookup(kind).AlwaysSets, kind.String())
	}
	assert.True(t, lookup(model.Kind(100)).AlwaysSets, "неизвестный Kind ведёт себя как строка")
}

func TestGenerateSourceEmptySchema(t *testing.T) {
	out := generate(t, "empty.json", `{}`)
	assert.Contains(t, out, "type EmptyKVConfig struct{}")
	assert.NotContains(t, out, `"strconv"`)
}

func TestGenerateSourceErrors(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		content string
		msg     string
	}{
		{"enum without options", "a.json", `{"m": {"type": "enum"}}`, "непустой массив options"},
		{"enum empty options", "a.json", `{"m": {"type": "enum", "options": []}}`, "непустой массив options"},
		{"enum duplicate options", "a.json", `{"m": {"type": "enum", "options": ["x", "x"]}}`, "повторяется"},
		{"enum bad default", "a.json", `{"m": {"type": "enum", "options": ["x"], "default": "y"}}`, "не входит в options"},
		{"options on string", "a.json", `{"m": {"type": "str", "options": ["x"]}}`, "только для enum"},
		{"bad int default", "a.json", `{"n": {"type": "int", "default": "abc"}}`, "не является числом"},
		{"bad float default", "a.json", `{"n": {"type": "float", "default": 1e40}}`, "вне диапазона"},
		{"object default", "a.json", `{"n": {"type": "double", "default": {"a": 1}}}`, "нельзя привести"},
		{"bad type name", "9lives.json", `{"n": {"type": "int"}}`, "имя типа"},
		{"member collision", "a.json", `{"m": {"type": "enum", "options": ["a_b", "aB"]}}`, "уже используется"},
		{"member collision by case", "a.json", `{"m": {"type": "enum", "options": ["a", "A"]}}`, "уже используется"},
		{"enum type collision", "a.json", `{"m": {"type": "enum", "options": ["options"]}}`, "уже используется"},
		{"reserved name", "a.json", `{"encode_to": {"type": "int"}}`, "занято методом"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := generateErr(t, tt.source, tt.content)
			assert.ErrorIs(t, err, schema.ErrInvalidSchema)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestGenerate(t *testing.T) {
	schemas := t.TempDir()
	out := filepath.Join(t.TempDir(), "config")

	good := writeSchema(t, schemas, "test.json", testSchema)
	other := writeSchema(t, schemas, "net.yaml", "addr:\n  type: ip\n")
	broken := writeSchema(t, schemas, "broken.json", `{"x": `)
	invalid := writeSchema(t, schemas, "bad.json", `{"m": {"type": "enum"}}`)

	results, err := Generate(context.Background(), Options{OutputDir: out, PackageName: "config", Workers: 2},
		[]string{good, broken, other, invalid})
	require.Error(t, err)
	assert.ErrorIs(t, err, schema.ErrMalformedSchema)
	assert.ErrorIs(t, err, schema.ErrInvalidSchema)

	require.Len(t, results, 4)
	assert.Equal(t, filepath.Join(out, "test.kv.go"), results[0].Output)
	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.Empty(t, results[1].Output)
	assert.Equal(t, filepath.Join(out, "net.kv.go"), results[2].Output)
	assert.Error(t, results[3].Err)

	content, err := os.ReadFile(results[0].Output)
	require.NoError(t, err)
	assert.Contains(t, string(content), "type TestKVConfig struct")

	entries, err := os.ReadDir(out)
	require.NoError(t, err)
	var names []string
	for _, e := range entries {
		names = append(names, e.Name())
	}
	assert.ElementsMatch(t, []string{"test.kv.go", "net.kv.go"}, names, "для неудачных схем файлы не создаются")
}

func TestGenerateDuplicateOutput(t *testing.T) {
	a := writeSchema(t, t.TempDir(), "cfg.json", `{"x": {"type": "int"}}`)
	b := writeSchema(t, t.TempDir(), "cfg.yaml", "y:\n  type: int\n")

	results, err := Generate(context.Background(), Options{OutputDir: t.TempDir(), PackageName: "config"}, []string{a, b})
	require.Error(t, err)
	assert.NoError(t, results[0].Err)
	assert.Contains(t, results[1].Err.Error(), "уже генерируется")
}

func TestGenerateDuplicateTypeName(t *testing.T) {
	tests := []struct {
		first, second string
		typeName      string
	}{
		{"my-app.json", "my_app.json", "MyAppKVConfig"},
		{"app.json", "App.json", "AppKVConfig"},
		{"app.v2.json", "app-v2.yaml", "AppV2KVConfig"},
	}
	for _, tt := range tests {
		t.Run(tt.second, func(t *testing.T) {
			dir := t.TempDir()
			out := t.TempDir()
			a := writeSchema(t, dir, tt.first, `{"x": {"type": "int"}}`)
			b := writeSchema(t, t.TempDir(), tt.second, `{"y": {"type": "int"}}`)

			results, err := Generate(context.Background(), Options{OutputDir: out, PackageName: "config"}, []string{a, b})
			require.Error(t, err)
			require.NoError(t, results[0].Err)
			require.Error(t, results[1].Err)
			assert.Contains(t, results[1].Err.Error(), "тип "+tt.typeName+" уже генерируется")

			entries, err := os.ReadDir(out)
			require.NoError(t, err)
			require.Len(t, entries, 1, "второй файл с тем же типом не создаётся")
			assert.Equal(t, kvparser.OutputName(tt.first), entries[0].Name())
		})
	}
}

func TestGenerateCanceled(t *testing.T) {
	a := writeSchema(t, t.TempDir(), "cfg.json", `{"x": {"type": "int"}}`)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	results, err := Generate(ctx, Options{OutputDir: t.TempDir(), PackageName: "config"}, []string{a})
	require.Error(t, err)
	assert.True(t, errors.Is(results[0].Err, context.Canceled))
}

func TestGenerateFileKeepsOldOutputOnError(t *testing.T) {
	dir := t.TempDir()
	out := t.TempDir()
	path := writeSchema(t, dir, "cfg.json", `{"x": {"type": "int"}}`)

	outFile, err := GenerateFile(path, Options{OutputDir: out, PackageName: "config"})
	require.NoError(t, err)
	before, err := os.ReadFile(outFile)
	require.NoError(t, err)

	writeSchema(t, dir, "cfg.json", `{"x": {"type": "enum"}}`)
	_, err = GenerateFile(path, Options{OutputDir: out, PackageName: "config"})
	require.Error(t, err)

	after, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestInit(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "schemas")
	require.NoError(t, Init(dir))

	for name := range initFiles {
		path := filepath.Join(dir, name)
		s, err := kvparser.ParseFile(path)
		require.NoError(t, err, name)
		_, err = GenerateSource(s, Options{PackageName: "config"})
		require.NoError(t, err, name)
	}

	// повторный запуск не перезаписывает файлы
	custom := filepath.Join(dir, "server.json")
	require.NoError(t, os.WriteFile(custom, []byte(`{}`), 0o644))
	require.NoError(t, Init(dir))
	b, err := os.ReadFile(custom)
	require.NoError(t, err)
	assert.Equal(t, "{}", string(b))
}

// Закоммиченный пример должен совпадать с тем, что генерируется из его схем
func TestExampleUpToDate(t *testing.T) {
	for _, name := range []string{"test", "limits"} {
		t.Run(name, func(t *testing.T) {
			dir := filepath.Join("..", "..", "example", "kvdemo")
			s, err := kvparser.ParseFile(filepath.Join(dir, name+".json"))
			require.NoError(t, err)

			src, err := GenerateSource(s, Options{PackageName: "kvdemo"})
			require.NoError(t, err)

			committed, err := os.ReadFile(filepath.Join(dir, name+kvparser.OutputSuffix))
			require.NoError(t, err)

			assert.Equal(t, string(committed), string(src), "example/kvdemo устарел, запустите go generate")
		})
	}
}

func writeSchema(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}
