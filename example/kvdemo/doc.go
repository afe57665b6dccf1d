// Package kvdemo пример использования kvgen: схемы test.json и limits.json
// и сгенерированные из них конфиги.
package kvdemo

//go:generate go run github.com/vovanwin/kvgen/cmd/kvgen --output_dir . --package kvdemo test.json limits.json
