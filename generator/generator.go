// Package generator генерирует типизированные key=value конфиги из схем.
//
// Пример для go:generate:
//
//	//go:generate go run github.com/vovanwin/kvgen/cmd/kvgen --output_dir . test.json
package generator

import (
	"context"
	"log/slog"

	igen "github.com/vovanwin/kvgen/internal/generator"
)

// Options настройки генерации
type Options struct {
	OutputDir string       // Директория для генерации (default: ./internal/config)
	Package   string       // Имя пакета (default: config)
	Workers   int          // Параллельность, 0: GOMAXPROCS
	Logger    *slog.Logger // nil: slog.Default()
}

// Result итог генерации одного документа
type Result = igen.Result

// DefaultOptions настройки по умолчанию
func DefaultOptions() Options {
	return Options{
		OutputDir: "./internal/config",
		Package:   "config",
	}
}

// Generate генерирует по одному файлу <base>.kv.go на каждую схему.
// Неудачные схемы не мешают остальным, их ошибки объединяются в возвращаемой ошибке.
func Generate(ctx context.Context, opts Options, schemas ...string) ([]Result, error) {
	if opts.OutputDir == "" {
		opts.OutputDir = DefaultOptions().OutputDir
	}
	if opts.Package == "" {
		opts.Package = DefaultOptions().Package
	}

	return igen.Generate(ctx, igen.Options{
		OutputDir:   opts.OutputDir,
		PackageName: opts.Package,
		Workers:     opts.Workers,
		Logger:      opts.Logger,
	}, schemas)
}

// Init создаёт примеры схем в директории
func Init(dir string) error {
	return igen.Init(dir)
}
