package generator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/vovanwin/kvgen/internal/model"
	"github.com/vovanwin/kvgen/internal/parser"
)

// Options настройки генерации кода
type Options struct {
	OutputDir   string       // Директория для сгенерированных файлов
	PackageName string       // Имя пакета
	Workers     int          // Сколько документов обрабатывать параллельно, 0: GOMAXPROCS
	Logger      *slog.Logger // nil: slog.Default()
}

func (o Options) logger() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// Result итог обработки одного документа схемы
type Result struct {
	Source string // Путь к схеме
	Output string // Путь к сгенерированному файлу, пустой при ошибке
	Err    error
}

// GenerateSource компилирует схему и возвращает отформатированный Go код
func GenerateSource(s *model.Schema, opts Options) ([]byte, error) {
	a, err := compile(s, opts.logger())
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := emit(a, opts.PackageName).Render(&buf); err != nil {
		return nil, fmt.Errorf("%s: форматирование кода: %w", s.Source, err)
	}
	return buf.Bytes(), nil
}

// GenerateFile генерирует <OutputDir>/<base>.kv.go для одной схемы.
// При ошибке файл не создаётся и не изменяется.
func GenerateFile(path string, opts Options) (string, error) {
	s, err := parser.ParseFile(path)
	if err != nil {
		return "", err
	}

	src, err := GenerateSource(s, opts)
	if err != nil {
		return "", err
	}

	outFile := filepath.Join(opts.OutputDir, parser.OutputName(path))
	if err := writeFile(outFile, src); err != nil {
		return "", fmt.Errorf("запись %s: %w", outFile, err)
	}
	return outFile, nil
}

// writeFile пишет во временный файл рядом и переименовывает, чтобы не оставить половину файла
func writeFile(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), ".kvgen-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}

// Generate обрабатывает документы независимо друг от друга: ошибка одного
// не мешает остальным. Results идут в порядке paths, возвращаемая ошибка
// объединяет ошибки всех неудачных документов.
func Generate(ctx context.Context, opts Options, paths []string) ([]Result, error) {
	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("создание директории: %w", err)
	}

	log := opts.logger()
	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	// файлы пишутся в один пакет: совпасть не должны ни имена файлов, ни имена типов
	results := make([]Result, len(paths))
	outputs := make(map[string]string, len(paths))
	types := make(map[string]string, len(paths))
	for i, p := range paths {
		results[i].Source = p
		name := parser.OutputName(p)
		if first, ok := outputs[name]; ok {
			results[i].Err = fmt.Errorf("%s: файл %s уже генерируется из %s", p, name, first)
			continue
		}
		typ := parser.ConfigName(p)
		if first, ok := types[typ]; ok {
			results[i].Err = fmt.Errorf("%s: тип %s уже генерируется из %s", p, typ, first)
			continue
		}
		outputs[name] = p
		types[typ] = p
	}

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)

	for i := range results {
		if results[i].Err != nil {
			continue
		}
		eg.Go(func() error {
			// ошибка документа не отменяет остальные, поэтому наружу отдаём только ctx.Err
			if err := ctx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			out, err := GenerateFile(results[i].Source, opts)
			if err != nil {
				results[i].Err = err
				log.Debug("генерация не удалась", "source", results[i].Source, "err", err)
				return nil
			}
			results[i].Output = out
			log.Debug("файл сгенерирован", "source", results[i].Source, "output", out)
			return nil
		})
	}
	_ = eg.Wait()

	var errs []error
	for _, r := range results {
		if r.Err != nil {
			errs = append(errs, r.Err)
		}
	}
	return results, errors.Join(errs...)
}
