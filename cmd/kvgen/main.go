package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/carlmjohnson/versioninfo"
	cli "github.com/urfave/cli/v2"

	"github.com/vovanwin/kvgen/generator"
)

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "\n✗ Ошибка: %v\n", err)
		os.Exit(1)
	}
}

func newApp(stdout, stderr io.Writer) *cli.App {
	app := cli.NewApp()
	app.Name = "kvgen"
	app.Usage = "генератор типизированных key=value конфигов из схем"
	app.UsageText = "kvgen --output_dir DIR [--package NAME] schema.json [schema.yaml schema.toml ...]"
	app.Version = versioninfo.Short()
	app.Writer = stdout
	app.ErrWriter = stderr

	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "output_dir",
			Aliases: []string{"o"},
			Usage:   "директория для сгенерированных файлов (создаётся при отсутствии)",
		},
		&cli.StringFlag{
			Name:  "package",
			Value: generator.DefaultOptions().Package,
			Usage: "имя пакета сгенерированного кода",
		},
		&cli.IntFlag{
			Name:  "workers",
			Usage: "сколько схем обрабатывать параллельно, 0: по числу CPU",
		},
		// -v занят встроенным --version
		&cli.BoolFlag{
			Name:  "verbose",
			Usage: "подробный лог",
		},
	}
	app.Commands = []*cli.Command{initCmd}
	app.Action = runGenerate

	return app
}

func newLogger(cctx *cli.Context) *slog.Logger {
	level := slog.LevelInfo
	if cctx.Bool("verbose") {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cctx.App.ErrWriter, &slog.HandlerOptions{Level: level}))
}

func runGenerate(cctx *cli.Context) error {
	outDir := cctx.String("output_dir")
	if outDir == "" {
		return errors.New("не указан --output_dir")
	}
	if cctx.NArg() == 0 {
		return errors.New("не указаны файлы схем")
	}

	log := newLogger(cctx)
	results, err := generator.Generate(cctx.Context, generator.Options{
		OutputDir: outDir,
		Package:   cctx.String("package"),
		Workers:   cctx.Int("workers"),
		Logger:    log,
	}, cctx.Args().Slice()...)

	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			log.Error("схема не сгенерирована", "source", r.Source, "err", r.Err)
			continue
		}
		fmt.Fprintf(cctx.App.Writer, "Generated %s\n", r.Output)
	}

	if err != nil {
		if len(results) == 0 {
			return err
		}
		return fmt.Errorf("не сгенерировано схем: %d из %d", failed, len(results))
	}
	return nil
}

var initCmd = &cli.Command{
	Name:      "init",
	Usage:     "создать примеры схем",
	ArgsUsage: "[dir]",
	Action: func(cctx *cli.Context) error {
		dir := "./schemas"
		if cctx.NArg() > 0 {
			dir = cctx.Args().First()
		}
		fmt.Fprintf(cctx.App.Writer, "Создание схем в %s:\n", dir)
		return generator.Init(dir)
	},
}
