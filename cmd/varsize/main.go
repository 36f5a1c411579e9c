package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/arloliu/leb128/fixture"
	"github.com/arloliu/leb128/format"
	"github.com/arloliu/leb128/measure"
)

var (
	consoleOutput = os.Stderr
	logger        = log.NewLogfmtLogger(log.NewSyncWriter(consoleOutput))
)

type config struct {
	fixtures    []string
	compression string
	writers     []string
	verify      bool
	logLevel    string
}

func main() {
	var cfg config

	app := kingpin.New(filepath.Base(os.Args[0]), "Measure LEB128, lesqlite and group varint sizes of integer fixtures.").UsageWriter(os.Stdout)
	app.HelpFlag.Short('h')
	app.Arg("fixtures", "Fixture files with one '<tag> <hex>' entry per line.").Required().ExistingFilesVar(&cfg.fixtures)
	app.Flag("compress", "Codec applied to raw and LEB128 streams.").Default("zstd").EnumVar(&cfg.compression, "none", "zstd", "s2", "lz4")
	app.Flag("writer", "Positioned writer strategy to verify with. Repeatable; defaults to all.").EnumsVar(&cfg.writers, "bytewise", "splitcopy", "skewed")
	app.Flag("verify", "Cross-check every encoder, writer and decoder strategy.").Default("true").BoolVar(&cfg.verify)
	app.Flag("log.level", "Only log messages with the given severity or above.").Default("info").EnumVar(&cfg.logLevel, "debug", "info", "warn", "error")

	kingpin.MustParse(app.Parse(os.Args[1:]))

	logger = level.NewFilter(logger, level.Allow(level.ParseDefault(cfg.logLevel, level.InfoValue())))

	os.Exit(checkError(run(cfg, os.Stdout)))
}

func run(cfg config, out io.Writer) error {
	opts, err := runnerOptions(cfg)
	if err != nil {
		return err
	}

	runner, err := measure.NewRunner(opts...)
	if err != nil {
		return err
	}
	level.Debug(logger).Log("msg", "runner configured", "config", runner.Config())

	sets := make([]*fixture.Set, 0, len(cfg.fixtures))
	for _, path := range cfg.fixtures {
		set, err := fixture.Load(path)
		if err != nil {
			return err
		}
		level.Info(logger).Log("msg", "loaded fixture", "path", path, "values", len(set.Values))
		sets = append(sets, set)
	}

	report, err := runner.Run(sets...)
	if err != nil {
		return err
	}

	renderReport(out, report)

	total := report.Total()
	level.Info(logger).Log(
		"msg", "measurement complete",
		"values", total.Count,
		"raw_bytes", total.RawBytes,
		"leb128_bytes", total.LEB128Bytes,
		"verified", cfg.verify,
	)

	return nil
}

func runnerOptions(cfg config) ([]measure.Option, error) {
	compression, ok := format.ParseCompression(cfg.compression)
	if !ok {
		return nil, fmt.Errorf("unknown compression %q", cfg.compression)
	}

	opts := []measure.Option{
		measure.WithCompression(compression),
		measure.WithVerify(cfg.verify),
	}

	if len(cfg.writers) > 0 {
		writers, err := parseWriters(cfg.writers)
		if err != nil {
			return nil, err
		}
		opts = append(opts, measure.WithWriterStrategies(writers...))
	}

	return opts, nil
}

func parseWriters(names []string) ([]format.WriterStrategy, error) {
	writers := make([]format.WriterStrategy, 0, len(names))

next:
	for _, name := range names {
		for _, s := range format.WriterStrategies {
			if strings.EqualFold(s.String(), name) {
				writers = append(writers, s)
				continue next
			}
		}

		return nil, fmt.Errorf("unknown writer strategy %q", name)
	}

	return writers, nil
}

func checkError(err error) int {
	if err == nil {
		return 0
	}

	fmt.Fprintf(os.Stderr, "error: %v\n", err)

	return 1
}
