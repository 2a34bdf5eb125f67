package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/chedl98/hyperleaup/pkg/creator"
	"github.com/chedl98/hyperleaup/pkg/frame"
	csvio "github.com/chedl98/hyperleaup/pkg/io/csvio"
	jsonlio "github.com/chedl98/hyperleaup/pkg/io/jsonlio"
	parquetio "github.com/chedl98/hyperleaup/pkg/io/parquetio"
	"github.com/chedl98/hyperleaup/pkg/profile"
)

var (
	version = "0.1.0-dev"
)

func main() {
	showVersion := flag.Bool("version", false, "Print version and exit")
	configPath := flag.String("config", "", "Path to conversion config (TOML/YAML/JSON)")
	flag.Parse()

	if *showVersion {
		fmt.Println("hyperleaup", version)
		return
	}

	if *configPath == "" {
		fmt.Fprintln(os.Stderr, "no config provided; nothing to do. try --config <file> or --version")
		os.Exit(2)
	}

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if cfg.Output.Path == "" {
		fmt.Fprintln(os.Stderr, "config missing output.path")
		os.Exit(2)
	}

	df, err := readInput(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if cfg.Profile {
		pc := profile.NewCollector(df.Schema(), 5)
		pc.ConsumeFrame(df)
		fmt.Fprint(os.Stderr, pc.ReportText())
	}

	c := creator.NewWithNames(df, cfg.Output.Path, cfg.Output.Replace, cfg.Output.Schema, cfg.Output.Table)
	path, err := c.Create()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Println(path)
}

func readInput(cfg *Config) (*frame.Frame, error) {
	switch cfg.Input.Type {
	case "", "csv":
		delim := ','
		if cfg.Input.Delimiter != "" {
			delim = rune(cfg.Input.Delimiter[0])
		}
		rdr, in, err := csvio.Open(cfg.Input.Path, csvio.ReaderOptions{HasHeader: cfg.Input.HasHeader, Delimiter: delim, SampleRows: 100})
		if err != nil {
			return nil, err
		}
		defer func() { _ = in.Close() }()
		schema, _, err := rdr.InferSchema()
		if err != nil {
			return nil, err
		}
		return rdr.ReadAll(schema)
	case "jsonl":
		jr, jf, err := jsonlio.Open(cfg.Input.Path, jsonlio.ReaderOptions{SampleRows: 100})
		if err != nil {
			return nil, err
		}
		defer func() { _ = jf.Close() }()
		schema, err := jr.InferSchema()
		if err != nil {
			return nil, err
		}
		return jr.ReadAll(schema)
	case "parquet":
		return parquetio.ReadAll(context.Background(), cfg.Input.Path)
	default:
		return nil, fmt.Errorf("unsupported input type %q", cfg.Input.Type)
	}
}
