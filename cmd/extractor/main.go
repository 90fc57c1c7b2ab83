package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"outletpl/internal/config"
	"outletpl/internal/dataprocessing"
	"outletpl/internal/exporter"
	"outletpl/internal/infrastructure"
	"outletpl/internal/validation"
)

func main() {
	inDir := flag.String("in", "", "input directory for .xlsx files (defaults to the configured input dir)")
	outDir := flag.String("out", "", "output directory for clean files (defaults to the configured output dir)")
	singleFile := flag.String("file", "", "process a single workbook instead of a directory")
	configFile := flag.String("config", "config.yaml", "path to the YAML config file")
	workers := flag.Int("workers", 0, "number of files to process in parallel (defaults to the configured value)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}

	logger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Warn("Failed to initialize logger, using default", "error", err)
		logger = slog.Default()
	}
	defer infrastructure.CloseLogFile()

	if *inDir == "" {
		*inDir = cfg.Processing.InputDir
	}
	if *outDir == "" {
		*outDir = cfg.Processing.OutputDir
	}
	if *workers <= 0 {
		*workers = cfg.Processing.Workers
	}

	validator := validation.NewFileValidator(logger)
	if err := validator.ValidateOutputDirectory(*outDir); err != nil {
		logger.Error("Output directory validation failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	var files []string
	if *singleFile != "" {
		if err := validator.ValidateWorkbookFile(*singleFile); err != nil {
			logger.Error("Input file validation failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		files = []string{*singleFile}
	} else {
		if err := validator.ValidateInputDirectory(*inDir, "*.xlsx"); err != nil {
			logger.Error("Input directory validation failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
		files, err = discoverWorkbooks(*inDir)
		if err != nil {
			logger.Error("Failed to read input directory", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("Starting outlet P&L extraction",
		slog.String("input_dir", *inDir),
		slog.String("output_dir", *outDir),
		slog.Int("files", len(files)),
		slog.Int("workers", *workers))

	if len(files) == 0 {
		logger.Warn("No workbooks found in input directory",
			slog.String("input_dir", *inDir),
			slog.String("pattern", "*.xlsx"))
		fmt.Println("Processing complete: 0 files")
		return
	}

	// The pipeline is a pure function of the file contents, so files can
	// process in parallel without coordination.
	processor := dataprocessing.NewProcessor(logger)
	g, ctx := errgroup.WithContext(context.Background())
	g.SetLimit(*workers)

	failures := make([]bool, len(files))
	for i, path := range files {
		i, path := i, path
		g.Go(func() error {
			fileCtx := infrastructure.WithTraceID(ctx, uuid.NewString())
			if !processOne(fileCtx, logger, processor, path, *outDir) {
				failures[i] = true
			}
			return nil
		})
	}
	g.Wait()

	failed := 0
	for _, f := range failures {
		if f {
			failed++
		}
	}
	logger.Info("Extraction complete",
		slog.Int("processed", len(files)-failed),
		slog.Int("failed", failed))
	fmt.Printf("Processing complete: %d files, %d failed\n", len(files), failed)
	if failed > 0 {
		os.Exit(1)
	}
}

// processOne runs one workbook through the pipeline and writes its output
// artifacts: the result JSON always, the clean CSV and workbook only on
// success. Returns false when processing or any write failed.
func processOne(ctx context.Context, logger *slog.Logger, processor *dataprocessing.Processor, path, outDir string) bool {
	logger.InfoContext(ctx, "Processing workbook", slog.String("file", path))

	result := processor.ProcessFile(ctx, path)

	resultPath, csvPath, workbookPath := outputPaths(outDir, path)
	if err := exporter.WriteResultJSON(resultPath, result); err != nil {
		logger.ErrorContext(ctx, "Failed to write result JSON",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return false
	}

	if !result.Success {
		logger.ErrorContext(ctx, "Workbook processing failed",
			slog.String("file", path),
			slog.String("error", result.Error))
		return false
	}

	if err := exporter.WriteRecordsCSV(csvPath, result.Data); err != nil {
		logger.ErrorContext(ctx, "Failed to write clean CSV",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return false
	}
	if err := exporter.WriteCleanWorkbook(workbookPath, result.Data); err != nil {
		logger.ErrorContext(ctx, "Failed to write clean workbook",
			slog.String("file", path),
			slog.String("error", err.Error()))
		return false
	}

	logger.InfoContext(ctx, "Workbook processed",
		slog.String("file", path),
		slog.Int("outlets", result.OutletsCount),
		slog.String("message", result.Message))
	return true
}

// discoverWorkbooks lists the .xlsx files of a directory in name order,
// skipping Excel's ~$ lock files.
func discoverWorkbooks(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasSuffix(name, ".xlsx") || strings.HasPrefix(name, "~$") {
			continue
		}
		files = append(files, filepath.Join(dir, name))
	}
	sort.Strings(files)
	return files, nil
}

// outputPaths derives the per-file artifact paths from the workbook name.
func outputPaths(outDir, inputPath string) (resultPath, csvPath, workbookPath string) {
	base := strings.TrimSuffix(filepath.Base(inputPath), filepath.Ext(inputPath))
	resultPath = filepath.Join(outDir, base+".result.json")
	csvPath = filepath.Join(outDir, base+"_clean.csv")
	workbookPath = filepath.Join(outDir, base+"_clean.xlsx")
	return resultPath, csvPath, workbookPath
}
