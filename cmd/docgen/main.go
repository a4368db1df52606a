package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v2"

	"github.com/alidmz/txndoc-tools/internal/config"
	"github.com/alidmz/txndoc-tools/internal/gen"
	"github.com/alidmz/txndoc-tools/internal/storage"
	"github.com/alidmz/txndoc-tools/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "docgen",
		Usage: "Generate a synthetic transaction-document tree and push it to object storage",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "skip-upload",
				Usage: "Generate local files only, do not sync to the bucket",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	cfg := config.Load()
	logger.SetLevel(cfg.LogLevel)

	skipUpload := c.Bool("skip-upload")

	// Remote settings are validated before any generation work starts.
	var client *storage.MinIOClient
	if !skipUpload {
		if !cfg.MinIO.Configured() {
			return fmt.Errorf("upload requires MINIO_ENDPOINT, MINIO_ACCESS_KEY and MINIO_SECRET_KEY (or pass --skip-upload)")
		}
		var err error
		client, err = storage.NewMinIOClient(cfg.MinIO, cfg.Generator.Bucket)
		if err != nil {
			return err
		}
	}

	stagingDir := cfg.Generator.StagingDir
	logger.Log.Info().
		Str("bucket", cfg.Generator.Bucket).
		Str("staging", stagingDir).
		Int("months", cfg.Generator.Months).
		Msg("generating transaction document structure")

	// Fresh staging tree every run.
	if err := os.RemoveAll(stagingDir); err != nil {
		return fmt.Errorf("clean staging dir %s: %w", stagingDir, err)
	}
	if err := os.MkdirAll(stagingDir, 0o755); err != nil {
		return fmt.Errorf("create staging dir %s: %w", stagingDir, err)
	}

	builder := gen.NewBuilder(stagingDir, cfg.Generator, time.Now())
	windowStart, windowEnd := builder.Window()
	logger.Log.Info().
		Str("from", windowStart.Format("2006-01-02")).
		Str("to", windowEnd.Format("2006-01-02")).
		Msg("simulation window")

	openingCount, err := builder.BuildOpening()
	if err != nil {
		return err
	}
	customerCount, err := builder.BuildCustomer()
	if err != nil {
		return err
	}

	if err := report(stagingDir, openingCount, customerCount); err != nil {
		return err
	}

	if skipUpload {
		logger.Log.Info().Msg("skipping upload, local files are ready")
		return nil
	}

	logger.Log.Info().Str("bucket", cfg.Generator.Bucket).Msg("syncing to object storage")
	result, err := storage.SyncDirectory(c.Context, client, stagingDir)
	if err != nil {
		// Already-generated local files are intentionally left in place.
		return fmt.Errorf("upload failed: %w", err)
	}

	logger.Log.Info().
		Int("files", result.Files).
		Str("bytes", humanize.IBytes(uint64(result.Bytes))).
		Msg("upload complete")
	return nil
}

func report(stagingDir string, openingCount, customerCount int) error {
	openingSize, err := gen.FolderSize(filepath.Join(stagingDir, gen.OpeningFolder))
	if err != nil {
		return fmt.Errorf("measure Opening folder: %w", err)
	}
	customerSize, err := gen.FolderSize(filepath.Join(stagingDir, gen.CustomerFolder))
	if err != nil {
		return fmt.Errorf("measure Customer folder: %w", err)
	}

	logger.Log.Info().
		Int("transactions", openingCount).
		Int("files", openingCount*4).
		Str("size", humanize.IBytes(uint64(openingSize))).
		Msg("Opening folder statistics")
	logger.Log.Info().
		Int("documents", customerCount).
		Str("size", humanize.IBytes(uint64(customerSize))).
		Msg("Customer folder statistics")
	logger.Log.Info().
		Int("total_files", openingCount*4+customerCount).
		Str("total_size", humanize.IBytes(uint64(openingSize+customerSize))).
		Msg("generation statistics")
	return nil
}
