package main

import (
	"fmt"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/alidmz/txndoc-tools/internal/archive"
	"github.com/alidmz/txndoc-tools/internal/config"
	"github.com/alidmz/txndoc-tools/internal/storage"
	"github.com/alidmz/txndoc-tools/pkg/logger"
)

func main() {
	app := &cli.App{
		Name:  "archiver",
		Usage: "Package the previous month's transaction documents into ZIP archives",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "bucket",
				Usage: "Source bucket name (remote mode)",
			},
			&cli.StringFlag{
				Name:  "local-dir",
				Usage: "Local data directory (local mode, for testing without a bucket)",
			},
			&cli.StringFlag{
				Name:     "output",
				Usage:    "Output directory for ZIP files",
				Required: true,
			},
			&cli.BoolFlag{
				Name:  "upload-to-s3",
				Usage: "Upload produced ZIPs back to the bucket under archives/",
			},
			&cli.StringFlag{
				Name:  "date",
				Usage: "Reference date (YYYY-MM-DD) for computing the previous month (default: today)",
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

	bucket := c.String("bucket")
	localDir := c.String("local-dir")
	upload := c.Bool("upload-to-s3")

	if err := validateSourceFlags(bucket, localDir); err != nil {
		return err
	}

	ref, err := resolveReference(c.String("date"))
	if err != nil {
		return err
	}

	var (
		source archive.Source
		store  storage.ObjectStorage
	)
	if bucket != "" {
		if !cfg.MinIO.Configured() {
			return fmt.Errorf("remote mode requires MINIO_ENDPOINT, MINIO_ACCESS_KEY and MINIO_SECRET_KEY")
		}
		client, err := storage.NewMinIOClient(cfg.MinIO, bucket)
		if err != nil {
			return err
		}
		source = archive.NewRemoteSource(client)
		store = client
	} else {
		info, err := os.Stat(localDir)
		if err != nil || !info.IsDir() {
			return fmt.Errorf("local data directory %s does not exist", localDir)
		}
		source = archive.NewLocalSource(localDir)
		if upload {
			logger.Log.Warn().Msg("--upload-to-s3 has no effect in local mode, ignoring")
			upload = false
		}
	}

	archiver := archive.NewArchiver(source, store, c.String("output"))
	_, err = archiver.Run(c.Context, ref, upload)
	return err
}

// validateSourceFlags enforces that exactly one source is selected.
func validateSourceFlags(bucket, localDir string) error {
	if bucket != "" && localDir != "" {
		return fmt.Errorf("cannot specify both --bucket and --local-dir")
	}
	if bucket == "" && localDir == "" {
		return fmt.Errorf("either --bucket or --local-dir must be specified")
	}
	return nil
}

// resolveReference parses the optional --date value, defaulting to today.
// The returned instant is rebased into the source's location later; only
// the wall-clock date matters here.
func resolveReference(value string) (time.Time, error) {
	if value == "" {
		return time.Now(), nil
	}
	ref, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected YYYY-MM-DD", value)
	}
	return ref, nil
}
