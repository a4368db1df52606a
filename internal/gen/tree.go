package gen

import (
	"fmt"
	"math/rand/v2"
	"os"
	"path/filepath"
	"time"

	"github.com/alidmz/txndoc-tools/internal/config"
	"github.com/alidmz/txndoc-tools/pkg/logger"
)

const (
	// OpeningFolder holds one subfolder per account-opening transaction.
	OpeningFolder = "Opening"
	// CustomerFolder holds loose customer correspondence documents.
	CustomerFolder = "Customer"
)

// openingFileSpecs are the four fixed-role documents every transaction
// folder carries, with their target sizes.
var openingFileSpecs = []struct {
	name string
	size int
}{
	{"IDD.pdf", 620 * 1024},
	{"KYC.pdf", 1300 * 1024},
	{"OPA.xml", 4 * 1024},
	{"PID.pdf", 300 * 1024},
}

const (
	customerFileMinSize = 300 * 1024
	customerFileMaxSize = 1300 * 1024

	// Share of customer documents generated as PDF; the rest are XML.
	customerPDFRatio = 0.7
)

// Builder materializes the Opening and Customer folder hierarchies under a
// root directory, backdating file modification times into the simulation
// window so downstream month selection has something to bite on.
type Builder struct {
	root  string
	cfg   config.GeneratorConfig
	start time.Time
	end   time.Time
}

// NewBuilder creates a Builder whose simulation window ends at now and
// reaches cfg.Months * 30 days into the past.
func NewBuilder(root string, cfg config.GeneratorConfig, now time.Time) *Builder {
	return &Builder{
		root:  root,
		cfg:   cfg,
		start: now.AddDate(0, 0, -cfg.Months*30),
		end:   now,
	}
}

// Window returns the simulation date range.
func (b *Builder) Window() (start, end time.Time) {
	return b.start, b.end
}

// BuildOpening creates cfg.Months * cfg.TransactionsPerMonth transaction
// folders, each holding the four fixed documents. Generated transaction ids
// are pseudo-unique; collisions are accepted for synthetic data.
func (b *Builder) BuildOpening() (int, error) {
	total := b.cfg.Months * b.cfg.TransactionsPerMonth
	logger.Log.Info().Int("transactions", total).Msg("generating Opening folder")

	for i := 0; i < total; i++ {
		txnID := fmt.Sprintf("TXN%06d", 100000+rand.IntN(900000))
		txnDir := filepath.Join(b.root, OpeningFolder, txnID)
		if err := os.MkdirAll(txnDir, 0o755); err != nil {
			return i, fmt.Errorf("create transaction dir %s: %w", txnDir, err)
		}

		stamp := b.randomTimestamp()
		for _, spec := range openingFileSpecs {
			path := filepath.Join(txnDir, spec.name)
			if err := writeDocument(path, spec.size, stamp); err != nil {
				return i, err
			}
		}

		if (i+1)%100 == 0 {
			logger.Log.Info().Int("created", i+1).Int("total", total).Msg("Opening progress")
		}
	}

	logger.Log.Info().Int("transactions", total).Msg("Opening folder complete")
	return total, nil
}

// BuildCustomer creates cfg.Months * cfg.CustomerDocsPerMonth flat files in
// the Customer folder. Each file name encodes a random date within the
// simulation window plus a random 4-digit suffix.
func (b *Builder) BuildCustomer() (int, error) {
	total := b.cfg.Months * b.cfg.CustomerDocsPerMonth
	logger.Log.Info().Int("documents", total).Msg("generating Customer folder")

	customerDir := filepath.Join(b.root, CustomerFolder)
	if err := os.MkdirAll(customerDir, 0o755); err != nil {
		return 0, fmt.Errorf("create customer dir %s: %w", customerDir, err)
	}

	for i := 0; i < total; i++ {
		ext := "pdf"
		if rand.Float64() >= customerPDFRatio {
			ext = "xml"
		}

		stamp := b.randomTimestamp()
		name := fmt.Sprintf("CUST_%s_%04d.%s", stamp.Format("20060102"), 1000+rand.IntN(9000), ext)
		size := customerFileMinSize + rand.IntN(customerFileMaxSize-customerFileMinSize+1)

		if err := writeDocument(filepath.Join(customerDir, name), size, stamp); err != nil {
			return i, err
		}
	}

	logger.Log.Info().Int("documents", total).Msg("Customer folder complete")
	return total, nil
}

// randomTimestamp picks a uniformly random instant inside the window.
func (b *Builder) randomTimestamp() time.Time {
	span := b.end.Unix() - b.start.Unix()
	if span <= 0 {
		return b.start
	}
	return time.Unix(b.start.Unix()+rand.Int64N(span), 0)
}

// writeDocument synthesizes the payload for path by extension, writes it,
// and backdates the file's mtime to stamp.
func writeDocument(path string, size int, stamp time.Time) error {
	var payload []byte
	if filepath.Ext(path) == ".xml" {
		payload = XMLDocument(size)
	} else {
		payload = PDFDocument(size)
	}

	if err := os.WriteFile(path, payload, 0o644); err != nil {
		return fmt.Errorf("write document %s: %w", path, err)
	}
	if err := os.Chtimes(path, stamp, stamp); err != nil {
		return fmt.Errorf("set mtime on %s: %w", path, err)
	}
	return nil
}
