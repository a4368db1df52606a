package gen

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alidmz/txndoc-tools/internal/config"
)

func testConfig() config.GeneratorConfig {
	return config.GeneratorConfig{
		Months:               1,
		TransactionsPerMonth: 3,
		CustomerDocsPerMonth: 5,
	}
}

func TestBuildOpening(t *testing.T) {
	root := t.TempDir()
	now := time.Now()
	builder := NewBuilder(root, testConfig(), now)

	count, err := builder.BuildOpening()
	require.NoError(t, err)
	assert.Equal(t, 3, count)

	entries, err := os.ReadDir(filepath.Join(root, OpeningFolder))
	require.NoError(t, err)
	// Id collisions can fold transactions together; never more than requested.
	assert.NotEmpty(t, entries)
	assert.LessOrEqual(t, len(entries), 3)

	txnPattern := regexp.MustCompile(`^TXN\d{6}$`)
	windowStart, windowEnd := builder.Window()
	for _, entry := range entries {
		assert.Regexp(t, txnPattern, entry.Name())

		for _, spec := range openingFileSpecs {
			path := filepath.Join(root, OpeningFolder, entry.Name(), spec.name)
			info, err := os.Stat(path)
			require.NoError(t, err, "missing %s", spec.name)
			assert.Equal(t, int64(spec.size), info.Size())
			assert.False(t, info.ModTime().Before(windowStart.Truncate(time.Second)))
			assert.False(t, info.ModTime().After(windowEnd))
		}
	}
}

func TestBuildCustomer(t *testing.T) {
	root := t.TempDir()
	builder := NewBuilder(root, testConfig(), time.Now())

	count, err := builder.BuildCustomer()
	require.NoError(t, err)
	assert.Equal(t, 5, count)

	entries, err := os.ReadDir(filepath.Join(root, CustomerFolder))
	require.NoError(t, err)
	// Name collisions are possible but unlikely at this scale.
	assert.NotEmpty(t, entries)

	namePattern := regexp.MustCompile(`^CUST_\d{8}_\d{4}\.(pdf|xml)$`)
	for _, entry := range entries {
		assert.Regexp(t, namePattern, entry.Name())

		info, err := entry.Info()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, info.Size(), int64(customerFileMinSize))
		assert.LessOrEqual(t, info.Size(), int64(customerFileMaxSize))

		// The file name encodes the mtime's date.
		assert.Equal(t, info.ModTime().Format("20060102"), entry.Name()[5:13])
	}
}

func TestFolderSize(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.bin"), make([]byte, 100), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "b.bin"), make([]byte, 50), 0o644))

	size, err := FolderSize(root)
	require.NoError(t, err)
	assert.Equal(t, int64(150), size)
}

func TestFolderSizeMissing(t *testing.T) {
	size, err := FolderSize(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Zero(t, size)
}
