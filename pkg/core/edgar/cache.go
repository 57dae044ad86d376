package edgar

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// DocumentCache is a file-based cache for retrieved filing documents,
// keyed by CIK and accession number. EDGAR archives are immutable, so
// entries never expire.
type DocumentCache struct {
	dir string
}

// NewDocumentCache creates a cache under .cache/edgar/documents in the
// current working directory.
func NewDocumentCache() *DocumentCache {
	return NewDocumentCacheWithDir(filepath.Join(".cache", "edgar", "documents"))
}

// NewDocumentCacheWithDir creates a cache in a custom directory.
func NewDocumentCacheWithDir(dir string) *DocumentCache {
	os.MkdirAll(dir, 0755)
	return &DocumentCache{dir: dir}
}

func (c *DocumentCache) path(cik, accession, name string) string {
	accession = strings.ReplaceAll(accession, "-", "")
	return filepath.Join(c.dir, fmt.Sprintf("%s_%s_%s", cik, accession, filepath.Base(name)))
}

// Get retrieves a cached document, or nil when absent.
func (c *DocumentCache) Get(cik, accession, name string) []byte {
	data, err := os.ReadFile(c.path(cik, accession, name))
	if err != nil {
		return nil
	}
	return data
}

// Set stores a document in the cache.
func (c *DocumentCache) Set(cik, accession, name string, data []byte) error {
	return os.WriteFile(c.path(cik, accession, name), data, 0644)
}

// Has reports whether a document is cached.
func (c *DocumentCache) Has(cik, accession, name string) bool {
	_, err := os.Stat(c.path(cik, accession, name))
	return err == nil
}

// Clear removes all cached documents.
func (c *DocumentCache) Clear() error {
	return os.RemoveAll(c.dir)
}
