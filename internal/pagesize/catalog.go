package pagesize

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/kpauljoseph/wrt2pdf/pkg/models"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

const DefaultKey = "A4"

var ErrKeyNotFound = errors.New("Key not found")

// Entry is one named paper size.
type Entry struct {
	Key        string
	Dimensions models.PageDimensions
}

// Description is the human readable form shown next to the key.
func (e Entry) Description() string {
	return e.Dimensions.String()
}

// Catalog is the fixed set of known paper sizes, sorted by key.
type Catalog struct {
	entries []Entry
}

// New builds the catalog from the paper sizes known to pdfcpu.
func New() *Catalog {
	entries := make([]Entry, 0, len(types.PaperSize))
	for key, dim := range types.PaperSize {
		if dim == nil || strings.HasPrefix(strings.ToLower(key), "custom") {
			continue
		}
		entries = append(entries, Entry{
			Key:        key,
			Dimensions: models.PageDimensions{Width: dim.Width, Height: dim.Height},
		})
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Key < entries[j].Key
	})
	return &Catalog{entries: entries}
}

// Lookup returns the entry whose key matches exactly, ignoring case.
// An exact-case match wins when several keys only differ in case.
func (c *Catalog) Lookup(key string) (Entry, error) {
	var matches []Entry
	for _, e := range c.entries {
		if e.Key == key {
			return e, nil
		}
		if strings.EqualFold(e.Key, key) {
			matches = append(matches, e)
		}
	}
	if len(matches) != 1 {
		return Entry{}, fmt.Errorf("%w: %s", ErrKeyNotFound, key)
	}
	return matches[0], nil
}

// Filter returns all entries whose key or description contains filter,
// ignoring case. An empty filter matches everything.
func (c *Catalog) Filter(filter string) []Entry {
	needle := strings.ToLower(filter)
	var result []Entry
	for _, e := range c.entries {
		merged := strings.ToLower(e.Key + e.Description())
		if strings.Contains(merged, needle) {
			result = append(result, e)
		}
	}
	return result
}

// Format renders an entry the way --list-page-keys prints it.
func Format(e Entry) string {
	return fmt.Sprintf("%-18s : %s", e.Key, e.Description())
}
