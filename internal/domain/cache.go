package domain

import "time"

// CachedResult is an extraction result tied to the file state it was computed from.
type CachedResult struct {
	Size    int64            `json:"size"`
	ModTime time.Time        `json:"mod_time"`
	Tool    string           `json:"tool"`
	Result  ExtractionResult `json:"result"`
}

// ResultCacheData holds cached results keyed by file name.
type ResultCacheData struct {
	Directory string                  `json:"directory"`
	Entries   map[string]CachedResult `json:"entries"`
}

// Lookup returns the cached result for entry when its size, modification time
// and tool still match.
func (c *ResultCacheData) Lookup(entry DirEntry, tool string) (ExtractionResult, bool) {
	if c == nil {
		return ExtractionResult{}, false
	}
	cr, ok := c.Entries[entry.Name]
	if !ok || cr.IsInvalidated(entry, tool) {
		return ExtractionResult{}, false
	}
	return cr.Result, true
}

// Put records res for entry.
func (c *ResultCacheData) Put(entry DirEntry, tool string, res ExtractionResult) {
	if c.Entries == nil {
		c.Entries = make(map[string]CachedResult)
	}
	c.Entries[entry.Name] = CachedResult{
		Size:    entry.Size,
		ModTime: entry.ModTime,
		Tool:    tool,
		Result:  res,
	}
}

func (cr CachedResult) IsInvalidated(entry DirEntry, tool string) bool {
	return cr.Size != entry.Size || !cr.ModTime.Equal(entry.ModTime) || cr.Tool != tool
}
