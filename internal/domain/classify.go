package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// SkipReason explains why an entry was not treated as a collectinfo bundle.
type SkipReason string

const (
	SkipNotRegular           SkipReason = "not_regular"
	SkipHidden               SkipReason = "hidden"
	SkipLockFile             SkipReason = "lock_file"
	SkipSpreadsheet          SkipReason = "spreadsheet"
	SkipOSMetadata           SkipReason = "os_metadata"
	SkipUnsupportedExtension SkipReason = "unsupported_extension"
)

// ClassifyPolicy selects how aggressively entries are filtered before the tool runs.
type ClassifyPolicy string

const (
	// PolicyArchives accepts only names that look like collectinfo archives.
	PolicyArchives ClassifyPolicy = "archives"
	// PolicyAll accepts every regular file.
	PolicyAll ClassifyPolicy = "all"
)

// ValidPolicies enumerates all recognized classify policies.
var ValidPolicies = []ClassifyPolicy{PolicyArchives, PolicyAll}

var archiveExtensions = map[string]bool{
	".tgz": true,
	".tar": true,
	".gz":  true,
	".zip": true,
}

// Classification is the decision taken for one directory entry.
type Classification struct {
	Accepted bool       `json:"accepted"`
	Reason   SkipReason `json:"reason,omitempty"`
}

func accept() Classification           { return Classification{Accepted: true} }
func skip(r SkipReason) Classification { return Classification{Reason: r} }

// Classify decides whether an entry is a candidate bundle. Rules are applied
// in order and the first match wins.
func Classify(name string, regular bool) Classification {
	if !regular {
		return skip(SkipNotRegular)
	}

	lower := strings.ToLower(name)
	switch {
	case strings.HasPrefix(lower, "."):
		return skip(SkipHidden)
	case strings.HasPrefix(lower, "~$"):
		return skip(SkipLockFile)
	case strings.HasSuffix(lower, ".xlsx"), strings.HasSuffix(lower, ".xls"):
		return skip(SkipSpreadsheet)
	case lower == ".ds_store":
		return skip(SkipOSMetadata)
	case strings.HasSuffix(lower, ".tar.gz"):
		return accept()
	case archiveExtensions[filepath.Ext(lower)]:
		return accept()
	}
	return skip(SkipUnsupportedExtension)
}

// ClassifyWith applies policy on top of Classify.
func ClassifyWith(policy ClassifyPolicy, name string, regular bool) Classification {
	if policy == PolicyAll {
		if !regular {
			return skip(SkipNotRegular)
		}
		return accept()
	}
	return Classify(name, regular)
}

// Describe returns a short human-readable explanation.
func (r SkipReason) Describe() string {
	switch r {
	case SkipNotRegular:
		return "not a regular file"
	case SkipHidden:
		return "hidden file"
	case SkipLockFile:
		return "lock file"
	case SkipSpreadsheet:
		return "spreadsheet"
	case SkipOSMetadata:
		return "OS metadata"
	case SkipUnsupportedExtension:
		return "not a collectinfo file"
	default:
		return fmt.Sprintf("skipped (%s)", string(r))
	}
}
