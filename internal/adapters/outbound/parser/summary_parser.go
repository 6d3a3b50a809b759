package parser

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/openkraft/ciusage/internal/domain"
)

var (
	// Horizontal whitespace only, so an empty value never captures the next line.
	clusterNameRe  = regexp.MustCompile(`Cluster Name[ \t]*\|[ \t]*(.*)`)
	licenseUsageRe = regexp.MustCompile(`License Usage Latest\s*\|\s*([\d.]+)\s*([A-Z]+)`)
)

// SummaryParser implements domain.ReportParser for the tabular text printed
// by `asadm -e summary`.
type SummaryParser struct{}

func New() *SummaryParser {
	return &SummaryParser{}
}

// Parse scrapes the cluster name and the latest license usage from stdout.
// A missing cluster name is reported as domain.UnknownCluster; a missing
// usage line yields domain.ErrUsageMissing.
func (p *SummaryParser) Parse(stdout string) (domain.Summary, error) {
	summary := domain.Summary{ClusterName: domain.UnknownCluster}

	if m := clusterNameRe.FindStringSubmatch(stdout); m != nil {
		if name := strings.TrimSpace(m[1]); name != "" {
			summary.ClusterName = name
		}
	}

	m := licenseUsageRe.FindStringSubmatch(stdout)
	if m == nil {
		return summary, domain.ErrUsageMissing
	}

	value, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return summary, fmt.Errorf("parsing license usage %q: %w", m[1], err)
	}
	summary.Value = value
	summary.Unit = strings.ToUpper(m[2])

	return summary, nil
}
