package ports

import "github.com/aalvaropc/slidey/internal/domain"

// ReportStore persists build reports next to their output.
type ReportStore interface {
	SaveReport(report domain.BuildReport) (path string, err error)
}
