package fixit

import (
	"context"
	"io"
	"net/url"

	"github.com/google/uuid"
)

// ReportsService wraps dashboard summaries and exported report downloads.
type ReportsService service

// Summary returns the dashboard aggregate, optionally scoped to one
// property.
func (s *ReportsService) Summary(ctx context.Context, propertyID uuid.UUID) (*ReportSummary, error) {
	q := url.Values{}
	if propertyID != uuid.Nil {
		q.Set("propertyId", propertyID.String())
	}
	var sum ReportSummary
	if err := s.client.getJSON(ctx, "/reports/summary", q, &sum); err != nil {
		return nil, err
	}
	return &sum, nil
}

// ReportDownloadOptions selects which export to download.
type ReportDownloadOptions struct {
	// Type selects the report: "rent", "requests", "leases".
	Type string
	// Format selects the export format: "csv" or "pdf".
	Format     string
	PropertyID uuid.UUID
	From       string
	To         string
}

func (o ReportDownloadOptions) values() url.Values {
	q := url.Values{}
	q.Set("format", NormalizeEnum(o.Format))
	if o.PropertyID != uuid.Nil {
		q.Set("propertyId", o.PropertyID.String())
	}
	if o.From != "" {
		q.Set("from", o.From)
	}
	if o.To != "" {
		q.Set("to", o.To)
	}
	return q
}

// Download streams an exported report into w and returns what the backend
// said about the blob (filename, content type, size).
func (s *ReportsService) Download(ctx context.Context, opts ReportDownloadOptions, w io.Writer) (*DownloadInfo, error) {
	path := "/reports/" + NormalizeEnum(opts.Type) + "/export"
	return s.client.download(ctx, path, opts.values(), w)
}
