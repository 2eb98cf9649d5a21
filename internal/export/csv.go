// Package export renders work-log rows into a transport-safe CSV.
package export

import (
	"strings"
	"time"

	"github.com/AWLL-inc/work-management-sub003/internal/query"
	"github.com/AWLL-inc/work-management-sub003/internal/repository"
)

// MaxExportDays caps the exportable date window, inclusive of both bounds.
const MaxExportDays = 31

// utf8BOM makes spreadsheet applications detect the encoding correctly.
const utf8BOM = "\xEF\xBB\xBF"

var header = []string{"date", "user", "hours", "project", "category", "details"}

// Serialize renders the rows as BOM + header + data. Fields are quoted,
// with internal quotes doubled, only when they contain a comma, a double
// quote or a newline; everything else is emitted verbatim.
func Serialize(rows []*repository.WorkLogView) string {
	var b strings.Builder
	b.WriteString(utf8BOM)
	b.WriteString(strings.Join(header, ","))
	b.WriteString("\r\n")

	for _, row := range rows {
		fields := []string{
			FormatDate(row.LogDate.Format(time.RFC3339)),
			row.UserName,
			row.Hours.String(),
			row.ProjectName,
			row.CategoryName,
			derefString(row.Details),
		}
		for i, field := range fields {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(escapeField(field))
		}
		b.WriteString("\r\n")
	}
	return b.String()
}

// FormatDate keeps the YYYY-MM-DD portion of a date value, whether it
// arrives as a plain date or a full ISO datetime string.
func FormatDate(s string) string {
	if len(s) > 10 {
		return s[:10]
	}
	return s
}

// ValidateWindow enforces the export-only date cap before any repository
// call: both bounds are required and the inclusive span must not exceed
// MaxExportDays. This is independent of the general start/end ordering
// check in the filter builder.
func ValidateWindow(from, to *time.Time) error {
	if from == nil || to == nil {
		return query.NewValidationError("from", "export requires both from and to dates")
	}
	days := int(to.Sub(*from).Hours()/24) + 1
	if days > MaxExportDays {
		return query.NewValidationError("to", "export date range must not exceed 31 days")
	}
	return nil
}

func escapeField(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
