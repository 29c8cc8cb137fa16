package output

import (
	"bytes"
	_ "embed"
	"html/template"

	"github.com/budgetbandhu/bandhu/internal/domain"
)

// HTMLFormatter produces a standalone HTML report.
type HTMLFormatter struct {
	ScheduleRows int
}

func (h HTMLFormatter) Name() string { return "html" }

// WithOptions returns a copy of the formatter using opts.
func (h HTMLFormatter) WithOptions(opts Options) Formatter {
	h.ScheduleRows = opts.ScheduleRows
	return h
}

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"rupees": FormatRupees,
	"pct":    FormatPercentage,
	"rate":   FormatRate,
}).Parse(htmlTemplateSource))

func (h HTMLFormatter) Format(results *domain.WorksheetResult) ([]byte, error) {
	rows := h.ScheduleRows
	if rows == 0 {
		rows = DefaultScheduleRows
	}

	// Truncate on a copy so the caller's schedules are untouched.
	view := *results
	view.Loans = make([]domain.AmortizationResult, len(results.Loans))
	for i, l := range results.Loans {
		l.YearlySchedule, _ = TruncateSchedule(l.YearlySchedule, rows)
		view.Loans[i] = l
	}
	view.Lumpsums = make([]domain.LumpsumResult, len(results.Lumpsums))
	for i, ls := range results.Lumpsums {
		ls.YearlySchedule, _ = TruncateSchedule(ls.YearlySchedule, rows)
		view.Lumpsums[i] = ls
	}

	var buf bytes.Buffer
	if err := htmlTemplate.Execute(&buf, &view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
