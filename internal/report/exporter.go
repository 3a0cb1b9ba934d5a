// Package report renders the task collection for human consumption.
// It is a presentation-layer collaborator of the store: the store owns
// the data, the exporter only reads snapshots of it.
package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/phrazzld/tasktrack/internal/domain"
	"github.com/phrazzld/tasktrack/internal/store"
)

// Supported export formats.
const (
	FormatJSON = "json"
	FormatCSV  = "csv"
	FormatPDF  = "pdf"
)

// ErrUnknownFormat wraps format values Export does not recognize.
var ErrUnknownFormat = errors.New("unknown export format")

// Exporter renders a store's tasks to a serialized report.
type Exporter struct {
	st *store.Store
}

// NewExporter creates an Exporter over st.
func NewExporter(st *store.Store) *Exporter {
	return &Exporter{st: st}
}

// Export renders the current task collection in the given format.
// Formats are matched case-insensitively.
func (e *Exporter) Export(format string) ([]byte, error) {
	all := e.st.All()

	switch strings.ToLower(format) {
	case FormatJSON:
		return json.MarshalIndent(all, "", "  ")
	case FormatCSV:
		return exportCSV(all)
	case FormatPDF:
		return exportPDF(all)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

func exportCSV(tasks []domain.Task) ([]byte, error) {
	var b strings.Builder
	w := csv.NewWriter(&b)

	header := []string{"id", "type", "title", "description", "completed", "created_at", "due_date", "frequency", "next_occurrence"}
	if err := w.Write(header); err != nil {
		return nil, err
	}

	for _, t := range tasks {
		m := t.Base()
		row := []string{
			strconv.FormatInt(m.ID, 10),
			string(t.Type()),
			m.Title,
			m.Description,
			strconv.FormatBool(m.Completed),
			m.CreatedAt.Format(time.RFC3339),
			"", "", "",
		}
		switch v := t.(type) {
		case *domain.Regular:
			if v.DueDate != nil {
				row[6] = v.DueDate.Format(store.DueDateLayout)
			}
		case *domain.Recurring:
			row[7] = string(v.Freq)
			row[8] = v.NextOccurrence.Format(store.DueDateLayout)
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return []byte(b.String()), nil
}

func exportPDF(tasks []domain.Task) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(40, 10, "Task Report")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 10)

	for _, t := range tasks {
		pdf.MultiCell(0, 6, taskLine(t), "0", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// taskLine renders a one-line summary of a task for the PDF report.
func taskLine(t domain.Task) string {
	m := t.Base()

	status := "pending"
	if m.Completed {
		status = "completed"
	}

	switch v := t.(type) {
	case *domain.Regular:
		due := "no due date"
		if v.DueDate != nil {
			due = "due " + v.DueDate.Format(store.DueDateLayout)
		}
		return fmt.Sprintf("#%d [%s] %s (%s, %s)", m.ID, t.Type(), m.Title, status, due)
	case *domain.Recurring:
		return fmt.Sprintf("#%d [%s] %s (%s, %s, next %s)",
			m.ID, t.Type(), m.Title, status, v.Freq, v.NextOccurrence.Format(store.DueDateLayout))
	default:
		return fmt.Sprintf("#%d [%s] %s (%s)", m.ID, t.Type(), m.Title, status)
	}
}
