package contact

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/service/tenant"
)

// XLSXContentType is the media type of exported spreadsheets.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

const exportSheet = "Contactos"

var exportHeader = []any{
	"Nombre", "Teléfono", "Email", "Notas", "Etiquetas",
	"Interacciones", "Citas", "Última interacción", "Próxima cita",
}

// ExportFile is a generated spreadsheet.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}

// Export writes every contact of the business into an XLSX workbook.
// Timestamps are rendered in the business time zone.
func (s *Service) Export(ctx context.Context, businessID uuid.UUID) (*ExportFile, error) {
	b, err := tenant.Business(ctx, s.businesses, businessID)
	if err != nil {
		return nil, err
	}
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		loc = time.UTC
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), exportSheet); err != nil {
		return nil, fmt.Errorf("contact.Export rename sheet: %w", err)
	}
	sw, err := f.NewStreamWriter(exportSheet)
	if err != nil {
		return nil, fmt.Errorf("contact.Export stream: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("contact.Export style: %w", err)
	}

	header := make([]any, len(exportHeader))
	for i, h := range exportHeader {
		header[i] = excelize.Cell{StyleID: bold, Value: h}
	}
	if err := sw.SetRow("A1", header); err != nil {
		return nil, fmt.Errorf("contact.Export header: %w", err)
	}

	pageSize := s.cfg.ExportPageSize
	if pageSize <= 0 {
		pageSize = 200
	}

	rowNum := 2
	for offset := 0; ; offset += pageSize {
		page, total, err := s.contacts.List(ctx, domain.ContactFilter{BusinessID: businessID, Limit: pageSize, Offset: offset})
		if err != nil {
			return nil, fmt.Errorf("contact.Export list: %w", err)
		}
		for _, c := range page {
			cellRef, err := excelize.CoordinatesToCellName(1, rowNum)
			if err != nil {
				return nil, fmt.Errorf("contact.Export cell: %w", err)
			}
			if err := sw.SetRow(cellRef, exportRow(c, loc)); err != nil {
				return nil, fmt.Errorf("contact.Export row %d: %w", rowNum, err)
			}
			rowNum++
		}
		if len(page) == 0 || offset+len(page) >= total {
			break
		}
	}

	if err := sw.Flush(); err != nil {
		return nil, fmt.Errorf("contact.Export flush: %w", err)
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("contact.Export write: %w", err)
	}

	return &ExportFile{
		Filename:    fmt.Sprintf("contactos-%s.xlsx", s.now().In(loc).Format("2006-01-02")),
		ContentType: XLSXContentType,
		Data:        buf.Bytes(),
	}, nil
}

func exportRow(c domain.Contact, loc *time.Location) []any {
	tags := make([]string, len(c.Tags))
	for i, t := range c.Tags {
		tags[i] = t.Name
	}

	var next string
	if c.NextAppointment != nil {
		next = c.NextAppointment.StartsAt.In(loc).Format("2006-01-02 15:04")
	}

	return []any{
		c.Name,
		c.Phone,
		deref(c.Email),
		deref(c.Notes),
		strings.Join(tags, ", "),
		c.InteractionsCount,
		c.AppointmentsCount,
		formatTime(c.LastInteractionAt, loc),
		next,
	}
}

func formatTime(t *time.Time, loc *time.Location) string {
	if t == nil {
		return ""
	}
	return t.In(loc).Format("2006-01-02 15:04")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
