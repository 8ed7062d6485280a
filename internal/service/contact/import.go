package contact

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/dto"
	"github.com/heartmarshall/receptionist-backend/internal/service/tenant"
	"github.com/heartmarshall/receptionist-backend/internal/validate"
)

type importRow struct {
	line    int
	contact domain.Contact
}

// Import upserts contacts from a CSV or XLSX file, matching by phone.
// Invalid rows are reported and skipped; valid rows are saved in chunks,
// each chunk in its own transaction.
func (s *Service) Import(ctx context.Context, businessID uuid.UUID, filename string, r io.Reader) (*domain.ImportResult, error) {
	if _, err := tenant.Business(ctx, s.businesses, businessID); err != nil {
		return nil, err
	}

	rows, err := readRows(filename, r)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, domain.NewValidationError("file", "no contiene filas")
	}
	if len(rows)-1 > s.cfg.ImportMaxRows {
		return nil, domain.NewValidationError("file", fmt.Sprintf("supera el máximo de %d filas", s.cfg.ImportMaxRows))
	}

	cols, err := mapHeader(rows[0])
	if err != nil {
		return nil, err
	}

	result := &domain.ImportResult{Errors: []domain.ImportRowError{}}
	valid := make([]importRow, 0, len(rows)-1)
	seen := make(map[string]int)

	for i, row := range rows[1:] {
		line := i + 2 // 1-based, after the header
		if blank(row) {
			continue
		}

		in := dto.ContactImportRow{
			Name:  cell(row, cols.name),
			Phone: cell(row, cols.phone),
			Email: optionalCell(row, cols.email),
			Notes: optionalCell(row, cols.notes),
		}
		if err := dto.Validate(in); err != nil {
			result.Errors = append(result.Errors, domain.ImportRowError{Row: line, Message: describe(err)})
			continue
		}

		phone := validate.NormalizePhone(in.Phone)
		if first, dup := seen[phone]; dup {
			result.Errors = append(result.Errors, domain.ImportRowError{
				Row:     line,
				Message: fmt.Sprintf("teléfono duplicado en el archivo (fila %d)", first),
			})
			continue
		}
		seen[phone] = line

		valid = append(valid, importRow{line: line, contact: domain.Contact{
			BusinessID: businessID,
			Name:       in.Name,
			Phone:      phone,
			Email:      in.Email,
			Notes:      in.Notes,
		}})
	}

	chunkSize := s.cfg.ImportChunkSize
	if chunkSize <= 0 {
		chunkSize = 100
	}

	for start := 0; start < len(valid); start += chunkSize {
		chunk := valid[start:min(start+chunkSize, len(valid))]

		var created, updated int
		txErr := s.tx.RunInTx(ctx, func(ctx context.Context) error {
			for _, row := range chunk {
				inserted, err := s.contacts.Upsert(ctx, &row.contact)
				if err != nil {
					return fmt.Errorf("row %d: %w", row.line, err)
				}
				if inserted {
					created++
				} else {
					updated++
				}
			}
			return nil
		})
		if txErr != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			s.log.ErrorContext(ctx, "import chunk failed",
				slog.String("business_id", businessID.String()),
				slog.Int("first_row", chunk[0].line),
				slog.String("error", txErr.Error()))
			for _, row := range chunk {
				result.Errors = append(result.Errors, domain.ImportRowError{Row: row.line, Message: "no se pudo guardar"})
			}
			continue
		}
		result.Created += created
		result.Updated += updated
	}

	s.log.InfoContext(ctx, "contacts imported",
		slog.String("business_id", businessID.String()),
		slog.Int("created", result.Created),
		slog.Int("updated", result.Updated),
		slog.Int("rejected", len(result.Errors)))

	return result, nil
}

// describe flattens a validation error into one row message.
func describe(err error) string {
	fields := domain.Fields(err)
	if len(fields) == 0 {
		return err.Error()
	}
	parts := make([]string, len(fields))
	for i, f := range fields {
		parts[i] = f.Field + " " + f.Message
	}
	return strings.Join(parts, "; ")
}
