package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/internal/dto"
	"github.com/heartmarshall/receptionist-backend/internal/service/tenant"
)

// List returns one page of contacts and the total match count.
func (s *Service) List(ctx context.Context, f domain.ContactFilter) ([]domain.Contact, int, error) {
	if _, err := tenant.Business(ctx, s.businesses, f.BusinessID); err != nil {
		return nil, 0, err
	}
	if f.TagID != nil {
		if _, err := s.businessTag(ctx, f.BusinessID, *f.TagID); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				return []domain.Contact{}, 0, nil
			}
			return nil, 0, err
		}
	}

	items, total, err := s.contacts.List(ctx, f)
	if err != nil {
		return nil, 0, fmt.Errorf("contact.List: %w", err)
	}
	return items, total, nil
}

// Get returns a contact with its tags and appointment summaries.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Contact, error) {
	return s.owned(ctx, id)
}

// Create adds a contact. A phone already used in the business is
// domain.ErrAlreadyExists.
func (s *Service) Create(ctx context.Context, req dto.CreateContactRequest) (*domain.Contact, error) {
	businessID := req.BusinessUUID()
	if _, err := tenant.Business(ctx, s.businesses, businessID); err != nil {
		return nil, err
	}

	tagIDs := req.TagUUIDs()
	var fieldErrs []domain.FieldError
	for i, tagID := range tagIDs {
		if _, err := s.businessTag(ctx, businessID, tagID); err != nil {
			if !errors.Is(err, domain.ErrNotFound) {
				return nil, fmt.Errorf("contact.Create: %w", err)
			}
			fieldErrs = append(fieldErrs, domain.FieldError{Field: fmt.Sprintf("tag_ids[%d]", i), Message: "no existe"})
		}
	}
	if len(fieldErrs) > 0 {
		return nil, domain.NewValidationErrors(fieldErrs)
	}

	var id uuid.UUID
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		c, err := s.contacts.Create(ctx, &domain.Contact{
			BusinessID: businessID,
			Name:       req.Name,
			Phone:      req.NormalizedPhone(),
			Email:      req.Email,
			Notes:      req.Notes,
		})
		if err != nil {
			return err
		}
		for _, tagID := range tagIDs {
			if err := s.contacts.AddTag(ctx, c.ID, tagID); err != nil {
				return err
			}
		}
		id = c.ID
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("contact.Create: %w", err)
	}

	s.log.InfoContext(ctx, "contact created",
		slog.String("contact_id", id.String()),
		slog.String("business_id", businessID.String()))

	return s.contacts.GetByID(ctx, id)
}

// Update changes the provided fields of a contact.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req dto.UpdateContactRequest) (*domain.Contact, error) {
	if req.Empty() {
		return nil, domain.NewValidationError("body", "debe contener al menos un campo")
	}
	if _, err := s.owned(ctx, id); err != nil {
		return nil, err
	}

	if err := s.contacts.Update(ctx, id, req.Name, req.NormalizedPhone(), req.Email, req.Notes); err != nil {
		return nil, fmt.Errorf("contact.Update: %w", err)
	}
	return s.contacts.GetByID(ctx, id)
}

// Delete removes a contact. Its appointments are kept with the contact link
// cleared.
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.owned(ctx, id); err != nil {
		return err
	}
	if err := s.contacts.Delete(ctx, id); err != nil {
		return fmt.Errorf("contact.Delete: %w", err)
	}

	s.log.InfoContext(ctx, "contact deleted", slog.String("contact_id", id.String()))
	return nil
}

// ListAppointments returns the appointments booked by a contact.
func (s *Service) ListAppointments(ctx context.Context, id uuid.UUID, limit, offset int) ([]domain.Appointment, int, error) {
	c, err := s.owned(ctx, id)
	if err != nil {
		return nil, 0, err
	}

	items, total, err := s.appointments.List(ctx, domain.AppointmentFilter{
		BusinessID: c.BusinessID,
		ContactID:  &c.ID,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return nil, 0, fmt.Errorf("contact.ListAppointments: %w", err)
	}
	return items, total, nil
}

// AddTag links a tag of the same business to the contact.
func (s *Service) AddTag(ctx context.Context, contactID, tagID uuid.UUID) (*domain.Contact, error) {
	c, err := s.owned(ctx, contactID)
	if err != nil {
		return nil, err
	}
	if _, err := s.businessTag(ctx, c.BusinessID, tagID); err != nil {
		return nil, err
	}
	if err := s.contacts.AddTag(ctx, contactID, tagID); err != nil {
		return nil, fmt.Errorf("contact.AddTag: %w", err)
	}
	return s.contacts.GetByID(ctx, contactID)
}

// RemoveTag unlinks a tag from the contact.
func (s *Service) RemoveTag(ctx context.Context, contactID, tagID uuid.UUID) error {
	if _, err := s.owned(ctx, contactID); err != nil {
		return err
	}
	if err := s.contacts.RemoveTag(ctx, contactID, tagID); err != nil {
		return fmt.Errorf("contact.RemoveTag: %w", err)
	}
	return nil
}
