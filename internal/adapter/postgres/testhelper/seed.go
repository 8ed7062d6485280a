package testhelper

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedUser creates a local user with the user role.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	suffix := uniqueSuffix()
	email := "testuser-" + suffix + "@example.com"
	hash := "$2a$10$testhashtesthashtesthashtesthashtesthashtesthashtestha"
	user := domain.User{
		ID:           uuid.New(),
		Email:        &email,
		Name:         "Test User " + suffix,
		PasswordHash: &hash,
		Role:         domain.UserRoleUser,
		AuthProvider: domain.AuthProviderLocal,
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (id, email, name, password_hash, role, auth_provider)
		 VALUES ($1, $2, $3, $4, 'user', 'local')
		 RETURNING created_at, updated_at`,
		user.ID, email, user.Name, hash,
	).Scan(&user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}
	return user
}

// SeedBusiness creates a business owned by ownerID.
func SeedBusiness(t *testing.T, pool *pgxpool.Pool, ownerID uuid.UUID) domain.Business {
	t.Helper()

	b := domain.Business{
		ID:       uuid.New(),
		OwnerID:  ownerID,
		Name:     "Business " + uniqueSuffix(),
		Timezone: "Europe/Madrid",
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO businesses (id, owner_id, name, timezone)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		b.ID, b.OwnerID, b.Name, b.Timezone,
	).Scan(&b.CreatedAt, &b.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedBusiness: %v", err)
	}
	return b
}

// SeedUserAndBusiness creates a user and a business owned by them.
func SeedUserAndBusiness(t *testing.T, pool *pgxpool.Pool) (domain.User, domain.Business) {
	t.Helper()
	u := SeedUser(t, pool)
	return u, SeedBusiness(t, pool, u.ID)
}

// SeedContact creates a contact with a random phone in the business.
func SeedContact(t *testing.T, pool *pgxpool.Pool, businessID uuid.UUID) domain.Contact {
	t.Helper()

	c := domain.Contact{
		ID:         uuid.New(),
		BusinessID: businessID,
		Name:       "Contact " + uniqueSuffix(),
		Phone:      RandomPhone(),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO contacts (id, business_id, name, phone)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at`,
		c.ID, c.BusinessID, c.Name, c.Phone,
	).Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedContact: %v", err)
	}
	return c
}

// SeedTag creates a tag in the business.
func SeedTag(t *testing.T, pool *pgxpool.Pool, businessID uuid.UUID) domain.Tag {
	t.Helper()

	tag := domain.Tag{ID: uuid.New(), BusinessID: businessID, Name: "tag-" + uniqueSuffix()}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO tags (id, business_id, name) VALUES ($1, $2, $3) RETURNING created_at`,
		tag.ID, tag.BusinessID, tag.Name,
	).Scan(&tag.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTag: %v", err)
	}
	return tag
}

// SeedAppointment creates a pending appointment, optionally linked to a contact.
func SeedAppointment(t *testing.T, pool *pgxpool.Pool, businessID uuid.UUID, contactID *uuid.UUID, startsAt time.Time) domain.Appointment {
	t.Helper()

	a := domain.Appointment{
		ID:              uuid.New(),
		BusinessID:      businessID,
		ContactID:       contactID,
		ClientName:      "Client " + uniqueSuffix(),
		ClientPhone:     "+34600000000",
		ServiceType:     "consulta",
		StartsAt:        startsAt.UTC().Truncate(time.Microsecond),
		DurationMinutes: 30,
		Status:          domain.AppointmentStatusPending,
	}
	err := pool.QueryRow(context.Background(),
		`INSERT INTO appointments (id, business_id, contact_id, client_name, client_phone, service_type, starts_at, duration_minutes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		 RETURNING created_at, updated_at`,
		a.ID, a.BusinessID, a.ContactID, a.ClientName, a.ClientPhone, a.ServiceType, a.StartsAt, a.DurationMinutes,
	).Scan(&a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedAppointment: %v", err)
	}
	return a
}

// RandomPhone returns a Spanish mobile number unlikely to collide.
func RandomPhone() string {
	return fmt.Sprintf("+346%08d", rand.IntN(100_000_000))
}
