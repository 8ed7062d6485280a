// Package tenant resolves the business a request acts on and checks that the
// caller may act on it.
package tenant

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/receptionist-backend/internal/domain"
	"github.com/heartmarshall/receptionist-backend/pkg/ctxutil"
)

// BusinessGetter loads a business by id.
type BusinessGetter interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Business, error)
}

// Business loads the business and checks ownership against the identity in
// ctx. A business the caller does not own is reported as not found so that
// ids of other tenants cannot be probed.
func Business(ctx context.Context, businesses BusinessGetter, id uuid.UUID) (*domain.Business, error) {
	identity := ctxutil.IdentityFromCtx(ctx)
	if identity == nil {
		return nil, domain.ErrUnauthorized
	}

	b, err := businesses.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("tenant: get business: %w", err)
	}

	if !b.OwnedBy(identity) {
		return nil, fmt.Errorf("business %s: %w", id, domain.ErrNotFound)
	}
	return b, nil
}
