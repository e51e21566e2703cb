package service

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"foodcourt/internal/domain"
)

// PaymentService owns the global payment-method registry. The active flag is
// memoized in Redis; Postgres stays the source of truth and cache failures
// degrade to database reads.
type PaymentService struct {
	methods PaymentMethodRepository
	cache   PaymentMethodCache
}

func NewPaymentService(methods PaymentMethodRepository, cache PaymentMethodCache) *PaymentService {
	return &PaymentService{methods: methods, cache: cache}
}

func (s *PaymentService) List() ([]domain.PaymentMethod, error) {
	return s.methods.ListPaymentMethods()
}

// SetActive toggles a method globally and drops the cached flag so the next
// checkout sees the change immediately.
func (s *PaymentService) SetActive(ctx context.Context, user *domain.User, id int, active bool) (*domain.PaymentMethod, error) {
	if user.Role != domain.RoleAdmin {
		return nil, Forbidden("Only admins can update payment methods")
	}

	method, err := s.methods.SetPaymentMethodActive(id, active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, NotFound("Payment method not found")
		}
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.Invalidate(ctx, s.cache.ActiveKey(id)); err != nil {
			slog.Warn("failed to invalidate payment method cache", "id", id, "error", err)
		}
	}
	return method, nil
}

// IsActive reports whether the method exists and is active. A missing method
// is not an error here; callers decide what missing means.
func (s *PaymentService) IsActive(ctx context.Context, id int) (bool, error) {
	if s.cache != nil {
		if active, hit, err := s.cache.GetActive(ctx, s.cache.ActiveKey(id)); err == nil && hit {
			return active, nil
		}
	}

	method, err := s.methods.GetPaymentMethod(id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, err
	}

	if s.cache != nil {
		if err := s.cache.SetActive(ctx, s.cache.ActiveKey(id), method.IsActive); err != nil {
			slog.Warn("failed to cache payment method flag", "id", id, "error", err)
		}
	}
	return method.IsActive, nil
}

var _ PaymentServiceInterface = (*PaymentService)(nil)
