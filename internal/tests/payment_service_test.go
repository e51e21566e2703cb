package tests

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"foodcourt/internal/domain"
	"foodcourt/internal/mocks"
	"foodcourt/internal/service"
)

func TestPaymentService_SetActive(t *testing.T) {
	ctx := context.Background()

	t.Run("admin toggles a method and drops the cache", func(t *testing.T) {
		methods := mocks.NewPaymentMethodRepository(t)
		cache := mocks.NewPaymentMethodCache(t)
		svc := service.NewPaymentService(methods, cache)

		methods.On("SetPaymentMethodActive", 3, false).
			Return(&domain.PaymentMethod{ID: 3, Name: "UPI", IsActive: false}, nil).Once()
		cache.On("ActiveKey", 3).Return("payment_method:active:3").Once()
		cache.On("Invalidate", ctx, "payment_method:active:3").Return(nil).Once()

		method, err := svc.SetActive(ctx, admin, 3, false)
		assert.NoError(t, err)
		assert.False(t, method.IsActive)
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		svc := service.NewPaymentService(mocks.NewPaymentMethodRepository(t), nil)
		_, err := svc.SetActive(ctx, indiaManager, 3, false)
		assert.ErrorIs(t, err, service.ErrForbidden)
		assert.EqualError(t, err, "Only admins can update payment methods")
	})

	t.Run("missing method", func(t *testing.T) {
		methods := mocks.NewPaymentMethodRepository(t)
		svc := service.NewPaymentService(methods, nil)

		methods.On("SetPaymentMethodActive", 9, true).Return(nil, sql.ErrNoRows).Once()

		_, err := svc.SetActive(ctx, admin, 9, true)
		assert.ErrorIs(t, err, service.ErrNotFound)
		assert.EqualError(t, err, "Payment method not found")
	})
}

func TestPaymentService_IsActive(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips the database", func(t *testing.T) {
		methods := mocks.NewPaymentMethodRepository(t)
		cache := mocks.NewPaymentMethodCache(t)
		svc := service.NewPaymentService(methods, cache)

		cache.On("ActiveKey", 1).Return("payment_method:active:1").Once()
		cache.On("GetActive", ctx, "payment_method:active:1").Return(true, true, nil).Once()

		active, err := svc.IsActive(ctx, 1)
		assert.NoError(t, err)
		assert.True(t, active)
	})

	t.Run("cache miss reads the database and caches", func(t *testing.T) {
		methods := mocks.NewPaymentMethodRepository(t)
		cache := mocks.NewPaymentMethodCache(t)
		svc := service.NewPaymentService(methods, cache)

		cache.On("ActiveKey", 1).Return("payment_method:active:1").Twice()
		cache.On("GetActive", ctx, "payment_method:active:1").Return(false, false, nil).Once()
		methods.On("GetPaymentMethod", 1).
			Return(&domain.PaymentMethod{ID: 1, IsActive: true}, nil).Once()
		cache.On("SetActive", ctx, "payment_method:active:1", true).Return(nil).Once()

		active, err := svc.IsActive(ctx, 1)
		assert.NoError(t, err)
		assert.True(t, active)
	})

	t.Run("missing method is inactive, not an error", func(t *testing.T) {
		methods := mocks.NewPaymentMethodRepository(t)
		svc := service.NewPaymentService(methods, nil)

		methods.On("GetPaymentMethod", 42).Return(nil, sql.ErrNoRows).Once()

		active, err := svc.IsActive(ctx, 42)
		assert.NoError(t, err)
		assert.False(t, active)
	})

	t.Run("disabled method blocks checkout immediately", func(t *testing.T) {
		methods := mocks.NewPaymentMethodRepository(t)
		cache := mocks.NewPaymentMethodCache(t)
		svc := service.NewPaymentService(methods, cache)

		methods.On("SetPaymentMethodActive", 2, false).
			Return(&domain.PaymentMethod{ID: 2, IsActive: false}, nil).Once()
		cache.On("ActiveKey", 2).Return("payment_method:active:2").Times(3)
		cache.On("Invalidate", mock.Anything, "payment_method:active:2").Return(nil).Once()
		cache.On("GetActive", mock.Anything, "payment_method:active:2").Return(false, false, nil).Once()
		methods.On("GetPaymentMethod", 2).
			Return(&domain.PaymentMethod{ID: 2, IsActive: false}, nil).Once()
		cache.On("SetActive", mock.Anything, "payment_method:active:2", false).Return(nil).Once()

		_, err := svc.SetActive(ctx, admin, 2, false)
		assert.NoError(t, err)

		active, err := svc.IsActive(ctx, 2)
		assert.NoError(t, err)
		assert.False(t, active)
	})
}

func TestPaymentService_List(t *testing.T) {
	methods := mocks.NewPaymentMethodRepository(t)
	svc := service.NewPaymentService(methods, nil)

	methods.On("ListPaymentMethods").Return([]domain.PaymentMethod{
		{ID: 1, Name: "Credit Card", IsActive: true},
		{ID: 2, Name: "Cash on Delivery", IsActive: false},
	}, nil).Once()

	all, err := svc.List()
	assert.NoError(t, err)
	assert.Len(t, all, 2)
}
