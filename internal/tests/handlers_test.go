package tests

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	httpapi "foodcourt/internal/api/http"
	"foodcourt/internal/auth"
	"foodcourt/internal/domain"
	"foodcourt/internal/mocks"
	"foodcourt/internal/service"
)

var testSecret = []byte("handler-test-secret")

type handlerEnv struct {
	router      *mux.Router
	users       *mocks.UserRepository
	restaurants *mocks.RestaurantRepository
	menuItems   *mocks.MenuItemRepository
	orders      *mocks.OrderRepository
	methods     *mocks.PaymentMethodRepository
}

func newHandlerEnv(t *testing.T) *handlerEnv {
	env := &handlerEnv{
		router:      mux.NewRouter(),
		users:       mocks.NewUserRepository(t),
		restaurants: mocks.NewRestaurantRepository(t),
		menuItems:   mocks.NewMenuItemRepository(t),
		orders:      mocks.NewOrderRepository(t),
		methods:     mocks.NewPaymentMethodRepository(t),
	}

	paySvc := service.NewPaymentService(env.methods, nil)
	handler := httpapi.NewHandler(
		service.NewAuthService(env.users, testSecret),
		service.NewRestaurantService(env.restaurants, env.menuItems),
		service.NewMenuService(env.menuItems, env.restaurants),
		service.NewOrderService(env.orders, env.restaurants, env.menuItems, paySvc, nil, nil),
		paySvc,
		testSecret,
	)
	handler.RegisterRoutes(env.router)
	return env
}

func (env *handlerEnv) do(t *testing.T, method, path string, body interface{}, user *domain.User) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	if user != nil {
		token, err := auth.NewToken(testSecret, user)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	return rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestLoginEndpoint(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	t.Run("valid credentials return a token", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.users.On("GetUserByEmail", "thor@india.com").Return(&domain.User{
			ID: 5, Email: "thor@india.com", Password: string(hash),
			Role: domain.RoleMember, Country: "india",
		}, nil).Once()

		rec := env.do(t, "POST", "/auth/login", map[string]string{
			"email": "thor@india.com", "password": "password123",
		}, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, true, body["success"])

		data := body["data"].(map[string]interface{})
		assert.NotEmpty(t, data["access_token"])

		user := data["user"].(map[string]interface{})
		assert.Equal(t, "thor@india.com", user["email"])
		assert.NotContains(t, user, "password")
	})

	t.Run("wrong password", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.users.On("GetUserByEmail", "thor@india.com").Return(&domain.User{
			ID: 5, Email: "thor@india.com", Password: string(hash), Role: domain.RoleMember,
		}, nil).Once()

		rec := env.do(t, "POST", "/auth/login", map[string]string{
			"email": "thor@india.com", "password": "wrong",
		}, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Invalid credentials", body["message"])
	})

	t.Run("unknown email gets the same message", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.users.On("GetUserByEmail", "nobody@india.com").Return(nil, sql.ErrNoRows).Once()

		rec := env.do(t, "POST", "/auth/login", map[string]string{
			"email": "nobody@india.com", "password": "password123",
		}, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid credentials", decodeEnvelope(t, rec)["message"])
	})
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		env := newHandlerEnv(t)
		rec := env.do(t, "GET", "/restaurants", nil, nil)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Missing bearer token", body["message"])
	})

	t.Run("malformed token", func(t *testing.T) {
		env := newHandlerEnv(t)
		req := httptest.NewRequest("GET", "/restaurants", nil)
		req.Header.Set("Authorization", "Bearer garbage")
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "Invalid or expired token", decodeEnvelope(t, rec)["message"])
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		env := newHandlerEnv(t)
		token, err := auth.NewToken([]byte("other-secret"), indiaMember)
		require.NoError(t, err)

		req := httptest.NewRequest("GET", "/restaurants", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		env.router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("health needs no token", func(t *testing.T) {
		env := newHandlerEnv(t)
		rec := env.do(t, "GET", "/health", nil, nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestRestaurantEndpoints(t *testing.T) {
	t.Run("member list is country scoped", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.restaurants.On("ListRestaurants", auth.ListFilter{Country: "india"}).
			Return([]domain.Restaurant{{ID: 1, Name: "Spice Route", Country: "india"}}, nil).Once()

		rec := env.do(t, "GET", "/restaurants", nil, indiaMember)

		assert.Equal(t, http.StatusOK, rec.Code)
		data := decodeEnvelope(t, rec)["data"].([]interface{})
		assert.Len(t, data, 1)
	})

	t.Run("manager create in foreign country is 403", func(t *testing.T) {
		env := newHandlerEnv(t)
		rec := env.do(t, "POST", "/restaurants", map[string]interface{}{
			"name": "Diner", "address": "NY", "country": "america",
		}, indiaManager)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, false, body["success"])
		assert.Equal(t, "Managers can only create restaurants in their own country", body["message"])
	})

	t.Run("admin create returns 201 with envelope", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.restaurants.On("CreateRestaurant", mock.Anything).
			Run(func(args mock.Arguments) {
				args.Get(0).(*domain.Restaurant).ID = 7
			}).Return(nil).Once()

		rec := env.do(t, "POST", "/restaurants", map[string]interface{}{
			"name": "Burger Haven", "address": "SF", "country": "america",
		}, admin)

		assert.Equal(t, http.StatusCreated, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, "Restaurant created successfully", body["message"])
		assert.Equal(t, float64(7), body["data"].(map[string]interface{})["id"])
	})

	t.Run("member delete is 403", func(t *testing.T) {
		env := newHandlerEnv(t)
		rec := env.do(t, "DELETE", "/restaurants/1", nil, indiaMember)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing restaurant is 404", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.restaurants.On("GetRestaurant", 99).Return(nil, sql.ErrNoRows).Once()

		rec := env.do(t, "GET", "/restaurants/99", nil, admin)

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "Restaurant not found", decodeEnvelope(t, rec)["message"])
	})
}

func TestOrderEndpoints(t *testing.T) {
	t.Run("member cannot fetch another member's order", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.orders.On("GetOrder", 10).Return(&domain.Order{
			ID: 10, UserID: otherMember.ID, Country: "india", Status: domain.OrderStatusPending,
		}, nil).Once()

		rec := env.do(t, "GET", "/orders/10", nil, indiaMember)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Access denied to this order", decodeEnvelope(t, rec)["message"])
	})

	t.Run("empty checkout is 400", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.orders.On("GetOrder", 10).Return(&domain.Order{
			ID: 10, UserID: indiaManager.ID, Country: "india", Status: domain.OrderStatusPending,
		}, nil).Once()
		env.orders.On("CountOrderItems", 10).Return(0, nil).Once()

		rec := env.do(t, "POST", "/orders/10/checkout", map[string]int{"paymentMethodId": 1}, indiaManager)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "Cannot checkout an empty order", decodeEnvelope(t, rec)["message"])
	})

	t.Run("member checkout is 403", func(t *testing.T) {
		env := newHandlerEnv(t)
		rec := env.do(t, "POST", "/orders/10/checkout", map[string]int{"paymentMethodId": 1}, indiaMember)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("add item returns the created line", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.orders.On("GetOrder", 10).Return(&domain.Order{
			ID: 10, UserID: indiaMember.ID, RestaurantID: 3, Country: "india",
			Status: domain.OrderStatusPending,
		}, nil).Once()
		env.menuItems.On("GetMenuItem", 5).Return(&domain.MenuItem{
			ID: 5, RestaurantID: 3, Name: "Butter Chicken", Price: 5.99,
			IsAvailable: true, Country: "india",
		}, nil).Once()
		env.orders.On("AddOrderItem", mock.MatchedBy(func(it *domain.OrderItem) bool {
			return it.OrderID == 10 && it.Subtotal == 11.98
		})).Return(nil).Once()

		rec := env.do(t, "POST", "/orders/10/items", map[string]int{
			"menuItemId": 5, "quantity": 2,
		}, indiaMember)

		assert.Equal(t, http.StatusCreated, rec.Code)
		data := decodeEnvelope(t, rec)["data"].(map[string]interface{})
		assert.Equal(t, 11.98, data["subtotal"])
	})
}

func TestPaymentMethodEndpoints(t *testing.T) {
	t.Run("manager toggle is 403", func(t *testing.T) {
		env := newHandlerEnv(t)
		rec := env.do(t, "PATCH", "/payment-methods/1", map[string]bool{"isActive": false}, indiaManager)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "Only admins can update payment methods", decodeEnvelope(t, rec)["message"])
	})

	t.Run("isActive is required", func(t *testing.T) {
		env := newHandlerEnv(t)
		rec := env.do(t, "PATCH", "/payment-methods/1", map[string]string{}, admin)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "isActive is required", decodeEnvelope(t, rec)["message"])
	})

	t.Run("admin toggle succeeds", func(t *testing.T) {
		env := newHandlerEnv(t)
		env.methods.On("SetPaymentMethodActive", 1, false).
			Return(&domain.PaymentMethod{ID: 1, Name: "Credit Card", IsActive: false}, nil).Once()

		rec := env.do(t, "PATCH", "/payment-methods/1", map[string]bool{"isActive": false}, admin)

		assert.Equal(t, http.StatusOK, rec.Code)
		body := decodeEnvelope(t, rec)
		assert.Equal(t, true, body["success"])
		assert.Equal(t, false, body["data"].(map[string]interface{})["isActive"])
	})
}
