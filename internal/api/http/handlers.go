package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"foodcourt/internal/domain"
	"foodcourt/internal/service"
)

type Handler struct {
	Auth        service.AuthServiceInterface
	Restaurants service.RestaurantServiceInterface
	Menu        service.MenuServiceInterface
	Orders      service.OrderServiceInterface
	Payments    service.PaymentServiceInterface

	secret []byte
}

func NewHandler(
	authSvc service.AuthServiceInterface,
	restSvc service.RestaurantServiceInterface,
	menuSvc service.MenuServiceInterface,
	orderSvc service.OrderServiceInterface,
	paySvc service.PaymentServiceInterface,
	secret []byte,
) *Handler {
	return &Handler{
		Auth:        authSvc,
		Restaurants: restSvc,
		Menu:        menuSvc,
		Orders:      orderSvc,
		Payments:    paySvc,
		secret:      secret,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.HandleFunc("/auth/login", h.login).Methods("POST")

	r.HandleFunc("/restaurants", h.requireAuth(h.listRestaurants)).Methods("GET")
	r.HandleFunc("/restaurants", h.requireAuth(h.createRestaurant)).Methods("POST")
	r.HandleFunc("/restaurants/{id}", h.requireAuth(h.getRestaurant)).Methods("GET")
	r.HandleFunc("/restaurants/{id}", h.requireAuth(h.updateRestaurant)).Methods("PATCH")
	r.HandleFunc("/restaurants/{id}", h.requireAuth(h.deleteRestaurant)).Methods("DELETE")

	r.HandleFunc("/menu-items", h.requireAuth(h.listMenuItems)).Methods("GET")
	r.HandleFunc("/menu-items", h.requireAuth(h.createMenuItem)).Methods("POST")
	r.HandleFunc("/menu-items/restaurant/{id}", h.requireAuth(h.listRestaurantMenu)).Methods("GET")
	r.HandleFunc("/menu-items/{id}", h.requireAuth(h.getMenuItem)).Methods("GET")
	r.HandleFunc("/menu-items/{id}", h.requireAuth(h.updateMenuItem)).Methods("PATCH")
	r.HandleFunc("/menu-items/{id}", h.requireAuth(h.deleteMenuItem)).Methods("DELETE")

	r.HandleFunc("/orders", h.requireAuth(h.listOrders)).Methods("GET")
	r.HandleFunc("/orders", h.requireAuth(h.createOrder)).Methods("POST")
	r.HandleFunc("/orders/{id}", h.requireAuth(h.getOrder)).Methods("GET")
	r.HandleFunc("/orders/{id}/items", h.requireAuth(h.addOrderItem)).Methods("POST")
	r.HandleFunc("/orders/{id}/checkout", h.requireAuth(h.checkoutOrder)).Methods("POST")
	r.HandleFunc("/orders/{id}/cancel", h.requireAuth(h.cancelOrder)).Methods("POST")
	r.HandleFunc("/orders/{id}/receipt", h.requireAuth(h.getOrderReceipt)).Methods("GET")

	r.HandleFunc("/payment-methods", h.requireAuth(h.listPaymentMethods)).Methods("GET")
	r.HandleFunc("/payment-methods/{id}", h.requireAuth(h.updatePaymentMethod)).Methods("PATCH")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "healthy",
		"timestamp": time.Now().Format(time.RFC3339),
	}, "")
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, service.BadRequest("Invalid JSON payload"))
		return
	}

	token, user, err := h.Auth.Login(req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token": token,
		"user":         user,
	}, "")
}

func (h *Handler) listRestaurants(w http.ResponseWriter, r *http.Request) {
	restaurants, err := h.Restaurants.List(userFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, restaurants, "")
}

func (h *Handler) getRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	rest, err := h.Restaurants.Get(userFrom(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest, "")
}

func (h *Handler) createRestaurant(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Address     string `json:"address"`
		Country     string `json:"country"`
		IsActive    *bool  `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, service.BadRequest("Invalid JSON payload"))
		return
	}

	rest := &domain.Restaurant{
		Name:        req.Name,
		Description: req.Description,
		Address:     req.Address,
		Country:     req.Country,
		IsActive:    true,
	}
	if req.IsActive != nil {
		rest.IsActive = *req.IsActive
	}

	if err := h.Restaurants.Create(userFrom(r), rest); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rest, "Restaurant created successfully")
}

func (h *Handler) updateRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var upd service.RestaurantUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, service.BadRequest("Invalid JSON payload"))
		return
	}

	rest, err := h.Restaurants.Update(userFrom(r), id, upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rest, "Restaurant updated successfully")
}

func (h *Handler) deleteRestaurant(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Restaurants.Delete(userFrom(r), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil, "Restaurant deleted successfully")
}

func (h *Handler) listMenuItems(w http.ResponseWriter, r *http.Request) {
	items, err := h.Menu.List(userFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items, "")
}

func (h *Handler) listRestaurantMenu(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	items, err := h.Menu.ListByRestaurant(userFrom(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items, "")
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	item, err := h.Menu.Get(userFrom(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item, "")
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RestaurantID int     `json:"restaurantId"`
		Name         string  `json:"name"`
		Description  string  `json:"description"`
		Price        float64 `json:"price"`
		Category     string  `json:"category"`
		IsAvailable  *bool   `json:"isAvailable"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, service.BadRequest("Invalid JSON payload"))
		return
	}

	item := &domain.MenuItem{
		RestaurantID: req.RestaurantID,
		Name:         req.Name,
		Description:  req.Description,
		Price:        req.Price,
		Category:     req.Category,
		IsAvailable:  true,
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}

	if err := h.Menu.Create(userFrom(r), item); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item, "Menu item created successfully")
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var upd service.MenuItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, service.BadRequest("Invalid JSON payload"))
		return
	}

	item, err := h.Menu.Update(userFrom(r), id, upd)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item, "Menu item updated successfully")
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	if err := h.Menu.Delete(userFrom(r), id); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, nil, "Menu item deleted successfully")
}

func (h *Handler) listOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Orders.List(userFrom(r))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orders, "")
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Get(userFrom(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order, "")
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		RestaurantID int `json:"restaurantId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, service.BadRequest("Invalid JSON payload"))
		return
	}

	order, err := h.Orders.Create(userFrom(r), req.RestaurantID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, order, "Order created successfully")
}

func (h *Handler) addOrderItem(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req struct {
		MenuItemID int `json:"menuItemId"`
		Quantity   int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, service.BadRequest("Invalid JSON payload"))
		return
	}

	item, err := h.Orders.AddItem(r.Context(), userFrom(r), id, req.MenuItemID, req.Quantity)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, item, "Item added to order successfully")
}

func (h *Handler) checkoutOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req struct {
		PaymentMethodID int `json:"paymentMethodId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, service.BadRequest("Invalid JSON payload"))
		return
	}

	order, err := h.Orders.Checkout(r.Context(), userFrom(r), id, req.PaymentMethodID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order, "Order checked out successfully")
}

func (h *Handler) cancelOrder(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	order, err := h.Orders.Cancel(r.Context(), userFrom(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, order, "Order cancelled successfully")
}

func (h *Handler) getOrderReceipt(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	receipt, err := h.Orders.Receipt(userFrom(r), id)
	if err != nil {
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(receipt)
}

func (h *Handler) listPaymentMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := h.Payments.List()
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, methods, "")
}

func (h *Handler) updatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(mux.Vars(r)["id"])
	var req struct {
		IsActive *bool `json:"isActive"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.IsActive == nil {
		writeError(w, service.BadRequest("isActive is required"))
		return
	}

	method, err := h.Payments.SetActive(r.Context(), userFrom(r), id, *req.IsActive)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, method, "Payment method updated successfully")
}
