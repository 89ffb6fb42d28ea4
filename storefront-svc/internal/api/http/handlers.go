package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"botfactory-miniapp/storefront-svc/internal/cart"
	"botfactory-miniapp/storefront-svc/internal/domain"
	"botfactory-miniapp/storefront-svc/internal/service"

	"github.com/gorilla/mux"
)

// SessionHeader carries the mini-app session identity; the web app sends
// its Telegram init-data hash here.
const SessionHeader = "X-Session-ID"

type Handler struct {
	Business service.BusinessServiceInterface
	Catalog  service.CatalogServiceInterface
	Orders   service.OrderServiceInterface
	Carts    *cart.Store
}

func NewHandler(businessSvc service.BusinessServiceInterface, catalogSvc service.CatalogServiceInterface, orderSvc service.OrderServiceInterface, carts *cart.Store) *Handler {
	return &Handler{
		Business: businessSvc,
		Catalog:  catalogSvc,
		Orders:   orderSvc,
		Carts:    carts,
	}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/miniapp/business/{botId}", h.getBusiness).Methods("GET")
	r.HandleFunc("/api/miniapp/catalog/{botId}", h.getCatalog).Methods("GET")
	r.HandleFunc("/api/miniapp/contact/{botId}", h.getContact).Methods("GET")

	r.HandleFunc("/api/miniapp/cart", h.getCart).Methods("GET")
	r.HandleFunc("/api/miniapp/cart", h.clearCart).Methods("DELETE")
	r.HandleFunc("/api/miniapp/cart/items", h.addCartItem).Methods("POST")
	r.HandleFunc("/api/miniapp/cart/items/{index}", h.updateCartItem).Methods("PATCH")
	r.HandleFunc("/api/miniapp/cart/items/{index}", h.removeCartItem).Methods("DELETE")

	r.HandleFunc("/api/miniapp/order", h.createOrder).Methods("POST")
	r.HandleFunc("/api/miniapp/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "storefront-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) getBusiness(w http.ResponseWriter, r *http.Request) {
	botID, _ := strconv.Atoi(mux.Vars(r)["botId"])
	business, err := h.Business.Get(botID)
	if errors.Is(err, service.ErrBotNotFound) {
		writeError(w, http.StatusNotFound, "bot not found")
		return
	}
	if err != nil {
		log.Printf("[storefront-svc] business lookup error: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	writeJSON(w, http.StatusOK, business)
}

// getCatalog degrades to an empty list on storage errors so the mini app
// still renders the rest of the storefront.
func (h *Handler) getCatalog(w http.ResponseWriter, r *http.Request) {
	botID, _ := strconv.Atoi(mux.Vars(r)["botId"])
	items, err := h.Catalog.Search(r.Context(), botID, r.URL.Query().Get("q"))
	if err != nil {
		log.Printf("[storefront-svc] catalog error for bot %d: %v", botID, err)
		items = []domain.CatalogItem{}
	}
	if items == nil {
		items = []domain.CatalogItem{}
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) getContact(w http.ResponseWriter, r *http.Request) {
	botID, _ := strconv.Atoi(mux.Vars(r)["botId"])
	contact, err := h.Business.Contact(botID)
	if errors.Is(err, service.ErrBotNotFound) {
		writeError(w, http.StatusNotFound, "bot not found")
		return
	}
	if err != nil {
		log.Printf("[storefront-svc] contact lookup error: %v", err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}
	writeJSON(w, http.StatusOK, contact)
}

type addItemRequest struct {
	BotID    int `json:"bot_id"`
	ItemID   int `json:"item_id"`
	Quantity int `json:"quantity"`
}

type cartResponse struct {
	Items   []domain.CartEntry `json:"items"`
	Summary domain.CartSummary `json:"summary"`
	Message string             `json:"message,omitempty"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{
		Items:   h.Carts.Entries(sessionID),
		Summary: h.Carts.Summary(sessionID),
	})
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionFrom(w, r)
	if !ok {
		return
	}

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON format: "+err.Error())
		return
	}
	if req.Quantity == 0 {
		req.Quantity = 1
	}

	items, err := h.Catalog.List(r.Context(), req.BotID)
	if err != nil {
		log.Printf("[storefront-svc] catalog error for bot %d: %v", req.BotID, err)
		writeError(w, http.StatusInternalServerError, "server error")
		return
	}

	var item *domain.CatalogItem
	for i := range items {
		if items[i].ID == req.ItemID {
			item = &items[i]
			break
		}
	}
	if item == nil {
		writeError(w, http.StatusNotFound, "item not found")
		return
	}

	if err := h.Carts.Add(sessionID, *item, req.Quantity); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, cartResponse{
		Items:   h.Carts.Entries(sessionID),
		Summary: h.Carts.Summary(sessionID),
		Message: fmt.Sprintf("%s added to cart", item.Name),
	})
}

func (h *Handler) updateCartItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	index, _ := strconv.Atoi(mux.Vars(r)["index"])

	var req struct {
		Delta int `json:"delta"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON format: "+err.Error())
		return
	}

	h.Carts.SetQuantity(sessionID, index, req.Delta)
	writeJSON(w, http.StatusOK, cartResponse{
		Items:   h.Carts.Entries(sessionID),
		Summary: h.Carts.Summary(sessionID),
	})
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	index, _ := strconv.Atoi(mux.Vars(r)["index"])

	h.Carts.Remove(sessionID, index)
	writeJSON(w, http.StatusOK, cartResponse{
		Items:   h.Carts.Entries(sessionID),
		Summary: h.Carts.Summary(sessionID),
	})
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := sessionFrom(w, r)
	if !ok {
		return
	}
	h.Carts.Clear(sessionID)
	w.WriteHeader(http.StatusNoContent)
}

// createOrder accepts the submission payload. When a session header is
// present the server-side cart is the source of truth: its snapshot and
// summary replace whatever items the client sent, and the cart is cleared
// only after the order is committed. Failures leave the cart untouched.
func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var order domain.Order
	if err := json.NewDecoder(r.Body).Decode(&order); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON format: "+err.Error())
		return
	}

	sessionID := r.Header.Get(SessionHeader)
	if sessionID != "" {
		order.Items = h.Carts.Snapshot(sessionID)
		order.Total = h.Carts.Summary(sessionID).Total
	}

	if err := h.Orders.Create(r.Context(), &order); err != nil {
		if errors.Is(err, service.ErrInvalidOrder) {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[storefront-svc] order create error: %v", err)
		writeError(w, http.StatusInternalServerError, "failed to create order")
		return
	}

	if sessionID != "" {
		h.Carts.Clear(sessionID)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"success":  true,
		"order_id": order.ID,
		"message":  "Order received",
	})
}

func (h *Handler) getOrderQRCode(w http.ResponseWriter, r *http.Request) {
	orderID, _ := strconv.Atoi(mux.Vars(r)["id"])
	qrCode, err := h.Orders.GetQRCode(orderID)
	if err != nil {
		writeError(w, http.StatusNotFound, "order not found")
		return
	}
	if len(qrCode) == 0 {
		writeError(w, http.StatusNotFound, "QR code not found")
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	w.WriteHeader(http.StatusOK)
	w.Write(qrCode)
}

func sessionFrom(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := r.Header.Get(SessionHeader)
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "missing "+SessionHeader+" header")
		return "", false
	}
	return sessionID, true
}

func writeJSON(w http.ResponseWriter, code int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, code int, message string) {
	writeJSON(w, code, map[string]string{"error": message})
}
