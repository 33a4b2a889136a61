package web

import (
	"errors"
	"net/http"

	"pyronix-studio/internal/auth"
	"pyronix-studio/internal/order"
	"pyronix-studio/internal/pkg/model"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	orders order.Service
	auth   *auth.Service
}

func NewAdminHandler(orders order.Service, authService *auth.Service) *AdminHandler {
	return &AdminHandler{
		orders: orders,
		auth:   authService,
	}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AdminHandler) Login(c *gin.Context) {
	var payload loginRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	session, err := h.auth.SignIn(payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, auth.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Erreur d'authentification"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur d'authentification"})
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *AdminHandler) Logout(c *gin.Context) {
	h.auth.SignOut(c.GetString(ctxKeyToken))
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) GetSession(c *gin.Context) {
	session, _ := c.Get(ctxKeySession)
	c.JSON(http.StatusOK, session)
}

// ListOrders returns the full order set, newest first. The optional q and
// status parameters are applied to the fetched snapshot with the same pure
// filter the dashboard uses locally.
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.orders.GetOrders(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du chargement des commandes"})
		return
	}

	status := c.Query("status")
	if status != "" && status != order.StatusAll && !model.OrderStatus(status).Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut inconnu"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"orders": order.FilterOrders(orders, c.Query("q"), status),
	})
}

func (h *AdminHandler) GetOrder(c *gin.Context) {
	ord, err := h.orders.GetOrderByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, ord)
}

type updateStatusRequest struct {
	Status model.OrderStatus `json:"status" binding:"required"`
}

// UpdateStatus writes the new status, then re-fetches the order rather than
// trusting the local view; the write is independent of any other order.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var payload updateStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide"})
		return
	}

	orderID := c.Param("id")
	if err := h.orders.UpdateOrderStatus(c.Request.Context(), orderID, payload.Status); err != nil {
		writeOrderError(c, err)
		return
	}

	ord, err := h.orders.GetOrderByID(c.Request.Context(), orderID)
	if err != nil {
		writeOrderError(c, err)
		return
	}
	c.JSON(http.StatusOK, ord)
}

// DeleteOrder refuses to touch the store unless the caller explicitly passed
// confirm=true, mirroring the dashboard's confirmation dialog.
func (h *AdminHandler) DeleteOrder(c *gin.Context) {
	if c.Query("confirm") != "true" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Confirmation requise pour supprimer une commande"})
		return
	}

	if err := h.orders.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		writeOrderError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func writeOrderError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, order.ErrOrderNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Commande introuvable"})
	case errors.Is(err, order.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Statut inconnu"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors de la mise à jour"})
	}
}
