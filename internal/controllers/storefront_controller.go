package controllers

import (
	"errors"
	"net/http"

	"github.com/andregumieri/fiap-brigalab/internal/catalog"
	"github.com/andregumieri/fiap-brigalab/internal/middleware"
	"github.com/andregumieri/fiap-brigalab/internal/models"
	"github.com/andregumieri/fiap-brigalab/internal/order"
	"github.com/andregumieri/fiap-brigalab/internal/services"
	"github.com/gin-gonic/gin"
)

// StorefrontController handles HTTP requests of the cup builder and cart
type StorefrontController interface {
	// GetCatalog lists bases and toppings
	GetCatalog(c *gin.Context)
	// CreateSession starts an order session and returns its token
	CreateSession(c *gin.Context)
	// GetSession returns the current session view
	GetSession(c *gin.Context)
	// SelectBase changes the selected base
	SelectBase(c *gin.Context)
	// SelectTopping changes the selected topping
	SelectTopping(c *gin.Context)
	// AddToCart adds the current selection to the cart
	AddToCart(c *gin.Context)
	// SetQuantity sets the quantity of a cart item
	SetQuantity(c *gin.Context)
	// IncrementQuantity adds one to a cart item
	IncrementQuantity(c *gin.Context)
	// DecrementQuantity removes one from a cart item
	DecrementQuantity(c *gin.Context)
	// RemoveItem removes a cart item
	RemoveItem(c *gin.Context)
	// ClearCart empties the cart
	ClearCart(c *gin.Context)
	// OpenCartPanel shows the cart panel
	OpenCartPanel(c *gin.Context)
	// CloseCartPanel hides the cart panel
	CloseCartPanel(c *gin.Context)
	// Checkout finalizes the order
	Checkout(c *gin.Context)
}

// TokenIssuer hands out bearer tokens for new sessions
type TokenIssuer interface {
	Issue(sessionID string) (string, error)
}

// SelectionRequest is the body of the selection endpoints
type SelectionRequest struct {
	ID string `json:"id" binding:"required"`
}

// QuantityRequest is the body of the set-quantity endpoint
type QuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required,min=0,max=999"`
}

// SessionResponse is returned when a session is created
type SessionResponse struct {
	Token     string     `json:"token"`
	TokenType string     `json:"token_type"`
	Session   order.View `json:"session"`
}

// CheckoutResponse is returned by a successful checkout
type CheckoutResponse struct {
	Confirmation order.Confirmation `json:"confirmation"`
	Session      order.View         `json:"session"`
}

type storefrontController struct {
	catalog   catalog.Catalog
	sessions  services.SessionService
	tokens    TokenIssuer
	submitter order.Submitter
}

// NewStorefrontController creates a new instance of StorefrontController
func NewStorefrontController(cat catalog.Catalog, sessions services.SessionService, tokens TokenIssuer, submitter order.Submitter) *storefrontController {
	if submitter == nil {
		submitter = order.DeferredSubmitter{}
	}
	return &storefrontController{
		catalog:   cat,
		sessions:  sessions,
		tokens:    tokens,
		submitter: submitter,
	}
}

// GetCatalog godoc
// @Summary Get the catalog
// @Description List the available bases and toppings in display order
// @Tags catalog
// @Produce json
// @Success 200 {object} catalog.Catalog
// @Router /api/v1/catalog [get]
func (sc *storefrontController) GetCatalog(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, sc.catalog)
}

// CreateSession godoc
// @Summary Start an order session
// @Description Create a session on the default selection and return its Bearer token
// @Tags session
// @Produce json
// @Success 201 {object} SessionResponse
// @Failure 500 {object} models.APIError
// @Router /api/v1/sessions [post]
func (sc *storefrontController) CreateSession(ctx *gin.Context) {
	id, view, err := sc.sessions.Create(ctx.Request.Context())
	if err != nil {
		respondError(ctx, err)
		return
	}
	token, err := sc.tokens.Issue(id)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusCreated, SessionResponse{
		Token:     token,
		TokenType: "Bearer",
		Session:   view,
	})
}

// GetSession godoc
// @Summary Get the session
// @Description Current selection, preview, cart and totals
// @Tags session
// @Produce json
// @Success 200 {object} order.View
// @Failure 401 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/session [get]
func (sc *storefrontController) GetSession(ctx *gin.Context) {
	view, err := sc.sessions.View(ctx.Request.Context(), sessionID(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, view)
}

// SelectBase godoc
// @Summary Select a base
// @Tags selection
// @Accept json
// @Produce json
// @Param selection body SelectionRequest true "Base id"
// @Success 200 {object} order.View
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/session/selection/base [put]
func (sc *storefrontController) SelectBase(ctx *gin.Context) {
	var req SelectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}
	sc.apply(ctx, http.StatusOK, func(s *order.Session) error {
		return s.SelectBase(req.ID)
	})
}

// SelectTopping godoc
// @Summary Select a topping
// @Tags selection
// @Accept json
// @Produce json
// @Param selection body SelectionRequest true "Topping id"
// @Success 200 {object} order.View
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/session/selection/topping [put]
func (sc *storefrontController) SelectTopping(ctx *gin.Context) {
	var req SelectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Invalid request body")
		return
	}
	sc.apply(ctx, http.StatusOK, func(s *order.Session) error {
		return s.SelectTopping(req.ID)
	})
}

// AddToCart godoc
// @Summary Add the current cup to the cart
// @Description Appends a new line item with quantity 1 and opens the cart panel
// @Tags cart
// @Produce json
// @Success 201 {object} order.View
// @Security BearerAuth
// @Router /api/v1/session/cart/items [post]
func (sc *storefrontController) AddToCart(ctx *gin.Context) {
	sc.apply(ctx, http.StatusCreated, func(s *order.Session) error {
		s.AddToCart()
		return nil
	})
}

// SetQuantity godoc
// @Summary Set a cart item quantity
// @Description A quantity of 0 removes the item, the maximum is 999. Unknown items are ignored
// @Tags cart
// @Accept json
// @Produce json
// @Param itemId path string true "Line item ID"
// @Param quantity body QuantityRequest true "New quantity"
// @Success 200 {object} order.View
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/session/cart/items/{itemId} [put]
func (sc *storefrontController) SetQuantity(ctx *gin.Context) {
	var req QuantityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		respondBadRequest(ctx, "Quantity must be between 0 and 999")
		return
	}
	itemID := ctx.Param("itemId")
	sc.apply(ctx, http.StatusOK, func(s *order.Session) error {
		s.SetQuantity(itemID, *req.Quantity)
		return nil
	})
}

// IncrementQuantity godoc
// @Summary Add one to a cart item
// @Tags cart
// @Produce json
// @Param itemId path string true "Line item ID"
// @Success 200 {object} order.View
// @Security BearerAuth
// @Router /api/v1/session/cart/items/{itemId}/increment [post]
func (sc *storefrontController) IncrementQuantity(ctx *gin.Context) {
	itemID := ctx.Param("itemId")
	sc.apply(ctx, http.StatusOK, func(s *order.Session) error {
		s.IncrementQuantity(itemID)
		return nil
	})
}

// DecrementQuantity godoc
// @Summary Remove one from a cart item
// @Tags cart
// @Produce json
// @Param itemId path string true "Line item ID"
// @Success 200 {object} order.View
// @Security BearerAuth
// @Router /api/v1/session/cart/items/{itemId}/decrement [post]
func (sc *storefrontController) DecrementQuantity(ctx *gin.Context) {
	itemID := ctx.Param("itemId")
	sc.apply(ctx, http.StatusOK, func(s *order.Session) error {
		s.DecrementQuantity(itemID)
		return nil
	})
}

// RemoveItem godoc
// @Summary Remove a cart item
// @Tags cart
// @Produce json
// @Param itemId path string true "Line item ID"
// @Success 200 {object} order.View
// @Security BearerAuth
// @Router /api/v1/session/cart/items/{itemId} [delete]
func (sc *storefrontController) RemoveItem(ctx *gin.Context) {
	itemID := ctx.Param("itemId")
	sc.apply(ctx, http.StatusOK, func(s *order.Session) error {
		s.RemoveLineItem(itemID)
		return nil
	})
}

// ClearCart godoc
// @Summary Empty the cart
// @Tags cart
// @Produce json
// @Success 200 {object} order.View
// @Security BearerAuth
// @Router /api/v1/session/cart [delete]
func (sc *storefrontController) ClearCart(ctx *gin.Context) {
	sc.apply(ctx, http.StatusOK, func(s *order.Session) error {
		s.Clear()
		return nil
	})
}

// OpenCartPanel godoc
// @Summary Show the cart panel
// @Tags cart
// @Produce json
// @Success 200 {object} order.View
// @Security BearerAuth
// @Router /api/v1/session/cart/panel [post]
func (sc *storefrontController) OpenCartPanel(ctx *gin.Context) {
	sc.apply(ctx, http.StatusOK, func(s *order.Session) error {
		s.OpenCartPanel()
		return nil
	})
}

// CloseCartPanel godoc
// @Summary Hide the cart panel
// @Tags cart
// @Produce json
// @Success 200 {object} order.View
// @Security BearerAuth
// @Router /api/v1/session/cart/panel [delete]
func (sc *storefrontController) CloseCartPanel(ctx *gin.Context) {
	sc.apply(ctx, http.StatusOK, func(s *order.Session) error {
		s.CloseCartPanel()
		return nil
	})
}

// Checkout godoc
// @Summary Finalize the order
// @Description Hands the cart to the order backend. Returns 501 while no backend is configured.
// @Tags checkout
// @Produce json
// @Success 200 {object} CheckoutResponse
// @Failure 409 {object} models.APIError
// @Failure 501 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/session/checkout [post]
func (sc *storefrontController) Checkout(ctx *gin.Context) {
	var conf order.Confirmation
	view, err := sc.sessions.Apply(ctx.Request.Context(), sessionID(ctx), func(s *order.Session) error {
		var err error
		conf, err = s.Checkout(ctx.Request.Context(), sc.submitter)
		return err
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, CheckoutResponse{Confirmation: conf, Session: view})
}

// apply runs fn on the caller's session and writes the resulting view
func (sc *storefrontController) apply(ctx *gin.Context, status int, fn func(*order.Session) error) {
	view, err := sc.sessions.Apply(ctx.Request.Context(), sessionID(ctx), fn)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(status, view)
}

func sessionID(ctx *gin.Context) string {
	return ctx.GetString(middleware.SessionIDKey)
}

func respondBadRequest(ctx *gin.Context, message string) {
	ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, message))
}

// respondError maps domain and service errors to API errors
func respondError(ctx *gin.Context, err error) {
	_ = ctx.Error(err)

	var invalid *order.InvalidSelectionError
	switch {
	case errors.As(err, &invalid):
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrInvalidSelection, invalid.Error(), map[string]interface{}{
			"kind": invalid.Kind,
			"id":   invalid.ID,
		}))
	case errors.Is(err, services.ErrSessionNotFound), errors.Is(err, services.ErrSessionExpired):
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrSessionNotFound, "Session not found or expired"))
	case errors.Is(err, order.ErrEmptyCart):
		ctx.JSON(http.StatusConflict, models.NewAPIError(models.ErrEmptyCart, "Cart is empty"))
	case errors.Is(err, order.ErrCheckoutUnavailable):
		ctx.JSON(http.StatusNotImplemented, models.NewAPIError(models.ErrCheckoutUnavailable, "Checkout is not available yet"))
	default:
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Internal server error"))
	}
}
