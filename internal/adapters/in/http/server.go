// Package http is the inbound HTTP adapter. It translates the storefront's
// REST surface into commands and queries and maps domain errors back to
// status codes.
package http

import (
	"errors"
	"net/http"
	"net/url"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/application/usecases/queries"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// CartIDHeader names the header carrying the cart slot identifier. Requests
// without a parseable identifier get a freshly minted one; the resolved
// identifier is always echoed back so the client can persist it.
const CartIDHeader = "X-Cart-ID"

// Server coordinates between the HTTP surface and application use cases.
type Server struct {
	// Command handlers
	addItemHandler        commands.AddItemCommandHandler
	removeItemHandler     commands.RemoveItemCommandHandler
	changeQuantityHandler commands.ChangeQuantityCommandHandler
	checkoutHandler       commands.CheckoutCommandHandler

	// Query handlers
	getCartHandler     queries.GetCartQueryHandler
	getProductsHandler queries.GetProductsQueryHandler
	getArtistsHandler  queries.GetArtistsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	addItemHandler commands.AddItemCommandHandler,
	removeItemHandler commands.RemoveItemCommandHandler,
	changeQuantityHandler commands.ChangeQuantityCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	getCartHandler queries.GetCartQueryHandler,
	getProductsHandler queries.GetProductsQueryHandler,
	getArtistsHandler queries.GetArtistsQueryHandler,
) *Server {
	return &Server{
		addItemHandler:        addItemHandler,
		removeItemHandler:     removeItemHandler,
		changeQuantityHandler: changeQuantityHandler,
		checkoutHandler:       checkoutHandler,
		getCartHandler:        getCartHandler,
		getProductsHandler:    getProductsHandler,
		getArtistsHandler:     getArtistsHandler,
	}
}

// RegisterRoutes wires the storefront routes into the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api")
	api.GET("/products", s.GetProducts)
	api.GET("/artists", s.GetArtists)
	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddCartItem)
	api.PATCH("/cart/items/:key", s.ChangeCartItemQuantity)
	api.DELETE("/cart/items/:key", s.RemoveCartItem)
	api.POST("/cart/checkout", s.Checkout)
	api.POST("/checkout", s.SettleCheckout)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "healthy"})
}

// GetProducts handles GET /api/products - retrieves the product catalog.
func (s *Server) GetProducts(ctx echo.Context) error {
	response, err := s.getProductsHandler.Handle(ctx.Request().Context(), queries.NewGetProductsQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Failed to retrieve products",
		})
	}

	products := make([]ProductResponse, len(response.Products))
	for i, product := range response.Products {
		products[i] = ProductResponse{
			ID:          product.ID,
			Name:        product.Name,
			Price:       product.Price.Float64(),
			Description: product.Description,
			Image:       product.Image,
			Shades:      product.Variants,
		}
	}

	return ctx.JSON(http.StatusOK, products)
}

// GetArtists handles GET /api/artists - retrieves the featured artist roster.
func (s *Server) GetArtists(ctx echo.Context) error {
	response, err := s.getArtistsHandler.Handle(ctx.Request().Context(), queries.NewGetArtistsQuery())
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
			Error: "Failed to retrieve artists",
		})
	}

	artists := make([]ArtistResponse, len(response.Artists))
	for i, artist := range response.Artists {
		artists[i] = ArtistResponse{
			Name:  artist.Name,
			Role:  artist.Role,
			Bio:   artist.Bio,
			Image: artist.Image,
		}
	}

	return ctx.JSON(http.StatusOK, artists)
}

// GetCart handles GET /api/cart - retrieves the cart for the resolved slot.
func (s *Server) GetCart(ctx echo.Context) error {
	cartID := s.resolveCartID(ctx)
	return s.respondWithCart(ctx, cartID)
}

// AddCartItem handles POST /api/cart/items - adds one unit of a product to
// the cart, merging with an existing line item of the same identity.
func (s *Server) AddCartItem(ctx echo.Context) error {
	cartID := s.resolveCartID(ctx)

	var request AddItemRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	cmd, err := commands.NewAddItemCommand(cartID, request.ProductID, request.Variant)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item data: " + err.Error()})
	}

	if err = s.addItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return ctx.JSON(http.StatusNotFound, ErrorResponse{Error: "Product not found"})
		}
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to add item"})
	}

	return s.respondWithCart(ctx, cartID)
}

// ChangeCartItemQuantity handles PATCH /api/cart/items/:key - applies a
// signed quantity delta to the addressed line item.
func (s *Server) ChangeCartItemQuantity(ctx echo.Context) error {
	cartID := s.resolveCartID(ctx)

	key, err := itemKeyFromParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item key"})
	}

	var request ChangeQuantityRequest
	if err = ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	cmd, err := commands.NewChangeQuantityCommand(cartID, key, request.Delta)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid quantity data: " + err.Error()})
	}

	if err = s.changeQuantityHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to change quantity"})
	}

	return s.respondWithCart(ctx, cartID)
}

// RemoveCartItem handles DELETE /api/cart/items/:key - removes the addressed
// line item. Removing an absent key still returns the cart unchanged.
func (s *Server) RemoveCartItem(ctx echo.Context) error {
	cartID := s.resolveCartID(ctx)

	key, err := itemKeyFromParam(ctx)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item key"})
	}

	cmd, err := commands.NewRemoveItemCommand(cartID, key)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid item key"})
	}

	if err = s.removeItemHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to remove item"})
	}

	return s.respondWithCart(ctx, cartID)
}

// Checkout handles POST /api/cart/checkout - submits the cart for
// settlement. An empty cart is rejected up front, without any settlement
// exchange.
func (s *Server) Checkout(ctx echo.Context) error {
	cartID := s.resolveCartID(ctx)

	var request CheckoutRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}
	if request.Name == "" {
		request.Name = "Guest"
	}

	cmd, err := commands.NewCheckoutCommand(cartID, request.Name)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid checkout data: " + err.Error()})
	}

	result, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrCartIsEmpty):
			return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Cart is empty"})
		case errors.Is(err, ports.ErrSettlementRejected), errors.Is(err, ports.ErrSettlementUnavailable):
			return ctx.JSON(http.StatusBadGateway, ErrorResponse{Error: "Checkout failed"})
		default:
			return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Checkout failed"})
		}
	}

	return ctx.JSON(http.StatusOK, CheckoutResponse{Success: true, OrderID: result.OrderID})
}

// respondWithCart loads the resolved cart and writes its read model.
func (s *Server) respondWithCart(ctx echo.Context, cartID kernel.UUID) error {
	query, err := queries.NewGetCartQuery(cartID)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load cart"})
	}

	response, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load cart"})
	}

	items := make([]CartItemResponse, len(response.Items))
	for i, item := range response.Items {
		items[i] = CartItemResponse{
			Key:         item.Key,
			ProductID:   item.ProductID,
			Variant:     item.Variant,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice.Float64(),
			Subtotal:    item.Subtotal.Float64(),
			DisplayName: item.DisplayName,
			ImageRef:    item.ImageRef,
		}
	}

	return ctx.JSON(http.StatusOK, CartResponse{
		Items: items,
		Total: response.Total.Float64(),
		Count: response.Count,
	})
}

// resolveCartID extracts the cart identifier from the request header, minting
// a fresh one when the header is absent or unparseable. The resolved
// identifier is always written back to the response.
func (s *Server) resolveCartID(ctx echo.Context) kernel.UUID {
	if header := ctx.Request().Header.Get(CartIDHeader); header != "" {
		if id, err := kernel.UUIDFromString(header); err == nil {
			ctx.Response().Header().Set(CartIDHeader, id.String())
			return id
		}
	}

	id := kernel.NewUUID()
	ctx.Response().Header().Set(CartIDHeader, id.String())
	return id
}

// itemKeyFromParam parses the :key route parameter into a line item key.
// The parameter arrives URL-escaped because the separator is not path safe.
func itemKeyFromParam(ctx echo.Context) (kernel.LineItemKey, error) {
	raw, err := url.PathUnescape(ctx.Param("key"))
	if err != nil {
		return kernel.LineItemKey{}, err
	}
	return kernel.LineItemKeyFromString(raw)
}
