package http

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"

	"github.com/labstack/echo/v4"
)

const orderTokenAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// settleRequest is the body of POST /api/checkout. The cart entries are kept
// opaque; the endpoint only cares whether any are present.
type settleRequest struct {
	Cart     []json.RawMessage `json:"cart"`
	Customer struct {
		Name string `json:"name"`
	} `json:"customer"`
}

// SettleCheckout handles POST /api/checkout - the settlement endpoint.
// A submission without cart entries is rejected with 400; anything else
// settles and is issued an order identifier.
func (s *Server) SettleCheckout(ctx echo.Context) error {
	var request settleRequest
	if err := ctx.Bind(&request); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
	}

	if len(request.Cart) == 0 {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "Cart is empty"})
	}

	return ctx.JSON(http.StatusOK, CheckoutResponse{Success: true, OrderID: newOrderID()})
}

// newOrderID issues an order identifier of the form "ORD-" followed by
// eight uppercase alphanumeric characters.
func newOrderID() string {
	token := make([]byte, 8)
	for i := range token {
		token[i] = orderTokenAlphabet[rand.IntN(len(orderTokenAlphabet))]
	}
	return "ORD-" + string(token)
}
