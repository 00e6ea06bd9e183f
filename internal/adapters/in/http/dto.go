package http

// ErrorResponse is the wire form of an error payload.
type ErrorResponse struct {
	Error string `json:"error"`
}

// ProductResponse is the wire form of one catalog product.
// Variants are published under "shades", the field name the storefront
// pages have always consumed.
type ProductResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description,omitempty"`
	Image       string   `json:"image,omitempty"`
	Shades      []string `json:"shades"`
}

// ArtistResponse is the wire form of one featured artist.
type ArtistResponse struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Bio   string `json:"bio,omitempty"`
	Image string `json:"image,omitempty"`
}

// CartItemResponse is the wire form of one cart line item. Prices are major
// units; the key is the canonical line item identity used in item routes.
type CartItemResponse struct {
	Key         string  `json:"key"`
	ProductID   string  `json:"productId"`
	Variant     string  `json:"variant"`
	Quantity    int     `json:"quantity"`
	UnitPrice   float64 `json:"unitPrice"`
	Subtotal    float64 `json:"subtotal"`
	DisplayName string  `json:"displayName"`
	ImageRef    string  `json:"imageRef,omitempty"`
}

// CartResponse is the wire form of the whole cart.
type CartResponse struct {
	Items []CartItemResponse `json:"items"`
	Total float64            `json:"total"`
	Count int                `json:"count"`
}

// AddItemRequest is the body of POST /api/cart/items.
// Variant may be omitted; the catalog default is used then.
type AddItemRequest struct {
	ProductID string `json:"productId"`
	Variant   string `json:"variant,omitempty"`
}

// ChangeQuantityRequest is the body of PATCH /api/cart/items/:key.
type ChangeQuantityRequest struct {
	Delta int `json:"delta"`
}

// CheckoutRequest is the body of POST /api/cart/checkout.
type CheckoutRequest struct {
	Name string `json:"name,omitempty"`
}

// CheckoutResponse is returned for a settled checkout.
type CheckoutResponse struct {
	Success bool   `json:"success"`
	OrderID string `json:"orderId"`
}
