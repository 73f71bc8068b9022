package domain

import (
	"time"

	checkout "keroluxe-store/internal/features/checkout/domain"
	collections "keroluxe-store/internal/features/collections/domain"
)

// OrderStatus represents the fulfilment state of an order. Orders are created
// as Processing; Shipped and Delivered exist in the data model but no
// transition logic moves an order out of Processing in this engine.
type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusShipped    OrderStatus = "Shipped"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

// Order is an immutable record of a completed checkout.
type Order struct {
	// ID is an opaque unique token.
	ID string `json:"id"`
	// Date is the creation timestamp.
	Date time.Time `json:"date"`
	// Items is a deep snapshot of the cart at checkout time, not a live
	// reference.
	Items []collections.CartItem `json:"items"`
	// Total is the final payable amount after discount, excluding shipping.
	Total int `json:"total"`
	// Status is fixed at creation.
	Status OrderStatus `json:"status"`
	// ShippingDetails is the frozen checkout form.
	ShippingDetails checkout.UserDetails `json:"shipping_details"`
}
