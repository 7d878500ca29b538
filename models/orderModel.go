package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// OrderType is open-ended: stored orders may carry values outside these constants.
type OrderType string

const (
	OrderTypeTakeout  OrderType = "takeout"
	OrderTypeDelivery OrderType = "delivery"
	OrderTypeCatering OrderType = "catering"
)

type OrderStatus string

// Nothing moves an order past pending yet; the rest name the intended progression.
const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusPreparing OrderStatus = "preparing"
	OrderStatusReady     OrderStatus = "ready"
	OrderStatusDelivered OrderStatus = "delivered"
)

type OrderLineItem struct {
	MenuItemID          string `bson:"menu_item_id" json:"menu_item_id" validate:"required"`
	Quantity            int    `bson:"quantity" json:"quantity" validate:"gt=0"`
	SpecialInstructions string `bson:"special_instructions" json:"special_instructions"`
}

type Order struct {
	ObjectID        primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID              string             `bson:"id" json:"id"`
	CustomerName    string             `bson:"customer_name" json:"customer_name"`
	CustomerPhone   string             `bson:"customer_phone" json:"customer_phone"`
	CustomerEmail   string             `bson:"customer_email" json:"customer_email"`
	Items           []OrderLineItem    `bson:"items" json:"items"`
	TotalAmount     float64            `bson:"total_amount" json:"total_amount"`
	OrderType       OrderType          `bson:"order_type" json:"order_type"`
	Status          OrderStatus        `bson:"status" json:"status"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	DeliveryAddress string             `bson:"delivery_address" json:"delivery_address"`
	SpecialNotes    string             `bson:"special_notes" json:"special_notes"`
}

// OrderCreate carries no total: the amount is always computed server side.
// Customer email is free text; nothing checks its format.
type OrderCreate struct {
	CustomerName    string          `json:"customer_name" validate:"required"`
	CustomerPhone   string          `json:"customer_phone" validate:"required"`
	CustomerEmail   string          `json:"customer_email"`
	Items           []OrderLineItem `json:"items" validate:"required,dive"`
	OrderType       OrderType       `json:"order_type" validate:"required"`
	DeliveryAddress string          `json:"delivery_address"`
	SpecialNotes    string          `json:"special_notes"`
}
