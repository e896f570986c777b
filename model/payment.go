package model

type CreatePayPalOrderInput struct {
	BookingId string `validate:"required" json:"bookingId"`
}

type CapturePayPalOrderInput struct {
	BookingId string `validate:"required" json:"bookingId"`
	OrderId   string `validate:"required" json:"orderId"`
}

// BookingEvent is published on Redis pub/sub for the admin live feed.
type BookingEvent struct {
	Type          string  `json:"type"` // booking_created, status_updated, payment_updated
	BookingId     string  `json:"bookingId"`
	ServiceTitle  string  `json:"serviceTitle"`
	CustomerName  string  `json:"customerName"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	TotalAmount   float64 `json:"totalAmount"`
}
