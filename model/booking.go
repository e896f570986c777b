package model

import (
	"time"

	"gorm.io/gorm"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
	BookingStatusCompleted BookingStatus = "completed"
	BookingStatusRefunded  BookingStatus = "refunded"
)

type PaymentStatus string

const (
	PaymentStatusPending           PaymentStatus = "pending"
	PaymentStatusPaid              PaymentStatus = "paid"
	PaymentStatusFailed            PaymentStatus = "failed"
	PaymentStatusRefunded          PaymentStatus = "refunded"
	PaymentStatusPartiallyRefunded PaymentStatus = "partially_refunded"
)

var BookingStatuses = []BookingStatus{
	BookingStatusPending,
	BookingStatusConfirmed,
	BookingStatusCancelled,
	BookingStatusCompleted,
	BookingStatusRefunded,
}

var PaymentStatuses = []PaymentStatus{
	PaymentStatusPending,
	PaymentStatusPaid,
	PaymentStatusFailed,
	PaymentStatusRefunded,
	PaymentStatusPartiallyRefunded,
}

// StatusTransitions is the explicit transition table. Every status may
// currently move to every other (the admin UI is trusted); tightening a
// transition later is a table edit, not new code.
var StatusTransitions = map[BookingStatus][]BookingStatus{
	BookingStatusPending:   {BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted, BookingStatusRefunded},
	BookingStatusConfirmed: {BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted, BookingStatusRefunded},
	BookingStatusCancelled: {BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted, BookingStatusRefunded},
	BookingStatusCompleted: {BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted, BookingStatusRefunded},
	BookingStatusRefunded:  {BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled, BookingStatusCompleted, BookingStatusRefunded},
}

func (s BookingStatus) Valid() bool {
	for _, v := range BookingStatuses {
		if s == v {
			return true
		}
	}
	return false
}

func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, v := range StatusTransitions[s] {
		if v == next {
			return true
		}
	}
	return false
}

func (s PaymentStatus) Valid() bool {
	for _, v := range PaymentStatuses {
		if s == v {
			return true
		}
	}
	return false
}

type Booking struct {
	ID                 string         `gorm:"primaryKey;size:36" json:"id"`
	ServiceID          string         `gorm:"size:64;not null" json:"serviceId"`
	ServiceTitle       string         `json:"serviceTitle"` // snapshot taken at creation, "Unknown Service" when unresolved
	CustomerName       string         `gorm:"not null" json:"customerName"`
	CustomerEmail      string         `gorm:"not null;index" json:"customerEmail"`
	CustomerPhone      string         `json:"customerPhone"`
	BookingDate        time.Time      `json:"bookingDate"`
	TravelDate         time.Time      `json:"travelDate"`
	NumberOfPeople     int            `gorm:"not null;default:1" json:"numberOfPeople"`
	TotalAmount        float64        `gorm:"not null;default:0" json:"totalAmount"`
	Status             BookingStatus  `gorm:"size:20;not null;default:pending;index" json:"status"`
	PaymentStatus      PaymentStatus  `gorm:"size:20;not null;default:pending;index" json:"paymentStatus"`
	PaymentMethod      string         `gorm:"size:30" json:"paymentMethod"`
	TransactionID      *string        `gorm:"size:64" json:"transactionId"`
	Notes              *string        `json:"notes"`
	CancellationReason *string        `json:"cancellationReason"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
	DeletedAt          gorm.DeletedAt `gorm:"index" json:"-"`
}

type Bookings []Booking

type CreateBookingInput struct {
	ServiceID      string  `validate:"required" json:"serviceId"`
	CustomerName   string  `validate:"required" json:"customerName"`
	CustomerEmail  string  `validate:"required,email" json:"customerEmail"`
	CustomerPhone  string  `json:"customerPhone"`
	BookingDate    string  `json:"bookingDate"`
	TravelDate     string  `validate:"required" json:"travelDate"`
	NumberOfPeople int     `validate:"omitempty,min=1" json:"numberOfPeople"`
	TotalAmount    float64 `validate:"omitempty,min=0" json:"totalAmount"`
	PaymentMethod  string  `json:"paymentMethod"`
	Notes          *string `json:"notes"`
}

type UpdateBookingStatusInput struct {
	Status             string  `validate:"required" json:"status"`
	CancellationReason *string `json:"cancellationReason"`
}

type UpdateBookingPaymentInput struct {
	PaymentStatus string `validate:"required" json:"paymentStatus"`
	TransactionID string `json:"transactionId"`
}

// EditBookingInput overwrites the customer/travel/amount/notes fields only;
// status fields have their own endpoints.
type EditBookingInput struct {
	CustomerName   *string  `json:"customerName"`
	CustomerEmail  *string  `validate:"omitempty,email" json:"customerEmail"`
	CustomerPhone  *string  `json:"customerPhone"`
	TravelDate     *string  `json:"travelDate"`
	NumberOfPeople *int     `validate:"omitempty,min=1" json:"numberOfPeople"`
	TotalAmount    *float64 `validate:"omitempty,min=0" json:"totalAmount"`
	Notes          *string  `json:"notes"`
}

type BookingFilter struct {
	Status        string `query:"status"`
	PaymentStatus string `query:"paymentStatus"`
	CustomerEmail string `query:"customerEmail"`
	Search        string `query:"search"`
}
