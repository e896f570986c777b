package helper

import (
	"context"
	"errors"
	"time"

	"hargeisa_vibes/constants"
	"hargeisa_vibes/model"
	"hargeisa_vibes/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrBookingNotFound      = errors.New("booking not found")
	ErrInvalidStatus        = errors.New("invalid booking status")
	ErrInvalidPaymentStatus = errors.New("invalid payment status")
	ErrTransitionNotAllowed = errors.New("status transition not allowed")
	ErrInvalidDate          = errors.New("invalid date format")
)

// BookingStore is the persistence surface the lifecycle manager needs.
// Implementations must exclude soft-deleted rows from every read.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
	GetByID(ctx context.Context, id string) (*model.Booking, error)
	UpdateStatus(ctx context.Context, id string, status model.BookingStatus, cancellationReason *string) error
	UpdatePayment(ctx context.Context, id string, status model.PaymentStatus, transactionId *string) error
	UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error
	SoftDelete(ctx context.Context, id string) error
	List(ctx context.Context, filter model.BookingFilter) (model.Bookings, error)
}

// PriceResolver resolves a booking reference ("deal-<id>" or a service id) to
// a title and unit price.
type PriceResolver interface {
	Resolve(ctx context.Context, ref string) (title string, unitPrice float64, err error)
}

type ReceiptSender interface {
	SendReceipt(to string, data utils.BookingReceiptData) error
}

type EventPublisher interface {
	Publish(ctx context.Context, event model.BookingEvent) error
}

// BookingManager owns the booking state transitions and the derived
// total-amount rule. Everything else in the system talks to bookings
// through it.
type BookingManager struct {
	store    BookingStore
	resolver PriceResolver
	receipts ReceiptSender
	events   EventPublisher
}

func NewBookingManager(store BookingStore, resolver PriceResolver, receipts ReceiptSender, events EventPublisher) *BookingManager {
	return &BookingManager{
		store:    store,
		resolver: resolver,
		receipts: receipts,
		events:   events,
	}
}

// Create resolves the reference, computes the total and persists a new
// pending booking. A failed lookup never blocks the booking: the title falls
// back to "Unknown Service" and the caller-supplied amount (default 0) is
// used. The second return value reports whether the receipt email went out.
func (m *BookingManager) Create(ctx context.Context, input model.CreateBookingInput) (*model.Booking, bool, error) {
	people := input.NumberOfPeople
	if people <= 0 {
		people = 1
	}

	travelDate, err := parseDate(input.TravelDate)
	if err != nil {
		return nil, false, ErrInvalidDate
	}
	bookingDate := time.Now()
	if input.BookingDate != "" {
		if d, err := parseDate(input.BookingDate); err == nil {
			bookingDate = d
		}
	}

	title := constants.UNKNOWN_SERVICE_TITLE
	total := input.TotalAmount
	if resolvedTitle, unitPrice, err := m.resolver.Resolve(ctx, input.ServiceID); err == nil {
		title = resolvedTitle
		total = unitPrice * float64(people)
	} else {
		utils.GetLogger().Warn("service lookup failed, creating booking fail-open",
			zap.String("serviceId", input.ServiceID), zap.Error(err))
	}

	booking := &model.Booking{
		ID:             uuid.NewString(),
		ServiceID:      input.ServiceID,
		ServiceTitle:   title,
		CustomerName:   input.CustomerName,
		CustomerEmail:  input.CustomerEmail,
		CustomerPhone:  input.CustomerPhone,
		BookingDate:    bookingDate,
		TravelDate:     travelDate,
		NumberOfPeople: people,
		TotalAmount:    total,
		Status:         model.BookingStatusPending,
		PaymentStatus:  model.PaymentStatusPending,
		PaymentMethod:  input.PaymentMethod,
		Notes:          input.Notes,
	}

	if err := m.store.Create(ctx, booking); err != nil {
		return nil, false, err
	}

	emailSent := false
	if m.receipts != nil {
		data := utils.BookingReceiptData{
			BookingID:      booking.ID,
			ServiceTitle:   booking.ServiceTitle,
			CustomerName:   booking.CustomerName,
			TravelDate:     booking.TravelDate.Format("02 Jan 2006"),
			NumberOfPeople: booking.NumberOfPeople,
			TotalAmount:    booking.TotalAmount,
			PaymentMethod:  booking.PaymentMethod,
		}
		if err := m.receipts.SendReceipt(booking.CustomerEmail, data); err != nil {
			utils.GetLogger().Warn("booking receipt email failed",
				zap.String("bookingId", booking.ID), zap.Error(err))
		} else {
			emailSent = true
		}
	}

	m.publish(ctx, "booking_created", booking)

	return booking, emailSent, nil
}

// UpdateStatus applies a status transition. A cancellation reason is only
// persisted when the new status is cancelled and a reason was supplied; an
// existing reason is never cleared.
func (m *BookingManager) UpdateStatus(ctx context.Context, id string, newStatus model.BookingStatus, cancellationReason *string) error {
	if !newStatus.Valid() {
		return ErrInvalidStatus
	}

	current, err := m.store.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if !current.Status.CanTransitionTo(newStatus) {
		return ErrTransitionNotAllowed
	}

	var reason *string
	if newStatus == model.BookingStatusCancelled && cancellationReason != nil && *cancellationReason != "" {
		reason = cancellationReason
	}

	if err := m.store.UpdateStatus(ctx, id, newStatus, reason); err != nil {
		return err
	}

	current.Status = newStatus
	m.publish(ctx, "status_updated", current)
	return nil
}

// UpdatePaymentStatus never touches the booking status; the two fields are
// deliberately independent. An empty transaction id is stored as null.
func (m *BookingManager) UpdatePaymentStatus(ctx context.Context, id string, newStatus model.PaymentStatus, transactionId string) error {
	if !newStatus.Valid() {
		return ErrInvalidPaymentStatus
	}

	current, err := m.store.GetByID(ctx, id)
	if err != nil {
		return err
	}

	var txn *string
	if transactionId != "" {
		txn = &transactionId
	}

	if err := m.store.UpdatePayment(ctx, id, newStatus, txn); err != nil {
		return err
	}

	current.PaymentStatus = newStatus
	m.publish(ctx, "payment_updated", current)
	return nil
}

// Update overwrites the customer/travel/amount/notes fields. Status and
// payment fields have their own operations and are never touched here.
func (m *BookingManager) Update(ctx context.Context, id string, input model.EditBookingInput) error {
	if _, err := m.store.GetByID(ctx, id); err != nil {
		return err
	}

	fields := map[string]interface{}{}
	if input.CustomerName != nil {
		fields["customer_name"] = *input.CustomerName
	}
	if input.CustomerEmail != nil {
		fields["customer_email"] = *input.CustomerEmail
	}
	if input.CustomerPhone != nil {
		fields["customer_phone"] = *input.CustomerPhone
	}
	if input.TravelDate != nil {
		d, err := parseDate(*input.TravelDate)
		if err != nil {
			return ErrInvalidDate
		}
		fields["travel_date"] = d
	}
	if input.NumberOfPeople != nil {
		fields["number_of_people"] = *input.NumberOfPeople
	}
	if input.TotalAmount != nil {
		fields["total_amount"] = *input.TotalAmount
	}
	if input.Notes != nil {
		fields["notes"] = *input.Notes
	}
	if len(fields) == 0 {
		return nil
	}

	return m.store.UpdateFields(ctx, id, fields)
}

func (m *BookingManager) SoftDelete(ctx context.Context, id string) error {
	if _, err := m.store.GetByID(ctx, id); err != nil {
		return err
	}
	return m.store.SoftDelete(ctx, id)
}

func (m *BookingManager) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	return m.store.GetByID(ctx, id)
}

// List returns non-deleted bookings matching all supplied filters, newest
// first. Search matches customer name or email only.
func (m *BookingManager) List(ctx context.Context, filter model.BookingFilter) (model.Bookings, error) {
	return m.store.List(ctx, filter)
}

func (m *BookingManager) publish(ctx context.Context, eventType string, b *model.Booking) {
	if m.events == nil {
		return
	}
	event := model.BookingEvent{
		Type:          eventType,
		BookingId:     b.ID,
		ServiceTitle:  b.ServiceTitle,
		CustomerName:  b.CustomerName,
		Status:        string(b.Status),
		PaymentStatus: string(b.PaymentStatus),
		TotalAmount:   b.TotalAmount,
	}
	if err := m.events.Publish(ctx, event); err != nil {
		utils.GetLogger().Warn("booking event publish failed",
			zap.String("bookingId", b.ID), zap.Error(err))
	}
}

func parseDate(s string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}
