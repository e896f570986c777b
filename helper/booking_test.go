package helper

import (
	"context"
	"errors"
	"testing"

	"hargeisa_vibes/model"
	"hargeisa_vibes/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockStore struct {
	mock.Mock
}

func (m *mockStore) Create(ctx context.Context, b *model.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *mockStore) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	args := m.Called(ctx, id)
	if b := args.Get(0); b != nil {
		return b.(*model.Booking), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockStore) UpdateStatus(ctx context.Context, id string, status model.BookingStatus, cancellationReason *string) error {
	args := m.Called(ctx, id, status, cancellationReason)
	return args.Error(0)
}

func (m *mockStore) UpdatePayment(ctx context.Context, id string, status model.PaymentStatus, transactionId *string) error {
	args := m.Called(ctx, id, status, transactionId)
	return args.Error(0)
}

func (m *mockStore) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	args := m.Called(ctx, id, fields)
	return args.Error(0)
}

func (m *mockStore) SoftDelete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockStore) List(ctx context.Context, filter model.BookingFilter) (model.Bookings, error) {
	args := m.Called(ctx, filter)
	if b := args.Get(0); b != nil {
		return b.(model.Bookings), args.Error(1)
	}
	return nil, args.Error(1)
}

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) Resolve(ctx context.Context, ref string) (string, float64, error) {
	args := m.Called(ctx, ref)
	return args.String(0), args.Get(1).(float64), args.Error(2)
}

type mockMailer struct {
	mock.Mock
}

func (m *mockMailer) SendReceipt(to string, data utils.BookingReceiptData) error {
	args := m.Called(to, data)
	return args.Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, event model.BookingEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func newTestManager() (*BookingManager, *mockStore, *mockResolver, *mockMailer, *mockPublisher) {
	store := new(mockStore)
	resolver := new(mockResolver)
	mailer := new(mockMailer)
	publisher := new(mockPublisher)
	return NewBookingManager(store, resolver, mailer, publisher), store, resolver, mailer, publisher
}

func validInput() model.CreateBookingInput {
	return model.CreateBookingInput{
		ServiceID:      "deal-42",
		CustomerName:   "Amina Yusuf",
		CustomerEmail:  "amina@example.com",
		TravelDate:     "2026-09-15",
		NumberOfPeople: 3,
		PaymentMethod:  "paypal",
	}
}

func TestCreateComputesTotalFromUnitPrice(t *testing.T) {
	m, store, resolver, mailer, publisher := newTestManager()

	resolver.On("Resolve", mock.Anything, "deal-42").Return("Laas Geel Day Trip", 50.0, nil)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendReceipt", "amina@example.com", mock.Anything).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	booking, emailSent, err := m.Create(context.Background(), validInput())

	require.NoError(t, err)
	assert.True(t, emailSent)
	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "Laas Geel Day Trip", booking.ServiceTitle)
	assert.Equal(t, 150.0, booking.TotalAmount)
	assert.Equal(t, model.BookingStatusPending, booking.Status)
	assert.Equal(t, model.PaymentStatusPending, booking.PaymentStatus)

	publisher.AssertCalled(t, "Publish", mock.Anything, mock.MatchedBy(func(e model.BookingEvent) bool {
		return e.Type == "booking_created" && e.BookingId == booking.ID
	}))
}

func TestCreateFailsOpenWhenLookupFails(t *testing.T) {
	m, store, resolver, mailer, publisher := newTestManager()

	input := validInput()
	input.ServiceID = "deal-9999"
	input.TotalAmount = 75

	resolver.On("Resolve", mock.Anything, "deal-9999").Return("", 0.0, errors.New("no such deal"))
	store.On("Create", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendReceipt", mock.Anything, mock.Anything).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	booking, _, err := m.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, "Unknown Service", booking.ServiceTitle)
	assert.Equal(t, 75.0, booking.TotalAmount)
}

func TestCreateDefaultsPeopleToOne(t *testing.T) {
	m, store, resolver, mailer, publisher := newTestManager()

	input := validInput()
	input.NumberOfPeople = 0

	resolver.On("Resolve", mock.Anything, "deal-42").Return("Laas Geel Day Trip", 50.0, nil)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendReceipt", mock.Anything, mock.Anything).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	booking, _, err := m.Create(context.Background(), input)

	require.NoError(t, err)
	assert.Equal(t, 1, booking.NumberOfPeople)
	assert.Equal(t, 50.0, booking.TotalAmount)
}

func TestCreateRejectsBadTravelDate(t *testing.T) {
	m, store, _, _, _ := newTestManager()

	input := validInput()
	input.TravelDate = "next tuesday"

	_, _, err := m.Create(context.Background(), input)

	assert.ErrorIs(t, err, ErrInvalidDate)
	store.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCreateSurvivesReceiptFailure(t *testing.T) {
	m, store, resolver, mailer, publisher := newTestManager()

	resolver.On("Resolve", mock.Anything, "deal-42").Return("Laas Geel Day Trip", 50.0, nil)
	store.On("Create", mock.Anything, mock.Anything).Return(nil)
	mailer.On("SendReceipt", mock.Anything, mock.Anything).Return(errors.New("smtp down"))
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	booking, emailSent, err := m.Create(context.Background(), validInput())

	require.NoError(t, err)
	assert.False(t, emailSent)
	assert.NotNil(t, booking)
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	m, store, _, _, _ := newTestManager()

	err := m.UpdateStatus(context.Background(), "b-1", model.BookingStatus("shipped"), nil)

	assert.ErrorIs(t, err, ErrInvalidStatus)
	store.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUpdateStatusNotFoundLeavesNothingChanged(t *testing.T) {
	m, store, _, _, _ := newTestManager()

	store.On("GetByID", mock.Anything, "missing").Return(nil, ErrBookingNotFound)

	err := m.UpdateStatus(context.Background(), "missing", model.BookingStatusConfirmed, nil)

	assert.ErrorIs(t, err, ErrBookingNotFound)
	store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateStatusAllTransitionsAllowed(t *testing.T) {
	for _, from := range model.BookingStatuses {
		for _, to := range model.BookingStatuses {
			m, store, _, _, publisher := newTestManager()

			store.On("GetByID", mock.Anything, "b-1").Return(&model.Booking{ID: "b-1", Status: from}, nil)
			store.On("UpdateStatus", mock.Anything, "b-1", to, mock.Anything).Return(nil)
			publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

			err := m.UpdateStatus(context.Background(), "b-1", to, nil)

			assert.NoError(t, err, "%s -> %s", from, to)
		}
	}
}

func TestUpdateStatusCancellationReasonOnlyWhenCancelling(t *testing.T) {
	reason := "customer changed plans"

	t.Run("persisted on cancel", func(t *testing.T) {
		m, store, _, _, publisher := newTestManager()

		store.On("GetByID", mock.Anything, "b-1").Return(&model.Booking{ID: "b-1", Status: model.BookingStatusConfirmed}, nil)
		store.On("UpdateStatus", mock.Anything, "b-1", model.BookingStatusCancelled, &reason).Return(nil)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		err := m.UpdateStatus(context.Background(), "b-1", model.BookingStatusCancelled, &reason)

		require.NoError(t, err)
		store.AssertCalled(t, "UpdateStatus", mock.Anything, "b-1", model.BookingStatusCancelled, &reason)
	})

	t.Run("ignored on other statuses", func(t *testing.T) {
		m, store, _, _, publisher := newTestManager()

		store.On("GetByID", mock.Anything, "b-1").Return(&model.Booking{ID: "b-1", Status: model.BookingStatusPending}, nil)
		store.On("UpdateStatus", mock.Anything, "b-1", model.BookingStatusConfirmed, (*string)(nil)).Return(nil)
		publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

		err := m.UpdateStatus(context.Background(), "b-1", model.BookingStatusConfirmed, &reason)

		require.NoError(t, err)
		store.AssertCalled(t, "UpdateStatus", mock.Anything, "b-1", model.BookingStatusConfirmed, (*string)(nil))
	})
}

func TestUpdatePaymentStatusLeavesBookingStatusAlone(t *testing.T) {
	m, store, _, _, publisher := newTestManager()

	store.On("GetByID", mock.Anything, "b-1").Return(&model.Booking{ID: "b-1", Status: model.BookingStatusConfirmed, PaymentStatus: model.PaymentStatusPending}, nil)
	store.On("UpdatePayment", mock.Anything, "b-1", model.PaymentStatusPaid, mock.Anything).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	err := m.UpdatePaymentStatus(context.Background(), "b-1", model.PaymentStatusPaid, "TXN-1")

	require.NoError(t, err)
	store.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	publisher.AssertCalled(t, "Publish", mock.Anything, mock.MatchedBy(func(e model.BookingEvent) bool {
		return e.Type == "payment_updated" && e.Status == string(model.BookingStatusConfirmed)
	}))
}

func TestUpdatePaymentStatusEmptyTransactionStoredAsNull(t *testing.T) {
	m, store, _, _, publisher := newTestManager()

	store.On("GetByID", mock.Anything, "b-1").Return(&model.Booking{ID: "b-1"}, nil)
	store.On("UpdatePayment", mock.Anything, "b-1", model.PaymentStatusFailed, (*string)(nil)).Return(nil)
	publisher.On("Publish", mock.Anything, mock.Anything).Return(nil)

	err := m.UpdatePaymentStatus(context.Background(), "b-1", model.PaymentStatusFailed, "")

	require.NoError(t, err)
	store.AssertCalled(t, "UpdatePayment", mock.Anything, "b-1", model.PaymentStatusFailed, (*string)(nil))
}

func TestUpdatePaymentStatusRejectsUnknownStatus(t *testing.T) {
	m, store, _, _, _ := newTestManager()

	err := m.UpdatePaymentStatus(context.Background(), "b-1", model.PaymentStatus("chargeback"), "")

	assert.ErrorIs(t, err, ErrInvalidPaymentStatus)
	store.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestUpdateOverwritesOnlySuppliedFields(t *testing.T) {
	m, store, _, _, _ := newTestManager()

	store.On("GetByID", mock.Anything, "b-1").Return(&model.Booking{ID: "b-1"}, nil)
	store.On("UpdateFields", mock.Anything, "b-1", mock.MatchedBy(func(fields map[string]interface{}) bool {
		_, hasName := fields["customer_name"]
		_, hasStatus := fields["status"]
		return hasName && !hasStatus && len(fields) == 2
	})).Return(nil)

	name := "Hassan Abdi"
	people := 4
	err := m.Update(context.Background(), "b-1", model.EditBookingInput{
		CustomerName:   &name,
		NumberOfPeople: &people,
	})

	require.NoError(t, err)
}

func TestUpdateRejectsBadTravelDate(t *testing.T) {
	m, store, _, _, _ := newTestManager()

	store.On("GetByID", mock.Anything, "b-1").Return(&model.Booking{ID: "b-1"}, nil)

	bad := "15/09/2026"
	err := m.Update(context.Background(), "b-1", model.EditBookingInput{TravelDate: &bad})

	assert.ErrorIs(t, err, ErrInvalidDate)
	store.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateWithNoFieldsIsANoOp(t *testing.T) {
	m, store, _, _, _ := newTestManager()

	store.On("GetByID", mock.Anything, "b-1").Return(&model.Booking{ID: "b-1"}, nil)

	err := m.Update(context.Background(), "b-1", model.EditBookingInput{})

	require.NoError(t, err)
	store.AssertNotCalled(t, "UpdateFields", mock.Anything, mock.Anything, mock.Anything)
}

func TestSoftDeleteNotFound(t *testing.T) {
	m, store, _, _, _ := newTestManager()

	store.On("GetByID", mock.Anything, "missing").Return(nil, ErrBookingNotFound)

	err := m.SoftDelete(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrBookingNotFound)
	store.AssertNotCalled(t, "SoftDelete", mock.Anything, mock.Anything)
}

func TestListPassesFilterThrough(t *testing.T) {
	m, store, _, _, _ := newTestManager()

	filter := model.BookingFilter{Status: "confirmed", CustomerEmail: "amina@example.com"}
	store.On("List", mock.Anything, filter).Return(model.Bookings{{ID: "b-1"}}, nil)

	bookings, err := m.List(context.Background(), filter)

	require.NoError(t, err)
	assert.Len(t, bookings, 1)
}
