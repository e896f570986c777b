package database

import (
	"context"
	"errors"

	"hargeisa_vibes/helper"
	"hargeisa_vibes/model"

	"gorm.io/gorm"
)

// GormBookingStore is the MySQL-backed booking store. Soft deletes use
// gorm.DeletedAt, so every query here automatically excludes deleted rows.
type GormBookingStore struct{}

func NewBookingStore() *GormBookingStore {
	return &GormBookingStore{}
}

func (s *GormBookingStore) Create(ctx context.Context, b *model.Booking) error {
	return DB.WithContext(ctx).Create(b).Error
}

func (s *GormBookingStore) GetByID(ctx context.Context, id string) (*model.Booking, error) {
	var b model.Booking
	if err := DB.WithContext(ctx).First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.ErrBookingNotFound
		}
		return nil, err
	}
	return &b, nil
}

func (s *GormBookingStore) UpdateStatus(ctx context.Context, id string, status model.BookingStatus, cancellationReason *string) error {
	updates := map[string]interface{}{"status": status}
	if cancellationReason != nil {
		updates["cancellation_reason"] = *cancellationReason
	}
	return s.applyUpdates(ctx, id, updates)
}

func (s *GormBookingStore) UpdatePayment(ctx context.Context, id string, status model.PaymentStatus, transactionId *string) error {
	// transactionId nil means store NULL, not "leave unchanged"
	updates := map[string]interface{}{
		"payment_status": status,
		"transaction_id": transactionId,
	}
	return s.applyUpdates(ctx, id, updates)
}

func (s *GormBookingStore) UpdateFields(ctx context.Context, id string, fields map[string]interface{}) error {
	return s.applyUpdates(ctx, id, fields)
}

func (s *GormBookingStore) applyUpdates(ctx context.Context, id string, updates map[string]interface{}) error {
	result := DB.WithContext(ctx).Model(&model.Booking{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return helper.ErrBookingNotFound
	}
	return nil
}

func (s *GormBookingStore) SoftDelete(ctx context.Context, id string) error {
	result := DB.WithContext(ctx).Delete(&model.Booking{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return helper.ErrBookingNotFound
	}
	return nil
}

func (s *GormBookingStore) List(ctx context.Context, filter model.BookingFilter) (model.Bookings, error) {
	query := DB.WithContext(ctx).Model(&model.Booking{})

	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.PaymentStatus != "" {
		query = query.Where("payment_status = ?", filter.PaymentStatus)
	}
	if filter.CustomerEmail != "" {
		query = query.Where("customer_email = ?", filter.CustomerEmail)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		query = query.Where("customer_name LIKE ? OR customer_email LIKE ?", like, like)
	}

	var bookings model.Bookings
	if err := query.Order("created_at desc").Find(&bookings).Error; err != nil {
		return nil, err
	}
	return bookings, nil
}

var _ helper.BookingStore = (*GormBookingStore)(nil)
