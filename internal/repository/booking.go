package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mehanizm/airtable"
	"github.com/pixelplot/ShootBooker/internal/domain"
	"github.com/wb-go/wbf/retry"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
	tsLayout   = time.RFC3339
)

type BookingRepository struct {
	table    *airtable.Table
	loc      *time.Location
	strategy retry.Strategy
}

func NewBookingRepo(client *airtable.Client, baseID, tableName string, loc *time.Location, strategy retry.Strategy) *BookingRepository {
	return &BookingRepository{
		table:    client.GetTable(baseID, tableName),
		loc:      loc,
		strategy: strategy,
	}
}

// escapeFormula quotes a value for interpolation into a filter formula.
func escapeFormula(v string) string {
	return strings.ReplaceAll(v, "'", "\\'")
}

func (r *BookingRepository) Create(ctx context.Context, b *domain.Booking) error {
	now := time.Now().UTC()
	b.CreatedAt = now
	b.UpdatedAt = now

	var res *airtable.Records
	err := retry.Do(func() error {
		var err error
		res, err = r.table.AddRecords(&airtable.Records{
			Records: []*airtable.Record{{Fields: r.encode(b)}},
		})
		return err
	}, r.strategy)
	if err != nil {
		return fmt.Errorf("insert booking: %w", err)
	}
	if len(res.Records) == 0 {
		return fmt.Errorf("insert booking: empty response")
	}

	b.RecordID = res.Records[0].ID
	return nil
}

func (r *BookingRepository) GetByRef(ctx context.Context, ref string) (*domain.Booking, error) {
	formula := fmt.Sprintf("{%s} = '%s'", fldRef, escapeFormula(ref))

	var res *airtable.Records
	err := retry.Do(func() error {
		var err error
		res, err = r.table.GetRecords().WithFilterFormula(formula).Do()
		return err
	}, r.strategy)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}
	if len(res.Records) == 0 {
		return nil, domain.ErrBookingNotFound
	}

	return r.decode(res.Records[0])
}

func (r *BookingRepository) Update(ctx context.Context, b *domain.Booking) error {
	if b.RecordID == "" {
		return fmt.Errorf("update booking: missing record id")
	}
	b.UpdatedAt = time.Now().UTC()

	err := retry.Do(func() error {
		_, err := r.table.UpdateRecords(&airtable.Records{
			Records: []*airtable.Record{{ID: b.RecordID, Fields: r.encode(b)}},
		})
		return err
	}, r.strategy)
	if err != nil {
		return fmt.Errorf("update booking: %w", err)
	}

	return nil
}

// ListForReminder returns non-cancelled, not-yet-reminded bookings scheduled
// in [from, to). Date and time live in separate string fields, so the formula
// narrows by date and the precise window check happens here.
func (r *BookingRepository) ListForReminder(ctx context.Context, from, to time.Time) ([]*domain.Booking, error) {
	fromDate := from.In(r.loc).Format(dateLayout)
	toDate := to.In(r.loc).Format(dateLayout)

	formula := fmt.Sprintf(
		"AND({%s} != '%s', NOT({%s}), OR({%s} = '%s', {%s} = '%s'))",
		fldBookingStatus, domain.BookingStatusCancelled,
		fldReminderSent,
		fldDate, fromDate, fldDate, toDate,
	)

	var res *airtable.Records
	err := retry.Do(func() error {
		var err error
		res, err = r.table.GetRecords().WithFilterFormula(formula).Do()
		return err
	}, r.strategy)
	if err != nil {
		return nil, fmt.Errorf("list bookings for reminder: %w", err)
	}

	var out []*domain.Booking
	for _, rec := range res.Records {
		b, err := r.decode(rec)
		if err != nil {
			return nil, err
		}
		if !b.ScheduledAt.Before(from) && b.ScheduledAt.Before(to) {
			out = append(out, b)
		}
	}

	return out, nil
}

func (r *BookingRepository) MarkReminderSent(ctx context.Context, ref string) error {
	b, err := r.GetByRef(ctx, ref)
	if err != nil {
		return err
	}

	err = retry.Do(func() error {
		_, err := r.table.UpdateRecords(&airtable.Records{
			Records: []*airtable.Record{{
				ID: b.RecordID,
				Fields: map[string]interface{}{
					fldReminderSent: true,
					fldUpdatedAt:    time.Now().UTC().Format(tsLayout),
				},
			}},
		})
		return err
	}, r.strategy)
	if err != nil {
		return fmt.Errorf("mark reminder sent: %w", err)
	}

	return nil
}

func (r *BookingRepository) encode(b *domain.Booking) map[string]interface{} {
	local := b.ScheduledAt.In(r.loc)
	fields := map[string]interface{}{
		fldRef:             b.Ref,
		fldPostcode:        b.Postcode,
		fldAddress:         b.PropertyAddress,
		fldTerritory:       b.Territory,
		fldDate:            local.Format(dateLayout),
		fldTime:            local.Format(timeLayout),
		fldService:         b.Service,
		fldBedrooms:        b.Bedrooms,
		fldClientName:      b.ClientName,
		fldClientEmail:     b.ClientEmail,
		fldClientPhone:     b.ClientPhone,
		fldTotalPrice:      b.TotalPrice,
		fldDiscountCode:    b.DiscountCode,
		fldDiscountAmount:  b.DiscountAmount,
		fldFinalPrice:      b.FinalPrice,
		fldBookingStatus:   string(b.Status),
		fldPaymentStatus:   string(b.PaymentStatus),
		fldCustomerID:      b.PaymentCustomerID,
		fldPaymentMethodID: b.PaymentMethodID,
		fldPaymentIntentID: b.PaymentIntentID,
		fldRefundID:        b.RefundID,
		fldCheckoutID:      b.CheckoutSessionID,
		fldCancelReason:    b.CancellationReason,
		fldCancelCharge:    b.CancellationCharge,
		fldPrevService:     b.PreviousService,
		fldPrevPrice:       b.PreviousPrice,
		fldReminderSent:    b.ReminderSent,
		fldManualReview:    b.NeedsManualReview,
		fldCreatedAt:       b.CreatedAt.Format(tsLayout),
		fldUpdatedAt:       b.UpdatedAt.Format(tsLayout),
	}

	if b.CancelledAt != nil {
		fields[fldCancelDate] = b.CancelledAt.In(r.loc).Format(dateLayout)
	}
	if b.OriginalScheduledAt != nil {
		orig := b.OriginalScheduledAt.In(r.loc)
		fields[fldOriginalDate] = orig.Format(dateLayout)
		fields[fldOriginalTime] = orig.Format(timeLayout)
	}

	return fields
}

func (r *BookingRepository) decode(rec *airtable.Record) (*domain.Booking, error) {
	f := rec.Fields

	scheduledAt, err := domain.CombineDateTime(fieldString(f, fldDate), fieldString(f, fldTime), r.loc)
	if err != nil {
		return nil, fmt.Errorf("decode booking %s: schedule: %w", fieldString(f, fldRef), err)
	}

	b := &domain.Booking{
		RecordID:           rec.ID,
		Ref:                fieldString(f, fldRef),
		Postcode:           fieldString(f, fldPostcode),
		PropertyAddress:    fieldString(f, fldAddress),
		Territory:          fieldString(f, fldTerritory),
		ScheduledAt:        scheduledAt,
		Service:            fieldString(f, fldService),
		Bedrooms:           fieldInt(f, fldBedrooms),
		ClientName:         fieldString(f, fldClientName),
		ClientEmail:        fieldString(f, fldClientEmail),
		ClientPhone:        fieldString(f, fldClientPhone),
		TotalPrice:         fieldFloat(f, fldTotalPrice),
		DiscountCode:       fieldString(f, fldDiscountCode),
		DiscountAmount:     fieldFloat(f, fldDiscountAmount),
		FinalPrice:         fieldFloat(f, fldFinalPrice),
		Status:             domain.BookingStatus(fieldString(f, fldBookingStatus)),
		PaymentStatus:      domain.PaymentStatus(fieldString(f, fldPaymentStatus)),
		PaymentCustomerID:  fieldString(f, fldCustomerID),
		PaymentMethodID:    fieldString(f, fldPaymentMethodID),
		PaymentIntentID:    fieldString(f, fldPaymentIntentID),
		RefundID:           fieldString(f, fldRefundID),
		CheckoutSessionID:  fieldString(f, fldCheckoutID),
		CancellationReason: fieldString(f, fldCancelReason),
		CancellationCharge: fieldFloat(f, fldCancelCharge),
		PreviousService:    fieldString(f, fldPrevService),
		PreviousPrice:      fieldFloat(f, fldPrevPrice),
		ReminderSent:       fieldBool(f, fldReminderSent),
		NeedsManualReview:  fieldBool(f, fldManualReview),
	}

	if v := fieldString(f, fldCancelDate); v != "" {
		if d, err := time.ParseInLocation(dateLayout, v, r.loc); err == nil {
			b.CancelledAt = &d
		}
	}
	if d, t := fieldString(f, fldOriginalDate), fieldString(f, fldOriginalTime); d != "" && t != "" {
		if orig, err := domain.CombineDateTime(d, t, r.loc); err == nil {
			b.OriginalScheduledAt = &orig
		}
	}
	if v := fieldString(f, fldCreatedAt); v != "" {
		if ts, err := time.Parse(tsLayout, v); err == nil {
			b.CreatedAt = ts
		}
	}
	if v := fieldString(f, fldUpdatedAt); v != "" {
		if ts, err := time.Parse(tsLayout, v); err == nil {
			b.UpdatedAt = ts
		}
	}

	return b, nil
}
