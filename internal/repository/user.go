package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mehanizm/airtable"
	"github.com/pixelplot/ShootBooker/internal/domain"
	"github.com/wb-go/wbf/retry"
)

type UserRepository struct {
	table    *airtable.Table
	strategy retry.Strategy
}

func NewUserRepo(client *airtable.Client, baseID, tableName string, strategy retry.Strategy) *UserRepository {
	return &UserRepository{
		table:    client.GetTable(baseID, tableName),
		strategy: strategy,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	// The record store has no unique constraint, so the best we can do is
	// check first. Registration races are tolerated.
	if _, err := r.GetByEmail(ctx, u.Email); err == nil {
		return domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return err
	}

	u.CreatedAt = time.Now().UTC()

	var res *airtable.Records
	err := retry.Do(func() error {
		var err error
		res, err = r.table.AddRecords(&airtable.Records{
			Records: []*airtable.Record{{Fields: encodeUser(u)}},
		})
		return err
	}, r.strategy)
	if err != nil {
		return fmt.Errorf("insert user: %w", err)
	}
	if len(res.Records) == 0 {
		return fmt.Errorf("insert user: empty response")
	}

	u.RecordID = res.Records[0].ID
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	formula := fmt.Sprintf("LOWER({%s}) = '%s'", fldUserEmail, escapeFormula(strings.ToLower(email)))

	var res *airtable.Records
	err := retry.Do(func() error {
		var err error
		res, err = r.table.GetRecords().WithFilterFormula(formula).Do()
		return err
	}, r.strategy)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}
	if len(res.Records) == 0 {
		return nil, domain.ErrUserNotFound
	}

	return decodeUser(res.Records[0]), nil
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	if u.RecordID == "" {
		return fmt.Errorf("update user: missing record id")
	}

	err := retry.Do(func() error {
		_, err := r.table.UpdateRecords(&airtable.Records{
			Records: []*airtable.Record{{ID: u.RecordID, Fields: encodeUser(u)}},
		})
		return err
	}, r.strategy)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	return nil
}

func encodeUser(u *domain.User) map[string]interface{} {
	return map[string]interface{}{
		fldUserEmail:        u.Email,
		fldUserPasswordHash: u.PasswordHash,
		fldUserName:         u.Name,
		fldUserPhone:        u.Phone,
		fldUserRole:         string(u.Role),
		fldUserStatus:       string(u.Status),
		fldUserPointsManual: u.PointsManual,
		fldUserPointsUsed:   u.PointsRedeemed,
		fldUserSpend:        u.LifetimeSpend,
		fldUserCanReserve:   u.CanReserveWithoutPayment,
		fldUserCreatedAt:    u.CreatedAt.Format(tsLayout),
	}
}

func decodeUser(rec *airtable.Record) *domain.User {
	f := rec.Fields

	u := &domain.User{
		RecordID:                 rec.ID,
		Email:                    fieldString(f, fldUserEmail),
		PasswordHash:             fieldString(f, fldUserPasswordHash),
		Name:                     fieldString(f, fldUserName),
		Phone:                    fieldString(f, fldUserPhone),
		Role:                     domain.UserRole(fieldString(f, fldUserRole)),
		Status:                   domain.UserStatus(fieldString(f, fldUserStatus)),
		PointsManual:             fieldInt(f, fldUserPointsManual),
		PointsRedeemed:           fieldInt(f, fldUserPointsUsed),
		LifetimeSpend:            fieldFloat(f, fldUserSpend),
		CanReserveWithoutPayment: fieldBool(f, fldUserCanReserve),
	}

	if v := fieldString(f, fldUserCreatedAt); v != "" {
		if ts, err := time.Parse(tsLayout, v); err == nil {
			u.CreatedAt = ts
		}
	}

	return u
}
