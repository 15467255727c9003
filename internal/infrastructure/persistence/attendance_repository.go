package persistence

import (
	"context"
	"errors"

	"github.com/culturehub/backend/internal/domain/attendance"
	"github.com/culturehub/backend/internal/domain/shared"
	"github.com/culturehub/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormAttendanceRepository implements attendance.Repository using GORM
type GormAttendanceRepository struct {
	db *gorm.DB
}

// NewGormAttendanceRepository creates a new GormAttendanceRepository
func NewGormAttendanceRepository(db *gorm.DB) *GormAttendanceRepository {
	return &GormAttendanceRepository{db: db}
}

// FindByID finds an attendance mark by ID
func (r *GormAttendanceRepository) FindByID(ctx context.Context, id uuid.UUID) (*attendance.Attendance, error) {
	var m models.AttendanceModel
	if err := r.db.WithContext(ctx).First(&m, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err, "Attendance")
	}
	return m.ToDomain(), nil
}

// FindByIDForUpdate loads the mark row with SELECT ... FOR UPDATE
func (r *GormAttendanceRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*attendance.Attendance, error) {
	var m models.AttendanceModel
	if err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&m, "id = ?", id).Error; err != nil {
		return nil, translateNotFound(err, "Attendance")
	}
	return m.ToDomain(), nil
}

// ExistsForScheduleAndClient checks for an existing mark of the client on the schedule
func (r *GormAttendanceRepository) ExistsForScheduleAndClient(ctx context.Context, scheduleID, clientID uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.AttendanceModel{}).
		Where("schedule_id = ? AND client_id = ?", scheduleID, clientID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new mark. The unique (schedule_id, client_id) index backs
// up the service's existence check when two requests race.
func (r *GormAttendanceRepository) Create(ctx context.Context, a *attendance.Attendance) error {
	err := r.db.WithContext(ctx).Create(models.AttendanceModelFromDomain(a)).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return attendance.ErrDuplicate
	}
	return err
}

// Save updates the mutable columns when the stored version is the one the
// mark was loaded with. It never inserts, so a mark deleted meanwhile stays deleted.
func (r *GormAttendanceRepository) Save(ctx context.Context, a *attendance.Attendance) error {
	result := r.db.WithContext(ctx).
		Model(&models.AttendanceModel{}).
		Where("id = ? AND version = ?", a.ID, a.Version-1).
		Updates(map[string]any{
			"status":                a.Status,
			"subscription_id":       a.SubscriptionID,
			"subscription_deducted": a.SubscriptionDeducted,
			"marked_by":             a.MarkedBy,
			"marked_at":             a.MarkedAt,
			"notes":                 a.Notes,
			"version":               a.Version,
			"updated_at":            a.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrConcurrencyConflict
	}
	return nil
}

// Delete removes a mark
func (r *GormAttendanceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.AttendanceModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.NotFound("Attendance")
	}
	return nil
}

// CountDeductedPresent counts PRESENT marks that consumed a visit of the subscription
func (r *GormAttendanceRepository) CountDeductedPresent(ctx context.Context, subscriptionID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.AttendanceModel{}).
		Where("subscription_id = ? AND status = ? AND subscription_deducted = ?",
			subscriptionID, attendance.StatusPresent, true).
		Count(&count).Error
	return count, err
}

type statusCountRow struct {
	Status attendance.Status
	Count  int64
}

// CountByStatusForClient groups a client's marks by status over the classes in period
func (r *GormAttendanceRepository) CountByStatusForClient(ctx context.Context, clientID uuid.UUID, period shared.DateRange) (attendance.StatusCounts, error) {
	query := r.db.WithContext(ctx).
		Table("attendances").
		Select("attendances.status AS status, COUNT(*) AS count").
		Joins("JOIN schedules ON schedules.id = attendances.schedule_id").
		Where("attendances.client_id = ?", clientID)
	if period.From != nil {
		query = query.Where("schedules.date >= ?", *period.From)
	}
	if period.To != nil {
		query = query.Where("schedules.date <= ?", *period.To)
	}

	var rows []statusCountRow
	if err := query.Group("attendances.status").Scan(&rows).Error; err != nil {
		return nil, err
	}

	counts := make(attendance.StatusCounts, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}

// ListBySchedule lists the marks of one class, oldest first
func (r *GormAttendanceRepository) ListBySchedule(ctx context.Context, scheduleID uuid.UUID) ([]attendance.Attendance, error) {
	var rows []models.AttendanceModel
	if err := r.db.WithContext(ctx).
		Where("schedule_id = ?", scheduleID).
		Order("marked_at ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}
	marks := make([]attendance.Attendance, len(rows))
	for i := range rows {
		marks[i] = *rows[i].ToDomain()
	}
	return marks, nil
}

var _ attendance.Repository = (*GormAttendanceRepository)(nil)
