package repository

import (
	"errors"

	"gorm.io/gorm"

	"jobtracker-backend/internal/application/domain"
)

// sortColumns whitelists the sort keys accepted from the request so the order
// clause is never built from raw input.
var sortColumns = map[string]string{
	"dateApplied": "date_applied",
	"createdAt":   "created_at",
	"updatedAt":   "updated_at",
	"company":     "company",
	"status":      "status",
}

const defaultSortColumn = "date_applied"

type gormApplicationRepository struct {
	db *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) ApplicationRepository {
	return &gormApplicationRepository{db: db}
}

func (r *gormApplicationRepository) Create(app *domain.JobApplication) error {
	return r.db.Create(app).Error
}

func (r *gormApplicationRepository) FindByIDAndUser(id, userID uint) (*domain.JobApplication, error) {
	var app domain.JobApplication
	err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &app, nil
}

func (r *gormApplicationRepository) FindByUser(userID uint, filter Filter, limit, offset int, sort string) ([]*domain.JobApplication, int64, error) {
	var apps []*domain.JobApplication
	var total int64

	query := r.db.Model(&domain.JobApplication{}).Where("user_id = ?", userID)

	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Company != "" {
		query = query.Where("company ILIKE ?", "%"+filter.Company+"%")
	}
	if filter.DateFrom != nil && filter.DateTo != nil {
		// Passed through as given; a start date after the end date yields an
		// empty page rather than being reordered here.
		query = query.Where("date_applied BETWEEN ? AND ?", *filter.DateFrom, *filter.DateTo)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	column, ok := sortColumns[sort]
	if !ok {
		column = defaultSortColumn
	}

	err := query.Order(column + " ASC, id ASC").
		Limit(limit).Offset(offset).
		Find(&apps).Error

	return apps, total, err
}

func (r *gormApplicationRepository) Save(app *domain.JobApplication) error {
	return r.db.Save(app).Error
}

func (r *gormApplicationRepository) Delete(app *domain.JobApplication) error {
	return r.db.Delete(app).Error
}

func (r *gormApplicationRepository) CountByStatus(userID uint) (map[domain.Status]int64, error) {
	var rows []struct {
		Status domain.Status
		Count  int64
	}

	err := r.db.Model(&domain.JobApplication{}).
		Select("status, COUNT(*) AS count").
		Where("user_id = ?", userID).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[domain.Status]int64, len(rows))
	for _, row := range rows {
		counts[row.Status] = row.Count
	}
	return counts, nil
}
