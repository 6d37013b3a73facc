package usecase

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"jobtracker-backend/internal/apperr"
	"jobtracker-backend/internal/application/domain"
	"jobtracker-backend/internal/application/dto"
	"jobtracker-backend/internal/application/repository"
	authdomain "jobtracker-backend/internal/auth/domain"
)

const dateLayout = "2006-01-02"

type applicationUsecase struct {
	appRepo repository.ApplicationRepository
	logger  *zap.Logger
}

func NewApplicationUsecase(appRepo repository.ApplicationRepository, logger *zap.Logger) ApplicationUsecase {
	return &applicationUsecase{
		appRepo: appRepo,
		logger:  logger,
	}
}

func (u *applicationUsecase) Create(user *authdomain.User, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrBadRequest, err)
	}
	dateApplied, err := parseDate(req.DateApplied, "dateApplied")
	if err != nil {
		return nil, err
	}
	lastResponse, err := parseOptionalDate(req.LastResponseDate, "lastResponseDate")
	if err != nil {
		return nil, err
	}

	// Owner and timestamps are stamped here, not by persistence hooks.
	now := time.Now()
	app := &domain.JobApplication{
		UserID:             user.ID,
		Company:            req.Company,
		JobTitle:           req.JobTitle,
		DateApplied:        dateApplied,
		Status:             status,
		LastResponseDate:   lastResponse,
		TechnologyStack:    req.TechnologyStack,
		RequiredExperience: req.RequiredExperience,
		Notes:              req.Notes,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := u.appRepo.Create(app); err != nil {
		return nil, fmt.Errorf("creating application: %w", err)
	}

	u.logger.Info("job application created",
		zap.Uint("user_id", user.ID),
		zap.Uint("application_id", app.ID),
	)

	return toResponse(app), nil
}

func (u *applicationUsecase) Get(user *authdomain.User, id uint) (*dto.ApplicationResponse, error) {
	app, err := u.findOwned(user, id)
	if err != nil {
		return nil, err
	}
	return toResponse(app), nil
}

func (u *applicationUsecase) Update(user *authdomain.User, id uint, req *dto.UpdateApplicationRequest) (*dto.ApplicationResponse, error) {
	app, err := u.findOwned(user, id)
	if err != nil {
		return nil, err
	}

	status, err := domain.ParseStatus(req.Status)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperr.ErrBadRequest, err)
	}
	dateApplied, err := parseDate(req.DateApplied, "dateApplied")
	if err != nil {
		return nil, err
	}
	lastResponse, err := parseOptionalDate(req.LastResponseDate, "lastResponseDate")
	if err != nil {
		return nil, err
	}

	// All mutable fields are replaced; UserID and CreatedAt stay as stored.
	app.Company = req.Company
	app.JobTitle = req.JobTitle
	app.DateApplied = dateApplied
	app.Status = status
	app.LastResponseDate = lastResponse
	app.TechnologyStack = req.TechnologyStack
	app.RequiredExperience = req.RequiredExperience
	app.Notes = req.Notes
	app.UpdatedAt = time.Now()

	if err := u.appRepo.Save(app); err != nil {
		return nil, fmt.Errorf("updating application: %w", err)
	}

	u.logger.Info("job application updated",
		zap.Uint("user_id", user.ID),
		zap.Uint("application_id", app.ID),
	)

	return toResponse(app), nil
}

func (u *applicationUsecase) Delete(user *authdomain.User, id uint) error {
	app, err := u.findOwned(user, id)
	if err != nil {
		return err
	}

	if err := u.appRepo.Delete(app); err != nil {
		return fmt.Errorf("deleting application: %w", err)
	}

	u.logger.Info("job application deleted",
		zap.Uint("user_id", user.ID),
		zap.Uint("application_id", id),
	)

	return nil
}

func (u *applicationUsecase) List(user *authdomain.User, filter repository.Filter, page dto.PageRequest) (*dto.Page, error) {
	if page.Size <= 0 {
		page.Size = 20
	}
	if page.Page < 0 {
		page.Page = 0
	}

	apps, total, err := u.appRepo.FindByUser(user.ID, filter, page.Size, page.Page*page.Size, page.Sort)
	if err != nil {
		return nil, fmt.Errorf("listing applications: %w", err)
	}

	content := make([]*dto.ApplicationResponse, 0, len(apps))
	for _, app := range apps {
		content = append(content, toResponse(app))
	}

	totalPages := int((total + int64(page.Size) - 1) / int64(page.Size))

	return &dto.Page{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: total,
		TotalPages:    totalPages,
	}, nil
}

// Statistics returns the per-status record counts for the caller. Statuses
// with no records are absent from the map.
func (u *applicationUsecase) Statistics(user *authdomain.User) (map[domain.Status]int64, error) {
	counts, err := u.appRepo.CountByStatus(user.ID)
	if err != nil {
		return nil, fmt.Errorf("counting applications: %w", err)
	}
	return counts, nil
}

// findOwned is the single ownership gate: a record that exists under another
// owner is reported exactly like one that does not exist.
func (u *applicationUsecase) findOwned(user *authdomain.User, id uint) (*domain.JobApplication, error) {
	app, err := u.appRepo.FindByIDAndUser(id, user.ID)
	if err != nil {
		return nil, fmt.Errorf("looking up application: %w", err)
	}
	if app == nil {
		return nil, apperr.ErrNotFound
	}
	return app, nil
}

func parseDate(value, field string) (time.Time, error) {
	t, err := time.Parse(dateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %s must be a YYYY-MM-DD date", apperr.ErrBadRequest, field)
	}
	return t, nil
}

func parseOptionalDate(value *string, field string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	t, err := parseDate(*value, field)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toResponse(app *domain.JobApplication) *dto.ApplicationResponse {
	resp := &dto.ApplicationResponse{
		ID:                 app.ID,
		Company:            app.Company,
		JobTitle:           app.JobTitle,
		DateApplied:        app.DateApplied.Format(dateLayout),
		Status:             string(app.Status),
		StatusDisplay:      app.Status.DisplayName(),
		TechnologyStack:    app.TechnologyStack,
		RequiredExperience: app.RequiredExperience,
		Notes:              app.Notes,
		CreatedAt:          app.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          app.UpdatedAt.Format(time.RFC3339),
	}
	if app.LastResponseDate != nil {
		formatted := app.LastResponseDate.Format(dateLayout)
		resp.LastResponseDate = &formatted
	}
	return resp
}
