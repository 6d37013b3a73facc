package delivery

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"jobtracker-backend/internal/application/domain"
	"jobtracker-backend/internal/application/dto"
	"jobtracker-backend/internal/application/repository"
	"jobtracker-backend/internal/application/usecase"
	authdelivery "jobtracker-backend/internal/auth/delivery"
	"jobtracker-backend/internal/httperr"
)

const dateLayout = "2006-01-02"

// ApplicationHandler exposes the job-application endpoints. The caller
// identity is resolved by the auth middleware and threaded into every
// usecase call.
type ApplicationHandler struct {
	appUsecase usecase.ApplicationUsecase
}

func NewApplicationHandler(appUsecase usecase.ApplicationUsecase) *ApplicationHandler {
	return &ApplicationHandler{appUsecase: appUsecase}
}

// Create handles POST /api/job-applications
func (h *ApplicationHandler) Create(c *gin.Context) {
	user := authdelivery.CurrentUser(c)

	var req dto.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	resp, err := h.appUsecase.Create(user, &req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// Get handles GET /api/job-applications/:id
func (h *ApplicationHandler) Get(c *gin.Context) {
	user := authdelivery.CurrentUser(c)

	id, ok := applicationID(c)
	if !ok {
		return
	}

	resp, err := h.appUsecase.Get(user, id)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Update handles PUT /api/job-applications/:id
func (h *ApplicationHandler) Update(c *gin.Context) {
	user := authdelivery.CurrentUser(c)

	id, ok := applicationID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.Binding(c, err)
		return
	}

	resp, err := h.appUsecase.Update(user, id, &req)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Delete handles DELETE /api/job-applications/:id
func (h *ApplicationHandler) Delete(c *gin.Context) {
	user := authdelivery.CurrentUser(c)

	id, ok := applicationID(c)
	if !ok {
		return
	}

	if err := h.appUsecase.Delete(user, id); err != nil {
		httperr.FromError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// List handles GET /api/job-applications
func (h *ApplicationHandler) List(c *gin.Context) {
	h.listWithFilter(c, repository.Filter{})
}

// ListByStatus handles GET /api/job-applications/status/:status
func (h *ApplicationHandler) ListByStatus(c *gin.Context) {
	status, err := domain.ParseStatus(c.Param("status"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, "Invalid Request", err.Error())
		return
	}

	h.listWithFilter(c, repository.Filter{Status: &status})
}

// SearchByCompany handles GET /api/job-applications/search?company=
func (h *ApplicationHandler) SearchByCompany(c *gin.Context) {
	company := c.Query("company")
	if company == "" {
		httperr.Abort(c, http.StatusBadRequest, "Invalid Request", "company query parameter is required")
		return
	}

	h.listWithFilter(c, repository.Filter{Company: company})
}

// ListByDateRange handles GET /api/job-applications/date-range?startDate=&endDate=
// The range is forwarded exactly as given; a start date after the end date
// yields an empty page.
func (h *ApplicationHandler) ListByDateRange(c *gin.Context) {
	start, err := time.Parse(dateLayout, c.Query("startDate"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, "Invalid Request", "startDate must be a YYYY-MM-DD date")
		return
	}
	end, err := time.Parse(dateLayout, c.Query("endDate"))
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, "Invalid Request", "endDate must be a YYYY-MM-DD date")
		return
	}

	h.listWithFilter(c, repository.Filter{DateFrom: &start, DateTo: &end})
}

// Statistics handles GET /api/job-applications/statistics
func (h *ApplicationHandler) Statistics(c *gin.Context) {
	user := authdelivery.CurrentUser(c)

	counts, err := h.appUsecase.Statistics(user)
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, counts)
}

func (h *ApplicationHandler) listWithFilter(c *gin.Context, filter repository.Filter) {
	user := authdelivery.CurrentUser(c)

	page, _ := strconv.Atoi(c.DefaultQuery("page", "0"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "20"))
	sort := c.DefaultQuery("sort", "dateApplied")

	resp, err := h.appUsecase.List(user, filter, dto.PageRequest{Page: page, Size: size, Sort: sort})
	if err != nil {
		httperr.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func applicationID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		httperr.Abort(c, http.StatusBadRequest, "Invalid Request", "application id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}
