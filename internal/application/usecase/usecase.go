package usecase

import (
	"jobtracker-backend/internal/application/domain"
	"jobtracker-backend/internal/application/dto"
	"jobtracker-backend/internal/application/repository"
	authdomain "jobtracker-backend/internal/auth/domain"
)

// ApplicationUsecase is the ownership-scoped service over job applications.
// Every call takes the resolved caller explicitly; no operation can see or
// touch another user's records.
type ApplicationUsecase interface {
	Create(user *authdomain.User, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error)
	Get(user *authdomain.User, id uint) (*dto.ApplicationResponse, error)
	Update(user *authdomain.User, id uint, req *dto.UpdateApplicationRequest) (*dto.ApplicationResponse, error)
	Delete(user *authdomain.User, id uint) error
	List(user *authdomain.User, filter repository.Filter, page dto.PageRequest) (*dto.Page, error)
	Statistics(user *authdomain.User) (map[domain.Status]int64, error)
}
