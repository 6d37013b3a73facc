package dto

// CreateApplicationRequest is the payload for creating a job application.
// Dates travel as YYYY-MM-DD strings and are parsed in the usecase.
type CreateApplicationRequest struct {
	Company            string   `json:"company" binding:"required"`
	JobTitle           string   `json:"jobTitle" binding:"required"`
	DateApplied        string   `json:"dateApplied" binding:"required"`
	Status             string   `json:"status" binding:"required"`
	LastResponseDate   *string  `json:"lastResponseDate"`
	TechnologyStack    []string `json:"technologyStack"`
	RequiredExperience *int     `json:"requiredExperience" binding:"omitempty,gte=0"`
	Notes              string   `json:"notes"`
}

// UpdateApplicationRequest replaces all mutable fields of a record. Owner and
// createdAt are not part of it.
type UpdateApplicationRequest struct {
	Company            string   `json:"company" binding:"required"`
	JobTitle           string   `json:"jobTitle" binding:"required"`
	DateApplied        string   `json:"dateApplied" binding:"required"`
	Status             string   `json:"status" binding:"required"`
	LastResponseDate   *string  `json:"lastResponseDate"`
	TechnologyStack    []string `json:"technologyStack"`
	RequiredExperience *int     `json:"requiredExperience" binding:"omitempty,gte=0"`
	Notes              string   `json:"notes"`
}

// ApplicationResponse is the outward record shape.
type ApplicationResponse struct {
	ID                 uint     `json:"id"`
	Company            string   `json:"company"`
	JobTitle           string   `json:"jobTitle"`
	DateApplied        string   `json:"dateApplied"`
	Status             string   `json:"status"`
	StatusDisplay      string   `json:"statusDisplay"`
	LastResponseDate   *string  `json:"lastResponseDate"`
	TechnologyStack    []string `json:"technologyStack"`
	RequiredExperience *int     `json:"requiredExperience"`
	Notes              string   `json:"notes"`
	CreatedAt          string   `json:"createdAt"`
	UpdatedAt          string   `json:"updatedAt"`
}

// Page is the paged collection envelope.
type Page struct {
	Content       []*ApplicationResponse `json:"content"`
	Page          int                    `json:"page"`
	Size          int                    `json:"size"`
	TotalElements int64                  `json:"totalElements"`
	TotalPages    int                    `json:"totalPages"`
}

// PageRequest carries pagination inputs through to the repository unchanged.
type PageRequest struct {
	Page int
	Size int
	Sort string
}
