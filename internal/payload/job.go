package payload

import "github.com/saranyu/jobboard-api/internal/model"

type CreateJobRequest struct {
	Title        string `json:"job_title"         validate:"required,min=1,max=200"`
	Type         string `json:"job_type"          validate:"required"`
	LocationType string `json:"job_location_type" validate:"required,oneof=Remote On-Site Hybrid"`
	Description  string `json:"description"`
	Location     string `json:"location"`

	SalaryMin      int    `json:"salary_min"      validate:"omitempty,gte=0"`
	SalaryMax      int    `json:"salary_max"      validate:"omitempty,gtefield=SalaryMin"`
	SalaryCurrency string `json:"salary_currency" validate:"omitempty,len=3"`

	Skills             []TagRef                  `json:"skills"`
	Geolocation        *model.GeoPoint           `json:"geolocation"`
	ScreeningQuestions []model.ScreeningQuestion `json:"screening_questions"`
}

type UpdateJobRequest struct {
	Title        *string `json:"job_title"         validate:"omitempty,min=1,max=200"`
	Type         *string `json:"job_type"`
	LocationType *string `json:"job_location_type" validate:"omitempty,oneof=Remote On-Site Hybrid"`
	Status       *string `json:"job_post_status"   validate:"omitempty,oneof=Draft Live Closed"`
	Description  *string `json:"description"`
	Location     *string `json:"location"`

	SalaryMin      *int    `json:"salary_min"      validate:"omitempty,gte=0"`
	SalaryMax      *int    `json:"salary_max"      validate:"omitempty,gte=0"`
	SalaryCurrency *string `json:"salary_currency" validate:"omitempty,len=3"`

	Skills             *[]TagRef                  `json:"skills"`
	Geolocation        *model.GeoPoint            `json:"geolocation"`
	ScreeningQuestions *[]model.ScreeningQuestion `json:"screening_questions"`
}
