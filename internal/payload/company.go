package payload

import "github.com/saranyu/jobboard-api/internal/model"

type CreateCompanyRequest struct {
	Name        string `json:"name"         validate:"required,min=1,max=200"`
	Tagline     string `json:"tagline"`
	About       string `json:"about"`
	Website     string `json:"website"      validate:"omitempty,url"`
	Size        string `json:"size"`
	FoundedYear int    `json:"founded_year" validate:"omitempty,gte=1800"`
	LogoURL     string `json:"logo_url"     validate:"omitempty,url"`

	Address     *model.Address     `json:"address"`
	SocialLinks *model.SocialLinks `json:"social_links"`

	Specialties []TagRef `json:"specialties"`
	Services    []TagRef `json:"services"`
	Industries  []TagRef `json:"industries" validate:"max=3"`
}

// UpdateCompanyRequest mirrors CreateCompanyRequest with every section
// optional.
type UpdateCompanyRequest struct {
	Name        *string `json:"name"         validate:"omitempty,min=1,max=200"`
	Tagline     *string `json:"tagline"`
	About       *string `json:"about"`
	Website     *string `json:"website"      validate:"omitempty,url"`
	Size        *string `json:"size"`
	FoundedYear *int    `json:"founded_year" validate:"omitempty,gte=1800"`
	LogoURL     *string `json:"logo_url"     validate:"omitempty,url"`

	Address     *model.Address     `json:"address"`
	SocialLinks *model.SocialLinks `json:"social_links"`

	Specialties *[]TagRef `json:"specialties"`
	Services    *[]TagRef `json:"services"`
	Industries  *[]TagRef `json:"industries" validate:"omitempty,max=3"`
}
