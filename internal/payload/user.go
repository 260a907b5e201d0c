package payload

import "github.com/saranyu/jobboard-api/internal/model"

// UpdateProfileRequest updates a user profile section by section. Each
// field addresses one logical sub-object explicitly; omitted sections are
// left untouched and embedded arrays are replaced wholesale.
type UpdateProfileRequest struct {
	Username       *string `json:"username"        validate:"omitempty,min=3"`
	FirstName      *string `json:"first_name"      validate:"omitempty,min=1"`
	LastName       *string `json:"last_name"       validate:"omitempty,min=1"`
	Headline       *string `json:"headline"`
	About          *string `json:"about"`
	PhoneNumber    *string `json:"phone_number"`
	ProfilePicture *string `json:"profile_picture" validate:"omitempty,url"`

	Skills    *[]TagRef `json:"skills"`
	Languages *[]string `json:"languages"`

	Education      *[]model.Education        `json:"education"`
	Certifications *[]model.Certification    `json:"certifications"`
	Courses        *[]model.Course           `json:"courses"`
	Projects       *[]model.Project          `json:"projects"`
	Awards         *[]model.Award            `json:"awards"`
	References     *[]model.ReferenceContact `json:"references"`
}
