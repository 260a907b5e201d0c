package payload

import "github.com/saranyu/jobboard-api/internal/model"

type ApplyRequest struct {
	Answers []model.ScreeningAnswer `json:"answers" validate:"omitempty,dive"`
}
