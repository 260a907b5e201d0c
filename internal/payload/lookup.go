package payload

// TagRef is the explicit variant behind the autocomplete-with-create flow:
// either a reference to an existing lookup entity by id, or a pending
// free-text name to be resolved (or created) server side. Exactly one of
// the two must be set.
type TagRef struct {
	ID   *string `json:"id,omitempty"`
	Name *string `json:"name,omitempty"`
}

// Pending reports whether the ref still carries a free-text name.
func (t TagRef) Pending() bool {
	return t.ID == nil && t.Name != nil
}

type CreateLookupRequest struct {
	Name string `json:"name" validate:"required,min=1,max=100"`
}
