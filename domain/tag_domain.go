package domain

var (
	MessageSuccessGetTags   = "success get tags"
	MessageSuccessGetTag    = "success get tag"
	MessageSuccessCreateTag = "tag created successfully"
	MessageFailedGetTags    = "failed to get tags"
	MessageFailedGetTag     = "failed to get tag"
	MessageFailedCreateTag  = "failed to create tag"

	ErrTagNotFound = NewNotFoundError("tag not found")
	ErrTagExists   = NewConflictError("tag with this name, color or slug already exists")
)

type (
	CreateTagRequest struct {
		Name  string `json:"name" validate:"required,max=10"`
		Color string `json:"color" validate:"required,hexcolor,max=10"`
		Slug  string `json:"slug" validate:"required,max=200,slug"`
	}

	TagResponse struct {
		ID    string `json:"id"`
		Name  string `json:"name"`
		Color string `json:"color"`
		Slug  string `json:"slug"`
	}
)
