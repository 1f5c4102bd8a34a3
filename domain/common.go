package domain

const (
	RoleUser  = "user"
	RoleAdmin = "admin"

	DefaultPage  = 1
	DefaultLimit = 6
	MaxLimit     = 100
)

var (
	MessageUserNotAllowed     = "user not allowed"
	MessageFailedBodyRequest  = "failed to parse request body"
	MessageFailedGetToken     = "failed to get token"
	MessageFailedTokenInvalid = "failed to token invalid"
	MessageInternalError      = "internal server error"

	ErrNotAdmin = &Error{Kind: ErrPermissionDenied, Message: MessageUserNotAllowed}
)

type (
	// Viewer is the identity a response is rendered for. A nil *Viewer is an
	// anonymous request.
	Viewer struct {
		UserID string
		Role   string
	}

	PaginationRequest struct {
		Page  int
		Limit int
	}

	PaginationResponse struct {
		Count      int64 `json:"count"`
		Page       int   `json:"page"`
		Limit      int   `json:"limit"`
		TotalPages int64 `json:"total_pages"`
		Results    any   `json:"results"`
	}
)

func (v *Viewer) IsAuthenticated() bool {
	return v != nil && v.UserID != ""
}

func (v *Viewer) IsAdmin() bool {
	return v.IsAuthenticated() && v.Role == RoleAdmin
}

// CanModify reports whether the viewer may change something owned by authorID.
func (v *Viewer) CanModify(authorID string) bool {
	if !v.IsAuthenticated() {
		return false
	}
	return v.IsAdmin() || v.UserID == authorID
}

// Normalize clamps page and limit into their allowed ranges.
func (p PaginationRequest) Normalize() PaginationRequest {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

func (p PaginationRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

func NewPaginationResponse(p PaginationRequest, count int64, results any) PaginationResponse {
	return PaginationResponse{
		Count:      count,
		Page:       p.Page,
		Limit:      p.Limit,
		TotalPages: (count + int64(p.Limit) - 1) / int64(p.Limit),
		Results:    results,
	}
}
