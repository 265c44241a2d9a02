package model

import "time"

// Contact represents the contacts table entity
type Contact struct {
	ID        uint64    `db:"id" json:"id"`
	Name      string    `db:"name" json:"name"`
	Email     string    `db:"email" json:"email"`
	Phone     string    `db:"phone" json:"phone"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// ContactRequest is the body of create and full update
type ContactRequest struct {
	Name  string `json:"name" validate:"notblank,max=120"`
	Email string `json:"email" validate:"notblank,contactemail"`
	Phone string `json:"phone" validate:"notblank,contactphone"`
}

// ContactPatch holds the columns to overwrite; nil means untouched.
type ContactPatch struct {
	Name  *string
	Email *string
	Phone *string
}

// IsEmpty reports whether no column is set.
func (p *ContactPatch) IsEmpty() bool {
	return p == nil || (p.Name == nil && p.Email == nil && p.Phone == nil)
}

// ContactListQuery carries the raw listing parameters; zero values take defaults.
type ContactListQuery struct {
	Search string
	SortBy string
	Order  string
	Page   int
	Limit  int
}

// ContactFilter drives the listing query
type ContactFilter struct {
	Search    string
	SortField string
	SortOrder string
	Page      int
	Limit     int
}

// Offset is the number of rows skipped before the requested page.
func (f *ContactFilter) Offset() int {
	return (f.Page - 1) * f.Limit
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

type ContactListResponse struct {
	Data       []Contact  `json:"data"`
	Pagination Pagination `json:"pagination"`
}

type DeleteContactResponse struct {
	Message string `json:"message"`
	ID      uint64 `json:"id"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
