package constant

type ContextKey string

const RequestIDKey ContextKey = "request_id"

const (
	FieldName      = "name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldCreatedAt = "created_at"
)

// ContactFields are the columns a client may write.
var ContactFields = []string{FieldName, FieldEmail, FieldPhone}

// SortableFields are the columns a listing may be ordered by.
var SortableFields = map[string]bool{
	FieldName:      true,
	FieldEmail:     true,
	FieldPhone:     true,
	FieldCreatedAt: true,
}

const (
	DefaultSortField = FieldName
	SortAsc          = "ASC"
	SortDesc         = "DESC"
	DefaultPage      = 1
	DefaultLimit     = 10
	NameMaxLength    = 120
)

type ContactEvent string

const (
	ContactCreated ContactEvent = "contact.created"
	ContactUpdated ContactEvent = "contact.updated"
	ContactDeleted ContactEvent = "contact.deleted"
)
