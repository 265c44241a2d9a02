package contact_test

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	appcontact "github.com/muhammadheryan/contact-store/application/contact"
	"github.com/muhammadheryan/contact-store/cmd/config"
	"github.com/muhammadheryan/contact-store/constant"
	contactmocks "github.com/muhammadheryan/contact-store/mocks/repository/contact"
	txmocks "github.com/muhammadheryan/contact-store/mocks/repository/tx"
	publishermocks "github.com/muhammadheryan/contact-store/mocks/thirdparty/rabbitmq"
	"github.com/muhammadheryan/contact-store/model"
	contactrepo "github.com/muhammadheryan/contact-store/repository/contact"
	"github.com/muhammadheryan/contact-store/thirdparty/rabbitmq"
	cerr "github.com/muhammadheryan/contact-store/utils/errors"
	"github.com/stretchr/testify/mock"
)

var testConfig = &config.Config{
	Contact: config.ContactConfig{MaxListLimit: 100},
}

type fields struct {
	txRepo      *txmocks.TxRepository
	contactRepo *contactmocks.ContactRepository
	publisher   *publishermocks.ContactEventPublisher
}

func newFields(t *testing.T) fields {
	return fields{
		txRepo:      txmocks.NewTxRepository(t),
		contactRepo: contactmocks.NewContactRepository(t),
		publisher:   publishermocks.NewContactEventPublisher(t),
	}
}

func newApp(f fields) appcontact.ContactApp {
	return appcontact.NewContactApp(testConfig, f.txRepo, f.contactRepo, f.publisher)
}

func sampleContact(id uint64) *model.Contact {
	ts := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	return &model.Contact{
		ID:        id,
		Name:      "John Doe",
		Email:     "john.doe@example.com",
		Phone:     "+1234567890",
		CreatedAt: ts,
		UpdatedAt: ts,
	}
}

func strPtr(s string) *string { return &s }

// assertErrorType fails unless err is a CustomError of the wanted type.
func assertErrorType(t *testing.T, err error, want constant.ErrorType) cerr.CustomError {
	t.Helper()
	var ce cerr.CustomError
	if !errors.As(err, &ce) {
		t.Fatalf("error type = %T, want CustomError", err)
	}
	if ce.ErrorType() != want {
		t.Fatalf("error code = %s, want %s", ce.ErrorCode(), constant.ErrorTypeCode[want])
	}
	return ce
}

func TestContactApp_ListContacts(t *testing.T) {
	tests := []struct {
		name       string
		query      *model.ContactListQuery
		mockCall   func(f fields)
		want       *model.ContactListResponse
		wantErr    bool
		wantDetail string
	}{
		{
			name:  "success: defaults applied to empty query",
			query: &model.ContactListQuery{},
			mockCall: func(f fields) {
				f.contactRepo.
					On("List", mock.Anything, &model.ContactFilter{SortField: "name", SortOrder: "ASC", Page: 1, Limit: 10}).
					Return([]model.Contact{*sampleContact(1)}, int64(1), nil).
					Once()
			},
			want: &model.ContactListResponse{
				Data:       []model.Contact{*sampleContact(1)},
				Pagination: model.Pagination{Total: 1, Page: 1, Limit: 10, TotalPages: 1},
			},
		},
		{
			name:  "success: nil query uses defaults",
			query: nil,
			mockCall: func(f fields) {
				f.contactRepo.
					On("List", mock.Anything, &model.ContactFilter{SortField: "name", SortOrder: "ASC", Page: 1, Limit: 10}).
					Return([]model.Contact{}, int64(0), nil).
					Once()
			},
			want: &model.ContactListResponse{
				Data:       []model.Contact{},
				Pagination: model.Pagination{Total: 0, Page: 1, Limit: 10, TotalPages: 0},
			},
		},
		{
			name:  "success: search, desc order in any case and total pages rounded up",
			query: &model.ContactListQuery{Search: "doe", SortBy: "created_at", Order: "DeSc", Page: 2, Limit: 3},
			mockCall: func(f fields) {
				f.contactRepo.
					On("List", mock.Anything, &model.ContactFilter{Search: "doe", SortField: "created_at", SortOrder: "DESC", Page: 2, Limit: 3}).
					Return([]model.Contact{}, int64(7), nil).
					Once()
			},
			want: &model.ContactListResponse{
				Data:       []model.Contact{},
				Pagination: model.Pagination{Total: 7, Page: 2, Limit: 3, TotalPages: 3},
			},
		},
		{
			name:  "success: unknown sort field and order fall back silently",
			query: &model.ContactListQuery{SortBy: "password", Order: "sideways", Page: -4, Limit: 500},
			mockCall: func(f fields) {
				f.contactRepo.
					On("List", mock.Anything, &model.ContactFilter{SortField: "name", SortOrder: "ASC", Page: 1, Limit: 100}).
					Return([]model.Contact{}, int64(0), nil).
					Once()
			},
			want: &model.ContactListResponse{
				Data:       []model.Contact{},
				Pagination: model.Pagination{Total: 0, Page: 1, Limit: 100, TotalPages: 0},
			},
		},
		{
			name:  "error: repository List returns error",
			query: &model.ContactListQuery{},
			mockCall: func(f fields) {
				f.contactRepo.
					On("List", mock.Anything, mock.Anything).
					Return(nil, int64(0), errors.New("db error")).
					Once()
			},
			wantErr:    true,
			wantDetail: "db error",
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			if tt.mockCall != nil {
				tt.mockCall(f)
			}

			got, err := newApp(f).ListContacts(context.Background(), tt.query)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ListContacts() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				ce := assertErrorType(t, err, constant.ErrInternal)
				if ce.Details() != tt.wantDetail {
					t.Fatalf("details = %q, want %q", ce.Details(), tt.wantDetail)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("ListContacts() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestContactApp_GetContact(t *testing.T) {
	tests := []struct {
		name     string
		id       uint64
		mockCall func(f fields)
		want     *model.Contact
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name: "success: get contact by id",
			id:   1,
			mockCall: func(f fields) {
				f.contactRepo.On("GetByID", mock.Anything, uint64(1)).Return(sampleContact(1), nil).Once()
			},
			want: sampleContact(1),
		},
		{
			name: "error: contact not found",
			id:   999,
			mockCall: func(f fields) {
				f.contactRepo.On("GetByID", mock.Anything, uint64(999)).Return(nil, nil).Once()
			},
			wantErr: true,
			errType: constant.ErrNotFound,
		},
		{
			name: "error: repository GetByID returns error",
			id:   1,
			mockCall: func(f fields) {
				f.contactRepo.On("GetByID", mock.Anything, uint64(1)).Return(nil, errors.New("db error")).Once()
			},
			wantErr: true,
			errType: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := newApp(f).GetContact(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("GetContact() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrorType(t, err, tt.errType)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("GetContact() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestContactApp_CreateContact(t *testing.T) {
	tests := []struct {
		name       string
		req        *model.ContactRequest
		mockCall   func(f fields)
		want       *model.Contact
		wantErr    bool
		errType    constant.ErrorType
		wantFields map[string]string
	}{
		{
			name: "success: normalized contact is stored and published",
			req:  &model.ContactRequest{Name: "  John Doe ", Email: " John.Doe@Example.com", Phone: " +1234567890 "},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Maybe()

				f.contactRepo.On("ExistsByEmailTx", mock.Anything, tx, "john.doe@example.com", uint64(0)).Return(false, nil).Once()
				f.contactRepo.On("InsertTx", mock.Anything, tx, &model.ContactRequest{
					Name:  "John Doe",
					Email: "john.doe@example.com",
					Phone: "+1234567890",
				}).Return(uint64(1), nil).Once()
				f.contactRepo.On("GetByIDTx", mock.Anything, tx, uint64(1)).Return(sampleContact(1), nil).Once()

				f.publisher.On("PublishContactEvent", mock.Anything, mock.MatchedBy(func(msg rabbitmq.ContactEventMessage) bool {
					return msg.Event == string(constant.ContactCreated) && msg.ContactID == 1 && msg.Contact != nil
				})).Return(nil).Once()
			},
			want: sampleContact(1),
		},
		{
			name:     "error: validation reports every invalid field",
			req:      &model.ContactRequest{Name: "", Email: "invalid-email", Phone: "123"},
			mockCall: func(f fields) {},
			wantErr:  true,
			errType:  constant.ErrValidation,
			wantFields: map[string]string{
				"name":  constant.MsgNameRequired,
				"email": constant.MsgEmailInvalid,
				"phone": constant.MsgPhoneInvalid,
			},
		},
		{
			name: "error: email already exists",
			req:  &model.ContactRequest{Name: "John", Email: "JOHN.DOE@example.com", Phone: "+1234567890"},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Maybe()
				f.contactRepo.On("ExistsByEmailTx", mock.Anything, tx, "john.doe@example.com", uint64(0)).Return(true, nil).Once()
			},
			wantErr:    true,
			errType:    constant.ErrValidation,
			wantFields: map[string]string{"email": constant.MsgEmailExists},
		},
		{
			name: "error: unique constraint hit after pre-check",
			req:  &model.ContactRequest{Name: "John", Email: "john.doe@example.com", Phone: "+1234567890"},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Maybe()
				f.contactRepo.On("ExistsByEmailTx", mock.Anything, tx, "john.doe@example.com", uint64(0)).Return(false, nil).Once()
				f.contactRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(uint64(0), contactrepo.ErrDuplicateEmail).Once()
			},
			wantErr:    true,
			errType:    constant.ErrValidation,
			wantFields: map[string]string{"email": constant.MsgEmailExists},
		},
		{
			name: "error: begin tx fails",
			req:  &model.ContactRequest{Name: "John", Email: "john.doe@example.com", Phone: "+1234567890"},
			mockCall: func(f fields) {
				f.txRepo.On("BeginTx", mock.Anything).Return(nil, errors.New("database is locked")).Once()
			},
			wantErr: true,
			errType: constant.ErrInternal,
		},
		{
			name: "error: insert fails",
			req:  &model.ContactRequest{Name: "John", Email: "john.doe@example.com", Phone: "+1234567890"},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Maybe()
				f.contactRepo.On("ExistsByEmailTx", mock.Anything, tx, "john.doe@example.com", uint64(0)).Return(false, nil).Once()
				f.contactRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(uint64(0), errors.New("disk full")).Once()
			},
			wantErr: true,
			errType: constant.ErrInternal,
		},
		{
			name: "success: publish failure does not fail the request",
			req:  &model.ContactRequest{Name: "John Doe", Email: "john.doe@example.com", Phone: "+1234567890"},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Maybe()
				f.contactRepo.On("ExistsByEmailTx", mock.Anything, tx, "john.doe@example.com", uint64(0)).Return(false, nil).Once()
				f.contactRepo.On("InsertTx", mock.Anything, tx, mock.Anything).Return(uint64(1), nil).Once()
				f.contactRepo.On("GetByIDTx", mock.Anything, tx, uint64(1)).Return(sampleContact(1), nil).Once()
				f.publisher.On("PublishContactEvent", mock.Anything, mock.Anything).Return(errors.New("broker down")).Once()
			},
			want: sampleContact(1),
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := newApp(f).CreateContact(context.Background(), tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("CreateContact() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				ce := assertErrorType(t, err, tt.errType)
				if tt.wantFields != nil && !reflect.DeepEqual(ce.Fields(), tt.wantFields) {
					t.Fatalf("fields = %v, want %v", ce.Fields(), tt.wantFields)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("CreateContact() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestContactApp_UpdateContact(t *testing.T) {
	validReq := &model.ContactRequest{Name: "Jane Roe ", Email: "Jane@Example.com", Phone: "+1987654321"}

	tests := []struct {
		name       string
		id         uint64
		req        *model.ContactRequest
		mockCall   func(f fields)
		want       *model.Contact
		wantErr    bool
		errType    constant.ErrorType
		wantFields map[string]string
	}{
		{
			name: "success: all fields replaced",
			id:   1,
			req:  validReq,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Maybe()

				f.contactRepo.On("GetByIDTx", mock.Anything, tx, uint64(1)).Return(sampleContact(1), nil).Once()
				f.contactRepo.On("ExistsByEmailTx", mock.Anything, tx, "jane@example.com", uint64(1)).Return(false, nil).Once()
				f.contactRepo.On("UpdateTx", mock.Anything, tx, uint64(1), &model.ContactPatch{
					Name:  strPtr("Jane Roe"),
					Email: strPtr("jane@example.com"),
					Phone: strPtr("+1987654321"),
				}).Return(nil).Once()
				updated := sampleContact(1)
				updated.Name = "Jane Roe"
				f.contactRepo.On("GetByIDTx", mock.Anything, tx, uint64(1)).Return(updated, nil).Once()

				f.publisher.On("PublishContactEvent", mock.Anything, mock.MatchedBy(func(msg rabbitmq.ContactEventMessage) bool {
					return msg.Event == string(constant.ContactUpdated) && msg.ContactID == 1
				})).Return(nil).Once()
			},
			want: func() *model.Contact {
				c := sampleContact(1)
				c.Name = "Jane Roe"
				return c
			}(),
		},
		{
			name:       "error: validation runs before existence check",
			id:         1,
			req:        &model.ContactRequest{Name: "Jane", Email: "jane@example.com"},
			mockCall:   func(f fields) {},
			wantErr:    true,
			errType:    constant.ErrValidation,
			wantFields: map[string]string{"phone": constant.MsgPhoneRequired},
		},
		{
			name: "error: contact not found",
			id:   42,
			req:  validReq,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Maybe()
				f.contactRepo.On("GetByIDTx", mock.Anything, tx, uint64(42)).Return(nil, nil).Once()
			},
			wantErr: true,
			errType: constant.ErrNotFound,
		},
		{
			name: "error: email used by another contact",
			id:   1,
			req:  validReq,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Maybe()
				f.contactRepo.On("GetByIDTx", mock.Anything, tx, uint64(1)).Return(sampleContact(1), nil).Once()
				f.contactRepo.On("ExistsByEmailTx", mock.Anything, tx, "jane@example.com", uint64(1)).Return(true, nil).Once()
			},
			wantErr:    true,
			errType:    constant.ErrValidation,
			wantFields: map[string]string{"email": constant.MsgEmailExists},
		},
		{
			name: "error: update fails",
			id:   1,
			req:  validReq,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Maybe()
				f.contactRepo.On("GetByIDTx", mock.Anything, tx, uint64(1)).Return(sampleContact(1), nil).Once()
				f.contactRepo.On("ExistsByEmailTx", mock.Anything, tx, "jane@example.com", uint64(1)).Return(false, nil).Once()
				f.contactRepo.On("UpdateTx", mock.Anything, tx, uint64(1), mock.Anything).Return(errors.New("db error")).Once()
			},
			wantErr: true,
			errType: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := newApp(f).UpdateContact(context.Background(), tt.id, tt.req)
			if (err != nil) != tt.wantErr {
				t.Fatalf("UpdateContact() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				ce := assertErrorType(t, err, tt.errType)
				if tt.wantFields != nil && !reflect.DeepEqual(ce.Fields(), tt.wantFields) {
					t.Fatalf("fields = %v, want %v", ce.Fields(), tt.wantFields)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("UpdateContact() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestContactApp_PatchContact(t *testing.T) {
	// existing sets up a transaction in which contact 1 exists.
	existing := func(f fields) *sqlx.Tx {
		tx := &sqlx.Tx{}
		f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
		f.txRepo.On("RollbackTx", tx).Return(nil).Maybe()
		f.contactRepo.On("GetByIDTx", mock.Anything, tx, uint64(1)).Return(sampleContact(1), nil).Once()
		return tx
	}

	tests := []struct {
		name       string
		id         uint64
		updates    map[string]any
		mockCall   func(f fields)
		want       *model.Contact
		wantErr    bool
		errType    constant.ErrorType
		wantFields map[string]string
	}{
		{
			name:    "success: only name is written, no uniqueness check",
			id:      1,
			updates: map[string]any{"name": " Johnny ", "nickname": "jd"},
			mockCall: func(f fields) {
				tx := existing(f)
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.contactRepo.On("UpdateTx", mock.Anything, tx, uint64(1), &model.ContactPatch{Name: strPtr("Johnny")}).Return(nil).Once()
				updated := sampleContact(1)
				updated.Name = "Johnny"
				f.contactRepo.On("GetByIDTx", mock.Anything, tx, uint64(1)).Return(updated, nil).Once()
				f.publisher.On("PublishContactEvent", mock.Anything, mock.Anything).Return(nil).Once()
			},
			want: func() *model.Contact {
				c := sampleContact(1)
				c.Name = "Johnny"
				return c
			}(),
		},
		{
			name:    "success: email is normalized and checked for uniqueness",
			id:      1,
			updates: map[string]any{"email": " New@Example.COM "},
			mockCall: func(f fields) {
				tx := existing(f)
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.contactRepo.On("ExistsByEmailTx", mock.Anything, tx, "new@example.com", uint64(1)).Return(false, nil).Once()
				f.contactRepo.On("UpdateTx", mock.Anything, tx, uint64(1), &model.ContactPatch{Email: strPtr("new@example.com")}).Return(nil).Once()
				updated := sampleContact(1)
				updated.Email = "new@example.com"
				f.contactRepo.On("GetByIDTx", mock.Anything, tx, uint64(1)).Return(updated, nil).Once()
				f.publisher.On("PublishContactEvent", mock.Anything, mock.Anything).Return(nil).Once()
			},
			want: func() *model.Contact {
				c := sampleContact(1)
				c.Email = "new@example.com"
				return c
			}(),
		},
		{
			name:    "error: contact not found before body is inspected",
			id:      7,
			updates: map[string]any{},
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Maybe()
				f.contactRepo.On("GetByIDTx", mock.Anything, tx, uint64(7)).Return(nil, nil).Once()
			},
			wantErr: true,
			errType: constant.ErrNotFound,
		},
		{
			name:     "error: empty body",
			id:       1,
			updates:  map[string]any{},
			mockCall: func(f fields) { existing(f) },
			wantErr:  true,
			errType:  constant.ErrNoValidFields,
		},
		{
			name:     "error: only irrelevant keys",
			id:       1,
			updates:  map[string]any{"id": 5, "created_at": "yesterday"},
			mockCall: func(f fields) { existing(f) },
			wantErr:  true,
			errType:  constant.ErrNoValidFields,
		},
		{
			name:       "error: invalid email format",
			id:         1,
			updates:    map[string]any{"email": "not-an-email"},
			mockCall:   func(f fields) { existing(f) },
			wantErr:    true,
			errType:    constant.ErrValidation,
			wantFields: map[string]string{"email": constant.MsgEmailInvalid},
		},
		{
			name:       "error: non-string value",
			id:         1,
			updates:    map[string]any{"phone": 1234567890.0},
			mockCall:   func(f fields) { existing(f) },
			wantErr:    true,
			errType:    constant.ErrValidation,
			wantFields: map[string]string{"phone": "phone " + constant.MsgFieldNotString},
		},
		{
			name:    "error: email used by another contact",
			id:      1,
			updates: map[string]any{"email": "taken@example.com"},
			mockCall: func(f fields) {
				tx := existing(f)
				f.contactRepo.On("ExistsByEmailTx", mock.Anything, tx, "taken@example.com", uint64(1)).Return(true, nil).Once()
			},
			wantErr:    true,
			errType:    constant.ErrValidation,
			wantFields: map[string]string{"email": constant.MsgEmailExists},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := newApp(f).PatchContact(context.Background(), tt.id, tt.updates)
			if (err != nil) != tt.wantErr {
				t.Fatalf("PatchContact() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				ce := assertErrorType(t, err, tt.errType)
				if tt.wantFields != nil && !reflect.DeepEqual(ce.Fields(), tt.wantFields) {
					t.Fatalf("fields = %v, want %v", ce.Fields(), tt.wantFields)
				}
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("PatchContact() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestContactApp_DeleteContact(t *testing.T) {
	tests := []struct {
		name     string
		id       uint64
		mockCall func(f fields)
		want     *model.DeleteContactResponse
		wantErr  bool
		errType  constant.ErrorType
	}{
		{
			name: "success: contact deleted and event published",
			id:   3,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("CommitTx", tx).Return(nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Maybe()
				f.contactRepo.On("GetByIDTx", mock.Anything, tx, uint64(3)).Return(sampleContact(3), nil).Once()
				f.contactRepo.On("DeleteTx", mock.Anything, tx, uint64(3)).Return(nil).Once()
				f.publisher.On("PublishContactEvent", mock.Anything, mock.MatchedBy(func(msg rabbitmq.ContactEventMessage) bool {
					return msg.Event == string(constant.ContactDeleted) && msg.ContactID == 3 && msg.Contact == nil
				})).Return(nil).Once()
			},
			want: &model.DeleteContactResponse{Message: "Contact deleted successfully", ID: 3},
		},
		{
			name: "error: contact not found",
			id:   3,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Maybe()
				f.contactRepo.On("GetByIDTx", mock.Anything, tx, uint64(3)).Return(nil, nil).Once()
			},
			wantErr: true,
			errType: constant.ErrNotFound,
		},
		{
			name: "error: delete fails",
			id:   3,
			mockCall: func(f fields) {
				tx := &sqlx.Tx{}
				f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
				f.txRepo.On("RollbackTx", tx).Return(nil).Maybe()
				f.contactRepo.On("GetByIDTx", mock.Anything, tx, uint64(3)).Return(sampleContact(3), nil).Once()
				f.contactRepo.On("DeleteTx", mock.Anything, tx, uint64(3)).Return(errors.New("db error")).Once()
			},
			wantErr: true,
			errType: constant.ErrInternal,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			f := newFields(t)
			tt.mockCall(f)

			got, err := newApp(f).DeleteContact(context.Background(), tt.id)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DeleteContact() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				assertErrorType(t, err, tt.errType)
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("DeleteContact() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestContactApp_NilPublisher(t *testing.T) {
	f := newFields(t)
	tx := &sqlx.Tx{}
	f.txRepo.On("BeginTx", mock.Anything).Return(tx, nil).Once()
	f.txRepo.On("CommitTx", tx).Return(nil).Once()
	f.txRepo.On("RollbackTx", tx).Return(nil).Maybe()
	f.contactRepo.On("GetByIDTx", mock.Anything, tx, uint64(1)).Return(sampleContact(1), nil).Once()
	f.contactRepo.On("DeleteTx", mock.Anything, tx, uint64(1)).Return(nil).Once()

	app := appcontact.NewContactApp(testConfig, f.txRepo, f.contactRepo, nil)
	if _, err := app.DeleteContact(context.Background(), 1); err != nil {
		t.Fatalf("DeleteContact() error = %v", err)
	}
}
