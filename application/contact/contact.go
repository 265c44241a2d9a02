package contact

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/contact-store/cmd/config"
	"github.com/muhammadheryan/contact-store/constant"
	"github.com/muhammadheryan/contact-store/model"
	contactrepo "github.com/muhammadheryan/contact-store/repository/contact"
	txrepo "github.com/muhammadheryan/contact-store/repository/tx"
	"github.com/muhammadheryan/contact-store/thirdparty/rabbitmq"
	"github.com/muhammadheryan/contact-store/utils/errors"
	"github.com/muhammadheryan/contact-store/utils/logger"
	validatorx "github.com/muhammadheryan/contact-store/utils/validator"
	"go.uber.org/zap"
)

const deletedMessage = "Contact deleted successfully"

type ContactApp interface {
	ListContacts(ctx context.Context, query *model.ContactListQuery) (*model.ContactListResponse, error)
	GetContact(ctx context.Context, id uint64) (*model.Contact, error)
	CreateContact(ctx context.Context, req *model.ContactRequest) (*model.Contact, error)
	UpdateContact(ctx context.Context, id uint64, req *model.ContactRequest) (*model.Contact, error)
	PatchContact(ctx context.Context, id uint64, updates map[string]any) (*model.Contact, error)
	DeleteContact(ctx context.Context, id uint64) (*model.DeleteContactResponse, error)
}

type contactAppImpl struct {
	config      *config.Config
	txRepo      txrepo.TxRepository
	contactRepo contactrepo.ContactRepository
	publisher   rabbitmq.ContactEventPublisher
}

// NewContactApp wires the contact use cases. publisher may be nil, in which
// case no change events are emitted.
func NewContactApp(config *config.Config, txRepo txrepo.TxRepository, contactRepo contactrepo.ContactRepository, publisher rabbitmq.ContactEventPublisher) ContactApp {
	return &contactAppImpl{config: config, txRepo: txRepo, contactRepo: contactRepo, publisher: publisher}
}

func (s *contactAppImpl) ListContacts(ctx context.Context, query *model.ContactListQuery) (*model.ContactListResponse, error) {
	if query == nil {
		query = &model.ContactListQuery{}
	}
	filter := s.buildFilter(query)

	items, total, err := s.contactRepo.List(ctx, filter)
	if err != nil {
		logger.FromContext(ctx).Error("[ListContacts] error contactRepo.List", zap.String("error", err.Error()))
		return nil, internalError(err)
	}

	totalPages := total / int64(filter.Limit)
	if total%int64(filter.Limit) != 0 {
		totalPages++
	}

	return &model.ContactListResponse{
		Data: items,
		Pagination: model.Pagination{
			Total:      total,
			Page:       filter.Page,
			Limit:      filter.Limit,
			TotalPages: totalPages,
		},
	}, nil
}

// buildFilter resolves defaults. Unknown sort fields fall back to name and
// any order other than "desc" sorts ascending.
func (s *contactAppImpl) buildFilter(query *model.ContactListQuery) *model.ContactFilter {
	filter := &model.ContactFilter{
		Search:    query.Search,
		SortField: query.SortBy,
		SortOrder: constant.SortAsc,
		Page:      query.Page,
		Limit:     query.Limit,
	}
	if !constant.SortableFields[filter.SortField] {
		filter.SortField = constant.DefaultSortField
	}
	if strings.EqualFold(query.Order, "desc") {
		filter.SortOrder = constant.SortDesc
	}
	if filter.Page <= 0 {
		filter.Page = constant.DefaultPage
	}
	if filter.Limit <= 0 {
		filter.Limit = constant.DefaultLimit
	}
	if maxLimit := s.maxListLimit(); maxLimit > 0 && filter.Limit > maxLimit {
		filter.Limit = maxLimit
	}
	return filter
}

func (s *contactAppImpl) maxListLimit() int {
	if s.config == nil {
		return 0
	}
	return s.config.Contact.MaxListLimit
}

func (s *contactAppImpl) GetContact(ctx context.Context, id uint64) (*model.Contact, error) {
	result, err := s.contactRepo.GetByID(ctx, id)
	if err != nil {
		logger.FromContext(ctx).Error("[GetContact] error contactRepo.GetByID", zap.String("error", err.Error()))
		return nil, internalError(err)
	}
	if result == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	return result, nil
}

func (s *contactAppImpl) CreateContact(ctx context.Context, req *model.ContactRequest) (*model.Contact, error) {
	if fieldErrs := validatorx.ValidateContact(req); len(fieldErrs) > 0 {
		return nil, validationError(fieldErrs)
	}
	data := normalize(req)

	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("[CreateContact] begin tx", zap.String("error", err.Error()))
		return nil, internalError(err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	exists, err := s.contactRepo.ExistsByEmailTx(ctx, tx, data.Email, 0)
	if err != nil {
		logger.FromContext(ctx).Error("[CreateContact] error contactRepo.ExistsByEmailTx", zap.String("error", err.Error()))
		return nil, internalError(err)
	}
	if exists {
		return nil, duplicateEmailError()
	}

	id, err := s.contactRepo.InsertTx(ctx, tx, data)
	if err != nil {
		if stderrors.Is(err, contactrepo.ErrDuplicateEmail) {
			return nil, duplicateEmailError()
		}
		logger.FromContext(ctx).Error("[CreateContact] error contactRepo.InsertTx", zap.String("error", err.Error()))
		return nil, internalError(err)
	}

	created, err := s.readBack(ctx, tx, id, "[CreateContact]")
	if err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.FromContext(ctx).Error("[CreateContact] commit tx", zap.String("error", err.Error()))
		return nil, internalError(err)
	}
	committed = true

	s.publish(ctx, constant.ContactCreated, created.ID, created)
	return created, nil
}

func (s *contactAppImpl) UpdateContact(ctx context.Context, id uint64, req *model.ContactRequest) (*model.Contact, error) {
	if fieldErrs := validatorx.ValidateContact(req); len(fieldErrs) > 0 {
		return nil, validationError(fieldErrs)
	}
	data := normalize(req)

	return s.update(ctx, id, "[UpdateContact]", func() (*model.ContactPatch, error) {
		return &model.ContactPatch{Name: &data.Name, Email: &data.Email, Phone: &data.Phone}, nil
	})
}

// PatchContact overwrites only the supplied name, email and phone keys; other
// keys are ignored. Supplied values go through the same format rules, the
// same normalization and the same uniqueness check as a full update.
func (s *contactAppImpl) PatchContact(ctx context.Context, id uint64, updates map[string]any) (*model.Contact, error) {
	return s.update(ctx, id, "[PatchContact]", func() (*model.ContactPatch, error) {
		return buildPatch(updates)
	})
}

// update runs existence check, patch construction, uniqueness check, write and
// read-back inside one transaction.
func (s *contactAppImpl) update(ctx context.Context, id uint64, op string, makePatch func() (*model.ContactPatch, error)) (*model.Contact, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.FromContext(ctx).Error(op+" begin tx", zap.String("error", err.Error()))
		return nil, internalError(err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	current, err := s.contactRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		logger.FromContext(ctx).Error(op+" error contactRepo.GetByIDTx", zap.String("error", err.Error()))
		return nil, internalError(err)
	}
	if current == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	patch, err := makePatch()
	if err != nil {
		return nil, err
	}

	if patch.Email != nil {
		exists, err := s.contactRepo.ExistsByEmailTx(ctx, tx, *patch.Email, id)
		if err != nil {
			logger.FromContext(ctx).Error(op+" error contactRepo.ExistsByEmailTx", zap.String("error", err.Error()))
			return nil, internalError(err)
		}
		if exists {
			return nil, duplicateEmailError()
		}
	}

	if err := s.contactRepo.UpdateTx(ctx, tx, id, patch); err != nil {
		if stderrors.Is(err, contactrepo.ErrDuplicateEmail) {
			return nil, duplicateEmailError()
		}
		logger.FromContext(ctx).Error(op+" error contactRepo.UpdateTx", zap.String("error", err.Error()))
		return nil, internalError(err)
	}

	updated, err := s.readBack(ctx, tx, id, op)
	if err != nil {
		return nil, err
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.FromContext(ctx).Error(op+" commit tx", zap.String("error", err.Error()))
		return nil, internalError(err)
	}
	committed = true

	s.publish(ctx, constant.ContactUpdated, updated.ID, updated)
	return updated, nil
}

func (s *contactAppImpl) DeleteContact(ctx context.Context, id uint64) (*model.DeleteContactResponse, error) {
	tx, err := s.txRepo.BeginTx(ctx)
	if err != nil {
		logger.FromContext(ctx).Error("[DeleteContact] begin tx", zap.String("error", err.Error()))
		return nil, internalError(err)
	}
	committed := false
	defer func() {
		if !committed {
			_ = s.txRepo.RollbackTx(tx)
		}
	}()

	current, err := s.contactRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		logger.FromContext(ctx).Error("[DeleteContact] error contactRepo.GetByIDTx", zap.String("error", err.Error()))
		return nil, internalError(err)
	}
	if current == nil {
		return nil, errors.SetCustomError(constant.ErrNotFound)
	}

	if err := s.contactRepo.DeleteTx(ctx, tx, id); err != nil {
		logger.FromContext(ctx).Error("[DeleteContact] error contactRepo.DeleteTx", zap.String("error", err.Error()))
		return nil, internalError(err)
	}

	if err := s.txRepo.CommitTx(tx); err != nil {
		logger.FromContext(ctx).Error("[DeleteContact] commit tx", zap.String("error", err.Error()))
		return nil, internalError(err)
	}
	committed = true

	s.publish(ctx, constant.ContactDeleted, id, nil)
	return &model.DeleteContactResponse{Message: deletedMessage, ID: id}, nil
}

func (s *contactAppImpl) readBack(ctx context.Context, tx *sqlx.Tx, id uint64, op string) (*model.Contact, error) {
	c, err := s.contactRepo.GetByIDTx(ctx, tx, id)
	if err != nil {
		logger.FromContext(ctx).Error(op+" error contactRepo.GetByIDTx read back", zap.String("error", err.Error()))
		return nil, internalError(err)
	}
	if c == nil {
		err = fmt.Errorf("contact %d missing after write", id)
		logger.FromContext(ctx).Error(op+" read back", zap.String("error", err.Error()))
		return nil, internalError(err)
	}
	return c, nil
}

// publish is best effort: a broker failure never fails the request.
func (s *contactAppImpl) publish(ctx context.Context, event constant.ContactEvent, id uint64, c *model.Contact) {
	if s.publisher == nil {
		return
	}
	msg := rabbitmq.ContactEventMessage{
		Event:      string(event),
		ContactID:  id,
		Contact:    c,
		OccurredAt: time.Now().UTC(),
	}
	if err := s.publisher.PublishContactEvent(ctx, msg); err != nil {
		logger.FromContext(ctx).Warn("[publish] error publisher.PublishContactEvent",
			zap.String("event", msg.Event), zap.Uint64("contact_id", id), zap.String("error", err.Error()))
	}
}

// buildPatch keeps the writable keys of updates, checks their types and
// formats, and normalizes them.
func buildPatch(updates map[string]any) (*model.ContactPatch, error) {
	values := map[string]string{}
	fieldErrs := map[string]string{}
	for _, field := range constant.ContactFields {
		raw, ok := updates[field]
		if !ok {
			continue
		}
		str, ok := raw.(string)
		if !ok {
			fieldErrs[field] = field + " " + constant.MsgFieldNotString
			continue
		}
		values[field] = str
	}
	if len(values) == 0 && len(fieldErrs) == 0 {
		return nil, errors.SetCustomError(constant.ErrNoValidFields)
	}
	for field, msg := range validatorx.ValidateFields(values) {
		fieldErrs[field] = msg
	}
	if len(fieldErrs) > 0 {
		return nil, validationError(fieldErrs)
	}

	patch := &model.ContactPatch{}
	if v, ok := values[constant.FieldName]; ok {
		name := strings.TrimSpace(v)
		patch.Name = &name
	}
	if v, ok := values[constant.FieldEmail]; ok {
		email := normalizeEmail(v)
		patch.Email = &email
	}
	if v, ok := values[constant.FieldPhone]; ok {
		phone := strings.TrimSpace(v)
		patch.Phone = &phone
	}
	return patch, nil
}

func normalize(req *model.ContactRequest) *model.ContactRequest {
	return &model.ContactRequest{
		Name:  strings.TrimSpace(req.Name),
		Email: normalizeEmail(req.Email),
		Phone: strings.TrimSpace(req.Phone),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validationError(fields map[string]string) error {
	return errors.SetCustomError(constant.ErrValidation).WithFields(fields)
}

func duplicateEmailError() error {
	return validationError(map[string]string{constant.FieldEmail: constant.MsgEmailExists})
}

func internalError(err error) error {
	return errors.SetCustomError(constant.ErrInternal).WithDetails(err.Error())
}
