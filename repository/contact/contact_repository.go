package contact

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/muhammadheryan/contact-store/constant"
	"github.com/muhammadheryan/contact-store/model"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"
)

// ErrDuplicateEmail is returned when a write hits the unique email constraint.
var ErrDuplicateEmail = errors.New("contact email already exists")

type SQL struct {
	conn *sqlx.DB
}

type ContactRepository interface {
	List(ctx context.Context, filter *model.ContactFilter) ([]model.Contact, int64, error)
	GetByID(ctx context.Context, id uint64) (*model.Contact, error)
	GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Contact, error)
	ExistsByEmailTx(ctx context.Context, tx *sqlx.Tx, email string, excludeID uint64) (bool, error)
	InsertTx(ctx context.Context, tx *sqlx.Tx, req *model.ContactRequest) (uint64, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64, patch *model.ContactPatch) error
	DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error
}

func NewContactRepository(conn *sqlx.DB) ContactRepository {
	return &SQL{conn: conn}
}

const (
	contactColumns     = `id, name, email, phone, created_at, updated_at`
	listContactsBase   = `SELECT ` + contactColumns + ` FROM contacts WHERE 1=1`
	countContactsBase  = `SELECT COUNT(*) FROM contacts WHERE 1=1`
	searchCondition    = ` AND (name LIKE ? ESCAPE '\' OR email LIKE ? ESCAPE '\' OR phone LIKE ? ESCAPE '\')`
	getContactByID     = `SELECT ` + contactColumns + ` FROM contacts WHERE id = ?`
	existsContactEmail = `SELECT EXISTS(SELECT 1 FROM contacts WHERE email = ? AND id != ?)`
	insertContactQuery = `INSERT INTO contacts (name, email, phone) VALUES (?, ?, ?)`
	deleteContactQuery = `DELETE FROM contacts WHERE id = ?`
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (s *SQL) List(ctx context.Context, filter *model.ContactFilter) ([]model.Contact, int64, error) {
	where := ""
	args := make([]any, 0, 5)
	if filter.Search != "" {
		pattern := "%" + likeEscaper.Replace(filter.Search) + "%"
		where = searchCondition
		args = append(args, pattern, pattern, pattern)
	}

	sortField := filter.SortField
	if !constant.SortableFields[sortField] {
		sortField = constant.DefaultSortField
	}
	sortOrder := constant.SortAsc
	if filter.SortOrder == constant.SortDesc {
		sortOrder = constant.SortDesc
	}

	// id breaks ties so pages stay stable across requests
	query := fmt.Sprintf("%s%s ORDER BY %s %s, id %s LIMIT ? OFFSET ?", listContactsBase, where, sortField, sortOrder, sortOrder)
	items := make([]model.Contact, 0, filter.Limit)
	if err := s.conn.SelectContext(ctx, &items, query, append(args, filter.Limit, filter.Offset())...); err != nil {
		return nil, 0, err
	}

	var total int64
	if err := s.conn.GetContext(ctx, &total, countContactsBase+where, args...); err != nil {
		return nil, 0, err
	}

	return items, total, nil
}

func (s *SQL) GetByID(ctx context.Context, id uint64) (*model.Contact, error) {
	return getByID(ctx, s.conn, id)
}

func (s *SQL) GetByIDTx(ctx context.Context, tx *sqlx.Tx, id uint64) (*model.Contact, error) {
	return getByID(ctx, tx, id)
}

func getByID(ctx context.Context, q sqlx.QueryerContext, id uint64) (*model.Contact, error) {
	var c model.Contact
	if err := q.QueryRowxContext(ctx, getContactByID, id).StructScan(&c); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &c, nil
}

func (s *SQL) ExistsByEmailTx(ctx context.Context, tx *sqlx.Tx, email string, excludeID uint64) (bool, error) {
	var exists bool
	if err := tx.GetContext(ctx, &exists, existsContactEmail, email, excludeID); err != nil {
		return false, err
	}
	return exists, nil
}

func (s *SQL) InsertTx(ctx context.Context, tx *sqlx.Tx, req *model.ContactRequest) (uint64, error) {
	res, err := tx.ExecContext(ctx, insertContactQuery, req.Name, req.Email, req.Phone)
	if err != nil {
		return 0, mapWriteErr(err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}
	return uint64(id), nil
}

func (s *SQL) UpdateTx(ctx context.Context, tx *sqlx.Tx, id uint64, patch *model.ContactPatch) error {
	if patch.IsEmpty() {
		return fmt.Errorf("update contact %d: no columns to set", id)
	}

	sets := make([]string, 0, 4)
	args := make([]any, 0, 4)
	if patch.Name != nil {
		sets = append(sets, "name = ?")
		args = append(args, *patch.Name)
	}
	if patch.Email != nil {
		sets = append(sets, "email = ?")
		args = append(args, *patch.Email)
	}
	if patch.Phone != nil {
		sets = append(sets, "phone = ?")
		args = append(args, *patch.Phone)
	}
	sets = append(sets, "updated_at = CURRENT_TIMESTAMP")
	args = append(args, id)

	query := "UPDATE contacts SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return mapWriteErr(err)
	}
	return nil
}

func (s *SQL) DeleteTx(ctx context.Context, tx *sqlx.Tx, id uint64) error {
	_, err := tx.ExecContext(ctx, deleteContactQuery, id)
	return err
}

func mapWriteErr(err error) error {
	if isUniqueViolation(err) {
		return ErrDuplicateEmail
	}
	return err
}

func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	if code == sqlite3lib.SQLITE_CONSTRAINT_UNIQUE {
		return true
	}
	return code == sqlite3lib.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "UNIQUE")
}
