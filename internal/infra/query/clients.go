package query

import (
	"context"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const clientColumns = `id, hotel_id, first_name, last_name, email, phone, document_type, document_id, address, notes, created_at, updated_at`

const createClient = `
INSERT INTO clients (` + clientColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
`

func (q *Queries) CreateClient(ctx context.Context, db DBTX, arg Client) error {
	_, err := db.Exec(ctx, createClient,
		arg.ID, arg.HotelID, arg.FirstName, arg.LastName, arg.Email, arg.Phone,
		arg.DocumentType, arg.DocumentID, arg.Address, arg.Notes, arg.CreatedAt, arg.UpdatedAt,
	)
	return err
}

const updateClient = `
UPDATE clients
SET first_name = $3, last_name = $4, email = $5, phone = $6, document_type = $7,
    document_id = $8, address = $9, notes = $10, updated_at = $11
WHERE hotel_id = $1 AND id = $2
`

func (q *Queries) UpdateClient(ctx context.Context, db DBTX, arg Client) (int64, error) {
	tag, err := db.Exec(ctx, updateClient,
		arg.HotelID, arg.ID, arg.FirstName, arg.LastName, arg.Email, arg.Phone,
		arg.DocumentType, arg.DocumentID, arg.Address, arg.Notes, arg.UpdatedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const deleteClient = `DELETE FROM clients WHERE hotel_id = $1 AND id = $2`

func (q *Queries) DeleteClient(ctx context.Context, db DBTX, hotelID string, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deleteClient, hotelID, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const getClient = `SELECT ` + clientColumns + ` FROM clients WHERE hotel_id = $1 AND id = $2`

func (q *Queries) GetClient(ctx context.Context, db DBTX, hotelID string, id uuid.UUID) (Client, error) {
	rows, err := db.Query(ctx, getClient, hotelID, id)
	if err != nil {
		return Client{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Client])
}

const findClientByDocument = `
SELECT ` + clientColumns + ` FROM clients
WHERE hotel_id = $1 AND document_type = $2 AND document_id = $3
LIMIT 1
`

func (q *Queries) FindClientByDocument(ctx context.Context, db DBTX, hotelID, docType, docID string) (Client, error) {
	rows, err := db.Query(ctx, findClientByDocument, hotelID, docType, docID)
	if err != nil {
		return Client{}, err
	}
	return pgx.CollectExactlyOneRow(rows, pgx.RowToStructByName[Client])
}

type SearchClientsParams struct {
	HotelID string
	Term    string
	Limit   uint64
}

// SearchClients matches Term against name, email and document id.
func (q *Queries) SearchClients(ctx context.Context, db DBTX, arg SearchClientsParams) ([]Client, error) {
	b := q.psql.Select(strings.Split(clientColumns, ", ")...).
		From("clients").
		Where(sq.Eq{"hotel_id": arg.HotelID}).
		OrderBy("last_name", "first_name", "id")

	if term := strings.TrimSpace(arg.Term); term != "" {
		like := "%" + escapeLike(term) + "%"
		b = b.Where(sq.Or{
			sq.ILike{"first_name": like},
			sq.ILike{"last_name": like},
			sq.Expr("(first_name || ' ' || last_name) ILIKE ?", like),
			sq.ILike{"email": like},
			sq.ILike{"document_id": like},
		})
	}
	if arg.Limit > 0 {
		b = b.Limit(arg.Limit)
	}

	sqlStr, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := db.Query(ctx, sqlStr, args...)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, pgx.RowToStructByName[Client])
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
