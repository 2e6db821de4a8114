// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-vault-reconcile/internal/logger"
	"github.com/MKhiriev/go-vault-reconcile/models"
)

const ciphersTable = "ciphers"

var cipherColumns = []string{"id", "account_id", "type", "name", "data", "revision_date", "deleted_date"}

// upsertCipherSuffix turns the INSERT into an upsert. The syntax is shared
// by PostgreSQL and SQLite.
const upsertCipherSuffix = `ON CONFLICT (id) DO UPDATE SET
	account_id = excluded.account_id,
	type = excluded.type,
	name = excluded.name,
	data = excluded.data,
	revision_date = excluded.revision_date,
	deleted_date = excluded.deleted_date`

// cipherRepository keeps one row per cipher: the columns used for filtering
// plus the whole entry as JSON in "data".
type cipherRepository struct {
	*DB
	logger *logger.Logger
}

// NewCipherRepository constructs a [CipherRepository] on top of db.
func NewCipherRepository(db *DB, logger *logger.Logger) CipherRepository {
	return &cipherRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *cipherRepository) SaveCiphers(ctx context.Context, ciphers ...models.Cipher) error {
	if len(ciphers) == 0 {
		return nil
	}
	log := logger.FromContext(ctx)

	query, args, err := r.buildUpsert(ciphers...)
	if err != nil {
		log.Err(err).Str("func", "cipherRepository.SaveCiphers").Msg("failed to build upsert")
		return err
	}

	err = r.withRetry(ctx, "cipherRepository.SaveCiphers", func(ctx context.Context) error {
		if _, execErr := r.ExecContext(ctx, query, args...); execErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "cipherRepository.SaveCiphers").
			Int("count", len(ciphers)).
			Msg("failed to save ciphers")
		return err
	}

	return nil
}

func (r *cipherRepository) GetCiphers(ctx context.Context, accountID string, ids []string) ([]models.Cipher, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query := r.builder.Select(cipherColumns...).
		From(ciphersTable).
		Where(sq.Eq{"account_id": accountID}).
		Where(sq.Eq{"id": ids}).
		Where(sq.Eq{"deleted_date": nil})

	return r.queryCiphers(ctx, "cipherRepository.GetCiphers", accountID, query)
}

func (r *cipherRepository) ListLiveCiphers(ctx context.Context, accountID string) ([]models.Cipher, error) {
	query := r.builder.Select(cipherColumns...).
		From(ciphersTable).
		Where(sq.Eq{"account_id": accountID}).
		Where(sq.Eq{"deleted_date": nil}).
		OrderBy("id")

	return r.queryCiphers(ctx, "cipherRepository.ListLiveCiphers", accountID, query)
}

func (r *cipherRepository) ReplaceWithMerged(ctx context.Context, merged models.Cipher, originalIDs []string) error {
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := r.builder.Update(ciphersTable).
		Set("deleted_date", merged.RevisionDate.UTC()).
		Set("revision_date", merged.RevisionDate.UTC()).
		Where(sq.Eq{"account_id": merged.AccountID}).
		Where(sq.Eq{"id": originalIDs}).
		Where(sq.Eq{"deleted_date": nil}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	insertQuery, insertArgs, err := r.buildUpsert(merged)
	if err != nil {
		return err
	}

	err = r.withRetry(ctx, "cipherRepository.ReplaceWithMerged", func(ctx context.Context) error {
		return r.inTx(ctx, func(tx *sql.Tx) error {
			res, execErr := tx.ExecContext(ctx, deleteQuery, deleteArgs...)
			if execErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}
			affected, execErr := res.RowsAffected()
			if execErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}
			if affected != int64(len(originalIDs)) {
				return fmt.Errorf("%w: %d of %d originals are live", ErrCipherNotFound, affected, len(originalIDs))
			}

			if _, execErr = tx.ExecContext(ctx, insertQuery, insertArgs...); execErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}
			return nil
		})
	})
	if err != nil {
		log.Err(err).
			Str("func", "cipherRepository.ReplaceWithMerged").
			Str("account_id", merged.AccountID).
			Strs("original_ids", originalIDs).
			Msg("failed to replace ciphers with merged one")
		return err
	}

	return nil
}

func (r *cipherRepository) AccountIDs(ctx context.Context) ([]string, error) {
	query, args, err := r.builder.Select("account_id").
		Distinct().
		From(ciphersTable).
		OrderBy("account_id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var ids []string
	err = r.withRetry(ctx, "cipherRepository.AccountIDs", func(ctx context.Context) error {
		ids = ids[:0]

		rows, queryErr := r.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		for rows.Next() {
			var id string
			if scanErr := rows.Scan(&id); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			ids = append(ids, id)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "cipherRepository.AccountIDs").Msg("failed to list accounts")
		return nil, err
	}

	return ids, nil
}

func (r *cipherRepository) buildUpsert(ciphers ...models.Cipher) (string, []any, error) {
	insert := r.builder.Insert(ciphersTable).Columns(cipherColumns...)
	for _, c := range ciphers {
		data, err := json.Marshal(c)
		if err != nil {
			return "", nil, fmt.Errorf("%w: cipher %s: %w", ErrEncodingCipher, c.ID, err)
		}

		var deleted any
		if c.DeletedDate != nil {
			deleted = c.DeletedDate.UTC()
		}

		insert = insert.Values(c.ID, c.AccountID, c.Type.String(), c.Name, string(data), c.RevisionDate.UTC(), deleted)
	}

	query, args, err := insert.Suffix(upsertCipherSuffix).ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (r *cipherRepository) queryCiphers(ctx context.Context, op, accountID string, builder sq.SelectBuilder) ([]models.Cipher, error) {
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", op).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var ciphers []models.Cipher
	err = r.withRetry(ctx, op, func(ctx context.Context) error {
		rows, queryErr := r.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		ciphers, queryErr = scanCiphers(rows)
		return queryErr
	})
	if err != nil {
		log.Err(err).
			Str("func", op).
			Str("account_id", accountID).
			Msg("failed to query ciphers")
		return nil, err
	}

	return ciphers, nil
}

func scanCiphers(rows *sql.Rows) ([]models.Cipher, error) {
	ciphers := make([]models.Cipher, 0, 50)

	for rows.Next() {
		var (
			c        models.Cipher
			id       string
			account  string
			typeName string
			name     string
			data     string
			revision sql.NullTime
			deleted  sql.NullTime
		)

		if err := rows.Scan(&id, &account, &typeName, &name, &data, &revision, &deleted); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		if err := json.Unmarshal([]byte(data), &c); err != nil {
			return nil, fmt.Errorf("%w: cipher %s: %w", ErrEncodingCipher, id, err)
		}

		c.ID = id
		c.AccountID = account
		c.Name = name
		c.RevisionDate = revision.Time
		c.DeletedDate = nil
		if deleted.Valid {
			t := deleted.Time
			c.DeletedDate = &t
		}

		ciphers = append(ciphers, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ciphers, nil
}
