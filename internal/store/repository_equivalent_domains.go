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

const equivalentDomainsTable = "equivalent_domains"

type equivalentDomainsRepository struct {
	*DB
	logger *logger.Logger
}

// NewEquivalentDomainsRepository constructs an [EquivalentDomainsRepository]
// on top of db. Domains are kept as a JSON array per group.
func NewEquivalentDomainsRepository(db *DB, logger *logger.Logger) EquivalentDomainsRepository {
	return &equivalentDomainsRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *equivalentDomainsRepository) ListEquivalentDomains(ctx context.Context, accountID string) ([]models.EquivalentDomainsGroup, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.Select("id", "domains", "excluded", "global").
		From(equivalentDomainsTable).
		Where(sq.Eq{"account_id": accountID}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var groups []models.EquivalentDomainsGroup
	err = r.withRetry(ctx, "equivalentDomainsRepository.ListEquivalentDomains", func(ctx context.Context) error {
		groups = groups[:0]

		rows, queryErr := r.QueryContext(ctx, query, args...)
		if queryErr != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, queryErr)
		}
		defer rows.Close()

		for rows.Next() {
			var (
				group   models.EquivalentDomainsGroup
				domains string
			)
			if scanErr := rows.Scan(&group.ID, &domains, &group.Excluded, &group.Global); scanErr != nil {
				return fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
			}
			if jsonErr := json.Unmarshal([]byte(domains), &group.Domains); jsonErr != nil {
				return fmt.Errorf("%w: group %s: %w", ErrScanningRow, group.ID, jsonErr)
			}
			group.AccountID = accountID
			groups = append(groups, group)
		}
		if rowsErr := rows.Err(); rowsErr != nil {
			return fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
		}
		return nil
	})
	if err != nil {
		log.Err(err).
			Str("func", "equivalentDomainsRepository.ListEquivalentDomains").
			Str("account_id", accountID).
			Msg("failed to list equivalent domains")
		return nil, err
	}

	return groups, nil
}

func (r *equivalentDomainsRepository) ReplaceEquivalentDomains(ctx context.Context, accountID string, groups []models.EquivalentDomainsGroup) error {
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := r.builder.Delete(equivalentDomainsTable).
		Where(sq.Eq{"account_id": accountID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var (
		insertQuery string
		insertArgs  []any
	)
	if len(groups) > 0 {
		insert := r.builder.Insert(equivalentDomainsTable).Columns("id", "account_id", "domains", "excluded", "global")
		for _, group := range groups {
			domains, jsonErr := json.Marshal(group.Domains)
			if jsonErr != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, jsonErr)
			}
			insert = insert.Values(group.ID, accountID, string(domains), group.Excluded, group.Global)
		}
		if insertQuery, insertArgs, err = insert.ToSql(); err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
	}

	err = r.withRetry(ctx, "equivalentDomainsRepository.ReplaceEquivalentDomains", func(ctx context.Context) error {
		return r.inTx(ctx, func(tx *sql.Tx) error {
			if _, execErr := tx.ExecContext(ctx, deleteQuery, deleteArgs...); execErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}
			if insertQuery == "" {
				return nil
			}
			if _, execErr := tx.ExecContext(ctx, insertQuery, insertArgs...); execErr != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
			}
			return nil
		})
	})
	if err != nil {
		log.Err(err).
			Str("func", "equivalentDomainsRepository.ReplaceEquivalentDomains").
			Str("account_id", accountID).
			Int("groups", len(groups)).
			Msg("failed to replace equivalent domains")
		return err
	}

	log.Debug().
		Str("func", "equivalentDomainsRepository.ReplaceEquivalentDomains").
		Str("account_id", accountID).
		Int("groups", len(groups)).
		Msg("equivalent domains replaced")
	return nil
}
