// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-share-inbox/internal/logger"
	"github.com/MKhiriev/go-share-inbox/models"
)

type localSharingRequestRepository struct {
	*DB
	logger *logger.Logger
	now    func() time.Time
}

// NewLocalSharingRequestRepository returns the SQLite-backed cache.
func NewLocalSharingRequestRepository(db *DB, logger *logger.Logger) LocalSharingRequestRepository {
	return &localSharingRequestRepository{
		DB:     db,
		logger: logger,
		now:    time.Now,
	}
}

func (l *localSharingRequestRepository) ReplacePending(ctx context.Context, requests []models.SharingRequest) (err error) {
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := buildDeletePendingQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var insertQuery string
	var insertArgs []any
	if len(requests) > 0 {
		insertQuery, insertArgs, err = buildInsertRequestsQuery(requests, l.now().Unix())
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
	}

	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localSharingRequestRepository.ReplacePending").Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		log.Err(err).Str("func", "localSharingRequestRepository.ReplacePending").Msg("failed to drop cached pending requests")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if insertQuery != "" {
		if _, err = tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			log.Err(err).
				Str("func", "localSharingRequestRepository.ReplacePending").
				Int("count", len(requests)).
				Msg("failed to insert pending requests")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "localSharingRequestRepository.ReplacePending").Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (l *localSharingRequestRepository) GetPending(ctx context.Context) ([]models.SharingRequest, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectPendingQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localSharingRequestRepository.GetPending").Msg("failed to query pending requests")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	requests := make([]models.SharingRequest, 0)
	for rows.Next() {
		var (
			r     models.SharingRequest
			nodes string
		)
		if err = rows.Scan(
			&r.RequestID,
			&r.PrimaryUserName,
			&r.SecondaryUserName,
			&nodes,
			&r.Metadata,
			&r.Status,
			&r.Timestamp,
		); err != nil {
			log.Err(err).Str("func", "localSharingRequestRepository.GetPending").Msg("failed to scan sharing request row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}

		if err = json.Unmarshal([]byte(nodes), &r.NodeIDs); err != nil {
			log.Err(err).
				Str("func", "localSharingRequestRepository.GetPending").
				Str("request_id", r.RequestID).
				Msg("failed to decode cached node ids")
			return nil, fmt.Errorf("%w: node ids of %s: %w", ErrScanningRows, r.RequestID, err)
		}

		requests = append(requests, r)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "localSharingRequestRepository.GetPending").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return requests, nil
}

func (l *localSharingRequestRepository) SetStatus(ctx context.Context, requestID string, status models.SharingStatus) error {
	log := logger.FromContext(ctx)

	query, args, err := buildSetStatusQuery(requestID, status)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localSharingRequestRepository.SetStatus").
			Str("request_id", requestID).
			Msg("failed to update sharing request status")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrSharingRequestNotFound, requestID)
	}

	return nil
}
