// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-share-inbox/models"
)

const sharingRequestsTable = "sharing_requests"

var sharingRequestColumns = []string{
	"request_id",
	"primary_user_name",
	"secondary_user_name",
	"node_ids",
	"metadata",
	"request_status",
	"request_timestamp",
	"position",
	"fetched_at",
}

var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

func buildDeletePendingQuery() (string, []any, error) {
	return sqlite.
		Delete(sharingRequestsTable).
		Where(sq.Eq{"request_status": string(models.SharingStatusPending)}).
		ToSql()
}

// buildInsertRequestsQuery returns one INSERT OR IGNORE for all requests.
// Positions follow the slice order. Pending rows are deleted beforehand, so
// only rows already answered locally are kept as they are.
func buildInsertRequestsQuery(requests []models.SharingRequest, fetchedAt int64) (string, []any, error) {
	q := sqlite.
		Insert(sharingRequestsTable).
		Options("OR IGNORE").
		Columns(sharingRequestColumns...)

	for i, r := range requests {
		nodes, err := json.Marshal(nonNilNodes(r.NodeIDs))
		if err != nil {
			return "", nil, fmt.Errorf("encode node ids of %s: %w", r.RequestID, err)
		}

		status := r.Status
		if status == "" {
			status = models.SharingStatusPending
		}

		q = q.Values(
			r.RequestID,
			r.PrimaryUserName,
			r.SecondaryUserName,
			string(nodes),
			r.Metadata,
			string(status),
			r.Timestamp,
			i,
			fetchedAt,
		)
	}

	return q.ToSql()
}

func buildSelectPendingQuery() (string, []any, error) {
	return sqlite.
		Select(sharingRequestColumns[:7]...).
		From(sharingRequestsTable).
		Where(sq.Eq{"request_status": string(models.SharingStatusPending)}).
		OrderBy("position ASC").
		ToSql()
}

func buildSetStatusQuery(requestID string, status models.SharingStatus) (string, []any, error) {
	return sqlite.
		Update(sharingRequestsTable).
		Set("request_status", string(status)).
		Where(sq.Eq{"request_id": requestID}).
		ToSql()
}

func nonNilNodes(ids []string) []string {
	if ids == nil {
		return []string{}
	}
	return ids
}
