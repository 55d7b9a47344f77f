// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store implements the client-side cache of sharing requests on top
// of SQLite.
//
// The cache lets the client show the last known pending list while the
// cloud is unreachable. The schema lives in the migrations package and is
// applied by [DB.Migrate]; queries are built with squirrel.
package store
