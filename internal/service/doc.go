// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the client business logic between the cloud
// adapter and the local cache.
//
// [ClientSharingService] fetches pending sharing requests, mirrors them into
// the cache and forwards the user's answers to the cloud.
// [ClientRefreshJob] refreshes the list in the background.
package service
