// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the client and the cloud
// emulator: JSON responses, bearer token parsing and id generation.
package utils
