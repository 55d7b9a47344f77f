// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the cloud emulator.
//
// It serves the two sharing request endpoints of the device cloud from an
// in-memory store so the client can be run and tried without a real cloud
// account. Request tracing, access logging and bearer token checks are done
// by middleware before a request reaches the handlers.
package http
