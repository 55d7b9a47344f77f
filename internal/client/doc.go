// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client runtime.
//
// It wires the cloud adapter, the local cache, the sharing service, the
// background refresh job and the terminal screen into one process
// lifecycle.
package client
