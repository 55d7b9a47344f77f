// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the terminal screen of the share-inbox client.
//
// The screen lists pending sharing requests and lets the user accept or
// decline them. It implements [sharing.Host]: the presenter drives the
// loading indicator, the toast line and the empty state through it. Remote
// calls run inside tea.Cmd functions and their outcome is applied back on
// the bubbletea update loop.
package tui
