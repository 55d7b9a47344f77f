// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppBuildInfo_String(t *testing.T) {
	info := NewAppBuildInfo("v1.0.0", "", "abc123")

	assert.Equal(t, "v1.0.0", info.BuildVersion())
	assert.Empty(t, info.BuildDate())
	assert.Equal(t, "Build version: v1.0.0\nBuild date: N/A\nBuild commit: abc123", info.String())
}

func TestSharingRequest_IsPending(t *testing.T) {
	assert.True(t, SharingRequest{Status: SharingStatusPending}.IsPending())
	assert.False(t, SharingRequest{Status: SharingStatusAccepted}.IsPending())
}
