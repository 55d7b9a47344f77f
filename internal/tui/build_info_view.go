// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-share-inbox/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, text uiText) string {
	var b strings.Builder

	b.WriteString(text.appName)
	b.WriteString("\n")
	b.WriteString(text.version)
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString(text.date)
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString(text.commit)
	b.WriteString(valueOrNA(info.BuildCommit()))

	return renderPage(text.buildInfoTitle, b.String(), text.back, text.quitHint)
}
