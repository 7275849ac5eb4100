// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/fin-tracker-client/models"
)

func renderBuildInfoWindow(version string, info models.AppBuildInfo) string {
	rows := []struct{ label, value string }{
		{"Приложение", "fin-tracker"},
		{"Версия", version},
		{"Дата сборки", info.BuildDate()},
		{"Коммит", info.BuildCommit()},
	}

	var b strings.Builder
	for _, r := range rows {
		b.WriteString(r.label)
		b.WriteString(": ")
		b.WriteString(valueOrNA(r.value))
		b.WriteString("\n")
	}

	return renderPage("О ПРОГРАММЕ", strings.TrimRight(b.String(), "\n"), "esc: назад")
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" || v == "N/A" {
		return "N/A"
	}
	return v
}
