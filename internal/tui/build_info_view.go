// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/hakkadots/braille-client/internal/app"
	"github.com/hakkadots/braille-client/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, p *app.Printer) string {
	var b strings.Builder

	b.WriteString(p.Text(app.LabelTitle))
	b.WriteString("\n")
	b.WriteString(p.Text(app.LabelVersion))
	b.WriteString(": ")
	b.WriteString(valueOrNA(info.BuildVersion()))
	b.WriteString("\n")
	b.WriteString(p.Text(app.LabelDate))
	b.WriteString(": ")
	b.WriteString(valueOrNA(info.BuildDate()))
	b.WriteString("\n")
	b.WriteString(p.Text(app.LabelCommit))
	b.WriteString(": ")
	b.WriteString(valueOrNA(info.BuildCommit()))

	return renderPage(p.Text(app.LabelBuildInfo), b.String(), p.Text(app.HotkeysBack), p.Text(app.HotkeysQuit))
}

func valueOrNA(v string) string {
	v = strings.TrimSpace(v)
	if v == "" {
		return "N/A"
	}
	return v
}
