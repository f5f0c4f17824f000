// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// braille client: message keys for every user-facing notice and label, and
// the localised catalogs behind them.
//
// Catalogs are registered with golang.org/x/text/message; callers obtain a
// [Printer] for the configured locale and render keys through it. Keeping
// every string in one place ensures consistent wording between the TUI and
// the one-shot mode.
package app

const (
	// MsgEmptyInput is the blocking alert for an empty submission.
	MsgEmptyInput = "notice.empty_input"

	// MsgUnknownInputMode is the blocking alert for an unsupported input
	// mode. Takes the offending mode as its argument.
	MsgUnknownInputMode = "notice.unknown_input_mode"

	// MsgConversionFailed is the blocking alert for any conversion failure.
	MsgConversionFailed = "notice.conversion_failed"

	// MsgServiceUnreachable is appended to MsgConversionFailed when the
	// failure is a network error.
	MsgServiceUnreachable = "notice.service_unreachable"

	// MsgAutoCopied is the copy status after a successful automatic copy.
	MsgAutoCopied = "status.auto_copied"

	// MsgAutoCopyFailed is the copy status when conversion succeeded but
	// the automatic copy did not.
	MsgAutoCopyFailed = "status.auto_copy_failed"

	// MsgNothingToCopy is the blocking alert for a manual copy of empty output.
	MsgNothingToCopy = "notice.nothing_to_copy"

	// MsgCopied is the one-shot notice after a manual copy.
	MsgCopied = "notice.copied"

	// MsgCopyFailed is the one-shot notice when a manual copy fails.
	MsgCopyFailed = "notice.copy_failed"

	MsgConverting      = "status.converting"
	MsgCleared         = "status.cleared"
	MsgHistoryEmpty    = "status.history_empty"
	MsgHistoryCleared  = "status.history_cleared"
	MsgHistoryDisabled = "status.history_disabled"
	MsgHistoryFailed   = "notice.history_failed"

	// MsgConfirmClearHistory asks before the whole history is deleted.
	MsgConfirmClearHistory = "confirm.clear_history"

	LabelTitle         = "label.title"
	LabelInput         = "label.input"
	LabelOutput        = "label.output"
	LabelInputMode     = "label.input_mode"
	LabelCopyStatus    = "label.copy_status"
	LabelHistory       = "label.history"
	LabelPreferences   = "label.preferences"
	LabelBackground    = "label.background"
	LabelForeground    = "label.foreground"
	LabelFontSize      = "label.font_size"
	LabelBuildInfo     = "label.build_info"
	LabelNotice        = "label.notice"
	LabelVersion       = "label.version"
	LabelDate          = "label.date"
	LabelCommit        = "label.commit"
	HotkeysMain        = "hotkeys.main"
	HotkeysHistory     = "hotkeys.history"
	HotkeysPreferences = "hotkeys.preferences"
	HotkeysOverlay     = "hotkeys.overlay"
	HotkeysBack        = "hotkeys.back"
	HotkeysQuit        = "hotkeys.quit"
)
