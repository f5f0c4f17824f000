// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the braille client application runtime.
//
// It wires the terminal UI, the conversion services and the background
// history pruner into a single process lifecycle, and provides the one-shot
// mode that converts a single text from the command line.
package client
