// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It runs the terminal UI and the fallback replay worker in one process and
// releases local storage when both have stopped.
package client
