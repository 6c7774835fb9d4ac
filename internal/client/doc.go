// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It wires the terminal UI to the generation, history and share services
// and owns the process lifecycle of the qr-keeper client binary.
package client
