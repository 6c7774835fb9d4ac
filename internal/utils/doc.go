// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the QR generator packages:
// HTTP response writing, the share client, colour parsing and id generation.
package utils
