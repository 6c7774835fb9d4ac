// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by history and slot storage methods. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrHistoryEntryNotFound is returned when no history entry has the
	// requested id.
	ErrHistoryEntryNotFound = errors.New("history entry not found")

	// ErrPersistingHistory is returned when the history log could not be
	// written to or removed from its slot.
	ErrPersistingHistory = errors.New("failed to persist history")
)

// Low-level storage errors. These are returned (or wrapped) by slot storages
// when an operation fails before any history logic can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT against the
	// database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing an INSERT or DELETE
	// fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a slot row fails.
	ErrScanningRow = errors.New("failed to scan slot row")

	// ErrWritingSlotFile is returned when the JSON slot file cannot be
	// written.
	ErrWritingSlotFile = errors.New("failed to write slot file")
)
