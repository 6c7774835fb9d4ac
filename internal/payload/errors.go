// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package payload

import "errors"

// ErrUnrecognizedPayload is returned by [Parse] when the text does not have
// the shape [Build] produces for the requested kind.
var ErrUnrecognizedPayload = errors.New("unrecognized payload")
