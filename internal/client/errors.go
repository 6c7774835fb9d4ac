// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "errors"

var errNilDependency = errors.New("client app needs services and a ui")
