// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

var (
	errNilHandler = errors.New("nil handler")
	errNilConfig  = errors.New("nil config")
)
