// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Vladyslav Kazantsev

package builder

import "errors"

// ErrGraphNotFound is returned when a model holds no graph of the requested name.
var ErrGraphNotFound = errors.New("graph not found")
