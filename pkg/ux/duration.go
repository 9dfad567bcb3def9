// Copyright (C) 2025, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package ux

import (
	"fmt"
	"strings"
	"time"
)

// FormatElapsed returns a short, user friendly string for how long a
// command ran, e.g. "1m 4s" or "350ms".
func FormatElapsed(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	var parts []string
	h := d / time.Hour
	if h > 0 {
		d -= h * time.Hour
		parts = append(parts, fmt.Sprintf("%dh", h))
	}
	m := d / time.Minute
	if m > 0 {
		d -= m * time.Minute
		parts = append(parts, fmt.Sprintf("%dm", m))
	}
	s := d / time.Second
	if s > 0 {
		parts = append(parts, fmt.Sprintf("%ds", s))
	}
	return strings.Join(parts, " ")
}
