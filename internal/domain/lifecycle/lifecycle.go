// Package lifecycle holds process lifecycle settings shared by deliveries and infra.
package lifecycle

import "time"

// DefaultTimeout bounds start and stop hooks.
const DefaultTimeout = 10 * time.Second
