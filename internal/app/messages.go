package app

import "pixelmask.klederson.com/internal/masking"

// ConfirmMsg applies a display text and algorithm to the driver.
type ConfirmMsg struct {
	Text      string
	Algorithm masking.Algorithm
}
