// Package diag provides diagnostic helpers for error messages. Nothing
// here affects the on-disk ZSO format.
package diag

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Fingerprint returns a short hex digest of data for inclusion in
// corruption error messages, so a report can distinguish "this block"
// from "that block" without dumping raw bytes.
func Fingerprint(data []byte) string {
	return strconv.FormatUint(xxhash.Sum64(data), 16)
}
