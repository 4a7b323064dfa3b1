package traverse

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// IdentityLength is the fixed width of a path identifier
const IdentityLength = 16

// Identity maps a node-id string to a fixed-width hexadecimal identifier.
// xxhash is stable across runs and processes and well distributed enough
// that collisions are not a practical concern at transcript-corpus sizes.
func Identity(s string) string {
	return fmt.Sprintf("%0*x", IdentityLength, xxhash.Sum64String(s))
}
