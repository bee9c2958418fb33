package dom

import (
	"crypto/rand"
	"time"

	"github.com/oklog/ulid/v2"
)

// NewID returns a new unique identifier. ULIDs sort by creation time,
// which keeps element ids stable in debug output.
func NewID() string {
	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return ulid.Make().String()
	}
	return id.String()
}
