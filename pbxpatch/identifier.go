package pbxpatch

import (
	"strings"

	"github.com/gofrs/uuid"
)

// GenerateUuid returns a 24-character uppercase hex identifier in the
// format Xcode uses for object keys. Uniqueness relies on the underlying
// random UUID; no registry of existing identifiers is kept.
func GenerateUuid() string {
	u, _ := uuid.NewV4()
	return strings.ToUpper(strings.ReplaceAll(u.String(), "-", "")[0:24])
}
