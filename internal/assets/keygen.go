package assets

import (
	"fmt"

	"github.com/google/uuid"
)

// objectKey derives a collision-resistant storage key for a new asset
// under the owner's bucket folder. The random 128-bit infix keeps keys
// unique even for repeated uploads of the same name, while the name
// suffix keeps them traceable in storage-provider consoles.
func objectKey(bucketFolder, assetName string) string {
	return fmt.Sprintf("%s/%s_%s", bucketFolder, uuid.NewString(), assetName)
}
