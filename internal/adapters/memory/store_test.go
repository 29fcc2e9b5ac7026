package memory

import (
	"testing"

	"github.com/oxblood/morph/pkg/ports"
)

func TestStoreContract(t *testing.T) {
	ports.RunDocumentStoreContract(t, NewStore())
}
