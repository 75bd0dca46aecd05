package counting

import (
	"testing"

	"uniqwin/plugins/scanner/scannertest"
)

func TestContract(t *testing.T) {
	scannertest.RunExact(t, New(nil))
}
