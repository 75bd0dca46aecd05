package hashset

import (
	"testing"

	"uniqwin/plugins/scanner/scannertest"
)

func TestContract(t *testing.T) {
	scannertest.RunExact(t, New(nil))
}

func TestContractFresh(t *testing.T) {
	scannertest.RunExact(t, New(&Options{Fresh: true}))
}
