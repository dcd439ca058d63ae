package rsplit_test

import (
	"testing"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
)

func TestRsplit(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Rsplit Suite")
}
