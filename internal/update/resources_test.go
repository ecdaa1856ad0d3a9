package update_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/specsync/internal/update"
)

func TestResourceNamesOrderAndIsolation(testInstance *testing.T) {
	expectedNames := []string{"fixtures", "fixtures3", "spec2", "spec3", "spec3.sdk"}
	require.Equal(testInstance, expectedNames, update.ResourceNames())

	mutatedNames := update.ResourceNames()
	mutatedNames[0] = "tampered"
	require.Equal(testInstance, expectedNames, update.ResourceNames())
}
