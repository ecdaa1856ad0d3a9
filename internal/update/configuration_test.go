package update_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/temirov/specsync/internal/update"
)

func TestDefaultConfigurationValues(testInstance *testing.T) {
	configurationValues := update.DefaultConfigurationValues("update")

	require.Equal(testInstance, "", configurationValues["update.source"])
	require.Equal(testInstance, "", configurationValues["update.target"])
	require.Equal(testInstance, "master", configurationValues["update.branch"])
	require.Equal(testInstance, "origin", configurationValues["update.remote"])
	require.Equal(testInstance, false, configurationValues["update.dry_run"])
}

func TestCommandConfigurationSanitize(testInstance *testing.T) {
	testCases := []struct {
		name                  string
		configuration         update.CommandConfiguration
		expectedConfiguration update.CommandConfiguration
	}{
		{
			name: "trims_values",
			configuration: update.CommandConfiguration{
				SourceRepositoryPath: "  /workspace/source  ",
				TargetRepositoryPath: "\t/workspace/target\n",
				BranchName:           " main ",
				RemoteName:           " upstream ",
				DryRun:               true,
			},
			expectedConfiguration: update.CommandConfiguration{
				SourceRepositoryPath: "/workspace/source",
				TargetRepositoryPath: "/workspace/target",
				BranchName:           "main",
				RemoteName:           "upstream",
				DryRun:               true,
			},
		},
		{
			name:          "defaults_blank_branch_and_remote",
			configuration: update.CommandConfiguration{BranchName: "  ", RemoteName: ""},
			expectedConfiguration: update.CommandConfiguration{
				BranchName: "master",
				RemoteName: "origin",
			},
		},
	}

	for _, testCase := range testCases {
		testInstance.Run(testCase.name, func(subTest *testing.T) {
			require.Equal(subTest, testCase.expectedConfiguration, testCase.configuration.Sanitize())
		})
	}
}
