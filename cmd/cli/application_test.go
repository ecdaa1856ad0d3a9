package cli_test

import (
	"testing"

	mapstructure "github.com/go-viper/mapstructure/v2"
	"github.com/stretchr/testify/require"

	"github.com/temirov/specsync/internal/update"
)

func TestUpdateOptionsDecodeWithMapstructure(testInstance *testing.T) {
	operationOptions := map[string]any{
		"source":  "/workspace/source",
		"target":  "/workspace/target",
		"branch":  "main",
		"remote":  "upstream",
		"dry_run": true,
	}

	var decodedConfiguration update.CommandConfiguration
	decoder, decoderError := mapstructure.NewDecoder(&mapstructure.DecoderConfig{TagName: "mapstructure", Result: &decodedConfiguration})
	require.NoError(testInstance, decoderError)
	require.NoError(testInstance, decoder.Decode(operationOptions))

	require.Equal(testInstance, update.CommandConfiguration{
		SourceRepositoryPath: "/workspace/source",
		TargetRepositoryPath: "/workspace/target",
		BranchName:           "main",
		RemoteName:           "upstream",
		DryRun:               true,
	}, decodedConfiguration)
}
