package update

import "path/filepath"

const (
	openapiDirectoryNameConstant     = "openapi"
	yamlFileExtensionConstant        = ".yaml"
	jsonFileExtensionConstant        = ".json"
	fixturesGlobPatternConstant      = "fixtures*"
	specificationGlobPatternConstant = "spec*"
)

// resourceNames lists the synchronized documents in the order they are processed.
var resourceNames = []string{
	"fixtures",
	"fixtures3",
	"spec2",
	"spec3",
	"spec3.sdk",
}

// ResourceNames returns the ordered list of synchronized document identifiers.
func ResourceNames() []string {
	duplicatedNames := make([]string, len(resourceNames))
	copy(duplicatedNames, resourceNames)
	return duplicatedNames
}

func sourceDocumentPath(sourceRoot string, resourceName string) string {
	return filepath.Join(sourceRoot, openapiDirectoryNameConstant, resourceName+yamlFileExtensionConstant)
}

func targetDocumentPath(targetRoot string, resourceName string) string {
	return filepath.Join(targetRoot, openapiDirectoryNameConstant, resourceName+yamlFileExtensionConstant)
}

func targetRewrittenDocumentPath(targetRoot string, resourceName string) string {
	return filepath.Join(targetRoot, openapiDirectoryNameConstant, resourceName+jsonFileExtensionConstant)
}

func fixturesGlobPath(targetRoot string) string {
	return filepath.Join(targetRoot, openapiDirectoryNameConstant, fixturesGlobPatternConstant)
}

func specificationGlobPath(targetRoot string) string {
	return filepath.Join(targetRoot, openapiDirectoryNameConstant, specificationGlobPatternConstant)
}
