package update

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

const (
	yamlParseErrorTemplateConstant          = "failed to parse YAML document: %w"
	multipleDocumentsMessageConstant        = "YAML stream contains more than one document"
	emptyDocumentMessageConstant            = "YAML stream contains no document"
	unsupportedScalarErrorTemplateConstant  = "failed to convert scalar %q: %w"
	jsonSerializationErrorTemplateConstant  = "failed to serialize JSON document: %w"
	jsonIndentationConstant                 = "  "
	jsonMemberSeparatorConstant             = ","
	jsonKeyValueSeparatorConstant           = ":"
	jsonObjectOpeningConstant               = "{"
	jsonObjectClosingConstant               = "}"
	trailingNewlineConstant                 = "\n"
	yamlNullTagConstant                     = "!!null"
	yamlBooleanTagConstant                  = "!!bool"
	yamlIntegerTagConstant                  = "!!int"
	yamlFloatTagConstant                    = "!!float"
	unexpectedNodeKindTemplateConstant      = "unexpected YAML node kind %d"
	yamlAliasWithoutAnchorMessageConstant   = "alias node references no anchor"
	documentConversionErrorTemplateConstant = "failed to convert document: %w"
)

// ErrMultipleDocuments indicates the YAML source held more than one document.
var ErrMultipleDocuments = errors.New(multipleDocumentsMessageConstant)

// ErrEmptyDocument indicates the YAML source held no document at all.
var ErrEmptyDocument = errors.New(emptyDocumentMessageConstant)

// orderedObjectMember pairs a mapping key with its converted value.
type orderedObjectMember struct {
	key   string
	value any
}

// orderedObject serializes as a JSON object preserving member order.
type orderedObject []orderedObjectMember

// MarshalJSON renders the object members in their original order.
func (object orderedObject) MarshalJSON() ([]byte, error) {
	var serialized bytes.Buffer
	serialized.WriteString(jsonObjectOpeningConstant)
	for memberIndex, member := range object {
		if memberIndex > 0 {
			serialized.WriteString(jsonMemberSeparatorConstant)
		}
		encodedKey, keyError := json.Marshal(member.key)
		if keyError != nil {
			return nil, keyError
		}
		serialized.Write(encodedKey)
		serialized.WriteString(jsonKeyValueSeparatorConstant)
		encodedValue, valueError := json.Marshal(member.value)
		if valueError != nil {
			return nil, valueError
		}
		serialized.Write(encodedValue)
	}
	serialized.WriteString(jsonObjectClosingConstant)
	return serialized.Bytes(), nil
}

// ConvertYAMLToJSON rewrites a single YAML document as deterministic, indented JSON.
//
// Mapping key order is preserved exactly as read so repeated runs over an
// unchanged source produce byte-identical output.
func ConvertYAMLToJSON(yamlContent []byte) ([]byte, error) {
	decoder := yaml.NewDecoder(bytes.NewReader(yamlContent))

	var documentNode yaml.Node
	decodeError := decoder.Decode(&documentNode)
	if decodeError != nil {
		if errors.Is(decodeError, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf(yamlParseErrorTemplateConstant, decodeError)
	}

	var extraDocument yaml.Node
	extraDecodeError := decoder.Decode(&extraDocument)
	if extraDecodeError == nil {
		return nil, ErrMultipleDocuments
	}
	if !errors.Is(extraDecodeError, io.EOF) {
		return nil, fmt.Errorf(yamlParseErrorTemplateConstant, extraDecodeError)
	}

	convertedDocument, conversionError := convertNode(&documentNode)
	if conversionError != nil {
		return nil, fmt.Errorf(documentConversionErrorTemplateConstant, conversionError)
	}

	serializedDocument, serializationError := json.MarshalIndent(convertedDocument, "", jsonIndentationConstant)
	if serializationError != nil {
		return nil, fmt.Errorf(jsonSerializationErrorTemplateConstant, serializationError)
	}

	return append(serializedDocument, trailingNewlineConstant...), nil
}

func convertNode(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil, ErrEmptyDocument
		}
		return convertNode(node.Content[0])
	case yaml.MappingNode:
		return convertMappingNode(node)
	case yaml.SequenceNode:
		return convertSequenceNode(node)
	case yaml.ScalarNode:
		return convertScalarNode(node)
	case yaml.AliasNode:
		if node.Alias == nil {
			return nil, errors.New(yamlAliasWithoutAnchorMessageConstant)
		}
		return convertNode(node.Alias)
	default:
		return nil, fmt.Errorf(unexpectedNodeKindTemplateConstant, node.Kind)
	}
}

func convertMappingNode(node *yaml.Node) (any, error) {
	convertedObject := make(orderedObject, 0, len(node.Content)/2)
	for contentIndex := 0; contentIndex+1 < len(node.Content); contentIndex += 2 {
		keyNode := node.Content[contentIndex]
		valueNode := node.Content[contentIndex+1]

		convertedValue, conversionError := convertNode(valueNode)
		if conversionError != nil {
			return nil, conversionError
		}
		convertedObject = append(convertedObject, orderedObjectMember{key: keyNode.Value, value: convertedValue})
	}
	return convertedObject, nil
}

func convertSequenceNode(node *yaml.Node) (any, error) {
	convertedSequence := make([]any, 0, len(node.Content))
	for _, elementNode := range node.Content {
		convertedElement, conversionError := convertNode(elementNode)
		if conversionError != nil {
			return nil, conversionError
		}
		convertedSequence = append(convertedSequence, convertedElement)
	}
	return convertedSequence, nil
}

func convertScalarNode(node *yaml.Node) (any, error) {
	switch node.Tag {
	case yamlNullTagConstant:
		return nil, nil
	case yamlBooleanTagConstant, yamlIntegerTagConstant, yamlFloatTagConstant:
		var decodedValue any
		if decodeError := node.Decode(&decodedValue); decodeError != nil {
			return nil, fmt.Errorf(unsupportedScalarErrorTemplateConstant, node.Value, decodeError)
		}
		return decodedValue, nil
	default:
		return node.Value, nil
	}
}
