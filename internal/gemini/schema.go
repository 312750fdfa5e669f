package gemini

import (
	"slices"
	"sort"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"google.golang.org/genai"
)

// ConvertSchema translates an OpenAPI schema into the structured-output
// schema the Gemini API expects. Property ordering follows the Required list
// first and then the remaining property names alphabetically, so the model
// emits fields in a stable order.
func ConvertSchema(src *openapi3.Schema) *genai.Schema {
	if src == nil {
		return nil
	}
	out := &genai.Schema{
		Type:        wireType(src.Type),
		Format:      src.Format,
		Description: src.Description,
		Title:       src.Title,
		Pattern:     src.Pattern,
	}
	if src.Nullable {
		nullable := true
		out.Nullable = &nullable
	}
	if len(src.Required) > 0 {
		out.Required = append([]string(nil), src.Required...)
	}
	for _, value := range src.Enum {
		if s, ok := value.(string); ok {
			out.Enum = append(out.Enum, s)
		}
	}
	if src.Min != nil {
		value := *src.Min
		out.Minimum = &value
	}
	if src.Max != nil {
		value := *src.Max
		out.Maximum = &value
	}
	if len(src.Properties) > 0 {
		out.Properties = make(map[string]*genai.Schema, len(src.Properties))
		for name, ref := range src.Properties {
			if ref == nil || ref.Value == nil {
				continue
			}
			out.Properties[name] = ConvertSchema(ref.Value)
		}
		out.PropertyOrdering = propertyOrdering(src.Required, out.Properties)
	}
	if src.Items != nil && src.Items.Value != nil {
		out.Items = ConvertSchema(src.Items.Value)
	}
	return out
}

func propertyOrdering(required []string, properties map[string]*genai.Schema) []string {
	order := make([]string, 0, len(properties))
	for _, name := range required {
		if _, ok := properties[name]; ok && !slices.Contains(order, name) {
			order = append(order, name)
		}
	}
	var rest []string
	for name := range properties {
		if !slices.Contains(order, name) {
			rest = append(rest, name)
		}
	}
	sort.Strings(rest)
	return append(order, rest...)
}

func wireType(types *openapi3.Types) genai.Type {
	values := types.Slice()
	if len(values) == 0 {
		return genai.TypeUnspecified
	}
	switch strings.ToLower(values[0]) {
	case openapi3.TypeString:
		return genai.TypeString
	case openapi3.TypeNumber:
		return genai.TypeNumber
	case openapi3.TypeInteger:
		return genai.TypeInteger
	case openapi3.TypeBoolean:
		return genai.TypeBoolean
	case openapi3.TypeArray:
		return genai.TypeArray
	case openapi3.TypeObject:
		return genai.TypeObject
	case openapi3.TypeNull:
		return genai.TypeNULL
	default:
		return genai.TypeUnspecified
	}
}
