package params

import (
	"encoding/json"
	"sort"
)

// ParameterSchema is the JSON-serializable description of one parameter,
// consumed by host UIs to build controls.
type ParameterSchema struct {
	Name        string
	Type        Type
	Description string
	MinValue    float32
	MaxValue    float32

	DefaultFloat float32
	DefaultInt   int
	DefaultBool  bool

	Options []string
	Flags   Flags
}

// SceneSchema describes a scene's full parameter surface.
type SceneSchema struct {
	Name        string
	Description string
	Parameters  []ParameterSchema
}

// SchemaFromDef builds a parameter schema entry from a definition.
func SchemaFromDef(def Def) ParameterSchema {
	return ParameterSchema{
		Name:         def.Name,
		Type:         def.Type,
		Description:  def.Description,
		MinValue:     def.MinValue,
		MaxValue:     def.MaxValue,
		DefaultFloat: def.DefaultFloat,
		DefaultInt:   def.DefaultInt,
		DefaultBool:  def.DefaultBool,
		Options:      def.Options,
		Flags:        def.Flags,
	}
}

// SchemaFromSettings reflects a settings store into a scene schema.
func SchemaFromSettings(name, description string, s *Settings) SceneSchema {
	schema := SceneSchema{Name: name, Description: description}
	names := s.Names()
	sort.Strings(names)
	for _, pname := range names {
		def, _ := s.GetMetadata(pname)
		schema.Parameters = append(schema.Parameters, SchemaFromDef(def))
	}
	return schema
}

// MarshalJSON emits the wire shape host UIs consume: min/max only for
// range-checked types, the default typed by kind, booleans unquoted, and
// every string JSON-escaped.
func (p ParameterSchema) MarshalJSON() ([]byte, error) {
	out := struct {
		Name        string   `json:"name"`
		Type        string   `json:"type"`
		Description string   `json:"description"`
		Min         *float32 `json:"min,omitempty"`
		Max         *float32 `json:"max,omitempty"`
		Default     any      `json:"default"`
		Options     []string `json:"options,omitempty"`
		Flags       string   `json:"flags"`
	}{
		Name:        p.Name,
		Type:        p.Type.String(),
		Description: p.Description,
		Options:     p.Options,
		Flags:       p.Flags.String(),
	}

	if p.Type.HasRange() {
		min, max := p.MinValue, p.MaxValue
		out.Min = &min
		out.Max = &max
	}

	switch {
	case p.Type.IsFloat():
		out.Default = p.DefaultFloat
	case p.Type.IsInt():
		out.Default = p.DefaultInt
	case p.Type == TypeSwitch:
		out.Default = p.DefaultBool
	default:
		out.Default = nil
	}

	return json.Marshal(out)
}

// MarshalJSON emits the scene schema's wire shape.
func (s SceneSchema) MarshalJSON() ([]byte, error) {
	out := struct {
		Name        string            `json:"name"`
		Description string            `json:"description"`
		Parameters  []ParameterSchema `json:"parameters"`
	}{
		Name:        s.Name,
		Description: s.Description,
		Parameters:  s.Parameters,
	}
	if out.Parameters == nil {
		out.Parameters = []ParameterSchema{}
	}
	return json.Marshal(out)
}

// JSON renders the scene schema as a JSON string.
func (s SceneSchema) JSON() string {
	data, err := json.Marshal(s)
	if err != nil {
		return "{}"
	}
	return string(data)
}
