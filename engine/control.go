package engine

import (
	"encoding/json"
	"fmt"
	"math"

	"github.com/Carmen-Shannon/pixel-theater/engine/params"
)

// controlSchema is one entry of the control-surface JSON the host UI
// consumes to build parameter widgets. Slider values are fixed 6-decimal
// strings; checkbox values are unquoted booleans.
type controlSchema struct {
	ID          string   `json:"id"`
	Label       string   `json:"label"`
	Type        string   `json:"type"`
	ControlType string   `json:"controlType"`
	Value       any      `json:"value"`
	Min         *float32 `json:"min,omitempty"`
	Max         *float32 `json:"max,omitempty"`
	Step        *float32 `json:"step,omitempty"`
	Options     []string `json:"options,omitempty"`
}

// sceneMetadata is the scene identification block host UIs show.
type sceneMetadata struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Version     string `json:"version"`
	Author      string `json:"author"`
}

// SceneMetadataJSON returns the current scene's metadata as JSON.
func (t *Theater) SceneMetadataJSON() string {
	meta := sceneMetadata{}
	if t.current != nil {
		meta = sceneMetadata{
			Name:        t.current.Name(),
			Description: t.current.Description(),
			Version:     t.current.Version(),
			Author:      t.current.Author(),
		}
	}
	data, err := json.Marshal(meta)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// SceneParametersJSON returns the current scene's parameters as a JSON
// array of UI controls: each entry carries id, label, type, controlType
// ("slider", "checkbox", or "select"), the current value, and for sliders
// min/max/step.
func (t *Theater) SceneParametersJSON() string {
	if t.current == nil {
		return "[]"
	}
	schema := t.current.ParameterSchema()
	settings := t.current.Settings()

	controls := make([]controlSchema, 0, len(schema.Parameters))
	for _, p := range schema.Parameters {
		c := controlSchema{
			ID:    p.Name,
			Label: p.Name,
			Type:  p.Type.String(),
		}

		switch {
		case p.Type == params.TypeSwitch:
			c.ControlType = "checkbox"
			c.Value = settings.Bool(p.Name)
		case p.Type == params.TypeSelect:
			c.ControlType = "select"
			c.Options = p.Options
			index := settings.Int(p.Name)
			if index >= 0 && index < len(p.Options) {
				c.Value = p.Options[index]
			} else {
				c.Value = ""
			}
		case p.Type == params.TypeCount:
			c.ControlType = "slider"
			c.Value = fmt.Sprintf("%d", settings.Int(p.Name))
			min, max, step := p.MinValue, p.MaxValue, float32(1.0)
			c.Min, c.Max, c.Step = &min, &max, &step
		case p.Type.IsFloat():
			c.ControlType = "slider"
			c.Value = fmt.Sprintf("%.6f", settings.Float(p.Name))
			min, max := p.MinValue, p.MaxValue
			step := sliderStep(p.Type, min, max)
			c.Min, c.Max, c.Step = &min, &max, &step
		default:
			// Resource handles have no widget yet.
			continue
		}
		controls = append(controls, c)
	}

	data, err := json.Marshal(controls)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// sliderStep picks the UI step size per parameter type.
func sliderStep(t params.Type, min, max float32) float32 {
	switch t {
	case params.TypeAngle, params.TypeSignedAngle:
		return float32(math.Pi) / 100.0
	case params.TypeRange:
		if max != min {
			return (max - min) / 100.0
		}
		return 0.01
	default:
		return 0.01
	}
}
