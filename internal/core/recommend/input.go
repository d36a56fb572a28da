package recommend

import (
	"encoding/json"
)

// Input is the questionnaire payload the engine scores
// every field is optional and zero values are the defaults
type Input struct {
	Skills     string `json:"skills"     example:"react, node"`
	Interests  string `json:"interests"  example:"web apps"`
	ResumeText string `json:"resumeText" example:"Built dashboards with React"`
	RolePref   string `json:"rolePref"   example:"engineering"`

	Industries      []string `json:"industries"`
	CodingLanguages []string `json:"codingLanguages"`
	Tools           []string `json:"tools"`
	InterestsTags   []string `json:"interestsTags"`
	Values          []string `json:"values"`
	Roles           []string `json:"roles"`

	LearningStyle string `json:"learningStyle" example:"hands-on"`
	Environment   string `json:"environment"   example:"remote"`
	Goals         string `json:"goals"         example:"land a junior role"`
}

// UnmarshalJSON decodes leniently: wrong types fall back to defaults instead of failing
// only syntactically invalid JSON is an error
func (in *Input) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	obj, _ := raw.(map[string]any)
	*in = Coerce(obj)
	return nil
}

// Coerce builds an Input from loosely typed decoded JSON
// non-string scalars become "", non-array lists become empty, non-string list items are dropped
func Coerce(m map[string]any) Input {
	return Input{
		Skills:          str(m["skills"]),
		Interests:       str(m["interests"]),
		ResumeText:      str(m["resumeText"]),
		RolePref:        str(m["rolePref"]),
		Industries:      list(m["industries"]),
		CodingLanguages: list(m["codingLanguages"]),
		Tools:           list(m["tools"]),
		InterestsTags:   list(m["interestsTags"]),
		Values:          list(m["values"]),
		Roles:           list(m["roles"]),
		LearningStyle:   str(m["learningStyle"]),
		Environment:     str(m["environment"]),
		Goals:           str(m["goals"]),
	}
}

// Sanitized returns a copy with nil lists replaced by empty ones so it encodes as []
func (in Input) Sanitized() Input {
	out := in
	out.Industries = nonNil(in.Industries)
	out.CodingLanguages = nonNil(in.CodingLanguages)
	out.Tools = nonNil(in.Tools)
	out.InterestsTags = nonNil(in.InterestsTags)
	out.Values = nonNil(in.Values)
	out.Roles = nonNil(in.Roles)
	return out
}

func str(v any) string {
	s, _ := v.(string)
	return s
}

func list(v any) []string {
	arr, ok := v.([]any)
	if !ok {
		return []string{}
	}
	out := make([]string, 0, len(arr))
	for _, it := range arr {
		if s, ok := it.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func nonNil(in []string) []string {
	if in == nil {
		return []string{}
	}
	return in
}
