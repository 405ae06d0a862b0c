package resumeparse

import (
	"encoding/json"
	"strings"
)

// ResumeRecord is the result of a successful pipeline run. It is a value
// object: produced once per run and never mutated after construction.
// Skills preserve extraction order.
type ResumeRecord struct {
	Name   string   `json:"name"`
	Email  string   `json:"email"`
	Skills []string `json:"skills"`
}

// Map returns the canonical field mapping of the record. The skills slice
// is copied so the record itself stays immutable.
func (r *ResumeRecord) Map() map[string]any {
	skills := make([]string, len(r.Skills))
	copy(skills, r.Skills)
	return map[string]any{
		"name":   r.Name,
		"email":  r.Email,
		"skills": skills,
	}
}

// JSON returns the record serialized as JSON with stable key order
// (name, email, skills). indent is the number of spaces per indentation
// level; zero or negative produces compact output. A nil skills slice is
// rendered as an empty array.
func (r *ResumeRecord) JSON(indent int) (string, error) {
	rec := *r
	if rec.Skills == nil {
		rec.Skills = []string{}
	}

	var b []byte
	var err error
	if indent > 0 {
		b, err = json.MarshalIndent(&rec, "", strings.Repeat(" ", indent))
	} else {
		b, err = json.Marshal(&rec)
	}
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// String returns the record as indented JSON.
func (r *ResumeRecord) String() string {
	s, err := r.JSON(2)
	if err != nil {
		return "ResumeRecord<invalid>"
	}
	return s
}
