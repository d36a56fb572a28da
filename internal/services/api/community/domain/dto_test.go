package domain

import (
	"encoding/json"
	"testing"
)

func TestRefID_Unmarshal(t *testing.T) {
	cases := []struct {
		in   string
		want RefID
	}{
		{`{"refId":"abc"}`, "abc"},
		{`{"refId":42}`, "42"},
		{`{"refId":true}`, ""},
		{`{"refId":null}`, ""},
		{`{}`, ""},
	}
	for _, c := range cases {
		var in ReportInput
		if err := json.Unmarshal([]byte(c.in), &in); err != nil {
			t.Fatalf("%s: %v", c.in, err)
		}
		if in.RefID != c.want {
			t.Fatalf("%s: got %q want %q", c.in, in.RefID, c.want)
		}
	}
}
