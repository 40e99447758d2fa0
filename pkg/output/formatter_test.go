package output

import (
	"bytes"
	"testing"

	"github.com/genderapi-toolkit/genderapi/pkg/errors"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"yaml", FormatYAML, false},
		{" yml ", FormatYAML, false},
		{"xml", "", true},
	}

	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if tt.wantErr {
			if !errors.IsType(err, errors.ErrValidation) {
				t.Errorf("ParseFormat(%q): expected validation error, got %v", tt.in, err)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, %v; want %q", tt.in, got, err, tt.want)
		}
	}
}

func TestFormatterWrite(t *testing.T) {
	v := map[string]any{"name": "kim", "accuracy": 55}

	var buf bytes.Buffer
	if err := NewFormatter(FormatJSON).Write(&buf, v); err != nil {
		t.Fatal(err)
	}
	want := "{\n  \"accuracy\": 55,\n  \"name\": \"kim\"\n}\n"
	if buf.String() != want {
		t.Errorf("JSON output = %q, want %q", buf.String(), want)
	}

	buf.Reset()
	if err := NewFormatter(FormatYAML).Write(&buf, v); err != nil {
		t.Fatal(err)
	}
	want = "accuracy: 55\nname: kim\n"
	if buf.String() != want {
		t.Errorf("YAML output = %q, want %q", buf.String(), want)
	}
}
