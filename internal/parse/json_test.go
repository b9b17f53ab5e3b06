package parse

import (
	"errors"
	"testing"

	"github.com/hopscotch/backend/internal/apperr"
)

func TestStrictJSONWithFences(t *testing.T) {
	var out struct {
		SuggestedHazards []string `json:"suggested_hazards"`
	}
	text := "```json\n{\"suggested_hazards\": [\"Wet floor\", \"Hot surfaces\"]}\n```"
	if err := StrictJSON(text, &out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out.SuggestedHazards) != 2 || out.SuggestedHazards[0] != "Wet floor" {
		t.Fatalf("unexpected result: %#v", out)
	}
}

func TestStrictJSONMalformed(t *testing.T) {
	var out map[string]any
	err := StrictJSON("the hazards are wet floors and hot surfaces", &out)
	if !errors.Is(err, apperr.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}

func TestStripFences(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"{\"a\":1}", "{\"a\":1}"},
		{"```json\n{\"a\":1}\n```", "{\"a\":1}"},
		{"```\n{\"a\":1}\n```", "{\"a\":1}"},
	}
	for _, tc := range cases {
		if got := StripFences(tc.in); got != tc.want {
			t.Errorf("StripFences(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExtractObject(t *testing.T) {
	body, ok := ExtractObject("Here is my review: {\"suggestions\": []} hope it helps")
	if !ok || body != "{\"suggestions\": []}" {
		t.Fatalf("ExtractObject = %q, %v", body, ok)
	}
	if _, ok := ExtractObject("no json here"); ok {
		t.Fatal("expected no object")
	}
}
