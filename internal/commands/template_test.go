package commands

import (
	"testing"
)

func TestExpandTemplate(t *testing.T) {
	tests := map[string]struct {
		tmplStr string
		data    any
		exp     string
		expErr  bool
	}{
		"plain string no expansion": {
			tmplStr: "hello world",
			data:    struct{}{},
			exp:     "hello world",
		},
		"travel line": {
			tmplStr: msgTravel,
			data:    struct{ Direction string }{Direction: "north"},
			exp:     "You head north.",
		},
		"departure line": {
			tmplStr: msgDeparture,
			data: struct {
				Name      string
				Direction string
			}{Name: "Alice", Direction: "east"},
			exp: "Alice leaves east.",
		},
		"consume room line": {
			tmplStr: msgConsumeRoom,
			data: struct {
				Name string
				Past string
				Item string
			}{Name: "Alice", Past: "ate", Item: "bread"},
			exp: "Alice ate a bread",
		},
		"sprig function": {
			tmplStr: "{{ .Name | upper }}",
			data:    struct{ Name string }{Name: "alice"},
			exp:     "ALICE",
		},
		"invalid template syntax": {
			tmplStr: "{{ .Invalid",
			data:    struct{}{},
			expErr:  true,
		},
		"missing field": {
			tmplStr: "{{ .Nonexistent }}",
			data:    struct{}{},
			expErr:  true,
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, err := ExpandTemplate(tt.tmplStr, tt.data)

			if tt.expErr {
				if err == nil {
					t.Errorf("expected error, got nil")
				}
				return
			}

			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}

			if got != tt.exp {
				t.Errorf("got %q, expected %q", got, tt.exp)
			}
		})
	}
}
