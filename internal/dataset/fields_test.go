package dataset

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplitList(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"single token", "trap", []string{"trap"}},
		{"comma separated", "rap, trap", []string{"rap", "trap"}},
		{"semicolon separated", "Pop; Rock/Metal", []string{"Pop", "Rock/Metal"}},
		{"mixed delimiters", "rap, trap; drill", []string{"rap", "trap", "drill"}},
		{"duplicates collapse", "trap, rap, trap", []string{"trap", "rap"}},
		{"empty tokens dropped", "rap,, ,trap", []string{"rap", "trap"}},
		{"case preserved", "Dream Pop, dream pop", []string{"Dream Pop", "dream pop"}},
		{"internal punctuation preserved", "r&b, hip-hop", []string{"r&b", "hip-hop"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := SplitList(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("SplitList(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSplitListIdempotent(t *testing.T) {
	raw := "art pop, hyperpop; dream pop, art pop"
	first := SplitList(raw)
	second := SplitList(strings.Join(first, ", "))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("re-parsing joined tokens changed the result: %v vs %v", first, second)
	}
}

func TestPrimaryToken(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"trap", "trap"},
		{" trap ", "trap"},
		{"rap, trap", "rap"},
		{"Pop; Rock/Metal", "Pop"},
		{", trap", ""},
	}
	for _, tc := range tests {
		if got := PrimaryToken(tc.in); got != tc.want {
			t.Errorf("PrimaryToken(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTokenSet(t *testing.T) {
	set := TokenSet("rap, trap")
	if len(set) != 2 || !set["rap"] || !set["trap"] {
		t.Errorf("TokenSet(\"rap, trap\") = %v", set)
	}
	if TokenSet("") != nil {
		t.Errorf("TokenSet(\"\") should be nil")
	}
}
