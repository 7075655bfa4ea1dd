package vars

import "testing"

func TestFirstNonZero(t *testing.T) {
	if got := FirstNonZero("", "a", "b"); got != "a" {
		t.Errorf("got %q", got)
	}
	if got := FirstNonZero(0, 0); got != 0 {
		t.Errorf("got %v", got)
	}
}

func TestStrToBool(t *testing.T) {
	for _, test := range []struct {
		input string
		want  bool
	}{
		{"true", true},
		{"Y", true},
		{"no", false},
		{"whatever", false},
	} {
		if got := StrToBool(test.input); got != test.want {
			t.Errorf("StrToBool(%q) = %v", test.input, got)
		}
	}
}
