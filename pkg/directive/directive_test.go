package directive

import (
	"errors"
	"testing"
)

func TestRecognize(t *testing.T) {
	tt := []struct {
		name     string
		line     string
		expected Directive
	}{
		{"default", "// @block_default foo", Directive{Default, "foo"}},
		{"empty marker", "// @block spot", Directive{Empty, "spot"}},
		{"replace", "// @block_replace foo", Directive{Replace, "foo"}},
		{"append", "// @block_append foo", Directive{Append, "foo"}},
		{"endblock", "// @endblock", Directive{End, ""}},
		{"endblock trailing tokens are not validated", "// @endblock foo bar", Directive{End, ""}},
		{"unknown command", "// @whatever x y", Directive{Other, ""}},
		{"bare at sign", "// @", Directive{Other, ""}},
		{"surrounding whitespace", "   //   @block_default   foo   ", Directive{Default, "foo"}},
		{"no space before at", "//@block_default foo", Directive{Default, "foo"}},
		{"identifiers are case sensitive tokens", "// @block_default Foo_2", Directive{Default, "Foo_2"}},
		{"comment without at", "// plain comment", Directive{}},
		{"at not leading", "// email@example.com", Directive{}},
		{"not a comment", "code()", Directive{}},
		{"blank", "", Directive{}},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			d, err := Recognize(tc.line)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if d != tc.expected {
				t.Errorf("expected %+v, got %+v", tc.expected, d)
			}
		})
	}
}

func TestRecognizeMalformed(t *testing.T) {
	tt := []struct {
		name    string
		line    string
		command string
		args    int
	}{
		{"default no args", "// @block_default", "block_default", 0},
		{"default two args", "// @block_default a b", "block_default", 2},
		{"empty marker no args", "// @block", "block", 0},
		{"replace two args", "// @block_replace a b", "block_replace", 2},
		{"append no args", "// @block_append", "block_append", 0},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Recognize(tc.line)
			var malformed *MalformedError
			if !errors.As(err, &malformed) {
				t.Fatalf("expected *MalformedError, got %v", err)
			}
			if malformed.Command != tc.command || malformed.Args != tc.args {
				t.Errorf("expected (%s, %d), got (%s, %d)", tc.command, tc.args, malformed.Command, malformed.Args)
			}
		})
	}
}

func TestSplitComment(t *testing.T) {
	tt := []struct {
		name   string
		line   string
		indent string
		text   string
		ok     bool
	}{
		{"simple", "//   foo", "   ", "foo", true},
		{"leading whitespace ignored", "    //  bar", "  ", "bar", true},
		{"bare marker", "//", "", "", true},
		{"marker with trailing spaces", "//   ", "", "", true},
		{"no marker", "foo", "", "", false},
		{"blank", "   ", "", "", false},
	}

	for _, tc := range tt {
		t.Run(tc.name, func(t *testing.T) {
			indent, text, ok := SplitComment(tc.line)
			if indent != tc.indent || text != tc.text || ok != tc.ok {
				t.Errorf("expected (%q, %q, %v), got (%q, %q, %v)",
					tc.indent, tc.text, tc.ok, indent, text, ok)
			}
		})
	}
}

func TestIndentWidth(t *testing.T) {
	if w := IndentWidth("  //   @block_default x"); w != 3 {
		t.Errorf("expected width 3, got %d", w)
	}
	if w := IndentWidth("//@endblock"); w != 0 {
		t.Errorf("expected width 0, got %d", w)
	}
}
