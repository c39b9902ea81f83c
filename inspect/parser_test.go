package inspect

import (
	"testing"
)

func parse(t *testing.T, input string) []Operation {
	t.Helper()
	ops, err := NewParser([]byte(input)).Parse()
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", input, err)
	}
	return ops
}

// TestParseOperators checks operator names and operand counts
func TestParseOperators(t *testing.T) {
	tests := []struct {
		input     string
		operators []string
		operands  []int
	}{
		{"q", []string{"q"}, []int{0}},
		{"100 Tz", []string{"Tz"}, []int{1}},
		{"1 0 0 1 50 700 Tm", []string{"Tm"}, []int{6}},
		{"BT /F1 12.00 Tf 28.35 566.93 Td (Nombre) Tj ET", []string{"BT", "Tf", "Td", "Tj", "ET"}, []int{0, 2, 2, 1, 0}},
		{"q 1.000 g BT 1 2 Td (x) Tj ET Q", []string{"q", "g", "BT", "Td", "Tj", "ET", "Q"}, []int{0, 1, 0, 2, 1, 0, 0}},
		{"28.35 566.93 784.91 -42.52 re f", []string{"re", "f"}, []int{4, 0}},
		{"10 20 m 30 40 l S", []string{"m", "l", "S"}, []int{2, 2, 0}},
		{"0 0 1 rg 1 0 0 RG", []string{"rg", "RG"}, []int{3, 3}},
		{"T* 1 2 TD", []string{"T*", "TD"}, []int{0, 2}},
		{"% comment\nq\n%another\nQ", []string{"q", "Q"}, []int{0, 0}},
		{"", nil, nil},
		{"  \n\t ", nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			ops := parse(t, tt.input)
			if len(ops) != len(tt.operators) {
				t.Fatalf("expected %d operations, got %d: %+v", len(tt.operators), len(ops), ops)
			}
			for i, op := range ops {
				if op.Operator != tt.operators[i] {
					t.Errorf("op %d: operator %q, want %q", i, op.Operator, tt.operators[i])
				}
				if len(op.Operands) != tt.operands[i] {
					t.Errorf("op %d: %d operands, want %d", i, len(op.Operands), tt.operands[i])
				}
			}
		})
	}
}

// TestParseNumbers checks integer and real operands
func TestParseNumbers(t *testing.T) {
	ops := parse(t, "100 -5 1.5 -.25 .5 +3 n")
	want := []Object{Int(100), Int(-5), Real(1.5), Real(-.25), Real(.5), Int(3)}

	if len(ops[0].Operands) != len(want) {
		t.Fatalf("expected %d operands, got %d", len(want), len(ops[0].Operands))
	}
	for i, w := range want {
		if ops[0].Operands[i] != w {
			t.Errorf("operand %d = %#v, want %#v", i, ops[0].Operands[i], w)
		}
	}
}

// TestParseStrings checks literal and hex string decoding
func TestParseStrings(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain", "(Hello) Tj", "Hello"},
		{"nested parentheses", "(a (b) c) Tj", "a (b) c"},
		{"escaped parentheses", `(Tel\(1\)) Tj`, "Tel(1)"},
		{"backslash escapes", `(a\nb\tc\\d) Tj`, "a\nb\tc\\d"},
		{"octal", `(G\351nero) Tj`, "G\xe9nero"},
		{"short octal", `(\7x) Tj`, "\x07x"},
		{"line continuation", "(ab\\\ncd) Tj", "abcd"},
		{"winansi byte", "(Tel\xe9fono) Tj", "Tel\xe9fono"},
		{"hex", "<48656C6C6F> Tj", "Hello"},
		{"hex lowercase", "<48656c6c6f> Tj", "Hello"},
		{"hex whitespace", "<48 65 6C\n6C 6F> Tj", "Hello"},
		{"hex odd length", "<414> Tj", "A@"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := parse(t, tt.input)
			if len(ops) != 1 || len(ops[0].Operands) != 1 {
				t.Fatalf("unexpected ops %+v", ops)
			}
			s, ok := ops[0].Operands[0].(String)
			if !ok {
				t.Fatalf("expected String, got %T", ops[0].Operands[0])
			}
			if string(s) != tt.want {
				t.Errorf("got %q, want %q", s, tt.want)
			}
		})
	}
}

// TestParseNames checks name operands and # escapes
func TestParseNames(t *testing.T) {
	ops := parse(t, "/F1 /A#20B /Name#2Fx Do")
	want := []Name{"F1", "A B", "Name/x"}
	for i, w := range want {
		if got, ok := ops[0].Operands[i].(Name); !ok || got != w {
			t.Errorf("operand %d = %v, want %v", i, ops[0].Operands[i], w)
		}
	}
}

// TestParseCompound checks arrays, dictionaries, booleans and null
func TestParseCompound(t *testing.T) {
	ops := parse(t, "[(A) -120 (B) [1 2]] TJ /Span <</MCID 0 /Lang (es)>> BDC true false null d0")

	arr, ok := ops[0].Operands[0].(Array)
	if !ok || len(arr) != 4 {
		t.Fatalf("expected 4 element array, got %v", ops[0].Operands[0])
	}
	if inner, ok := arr[3].(Array); !ok || len(inner) != 2 {
		t.Errorf("expected nested array, got %v", arr[3])
	}

	if ops[1].Operator != "BDC" {
		t.Fatalf("expected BDC, got %s", ops[1].Operator)
	}
	d, ok := ops[1].Operands[1].(Dict)
	if !ok || d["MCID"] != Int(0) || d["Lang"] != String("es") {
		t.Errorf("unexpected dict %v", ops[1].Operands[1])
	}

	if ops[2].Operator != "d0" {
		t.Fatalf("expected d0, got %s", ops[2].Operator)
	}
	want := []Object{Bool(true), Bool(false), Null{}}
	for i, w := range want {
		if ops[2].Operands[i] != w {
			t.Errorf("operand %d = %v, want %v", i, ops[2].Operands[i], w)
		}
	}
}

// TestParseErrors checks malformed input
func TestParseErrors(t *testing.T) {
	for _, input := range []string{"(unclosed", "<4G> Tj", "[1 2", "<</A 1", "<<1 2>> x", ") Tj"} {
		if _, err := NewParser([]byte(input)).Parse(); err == nil {
			t.Errorf("Parse(%q): expected error", input)
		}
	}
}

// TestParserIndependence checks that parsers do not share operand state
func TestParserIndependence(t *testing.T) {
	a := NewParser([]byte("1 2 3"))
	if _, err := a.Parse(); err != nil {
		t.Fatal(err)
	}
	ops := parse(t, "q")
	if len(ops[0].Operands) != 0 {
		t.Errorf("operands leaked between parsers: %v", ops[0].Operands)
	}
}

func TestHelpers(t *testing.T) {
	if hexValue('a') != 10 || hexValue('F') != 15 || hexValue('7') != 7 || hexValue('z') != 0 {
		t.Error("hexValue")
	}
	for _, c := range []byte("()<>[]{}/%") {
		if !isDelimiter(c) {
			t.Errorf("isDelimiter(%q) = false", c)
		}
	}
	if isDelimiter('a') || !isWhitespace(0) || isWhitespace('a') || !isHexDigit('e') || isHexDigit('g') {
		t.Error("character classes")
	}
	if v, ok := Number(Real(1.5)); !ok || v != 1.5 {
		t.Error("Number(Real)")
	}
	if _, ok := Number(Name("x")); ok {
		t.Error("Number(Name) should fail")
	}
	if ObjDict.String() != "Dict" || (Array{Int(1), Name("A")}).String() != "[1 /A]" {
		t.Error("String forms")
	}
}
