package procalc

import (
	"io"
	"reflect"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		errs   int
	}{
		// spaces
		{"", nil, 0},
		{" \t \r\n ", nil, 0},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}}, 0},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}}, 0},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1.0", []lexToken{{text: "1.0", kind: tokenNum, pos: 1}}, 0},
		{"-1", []lexToken{{text: "-", kind: tokenOp, pos: 1}, {text: "1", kind: tokenNum, pos: 2}}, 0},
		{"1e1", []lexToken{{text: "1e1", kind: tokenNum, pos: 1}}, 0},
		{"1e", nil, 1},
		{"1e+1", []lexToken{{text: "1e+1", kind: tokenNum, pos: 1}}, 0},
		{"1e-1", []lexToken{{text: "1e-1", kind: tokenNum, pos: 1}}, 0},
		{"1.1.1", []lexToken{{text: "1", kind: tokenNum, pos: 5}}, 1},
		{"1.0e1", []lexToken{{text: "1.0e1", kind: tokenNum, pos: 1}}, 0},
		{".", nil, 1},
		{".1", []lexToken{{text: ".1", kind: tokenNum, pos: 1}}, 0},
		{".1e1", []lexToken{{text: ".1e1", kind: tokenNum, pos: 1}}, 0},
		{"1a", nil, 1},
		// operators
		{"1+0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "+", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1*0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "*", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1%2", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "%", kind: tokenOp, pos: 2}, {text: "2", kind: tokenNum, pos: 3}}, 0},
		{"2^3", []lexToken{{text: "2", kind: tokenNum, pos: 1}, {text: "^", kind: tokenOp, pos: 2}, {text: "3", kind: tokenNum, pos: 3}}, 0},
		{"2**3", []lexToken{{text: "2", kind: tokenNum, pos: 1}, {text: "**", kind: tokenOp, pos: 2}, {text: "3", kind: tokenNum, pos: 4}}, 0},
		{"**", []lexToken{{text: "**", kind: tokenOp, pos: 1}}, 0},
		{"++", []lexToken{{text: "+", kind: tokenOp, pos: 1}, {text: "+", kind: tokenOp, pos: 2}}, 0},
		{"2×3", []lexToken{{text: "2", kind: tokenNum, pos: 1}, {text: "×", kind: tokenOp, pos: 2}, {text: "3", kind: tokenNum, pos: 3}}, 0},
		{"2÷3", []lexToken{{text: "2", kind: tokenNum, pos: 1}, {text: "÷", kind: tokenOp, pos: 2}, {text: "3", kind: tokenNum, pos: 3}}, 0},
		{"5−2", []lexToken{{text: "5", kind: tokenNum, pos: 1}, {text: "−", kind: tokenOp, pos: 2}, {text: "2", kind: tokenNum, pos: 3}}, 0},
		// non-arithmetic operators lex so the parser can reject them by name
		{"1&2", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "&", kind: tokenOp, pos: 2}, {text: "2", kind: tokenNum, pos: 3}}, 0},
		{"1<2", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "<", kind: tokenOp, pos: 2}, {text: "2", kind: tokenNum, pos: 3}}, 0},
		{"1=2", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "=", kind: tokenOp, pos: 2}, {text: "2", kind: tokenNum, pos: 3}}, 0},
		{"!1", []lexToken{{text: "!", kind: tokenOp, pos: 1}, {text: "1", kind: tokenNum, pos: 2}}, 0},
		// brackets
		{"(1)", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: "1", kind: tokenNum, pos: 2}, {text: ")", kind: tokenClose, pos: 3}}, 0},
		{"()", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: ")", kind: tokenClose, pos: 2}}, 0},
		{"[]", []lexToken{{text: "[", kind: tokenOpen, pos: 1}, {text: "]", kind: tokenClose, pos: 2}}, 0},
		{"{}", []lexToken{{text: "{", kind: tokenOpen, pos: 1}, {text: "}", kind: tokenClose, pos: 2}}, 0},
		// identifiers are never tokens
		{"x", nil, 1},
		{"_1234_", nil, 1},
		{"foo+1", []lexToken{{text: "+", kind: tokenOp, pos: 4}, {text: "1", kind: tokenNum, pos: 5}}, 1},
		{"inf", nil, 1},
		// erroneous symbols
		{"$", nil, 1},
		{"0$", nil, 1},
		{"$0", []lexToken{{text: "0", kind: tokenNum, pos: 2}}, 1},
		{"$$", nil, 2},
	}

	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		var tokens []lexToken
		errs := 0
		for {
			got, err := scan.next("")
			if err != nil {
				if err == io.EOF {
					t.Errorf("scanning %q: io.EOF before EOF token", c.src)
					break
				}
				errs++
				continue
			}
			if got.kind == tokenEOF {
				break
			}
			tokens = append(tokens, got)
		}
		if !reflect.DeepEqual(tokens, c.tokens) {
			t.Errorf("scanning %q: want tokens %v, got %v", c.src, c.tokens, tokens)
		}
		if errs != c.errs {
			t.Errorf("scanning %q: want %d errors, got %d", c.src, c.errs, errs)
		}
	}
}

func TestLexStopOn(t *testing.T) {
	scan := lex(strings.NewReader("1\n2"))
	tok, err := scan.next("\n")
	if err != nil || tok.kind != tokenNum || tok.text != "1" {
		t.Fatalf("first token: want num 1, got %v with error %v", tok, err)
	}
	tok, err = scan.next("\n")
	if err != nil || tok.kind != tokenEOF {
		t.Fatalf("second token: want EOF at newline, got %v with error %v", tok, err)
	}
}

func TestLexPush(t *testing.T) {
	scan := lex(strings.NewReader("1+2"))
	tok, err := scan.next("")
	if err != nil {
		t.Fatal(err)
	}
	scan.push(tok)
	again, err := scan.next("")
	if err != nil {
		t.Fatal(err)
	}
	if again != tok {
		t.Errorf("pushed token not returned: want %v, got %v", tok, again)
	}
}
