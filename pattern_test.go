package jsvalidate

import "testing"

func TestPatternMatcher_SubstringMatch(t *testing.T) {
	p := CompilePattern("oo")
	if !p.MatchString("foobar") {
		t.Fatalf("expected substring match, pattern is not anchored")
	}
	if p.MatchString("bar") {
		t.Fatalf("did not expect a match")
	}
}

func TestPatternMatcher_Anchored(t *testing.T) {
	p := CompilePattern("^[0-9]+$")
	if !p.MatchString("12345") {
		t.Fatalf("expected match for all-digit string")
	}
	if p.MatchString("123a5") {
		t.Fatalf("did not expect match for mixed string")
	}
}

func TestPatternMatcher_MalformedNeverMatches(t *testing.T) {
	p := CompilePattern("(unterminated")
	if p.MatchString("") || p.MatchString("unterminated") {
		t.Fatalf("malformed pattern must never match")
	}
}

func TestPatternMatcher_NilSafe(t *testing.T) {
	var p *PatternMatcher
	if p.MatchString("anything") {
		t.Fatalf("nil matcher must not match")
	}
}
