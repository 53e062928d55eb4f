package log

import (
	"bytes"
	"os"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	type spec struct {
		in       string
		exp      Level
		expError bool
	}
	specs := []spec{
		{"debug", Debug, false},
		{"INFO", Info, false},
		{" notice ", Notice, false},
		{"warning", Warning, false},
		{"error", Error, false},
		{"verbose", Notice, true},
	}

	for idx, s := range specs {
		level, err := ParseLevel(s.in)
		if s.expError {
			if err == nil {
				t.Fatalf("[spec %d] expected an error for %q", idx, s.in)
			}
			continue
		}
		if err != nil {
			t.Fatalf("[spec %d] unexpected error: %v", idx, err)
		}
		if level != s.exp {
			t.Fatalf("[spec %d] expected level %d; got %d", idx, s.exp, level)
		}
	}
}

func TestSinkAndLevel(t *testing.T) {
	var buf bytes.Buffer
	SetSink(&buf)
	defer SetSink(os.Stderr)
	defer SetLevel(Notice)

	logger := New("test")

	SetLevel(Warning)
	logger.Notice("hidden message")
	if buf.Len() != 0 {
		t.Fatalf("expected notice to be filtered at warning level; got %q", buf.String())
	}

	SetLevel(Debug)
	logger.Debugf("visible %d", 42)
	if !strings.Contains(buf.String(), "visible 42") {
		t.Fatalf("expected debug message in sink; got %q", buf.String())
	}
	if !strings.Contains(buf.String(), "[test]") {
		t.Fatalf("expected module name in sink output; got %q", buf.String())
	}
}
