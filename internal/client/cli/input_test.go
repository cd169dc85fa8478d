package cli

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetSimpleText(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("hello world\n"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "hello world" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextEOF(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("lastline"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Name?", &out)
	if err != nil || got != "lastline" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetSimpleTextTrimsWhitespace(t *testing.T) {
	in := bufio.NewReader(strings.NewReader("  ABC123  \n"))
	var out bytes.Buffer
	got, err := GetSimpleText(in, "Code?", &out)
	if err != nil || got != "ABC123" {
		t.Fatalf("got %q, err=%v", got, err)
	}
}

func TestGetYesNo(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{name: "lowercase y", input: "y\n", expected: true},
		{name: "yes", input: "yes\n", expected: true},
		{name: "uppercase YES", input: "YES\n", expected: true},
		{name: "n", input: "n\n", expected: false},
		{name: "no", input: "no\n", expected: false},
		{name: "empty line", input: "\n", expected: false},
		{name: "garbage", input: "maybe\n", expected: false},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			in := bufio.NewReader(strings.NewReader(tc.input))
			var out bytes.Buffer
			got, err := GetYesNo(in, "Sure?", &out)
			require.NoError(t, err)
			require.Equal(t, tc.expected, got)
			require.Contains(t, out.String(), "(y/n)")
		})
	}
}
