package prefilter

import "testing"

func TestScalarBytesPlainASCII(t *testing.T) {
	got := ScalarBytes([]rune("return x"))
	if string(got) != "return x" {
		t.Fatalf("ScalarBytes = %q, want %q", got, "return x")
	}
}

func TestScalarBytesStopsAtNonLatin1Scalar(t *testing.T) {
	got := ScalarBytes([]rune("abĀcd"))
	if string(got) != "ab" {
		t.Fatalf("ScalarBytes = %q, want %q (truncated before U+0100)", got, "ab")
	}
}
