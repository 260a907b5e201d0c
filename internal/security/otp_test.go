package security

import (
	"strconv"
	"testing"
)

func TestGenerateOTPRange(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := GenerateOTP()
		if err != nil {
			t.Fatalf("GenerateOTP failed: %v", err)
		}

		if len(code) != 6 {
			t.Fatalf("expected 6 digits, got %q", code)
		}

		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("code is not numeric: %q", code)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code out of range: %d", n)
		}
	}
}

func TestHashOTPDeterministic(t *testing.T) {
	if HashOTP("123456") != HashOTP("123456") {
		t.Error("same code should hash to the same digest")
	}
	if HashOTP("123456") == HashOTP("123457") {
		t.Error("different codes should hash to different digests")
	}
	if len(HashOTP("123456")) != 64 {
		t.Error("digest should be a sha256 hex string")
	}
}
