package phone

import "testing"

func TestDigitsStripsEverythingButNumbers(t *testing.T) {
	got := Digits("+27 (0)76-714 9373")
	if got != "270767149373" {
		t.Fatalf("expected 270767149373, got %q", got)
	}
}

func TestDigitsEmptyInput(t *testing.T) {
	if got := Digits(""); got != "" {
		t.Fatalf("expected empty string, got %q", got)
	}
}

func TestNormalizeE164LocalNumber(t *testing.T) {
	got := NormalizeE164("076 714 9373")
	if got != "+27767149373" {
		t.Fatalf("expected +27767149373, got %q", got)
	}
}

func TestNormalizeE164ReturnsTrimmedInputOnGarbage(t *testing.T) {
	got := NormalizeE164("  not a number  ")
	if got != "not a number" {
		t.Fatalf("expected trimmed input back, got %q", got)
	}
}

func TestWhatsAppNumber(t *testing.T) {
	got := WhatsAppNumber("076 714 9373")
	if got != "27767149373" {
		t.Fatalf("expected 27767149373, got %q", got)
	}
}
