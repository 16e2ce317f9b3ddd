package models

import "testing"

func TestParseIntent(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected Intent
	}{
		{"exact product", "product", IntentProduct},
		{"exact order", "order", IntentOrder},
		{"exact smalltalk", "smalltalk", IntentSmalltalk},
		{"uppercase", "PRODUCT", IntentProduct},
		{"surrounding whitespace", "  order \n", IntentOrder},
		{"mixed case with whitespace", " SmallTalk ", IntentSmalltalk},
		{"empty string", "", IntentUnknown},
		{"extra words", "the intent is product", IntentUnknown},
		{"punctuation", "product.", IntentUnknown},
		{"unknown passthrough stays unknown", "unknown", IntentUnknown},
		{"unrelated label", "refund", IntentUnknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := ParseIntent(tc.raw); got != tc.expected {
				t.Errorf("ParseIntent(%q) = %q, want %q", tc.raw, got, tc.expected)
			}
		})
	}
}
