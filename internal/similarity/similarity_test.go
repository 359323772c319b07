package similarity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name     string
		a        string
		b        string
		expected float64
	}{
		{"identical", "paypal.com", "paypal.com", 100},
		{"identical after case fold", "PayPal.com", "paypal.com", 100},
		{"identical after trim", "  paypal.com  ", "paypal.com", 100},
		{"both empty", "", "", 100},
		{"empty vs non-empty", "", "paypal.com", 0},
		{"non-empty vs empty", "paypal.com", "", 0},
		{"single substitution", "paypa1.com", "paypal.com", 90},
		{"completely different", "abc", "xyz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Similarity(tt.a, tt.b))
		})
	}
}

func TestSimilarityIsSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"paypa1.com", "paypal.com"},
		{"gogle.com", "google.com"},
		{"amaz0n.com", "amazon.com"},
		{"short", "a much longer string"},
	}

	for _, pair := range pairs {
		assert.Equal(t, Similarity(pair[0], pair[1]), Similarity(pair[1], pair[0]),
			"similarity(%q, %q) should be symmetric", pair[0], pair[1])
	}
}

func TestIsTyposquatting(t *testing.T) {
	tests := []struct {
		name       string
		candidate  string
		legitimate string
		expected   bool
	}{
		{"one character off", "paypa1.com", "paypal.com", true},
		{"missing letter", "gogle.com", "google.com", true},
		{"exact match is not typosquatting", "paypal.com", "paypal.com", false},
		{"unrelated domain", "example.org", "paypal.com", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsTyposquatting(tt.candidate, tt.legitimate, 75))
		})
	}
}

func TestNormalizeHomoglyphs(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"digit substitutions", "paypa1", "paypal"},
		{"zero for o", "g00gle", "google"},
		{"mixed case folded", "Amaz0n", "amazon"},
		{"no digits unchanged", "netflix", "netflix"},
		{"unmapped digits kept", "abc247", "abc247"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeHomoglyphs(tt.input))
		})
	}
}

func TestContainsDigits(t *testing.T) {
	assert.True(t, ContainsDigits("paypa1"))
	assert.False(t, ContainsDigits("paypal"))
	assert.False(t, ContainsDigits(""))
}
