package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClean(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		// Empty and single characters
		{name: "empty string", input: "", want: ""},
		{name: "single lowercase letter", input: "a", want: "A"},
		{name: "single uppercase letter", input: "A", want: "A"},
		{name: "single digit", input: "1", want: "1"},

		// Prefix stripping
		{name: "is prefix", input: "isActiveFlag", want: "ActiveFlag"},
		{name: "has prefix", input: "hasChildren", want: "Children"},
		{name: "x prefix", input: "xSinceVersion", want: "SinceVersion"},
		{name: "definedAt prefix", input: "definedAtSource", want: "Source"},
		{name: "at most one prefix stripped", input: "isHasValue", want: "HasValue"},
		{name: "prefix only", input: "is", want: ""},

		// Word splitting
		{name: "plain pascal name", input: "PlainName", want: "PlainName"},
		{name: "camelCase name", input: "accountNumber", want: "AccountNumber"},
		{name: "three words", input: "paymentDueDate", want: "PaymentDueDate"},
		{name: "single word lowercase", input: "city", want: "City"},

		// Words title-cased as a whole
		{name: "all caps word split per letter", input: "ID", want: "ID"},
		{name: "trailing acronym", input: "userID", want: "UserID"},

		// No recognized prefix
		{name: "prefix not at start", input: "fieldIsSet", want: "FieldIsSet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Clean(tt.input)
			assert.Equal(t, tt.want, got, "Clean(%q)", tt.input)
		})
	}
}

func TestSplitWords(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{name: "empty", input: "", want: nil},
		{name: "single word", input: "city", want: []string{"city"}},
		{name: "camel humps", input: "activeFlag", want: []string{"active", "Flag"}},
		{name: "leading upper", input: "ActiveFlag", want: []string{"Active", "Flag"}},
		{name: "all caps splits per letter", input: "API", want: []string{"A", "P", "I"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, splitWords(tt.input))
		})
	}
}
