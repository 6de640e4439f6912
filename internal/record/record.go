// Package record turns a name into the record sent to the customer endpoint.
package record

import (
	"strings"

	"github.com/vvka-141/loadnames/pkg/loadnames"
)

// DeriveEmail builds the synthetic address for name: lowercase, split on
// single spaces, reverse the tokens, join with '.', then append the domain.
//
// Splitting is on every single space, so runs of spaces produce empty
// tokens and leading or trailing spaces produce leading or trailing dots.
// The result depends only on name.
func DeriveEmail(name string) string {
	tokens := strings.Split(strings.ToLower(name), " ")
	for i, j := 0, len(tokens)-1; i < j; i, j = i+1, j-1 {
		tokens[i], tokens[j] = tokens[j], tokens[i]
	}
	return strings.Join(tokens, ".") + "@" + loadnames.EmailDomain
}

// New builds the record for one input line. name must already have its
// line terminator removed.
func New(name string) loadnames.Record {
	return loadnames.Record{
		Name:  name,
		Email: DeriveEmail(name),
	}
}
