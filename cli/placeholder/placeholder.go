// Package placeholder implements placeholder discovery and substitution
// for template file contents and file names.
package placeholder

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/stencil-cli/stencil/cli/prompt"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/ianaindex"
)

// DefaultPattern is the default placeholder syntax: #{key}.
// The pattern is required to contain at least one capture group,
// group 1 content is taken as the placeholder key.
const DefaultPattern = `#{(\w+?)}`

// Resolver rewrites text by replacing placeholder occurrences with
// resolved values. Unknown keys are resolved interactively and cached
// into the dictionary, so every key is asked for at most once per run.
type Resolver struct {
	pattern  *regexp.Regexp
	encoding encoding.Encoding
	prompter prompt.Prompter
}

// NewResolver compiles patternStr and prepares the text encoding used to
// decode file contents. An empty encodingName means UTF-8.
func NewResolver(patternStr, encodingName string, prompter prompt.Prompter) (*Resolver, error) {
	if patternStr == "" {
		patternStr = DefaultPattern
	}
	pattern, err := regexp.Compile(patternStr)
	if err != nil {
		return nil, fmt.Errorf("invalid placeholder pattern %q: %s", patternStr, err)
	}
	if pattern.NumSubexp() < 1 {
		return nil, fmt.Errorf("placeholder pattern %q must contain a capture group "+
			"matching the placeholder key", patternStr)
	}

	resolver := &Resolver{pattern: pattern, prompter: prompter}

	switch strings.ToLower(encodingName) {
	case "", "utf-8", "utf8":
		// UTF-8 decoding is an identity transform, validity is checked directly.
	default:
		enc, err := ianaindex.IANA.Encoding(encodingName)
		if err != nil || enc == nil {
			return nil, fmt.Errorf("unsupported encoding %q", encodingName)
		}
		resolver.encoding = enc
	}

	return resolver, nil
}

// ResolveString substitutes placeholders in text. Keys missing from vars
// are requested from the prompter; a non-empty answer is stored into vars
// for reuse. A declined key leaves its tokens in the output verbatim.
func (r *Resolver) ResolveString(text string, vars map[string]string) (string, error) {
	matches := r.pattern.FindAllStringSubmatch(text, -1)
	if len(matches) == 0 {
		return text, nil
	}

	// Declined keys are remembered for this call only, to avoid asking
	// about the same token several times in one file.
	declined := map[string]bool{}
	for _, match := range matches {
		key := match[1]
		if _, found := vars[key]; found || declined[key] {
			continue
		}
		value, err := r.prompter.Input(fmt.Sprintf("Value for %s", match[0]), "")
		if err != nil {
			if errors.Is(err, prompt.ErrCanceled) {
				declined[key] = true
				continue
			}
			return "", err
		}
		if value != "" {
			vars[key] = value
		} else {
			declined[key] = true
		}
	}

	resolved := r.pattern.ReplaceAllStringFunc(text, func(token string) string {
		submatch := r.pattern.FindStringSubmatch(token)
		if value, found := vars[submatch[1]]; found {
			return value
		}
		return token
	})
	return resolved, nil
}

// Resolve substitutes placeholders in raw file content. Content that cannot
// be decoded with the configured encoding is returned unchanged: binary
// assets inside a template must not be corrupted by substitution.
func (r *Resolver) Resolve(data []byte, vars map[string]string) ([]byte, error) {
	text, ok := r.decode(data)
	if !ok {
		return data, nil
	}

	resolved, err := r.ResolveString(text, vars)
	if err != nil {
		return nil, err
	}
	if resolved == text {
		return data, nil
	}

	encoded, ok := r.encode(resolved)
	if !ok {
		return data, nil
	}
	return encoded, nil
}

func (r *Resolver) decode(data []byte) (string, bool) {
	if r.encoding == nil {
		if !utf8.Valid(data) {
			return "", false
		}
		return string(data), true
	}
	decoded, err := r.encoding.NewDecoder().Bytes(data)
	if err != nil {
		return "", false
	}
	return string(decoded), true
}

func (r *Resolver) encode(text string) ([]byte, bool) {
	if r.encoding == nil {
		return []byte(text), true
	}
	encoded, err := r.encoding.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return nil, false
	}
	return encoded, true
}
