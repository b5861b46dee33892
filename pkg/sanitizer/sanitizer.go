package sanitizer

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// CleanInput prepares free text typed by a user for normalization: markup is removed,
// control characters are dropped and internal whitespace is collapsed.
//
// Examples:
//   - "  <b>YouTube.com</b> " -> "YouTube.com"
//   - "https://x.com/\n" -> "https://x.com/"
func CleanInput(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}
	if strings.Contains(input, "<") {
		input = StripTags(input)
	}
	input = strings.Map(func(r rune) rune {
		if r < 0x20 || r == 0x7f {
			return ' '
		}
		return r
	}, input)
	return strings.Join(strings.Fields(input), " ")
}

// StripTags removes all HTML/XML tags and keeps only text nodes.
//
// Not a security boundary: output still has to be escaped when rendered.
//
// Examples:
//   - "<p>Hello <strong>World</strong></p>" -> "Hello World"
//   - "Plain text" -> "Plain text"
func StripTags(input string) string {
	input = strings.TrimSpace(input)
	if input == "" {
		return ""
	}

	tokenizer := html.NewTokenizer(strings.NewReader(input))
	var buf strings.Builder

	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			if tokenizer.Err() == io.EOF {
				break
			}
			return ""
		}

		if tt == html.TextToken {
			buf.WriteString(tokenizer.Token().Data)
		}
	}

	return strings.TrimSpace(buf.String())
}
