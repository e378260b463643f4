package html

import (
	"fmt"
	gohtml "html"
	"strings"
	"unicode"
)

type TokenType int

const (
	TokenStartTag TokenType = iota
	TokenEndTag
	TokenText
	TokenEOF
)

type Token struct {
	Type        TokenType
	TagName     string
	Attributes  map[string]string
	Text        string
	SelfClosing bool // <br/> style
}

type Tokenizer struct {
	input string
	pos   int
}

func NewTokenizer(html string) *Tokenizer {
	return &Tokenizer{input: html}
}

func (t *Tokenizer) NextToken() (Token, error) {
	for t.pos < len(t.input) {
		if t.input[t.pos] != '<' {
			if tok, ok := t.readText(); ok {
				return tok, nil
			}
			continue
		}
		if t.skipMarkupDeclaration() {
			continue
		}
		return t.readTag()
	}
	return Token{Type: TokenEOF}, nil
}

// skipMarkupDeclaration consumes <!-- -->, <!DOCTYPE> and <? ?> constructs.
func (t *Tokenizer) skipMarkupDeclaration() bool {
	rest := t.input[t.pos:]
	var end string
	switch {
	case strings.HasPrefix(rest, "<!--"):
		end = "-->"
	case strings.HasPrefix(rest, "<!"):
		end = ">"
	case strings.HasPrefix(rest, "<?"):
		end = "?>"
	default:
		return false
	}
	if i := strings.Index(rest[2:], end); i >= 0 {
		t.pos += 2 + i + len(end)
	} else {
		t.pos = len(t.input)
	}
	return true
}

func (t *Tokenizer) readTag() (Token, error) {
	t.pos++ // '<'

	isEndTag := false
	if t.pos < len(t.input) && t.input[t.pos] == '/' {
		isEndTag = true
		t.pos++
	}
	tagName := t.readName(isTagNameChar)
	if tagName == "" {
		return Token{}, fmt.Errorf("expected tag name at position %d", t.pos)
	}
	if isEndTag {
		if err := t.skipTo('>'); err != nil {
			return Token{}, err
		}
		t.pos++
		return Token{Type: TokenEndTag, TagName: tagName}, nil
	}

	tok := Token{Type: TokenStartTag, TagName: tagName, Attributes: make(map[string]string)}
	for {
		t.skipWhitespace()
		if t.pos >= len(t.input) {
			return Token{}, fmt.Errorf("unexpected EOF in <%s>", tagName)
		}
		switch t.input[t.pos] {
		case '>':
			t.pos++
			return tok, nil
		case '/':
			t.pos++
			tok.SelfClosing = true
			continue
		}
		name, value, err := t.readAttribute()
		if err != nil {
			return Token{}, err
		}
		tok.Attributes[name] = value
	}
}

func (t *Tokenizer) readName(valid func(byte) bool) string {
	start := t.pos
	for t.pos < len(t.input) && valid(t.input[t.pos]) {
		t.pos++
	}
	return strings.ToLower(t.input[start:t.pos])
}

func (t *Tokenizer) readAttribute() (string, string, error) {
	name := t.readName(isAttributeNameChar)
	if name == "" {
		return "", "", fmt.Errorf("expected attribute name at position %d", t.pos)
	}
	t.skipWhitespace()
	if t.pos >= len(t.input) || t.input[t.pos] != '=' {
		return name, "", nil
	}
	t.pos++
	t.skipWhitespace()
	value, err := t.readAttributeValue()
	if err != nil {
		return "", "", err
	}
	return name, gohtml.UnescapeString(value), nil
}

func (t *Tokenizer) readAttributeValue() (string, error) {
	if t.pos >= len(t.input) {
		return "", fmt.Errorf("expected attribute value at position %d", t.pos)
	}
	quote := t.input[t.pos]
	if quote == '"' || quote == '\'' {
		t.pos++
		end := strings.IndexByte(t.input[t.pos:], quote)
		if end < 0 {
			return "", fmt.Errorf("unterminated attribute value")
		}
		value := t.input[t.pos : t.pos+end]
		t.pos += end + 1
		return value, nil
	}
	start := t.pos
	for t.pos < len(t.input) && !unicode.IsSpace(rune(t.input[t.pos])) && t.input[t.pos] != '>' {
		t.pos++
	}
	return t.input[start:t.pos], nil
}

// readText consumes a text run. Whitespace-only runs between tags are
// dropped and reported as !ok.
func (t *Tokenizer) readText() (Token, bool) {
	start := t.pos
	if end := strings.IndexByte(t.input[t.pos:], '<'); end >= 0 {
		t.pos += end
	} else {
		t.pos = len(t.input)
	}
	fields := strings.Fields(t.input[start:t.pos])
	if len(fields) == 0 {
		return Token{}, false
	}
	return Token{Type: TokenText, Text: gohtml.UnescapeString(strings.Join(fields, " "))}, true
}

func (t *Tokenizer) skipWhitespace() {
	for t.pos < len(t.input) && unicode.IsSpace(rune(t.input[t.pos])) {
		t.pos++
	}
}

func (t *Tokenizer) skipTo(target byte) error {
	i := strings.IndexByte(t.input[t.pos:], target)
	if i < 0 {
		t.pos = len(t.input)
		return fmt.Errorf("expected '%c' but reached EOF", target)
	}
	t.pos += i
	return nil
}

// ReadRawUntil reads raw content until the closing end tag is found (e.g., </script>).
// Used for raw text elements like <script> and <style> where '<' does not
// start a new tag.
func (t *Tokenizer) ReadRawUntil(endTag string) string {
	needle := "</" + endTag
	start := t.pos
	i := strings.Index(strings.ToLower(t.input[t.pos:]), needle)
	if i < 0 {
		t.pos = len(t.input)
		return t.input[start:]
	}
	content := t.input[start : start+i]
	t.pos = start + i
	if err := t.skipTo('>'); err == nil {
		t.pos++
	}
	return content
}

func isTagNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9') || c == '-' || c == '_'
}

func isAttributeNameChar(c byte) bool {
	return isTagNameChar(c) || c == ':' || c == '.'
}
