// Package frontmatter splits YAML front-matter from markdown documents.
//
// The parser is deliberately permissive: a document without a front-matter
// fence is returned whole as body with an empty metadata map, and the
// metadata is decoded into a loosely-typed map rather than a fixed schema.
// Field presence and type checks belong to the caller.
package frontmatter

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/veldt-labs/canopy-cli/internal/core/ports/driven"
)

// delimiter is the fence line that opens and closes a front-matter block.
const delimiter = "---"

// Ensure Parser implements the interface.
var _ driven.DocumentParser = (*Parser)(nil)

// Parser handles markdown documents with optional YAML front-matter.
type Parser struct{}

// New creates a new front-matter parser.
func New() *Parser {
	return &Parser{}
}

// Parse splits leading YAML front-matter from the body.
//
// Front-matter is recognised only when the document's first line is the
// fence and a closing fence line follows. An unterminated fence is not
// front-matter; the whole document becomes the body. Malformed YAML inside
// a recognised block is an error.
func (p *Parser) Parse(raw []byte) (map[string]any, string, error) {
	content := strings.ReplaceAll(string(raw), "\r\n", "\n")

	lines := strings.Split(content, "\n")
	if len(lines) == 0 || strings.TrimSpace(lines[0]) != delimiter {
		return map[string]any{}, content, nil
	}

	closing := -1
	for i := 1; i < len(lines); i++ {
		if strings.TrimSpace(lines[i]) == delimiter {
			closing = i
			break
		}
	}
	if closing < 0 {
		return map[string]any{}, content, nil
	}

	block := strings.Join(lines[1:closing], "\n")
	body := strings.Join(lines[closing+1:], "\n")
	body = strings.TrimPrefix(body, "\n")

	meta := map[string]any{}
	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		return nil, "", fmt.Errorf("parsing front-matter: %w", err)
	}

	return meta, body, nil
}
