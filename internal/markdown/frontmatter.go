package markdown

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/rogersnm/taskcli/internal/model"
	"gopkg.in/yaml.v3"
)

// Parse reads YAML frontmatter and body from r into T.
func Parse[T any](r io.Reader) (T, string, error) {
	var meta T
	body, err := frontmatter.Parse(r, &meta)
	if err != nil {
		return meta, "", fmt.Errorf("parsing frontmatter: %w", err)
	}
	return meta, trimSeparator(string(body)), nil
}

// trimSeparator undoes the blank line and final newline Marshal puts around
// the body, keeping any other whitespace the body carries.
func trimSeparator(body string) string {
	for _, nl := range []string{"\r\n", "\n"} {
		if strings.HasPrefix(body, nl) {
			body = body[len(nl):]
			break
		}
	}
	for _, nl := range []string{"\r\n", "\n"} {
		if strings.HasSuffix(body, nl) {
			return body[:len(body)-len(nl)]
		}
	}
	return body
}

// Marshal serializes meta as YAML frontmatter followed by body.
func Marshal[T any](meta T, body string) ([]byte, error) {
	yamlBytes, err := yaml.Marshal(meta)
	if err != nil {
		return nil, fmt.Errorf("marshaling frontmatter: %w", err)
	}

	var buf bytes.Buffer
	buf.WriteString("---\n")
	buf.Write(yamlBytes)
	buf.WriteString("---\n")
	if body != "" {
		buf.WriteString("\n")
		buf.WriteString(body)
		buf.WriteString("\n")
	}
	return buf.Bytes(), nil
}

// MarshalTask writes a checkout file: metadata as frontmatter, description as body.
func MarshalTask(t *model.Task) ([]byte, error) {
	return Marshal(t, t.Description)
}

// ParseTask reads a checkout file written by MarshalTask.
func ParseTask(r io.Reader) (*model.Task, error) {
	t, body, err := Parse[model.Task](r)
	if err != nil {
		return nil, err
	}
	if t.ID <= 0 {
		return nil, fmt.Errorf("checkout file has no task id")
	}
	t.Description = body
	return &t, nil
}
