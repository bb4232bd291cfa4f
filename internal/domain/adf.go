package domain

import "strings"

// ADFNode is a node in an Atlassian Document Format tree, the typed
// rich-text representation Jira uses for issue descriptions and
// comment bodies. Only the subset this tool reads and writes is
// modeled; unknown node types still round-trip through Content.
type ADFNode struct {
	Type    string    `json:"type,omitempty"`
	Version int       `json:"version,omitempty"`
	Text    string    `json:"text,omitempty"`
	Content []ADFNode `json:"content,omitempty"`
}

// NewADFDocument wraps plain text into a minimal ADF document: a
// single paragraph containing the text verbatim.
func NewADFDocument(text string) ADFNode {
	return ADFNode{
		Type:    "doc",
		Version: 1,
		Content: []ADFNode{
			{
				Type:    "paragraph",
				Content: []ADFNode{{Type: "text", Text: text}},
			},
		},
	}
}

// PlainText recursively extracts the text content of the node tree,
// discarding all formatting.
func (n ADFNode) PlainText() string {
	var b strings.Builder
	n.appendText(&b)
	return b.String()
}

func (n ADFNode) appendText(b *strings.Builder) {
	b.WriteString(n.Text)
	for _, child := range n.Content {
		child.appendText(b)
	}
}

// EnsureStorageMarkup wraps s in a paragraph tag unless it already
// looks like Confluence storage-format markup. The heuristic matches
// the server's expectation: anything starting with "<" is passed
// through unchanged.
func EnsureStorageMarkup(s string) string {
	if strings.HasPrefix(strings.TrimSpace(s), "<") {
		return s
	}
	return "<p>" + s + "</p>"
}
