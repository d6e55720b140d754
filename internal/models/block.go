package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Content block types
const (
	BlockHeading   = "heading"
	BlockParagraph = "paragraph"
	BlockList      = "list"
	BlockCode      = "code"
)

// ValidBlockTypes defines allowed content block types
var ValidBlockTypes = map[string]bool{
	BlockHeading:   true,
	BlockParagraph: true,
	BlockList:      true,
	BlockCode:      true,
}

// ContentBlock is one unit of rich text. Which fields are meaningful
// depends on Type:
//
//	heading:   Level, Content
//	paragraph: Content
//	list:      Items
//	code:      Language, Content
type ContentBlock struct {
	Type     string     `json:"type"`
	Level    int        `json:"level,omitempty"`
	Content  string     `json:"content,omitempty"`
	Items    []ListItem `json:"items,omitempty"`
	Language string     `json:"language,omitempty"`
}

// ListItem is either a plain string or a nested titled entry
type ListItem struct {
	Text    string
	Type    string
	Title   string
	Content string
	// nested is set when the item was an object in the source document
	nested bool
}

// TextItem creates a plain string list item
func TextItem(s string) ListItem {
	return ListItem{Text: s}
}

// NestedItem creates an object list item
func NestedItem(itemType, title, content string) ListItem {
	return ListItem{Type: itemType, Title: title, Content: content, nested: true}
}

// IsNested reports whether the item is an object rather than a string
func (i ListItem) IsNested() bool {
	return i.nested
}

// Empty reports whether the item carries no text at all
func (i ListItem) Empty() bool {
	if i.nested {
		return i.Title == "" && i.Content == ""
	}
	return i.Text == ""
}

type nestedListItem struct {
	Type    string `json:"type"`
	Title   string `json:"title,omitempty"`
	Content string `json:"content,omitempty"`
}

// MarshalJSON writes the item back in its source form
func (i ListItem) MarshalJSON() ([]byte, error) {
	if i.nested {
		return json.Marshal(nestedListItem{Type: i.Type, Title: i.Title, Content: i.Content})
	}
	return json.Marshal(i.Text)
}

// UnmarshalJSON accepts either a JSON string or an object
func (i *ListItem) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty list item")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*i = TextItem(s)
		return nil
	case '{':
		var n nestedListItem
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*i = NestedItem(n.Type, n.Title, n.Content)
		return nil
	default:
		return fmt.Errorf("list item must be a string or an object, got %s", string(data))
	}
}
