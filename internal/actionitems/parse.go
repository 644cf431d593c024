// Package actionitems parses an action-items artifact into a two-level task
// list and drafts follow-up communications for individual entries.
package actionitems

import "strings"

// Item is one parsed action item with its sub-tasks.
type Item struct {
	Parent   string   `json:"parent"`
	Children []string `json:"children"`
}

// Parse splits artifact text into a forest of depth 2. Lines with no leading
// whitespace start a new parent; indented lines become children of the most
// recent parent. Empty lines and children with no parent are dropped. Parse
// never fails; malformed input yields an empty or partial result.
func Parse(text string) []Item {
	var items []Item

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}

		if line[0] == ' ' || line[0] == '\t' {
			if len(items) == 0 {
				continue
			}
			last := &items[len(items)-1]
			last.Children = append(last.Children, trimmed)
			continue
		}

		items = append(items, Item{Parent: trimmed})
	}

	return items
}
