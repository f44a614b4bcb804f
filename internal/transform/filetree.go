package transform

import "strings"

// FileTreeNode is one node of the forest parsed from a files block.
// Directories always carry a non-nil Children slice, files never do.
type FileTreeNode struct {
	Name     string
	IsFile   bool
	Level    int
	Children []*FileTreeNode
}

// ParseFileTree builds a forest from 2-space-indented lines. A node is a
// directory iff its line ends in /. A stack of open directories tracks
// the ancestor chain: entries at or below the new node's level are popped
// before attaching.
func ParseFileTree(content string) []*FileTreeNode {
	var roots []*FileTreeNode
	var stack []*FileTreeNode

	for _, line := range strings.Split(content, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		level := countLeadingSpaces(line) / 2
		name := strings.TrimSpace(line)
		isDir := strings.HasSuffix(name, "/")

		node := &FileTreeNode{
			Name:   strings.TrimSuffix(name, "/"),
			IsFile: !isDir,
			Level:  level,
		}
		if isDir {
			node.Children = []*FileTreeNode{}
		}

		for len(stack) > 0 && stack[len(stack)-1].Level >= level {
			stack = stack[:len(stack)-1]
		}

		if len(stack) == 0 {
			roots = append(roots, node)
		} else {
			parent := stack[len(stack)-1]
			parent.Children = append(parent.Children, node)
		}

		if isDir {
			stack = append(stack, node)
		}
	}

	return roots
}

func countLeadingSpaces(line string) int {
	count := 0
	for count < len(line) && line[count] == ' ' {
		count++
	}
	return count
}
