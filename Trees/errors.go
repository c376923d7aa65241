package Trees

import "fmt"

// EmptyTreeError is returned when a value is requested from a tree with no nodes.
type EmptyTreeError struct {
}

func (e *EmptyTreeError) Error() string {
	return "tree is empty"
}

// InvalidOperationError is returned by LeftValue and RightValue when the value
// isn't in the tree, or the node holding it lacks the requested child.
type InvalidOperationError struct {
	Op    string // name of the failed method
	Value any
	Found bool // whether Value was found in the tree
}

func (e *InvalidOperationError) Error() string {
	if !e.Found {
		return fmt.Sprintf("%s: value %v not found", e.Op, e.Value)
	}
	side := "left"
	if e.Op == "RightValue" {
		side = "right"
	}
	return fmt.Sprintf("%s: value %v does not have a %s child", e.Op, e.Value, side)
}
