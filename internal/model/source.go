// Package model defines the data structures shared by the patch engine and
// the consistency checker.
package model

// Path represents a file system path.
type Path string
