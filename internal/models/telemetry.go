package models

// Snapshot is the most recently decoded device reading, a mapping
// from reading name to its value. It is replaced wholesale on every
// successful decode, never merged.
type Snapshot map[string]any
