package types

// RenameResult records one entry renamed during a sequential pass
type RenameResult struct {
	Index      int    `json:"index"`       // Sorted position of the entry
	SourceName string `json:"source_name"` // Name before the rename
	TargetName string `json:"target_name"` // "<index><extension>"
}
