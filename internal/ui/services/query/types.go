package query

// IndexType represents what type of item is at an index
type IndexType int

const (
	IndexTypeGroup IndexType = iota
	IndexTypeLink
)

// IndexInfo contains information about what's at a specific sidebar row
type IndexInfo struct {
	Type      IndexType
	GroupName string // group header, or the group a link belongs to ("" for top-level links)
	Label     string
	Icon      string
	Path      string // link target
	Expanded  bool   // for group headers
	Active    bool   // link is active, or group contains the active link
	Nested    bool   // link inside a group
}
