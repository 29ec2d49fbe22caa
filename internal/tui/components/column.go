package components

// ColumnType identifies the type of content in a list column
type ColumnType int

const (
	ColumnTypeResults ColumnType = iota // catalog search results
	ColumnTypeWatched                   // the user's watched list
)

// Layout constants shared by bordered boxes
const (
	// Border adds 1 char on each side (left+right for width, top+bottom for height)
	BorderWidth  = 2
	BorderHeight = 2

	// Scroll indicators ("↑ more" and "↓ more") each take 1 line
	ScrollIndicatorLines = 2
)
