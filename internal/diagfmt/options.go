package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto chooses relative or absolute path automatically.
	PathModeAuto PathMode = iota
	// PathModeAbsolute always uses absolute paths.
	PathModeAbsolute
	PathModeRelative
	PathModeBasename
)

// PrettyOpts configures pretty-printing of explained diagnostics.
type PrettyOpts struct {
	Color    bool
	ShowHelp bool
	PathMode PathMode
	Width    uint16 // maximum line width, 0 means unlimited
	BaseDir  string
}

// JSONOpts configures JSON output of explained diagnostics.
type JSONOpts struct {
	IncludePositions bool
	PathMode         PathMode
	Max              int // truncate the output, not the result
	BaseDir          string
}
