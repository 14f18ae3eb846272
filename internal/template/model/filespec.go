package model

// SuppressExtensionPrefix marks a file spec whose extension selects the
// template but is left off the created file name.
const SuppressExtensionPrefix = "re:"

// FileSpec describes one file requested on the command line.
type FileSpec struct {
	// Path is the file path without its extension, relative to the working directory.
	Path string
	// Extension selects the template. Empty when the token had no dot.
	Extension string
	// SuppressExtension drops Extension from the created file name.
	SuppressExtension bool
}

// FileName returns the name the file is created and opened under.
func (f FileSpec) FileName() string {
	if f.SuppressExtension {
		return f.Path
	}
	return f.FullName()
}

// FullName returns the path with its extension, even when the extension is suppressed.
// A spec without an extension gets no trailing dot.
func (f FileSpec) FullName() string {
	if f.Extension == "" {
		return f.Path
	}
	return f.Path + "." + f.Extension
}

// ParsedArgs is the result of partitioning command-line tokens.
type ParsedArgs struct {
	// FileSpecs lists requested files in command-line order.
	FileSpecs []FileSpec
	// CreateRepo requests a git repository in the working directory.
	CreateRepo bool
	// SkipEditor disables the editor launch.
	SkipEditor bool
	// PassthroughArgs are the tokens after "--", handed to the editor before file names.
	PassthroughArgs []string

	// ShowHelp requests the usage text.
	ShowHelp bool
	// ShowVersion requests version information.
	ShowVersion bool
	// Debug enables debug logging.
	Debug bool
}
