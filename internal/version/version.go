package version

// GitCommit is set at build time with the -X linker flag
var GitCommit string

// Version returns the build identifier
func Version() string {

	if len(GitCommit) == 0 {
		return "unknown"
	}
	return GitCommit
}

//
// end of file
//
