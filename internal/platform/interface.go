package platform

// Launcher opens files, directories and URLs with the operating system's
// default handler. Implementations do not wait for the launched program.
type Launcher interface {
	OpenPath(path string) error
	OpenURL(url string) error
	// Name identifies the platform variant ("linux", "darwin", "windows", "noop")
	Name() string
}

// Command is the external program and arguments used to open a target
type Command struct {
	Program string   `json:"program"`
	Args    []string `json:"args"`
}
