package platform

import "strings"

// explorer rejects forward slashes in filesystem paths
func windowsPathCommand(path string) Command {
	return Command{Program: "explorer", Args: []string{strings.ReplaceAll(path, "/", `\`)}}
}

func windowsURLCommand(url string) Command {
	return Command{Program: "explorer", Args: []string{url}}
}

func darwinCommand(target string) Command {
	return Command{Program: "open", Args: []string{target}}
}

func linuxCommand(target string) Command {
	return Command{Program: "xdg-open", Args: []string{target}}
}
