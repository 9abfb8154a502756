package main

import (
	"fmt"
	"io"
)

// printUsage prints the usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: notesite [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Build the study-notes site from the Markdown files in the current directory.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	fmt.Fprintln(w, "  -c, --config <path>   Site config file (YAML); defaults apply without it")
	fmt.Fprintln(w, "  -q, --quiet           Only show errors")
	fmt.Fprintln(w, "  -v, --verbose         Show debug logging")
	fmt.Fprintln(w, "      --version         Print version and exit")
	fmt.Fprintln(w, "  -h, --help            Show this help")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Defaults: content in ., output in site/, static assets from static/.")
	fmt.Fprintln(w, "The output directory is deleted and recreated on every build.")
}
