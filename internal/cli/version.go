package cli

import (
	"fmt"

	"github.com/tacogips/just-code/internal/build"
)

func printVersion() {
	info := build.Current()
	fmt.Fprintf(stdout, "just-code version %s\n", info.Version)
	fmt.Fprintf(stdout, "Built with: %s\n", info.GoVersion)
	fmt.Fprintf(stdout, "Commit: %s\n", info.Commit)
	fmt.Fprintf(stdout, "Build date: %s\n", info.BuildDate)
	fmt.Fprintf(stdout, "OS/Arch: %s/%s\n", info.OS, info.Arch)
}
