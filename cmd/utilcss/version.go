package main

import (
	"fmt"
	"runtime/debug"

	"github.com/spf13/cobra"
)

// version is set at build time via ldflags:
//
//	go build -ldflags "-X main.version=1.0.0" ./cmd/utilcss
var version = "dev"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version of utilcss",
	Run: func(cmd *cobra.Command, _ []string) {
		info, _ := debug.ReadBuildInfo()
		fmt.Fprintln(cmd.OutOrStdout(), versionString(version, info))
	},
}

// versionString formats the version line. Binaries installed with
// "go install" carry no ldflags, so a "dev" version falls back to the module
// version and the VCS revision recorded in the build info.
func versionString(v string, info *debug.BuildInfo) string {
	if info == nil {
		return "utilcss " + v
	}
	if v == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		v = info.Main.Version
	}

	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 12 {
		rev = rev[:12]
	}

	out := "utilcss " + v
	switch {
	case rev != "" && dirty:
		out += fmt.Sprintf(" (%s, modified, %s)", rev, info.GoVersion)
	case rev != "":
		out += fmt.Sprintf(" (%s, %s)", rev, info.GoVersion)
	case info.GoVersion != "":
		out += fmt.Sprintf(" (%s)", info.GoVersion)
	}
	return out
}
