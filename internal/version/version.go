/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/

// Package version holds build-time metadata injected via -ldflags -X, the
// way the donor CLI does for its own release builds.
package version

import "fmt"

// Version, Commit and BuildDate are overridden at link time:
//
//	go build -ldflags="-X 'chardet/internal/version.Version=v1.0.0' -X 'chardet/internal/version.Commit=...' -X 'chardet/internal/version.BuildDate=...'"
var (
	Version   = "dev"
	Commit    = "none"
	BuildDate = "unknown"
)

// GetAbout renders a short multi-line summary for the CLI's "about" command.
func GetAbout() string {
	return fmt.Sprintf("chardet %s\ncommit: %s\nbuilt:  %s", Version, Commit, BuildDate)
}
