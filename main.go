/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package main

import (
	"chardet/cmd"
)

func main() {
	cmd.Execute()
}

// go build -ldflags="-s -w -X 'chardet/internal/version.Version=v1.0.0' -X 'chardet/internal/version.Commit=$(git rev-parse HEAD)' -X 'chardet/internal/version.BuildDate=$(date -u +%Y-%m-%dT%H:%M:%SZ)'" -o chardet
