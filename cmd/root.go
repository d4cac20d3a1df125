/*
Copyright © 2025 TheMachine <592858548@qq.com>
*/
package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"chardet/internal/version"
	"chardet/pkg/chardet"
	"chardet/pkg/logger"

	"github.com/spf13/cobra"
)

var (
	logLevel   string
	chunkSize  int
	langFilter string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:     "chardet [files...]",
	Short:   "Streaming character-encoding detector",
	Long:    "chardet feeds one or more files through the detector in chunks and prints the best-guess encoding, confidence and language for each.",
	Args:    cobra.MinimumNArgs(1),
	Version: version.Version,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger.Init(logLevel)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		filter, err := parseLangFilter(langFilter)
		if err != nil {
			return fmt.Errorf("invalid --lang flag: %w", err)
		}

		var failures int
		for _, path := range args {
			verdict, err := detectFile(path, filter)
			if err != nil {
				logger.Log().Error("detect failed", "path", path, "error", err)
				failures++
				continue
			}
			fmt.Printf("%s: %s\n", path, verdict)
		}
		if failures > 0 {
			return fmt.Errorf("%d of %d files failed", failures, len(args))
		}
		return nil
	},
}

// detectFile streams path through a fresh Detector chunkSize bytes at a
// time, stopping early the moment the detector reaches a verdict.
func detectFile(path string, filter chardet.LanguageFilter) (chardet.Verdict, error) {
	f, err := os.Open(path)
	if err != nil {
		return chardet.Verdict{}, err
	}
	defer f.Close()

	d, err := chardet.New(filter)
	if err != nil {
		return chardet.Verdict{}, err
	}

	r := bufio.NewReaderSize(f, chunkSize)
	buf := make([]byte, chunkSize)
	for {
		n, readErr := r.Read(buf)
		if n > 0 {
			d.Feed(buf[:n])
			if d.Done() {
				break
			}
		}
		if readErr == io.EOF {
			break
		}
		if readErr != nil {
			return chardet.Verdict{}, readErr
		}
	}
	return d.Close(), nil
}

func parseLangFilter(s string) (chardet.LanguageFilter, error) {
	if s == "" || s == "all" {
		return chardet.LangAll, nil
	}
	names := map[string]chardet.LanguageFilter{
		"zh-cn":   chardet.ChineseSimplified,
		"zh-tw":   chardet.ChineseTraditional,
		"ja":      chardet.Japanese,
		"ko":      chardet.Korean,
		"non-cjk": chardet.NonCJK,
	}
	var filter chardet.LanguageFilter
	for _, part := range splitComma(s) {
		bit, ok := names[part]
		if !ok {
			return 0, fmt.Errorf("unknown language tag %q", part)
		}
		filter |= bit
	}
	return filter, nil
}

func splitComma(s string) []string {
	var out []string
	start := 0
	for i := 0; i <= len(s); i++ {
		if i == len(s) || s[i] == ',' {
			if i > start {
				out = append(out, s[start:i])
			}
			start = i + 1
		}
	}
	return out
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main(). It only needs to happen
// once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.MousetrapHelpText = ""
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Set log levels (debug, info, warn, error)")
	rootCmd.Flags().IntVar(&chunkSize, "chunk-size", 4096, "bytes fed to the detector per Feed call")
	rootCmd.Flags().StringVar(&langFilter, "lang", "all", "comma-separated language filter (zh-cn,zh-tw,ja,ko,non-cjk,all)")
}
