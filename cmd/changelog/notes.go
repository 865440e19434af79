package main

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"
)

var linkDefPattern = regexp.MustCompile(`(?m)^\[[^\]]+\]:\s+\S+\s*$`)

func stripLinkDefinitions(content string) string {
	// Remove link definition lines from content
	lines := strings.Split(content, "\n")
	var result []string
	for _, line := range lines {
		if !linkDefPattern.MatchString(line) {
			result = append(result, line)
		}
	}
	return strings.TrimSpace(strings.Join(result, "\n"))
}

var notesCmd = &cobra.Command{
	Use:   "notes [version]",
	Short: "Print a version's release notes",
	Long: `Print the release notes for a version from a Keep a Changelog file.

Without an argument the latest released version is used. The output carries
the version heading, the release body and the version's link definition, in
a shape suitable for a release page.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}

		changelog, err := Parse(content)
		if err != nil {
			return fmt.Errorf("parsing changelog: %w", err)
		}

		var release *Release
		if len(args) > 0 {
			release = changelog.Release(args[0])
			if release == nil {
				return fmt.Errorf("version %s not found in changelog", args[0])
			}
		} else {
			release = changelog.Latest()
			if release == nil {
				return fmt.Errorf("no released versions in changelog")
			}
		}

		// Output the version header
		switch {
		case release.Date != "" && release.Yanked:
			fmt.Printf("## [%s] - %s [YANKED]\n\n", release.Version, release.Date)
		case release.Date != "":
			fmt.Printf("## [%s] - %s\n\n", release.Version, release.Date)
		default:
			fmt.Printf("## [%s]\n\n", release.Version)
		}

		// Output the body, stripping any link definitions that may have
		// been included
		fmt.Print(stripLinkDefinitions(release.Notes))

		// Append the version's link definition if it exists
		if url, ok := changelog.Links[release.Version]; ok {
			fmt.Printf("\n\n[%s]: %s\n", release.Version, url)
		}

		return nil
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all versions in the changelog",
	Long:  `List all version entries found in a Keep a Changelog file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		file, _ := cmd.Flags().GetString("file")

		content, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("reading file: %w", err)
		}

		changelog, err := Parse(content)
		if err != nil {
			return fmt.Errorf("parsing changelog: %w", err)
		}

		for _, release := range changelog.Releases {
			line := release.Version
			if release.Date != "" {
				line += " (" + release.Date + ")"
			}
			if release.Yanked {
				line += " [YANKED]"
			}
			fmt.Println(line)
		}

		return nil
	},
}

func init() {
	notesCmd.Flags().StringP("file", "f", "CHANGELOG.md", "Path to the changelog file")
	listCmd.Flags().StringP("file", "f", "CHANGELOG.md", "Path to the changelog file")

	rootCmd.AddCommand(notesCmd)
	rootCmd.AddCommand(listCmd)
}
