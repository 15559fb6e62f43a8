package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/soapywu/pbxpatch/pbxpatch"
)

var (
	projectFlag string
	groupFlag   string
)

// Styles for output
var (
	passStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#86b300",
		Dark:  "#c2d94c",
	})
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{
		Light: "#828c99",
		Dark:  "#6c7680",
	})
)

var rootCmd = &cobra.Command{
	Use:   "pbxpatch",
	Short: "Register source files in an Xcode project.pbxproj",
	Long: `pbxpatch splices new file records into an Xcode project.pbxproj without
parsing it: each of the four sections (PBXBuildFile, PBXFileReference,
the parent group's children, the sources build phase) is located by its
anchor text and the new record is inserted right after it. Sections
whose anchor is missing are skipped.`,
}

var addCmd = &cobra.Command{
	Use:   "add <file-path>",
	Short: "Add one source file to the project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return patchProject(projectFlag, []pbxpatch.BatchEntry{{Path: args[0], Group: groupFlag}})
	},
}

var batchCmd = &cobra.Command{
	Use:   "batch <yaml-path>",
	Short: "Add every file listed in a YAML batch file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := pbxpatch.LoadBatch(args[0])
		if err != nil {
			return err
		}
		return patchProject(projectFlag, entries)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&projectFlag, "project", "project.pbxproj", "path to the project.pbxproj to patch")
	addCmd.Flags().StringVar(&groupFlag, "group", "", "parent group label (default: detected from the file type)")

	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(batchCmd)
}

func patchProject(projectPath string, entries []pbxpatch.BatchEntry) error {
	data, err := os.ReadFile(projectPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", projectPath, err)
	}

	content := string(data)
	for _, entry := range entries {
		pbxfile := pbxpatch.NewPbxFile(entry.Path)
		fileRef := pbxpatch.GenerateUuid()
		buildFile := pbxpatch.GenerateUuid()
		content = pbxpatch.NewPatcher(entry.Group).Patch(content, pbxfile, fileRef, buildFile)

		fmt.Println(passStyle.Render(fmt.Sprintf("Added %s to %s", pbxfile.Basename, projectPath)))
		fmt.Println(mutedStyle.Render(fmt.Sprintf("   File Reference UUID: %s", fileRef)))
		fmt.Println(mutedStyle.Render(fmt.Sprintf("   Build File UUID: %s", buildFile)))
	}

	if err := os.WriteFile(projectPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", projectPath, err)
	}
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
