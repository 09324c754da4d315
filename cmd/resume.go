package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/khrees2412/autodoc/internal/form"
	"github.com/khrees2412/autodoc/pkg/models"
	"github.com/spf13/cobra"
)

var resumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Work with resume record files",
	Long:  "Create and check the JSON resume records used by 'autodoc generate resume'",
}

var templateResumeCmd = &cobra.Command{
	Use:   "template <file-path>",
	Short: "Write an empty resume record",
	Args:  cobra.ExactArgs(1),
	Example: `  autodoc resume template ./me.json
  autodoc resume template ./me.json --force`,
	RunE: func(cmd *cobra.Command, args []string) error {
		filePath := args[0]
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(filePath); err == nil && !force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", filePath)
		}
		if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
			return fmt.Errorf("create directory: %w", err)
		}

		data, err := json.MarshalIndent(models.NewResumeRecord(), "", "  ")
		if err != nil {
			return fmt.Errorf("encode record: %w", err)
		}
		if err := os.WriteFile(filePath, append(data, '\n'), 0644); err != nil {
			return fmt.Errorf("write record: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "✓ Resume record written to %s\n", filePath)
		return nil
	},
}

var checkResumeCmd = &cobra.Command{
	Use:   "check <file-path>",
	Short: "Check a resume record for missing mandatory fields",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rec, err := loadResumeRecord(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, titleStyle.Render("Resume Steps"))
		for _, step := range form.Steps() {
			mark := "✓"
			if !form.StepValid(rec, step) {
				mark = "✗"
			}
			fmt.Fprintf(out, "%s %s %s\n", mark, labelStyle.Render(fmt.Sprintf("%d.", int(step))), step.Heading())
		}
		return form.ValidateResume(rec)
	},
}

func init() {
	rootCmd.AddCommand(resumeCmd)
	resumeCmd.AddCommand(templateResumeCmd)
	resumeCmd.AddCommand(checkResumeCmd)

	templateResumeCmd.Flags().Bool("force", false, "Overwrite an existing file")
}
