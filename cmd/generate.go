package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/khrees2412/autodoc/internal/app"
	"github.com/khrees2412/autodoc/internal/form"
	"github.com/khrees2412/autodoc/internal/preview"
	"github.com/khrees2412/autodoc/pkg/models"
	"github.com/spf13/cobra"
)

// autoPDF is the value --pdf takes when given without a path
const autoPDF = "auto"

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate documents without the TUI",
	Long:  "Send a resume, cover letter or portfolio to the generation service and print the result",
}

var generateResumeCmd = &cobra.Command{
	Use:   "resume",
	Short: "Generate a resume from a JSON record",
	Example: `  autodoc generate resume --file me.json
  autodoc generate resume --file me.json --style 3 --pdf
  autodoc generate resume --file me.json --pdf resume.pdf`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.Require(cmd.Context())
		if err != nil {
			return err
		}
		path, _ := cmd.Flags().GetString("file")
		styleNum, _ := cmd.Flags().GetInt("style")

		style := a.DefaultStyle()
		if styleNum != 0 {
			if style, err = preview.ParseStyle(styleNum); err != nil {
				return fmt.Errorf("%w: %w", app.ErrInvalidArgument, err)
			}
		}

		rec, err := loadResumeRecord(path)
		if err != nil {
			return err
		}

		if err := form.ValidateResume(rec); err != nil {
			return err
		}

		session := form.LoadResumeSession(rec)
		defer session.Close()
		cmd.Println("Generating resume...")
		err = session.Submit(cmd.Context(), func(ctx context.Context) (string, error) {
			return a.Generator.GenerateResume(ctx, rec)
		})
		if err != nil {
			return generationError(models.KindResume, err)
		}
		return emit(cmd, a, session.Result(), style)
	},
}

var generateCoverLetterCmd = &cobra.Command{
	Use:   "cover-letter",
	Short: "Generate a cover letter for a job",
	Example: `  autodoc generate cover-letter --job-title "Backend Engineer" --company Acme \
    --description "Build and run our Go services"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.Require(cmd.Context())
		if err != nil {
			return err
		}

		session := form.NewCoverLetterSession()
		defer session.Close()
		setFromFlags(cmd, map[string]func(string){
			"job-title":   func(v string) { session.SetField(form.CoverJobTitle, v) },
			"company":     func(v string) { session.SetField(form.CoverCompanyName, v) },
			"description": func(v string) { session.SetField(form.CoverJobDescription, v) },
		})
		if err := session.Validate(); err != nil {
			return err
		}

		cmd.Println("Generating cover letter...")
		rec := session.Record()
		err = session.Submit(cmd.Context(), func(ctx context.Context) (string, error) {
			return a.Generator.GenerateCoverLetter(ctx, rec)
		})
		if err != nil {
			return generationError(models.KindCoverLetter, err)
		}
		return emit(cmd, a, session.Result(), preview.StyleFixed)
	},
}

var generatePortfolioCmd = &cobra.Command{
	Use:   "portfolio",
	Short: "Generate a portfolio summary",
	Example: `  autodoc generate portfolio --name "Jane Doe" --bio "Backend engineer" --skills "Go, SQL" \
    --projects $'autodoc\nledger'`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := app.Require(cmd.Context())
		if err != nil {
			return err
		}

		session := form.NewPortfolioSession()
		defer session.Close()
		setFromFlags(cmd, map[string]func(string){
			"name":     func(v string) { session.SetField(form.PortfolioName, v) },
			"bio":      func(v string) { session.SetField(form.PortfolioBio, v) },
			"skills":   func(v string) { session.SetField(form.PortfolioSkills, v) },
			"projects": func(v string) { session.SetField(form.PortfolioProjects, v) },
			"github":   func(v string) { session.SetField(form.PortfolioGitHub, v) },
			"linkedin": func(v string) { session.SetField(form.PortfolioLinkedIn, v) },
		})
		if err := session.Validate(); err != nil {
			return err
		}

		cmd.Println("Generating portfolio...")
		rec := session.Record()
		err = session.Submit(cmd.Context(), func(ctx context.Context) (string, error) {
			return a.Generator.GeneratePortfolio(ctx, rec)
		})
		if err != nil {
			return generationError(models.KindPortfolio, err)
		}
		return emit(cmd, a, session.Result(), preview.StyleFixed)
	},
}

// loadResumeRecord reads a ResumeRecord from a JSON file. Collections
// missing from the file start with one empty entry, as in the TUI. Null
// collections become empty and projects keeps its minimum of one.
func loadResumeRecord(path string) (*models.ResumeRecord, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: --file is required", app.ErrInvalidArgument)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read resume record: %w", err)
	}
	rec := models.NewResumeRecord()
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("parse resume record %s: %w", path, err)
	}
	form.NewListEditor(rec, nil).Normalize()
	return rec, nil
}

func setFromFlags(cmd *cobra.Command, setters map[string]func(string)) {
	for name, set := range setters {
		value, _ := cmd.Flags().GetString(name)
		set(value)
	}
}

// generationError keeps validation failures as they are and names the
// document in every other failure
func generationError(kind models.DocumentKind, err error) error {
	if errors.Is(err, form.ErrMandatoryFields) {
		return err
	}
	return fmt.Errorf("generate %s: %w", strings.ToLower(kind.Title()), err)
}

// emit prints the generated text and writes the PDF when --pdf is set
func emit(cmd *cobra.Command, a *app.App, result models.GenerationResult, style preview.Style) error {
	if result.Empty() {
		return fmt.Errorf("the service returned an empty %s", result.Kind.Title())
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, titleStyle.Render("Generated "+result.Kind.Title()))
	fmt.Fprintln(out, result.Text)

	path, _ := cmd.Flags().GetString("pdf")
	if path == "" {
		return nil
	}
	if path == autoPDF {
		path = preview.OutputPath(a.Config.OutputDir, string(result.Kind), time.Now())
	}
	html, err := preview.RenderHTML(result.Kind, result.Text, style)
	if err != nil {
		return fmt.Errorf("render preview: %w", err)
	}
	cmd.Println("Printing PDF...")
	if err := a.Printer.PrintPDF(cmd.Context(), html, path); err != nil {
		return fmt.Errorf("print pdf: %w", err)
	}
	fmt.Fprintf(out, "\n✓ Saved PDF to %s\n", path)
	return nil
}

func addPDFFlag(c *cobra.Command) {
	c.Flags().String("pdf", "", "Also write a PDF (to the given path, or to output_dir when no path is given)")
	c.Flags().Lookup("pdf").NoOptDefVal = autoPDF
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.AddCommand(generateResumeCmd, generateCoverLetterCmd, generatePortfolioCmd)

	generateResumeCmd.Flags().StringP("file", "f", "", "Path to a resume record JSON file")
	generateResumeCmd.Flags().Int("style", 0, "Resume template 1, 2 or 3 (defaults to default_style)")
	addPDFFlag(generateResumeCmd)

	generateCoverLetterCmd.Flags().String("job-title", "", "Job title")
	generateCoverLetterCmd.Flags().String("company", "", "Company name")
	generateCoverLetterCmd.Flags().String("description", "", "Job description")
	addPDFFlag(generateCoverLetterCmd)

	generatePortfolioCmd.Flags().String("name", "", "Your name")
	generatePortfolioCmd.Flags().String("bio", "", "Short bio")
	generatePortfolioCmd.Flags().String("skills", "", "Skills (comma separated)")
	generatePortfolioCmd.Flags().String("projects", "", "Projects, one per line")
	generatePortfolioCmd.Flags().String("github", "", "GitHub URL")
	generatePortfolioCmd.Flags().String("linkedin", "", "LinkedIn URL")
	addPDFFlag(generatePortfolioCmd)
}
