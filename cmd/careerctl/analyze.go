package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"careerpath/internal/core/recommend"
	"careerpath/internal/core/resources"
	"careerpath/internal/core/resumetext"

	"github.com/spf13/cobra"
)

type analyzeFlags struct {
	file       string
	resumeFile string
	explain    bool
	withLinks  bool
	in         recommend.Input
}

// analyzeOutput is what analyze prints; Resources is only set with --resources
type analyzeOutput struct {
	recommend.Response
	Resources []resources.Item `json:"resources,omitempty"`
}

func newAnalyzeCmd() *cobra.Command {
	f := &analyzeFlags{}
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score a questionnaire and print the recommendation",
		Long: "Builds the questionnaire from flags, or from a JSON file with --file (- reads stdin). " +
			"Flags set alongside --file override the file's fields.",
		RunE: func(cmd *cobra.Command, _ []string) error { return runAnalyze(cmd, f) },
	}
	fl := cmd.Flags()
	fl.StringVarP(&f.file, "file", "f", "", "questionnaire JSON file, - for stdin")
	fl.StringVar(&f.resumeFile, "resume-file", "", "plain text resume merged into resumeText")
	fl.BoolVar(&f.explain, "explain", false, "print every domain's score instead of the recommendation")
	fl.BoolVar(&f.withLinks, "resources", false, "attach learning links for the top domain")

	fl.StringVar(&f.in.Skills, "skills", "", "comma separated skills")
	fl.StringVar(&f.in.Interests, "interests", "", "free text interests")
	fl.StringVar(&f.in.RolePref, "role-pref", "", "engineering, data, product or design")
	fl.StringSliceVar(&f.in.Roles, "roles", nil, "target role titles")
	fl.StringSliceVar(&f.in.Industries, "industries", nil, "industries of interest")
	fl.StringVar(&f.in.LearningStyle, "learning-style", "", "preferred learning style")
	fl.StringVar(&f.in.Environment, "environment", "", "preferred work environment")
	return cmd
}

func runAnalyze(cmd *cobra.Command, f *analyzeFlags) error {
	in, err := loadInput(cmd, f)
	if err != nil {
		return err
	}

	engine := recommend.Default()
	if f.explain {
		return printJSON(cmd.OutOrStdout(), engine.Rank(in))
	}
	out := analyzeOutput{Response: engine.Analyze(in)}
	if f.withLinks {
		out.Resources = resources.Default().For(out.TopDomain())
	}
	return printJSON(cmd.OutOrStdout(), out)
}

func loadInput(cmd *cobra.Command, f *analyzeFlags) (recommend.Input, error) {
	var in recommend.Input
	if f.file != "" {
		b, err := readSource(cmd, f.file)
		if err != nil {
			return in, err
		}
		if err := json.Unmarshal(b, &in); err != nil {
			return in, fmt.Errorf("parse %s: %w", f.file, err)
		}
	}

	changed := cmd.Flags().Changed
	if changed("skills") {
		in.Skills = f.in.Skills
	}
	if changed("interests") {
		in.Interests = f.in.Interests
	}
	if changed("role-pref") {
		in.RolePref = f.in.RolePref
	}
	if changed("roles") {
		in.Roles = f.in.Roles
	}
	if changed("industries") {
		in.Industries = f.in.Industries
	}
	if changed("learning-style") {
		in.LearningStyle = f.in.LearningStyle
	}
	if changed("environment") {
		in.Environment = f.in.Environment
	}

	if f.resumeFile != "" {
		b, err := os.ReadFile(f.resumeFile)
		if err != nil {
			return in, fmt.Errorf("read resume: %w", err)
		}
		res, err := resumetext.Extract(b)
		if err != nil {
			return in, fmt.Errorf("resume %s (%s): %w", f.resumeFile, res.MIME, err)
		}
		if in.ResumeText != "" {
			in.ResumeText += "\n"
		}
		in.ResumeText += res.Text
	}
	return in.Sanitized(), nil
}

func readSource(cmd *cobra.Command, name string) ([]byte, error) {
	if name == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	b, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return b, nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
