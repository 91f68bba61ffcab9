package main

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"tutoragents/services/problems"
	"tutoragents/services/prompts"
	"tutoragents/services/session"
	"tutoragents/services/tools"

	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

const allKinds = "all"

var kindNames = lo.Map(prompts.Kinds(), func(k prompts.Kind, _ int) string { return string(k) })

func newRenderCmd(opts *rootOptions) *cobra.Command {
	var problemID string

	cmd := &cobra.Command{
		Use:       "render <kind>",
		Short:     "Print the instruction of one agent kind",
		Long:      "Render the instruction an agent of the given kind receives for a problem.\n\nKinds: " + strings.Join(kindNames, ", ") + ", or all",
		Args:      cobra.ExactArgs(1),
		ValidArgs: append([]string{allKinds}, kindNames...),
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := opts.catalog()
			if err != nil {
				return err
			}
			doc, err := catalog.Get(problemID)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if args[0] == allKinds {
				rendered, err := prompts.RenderAll(doc)
				if err != nil {
					return err
				}
				for _, kind := range prompts.Kinds() {
					fmt.Fprintf(out, "=== %s ===\n%s\n\n", kind, rendered[kind])
				}
				return nil
			}

			kind, err := prompts.ParseKind(args[0])
			if err != nil {
				return err
			}
			text, err := prompts.Render(doc, kind)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(out, text)
			return err
		},
	}

	cmd.Flags().StringVarP(&problemID, "problem", "p", "hard3", "problem id under the data directory")
	return cmd
}

func newValidateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <file>...",
		Short: "Check problem documents against the document schema",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			failed := 0
			for _, path := range args {
				doc, err := problems.Load(path)
				if err != nil {
					failed++
					fmt.Fprintf(out, "FAIL %s: %v\n", path, err)
					continue
				}
				fmt.Fprintf(out, "ok   %s (%d steps)\n", path, doc.StepCount())
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d documents invalid", failed, len(args))
			}
			return nil
		},
	}
}

func newProblemsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "problems [term...]",
		Short: "List problems, or fuzzy search them by id, topic and title",
		RunE: func(cmd *cobra.Command, args []string) error {
			catalog, err := opts.catalog()
			if err != nil {
				return err
			}
			summaries, err := catalog.Search(strings.Join(args, " "))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tSTEPS\tTOPIC\tTITLE")
			for _, s := range summaries {
				fmt.Fprintf(w, "%s\t%d\t%s\t%s\n", s.ID, s.StepCount, s.Topic, s.Title)
			}
			return w.Flush()
		},
	}
}

var errUnknownFormat = errors.New("unknown declaration format")

func newToolsCmd(opts *rootOptions) *cobra.Command {
	var (
		format    string
		problemID string
	)

	cmd := &cobra.Command{
		Use:   "tools <kind>",
		Short: "Export the tool declarations of one agent kind",
		Long: `Print the tools an agent kind exposes as JSON, in the declaration
format of a runtime: genai (Gemini), anthropic or langchain.`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: kindNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := prompts.ParseKind(args[0])
			if err != nil {
				return err
			}
			catalog, err := opts.catalog()
			if err != nil {
				return err
			}
			doc, err := catalog.Get(problemID)
			if err != nil {
				return err
			}
			agentTools := tools.ForKind(kind, tools.Options{Agent: string(kind), Doc: doc, Log: opts.logger()})

			var out any
			switch format {
			case "genai":
				out = lo.Map(agentTools, func(t tools.Tool, _ int) any { return tools.GenaiDeclaration(t) })
			case "anthropic":
				out = lo.Map(agentTools, func(t tools.Tool, _ int) any { return tools.AnthropicToolParam(t) })
			case "langchain":
				out = lo.Map(agentTools, func(t tools.Tool, _ int) any { return tools.LangchainTool(t) })
			default:
				return fmt.Errorf("%w: %q", errUnknownFormat, format)
			}
			return writeJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "genai", "genai, anthropic or langchain")
	cmd.Flags().StringVarP(&problemID, "problem", "p", "hard3", "problem id the tools validate against")
	return cmd
}

func newPlanCmd(opts *rootOptions) *cobra.Command {
	var useDefault bool

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Print the session roster in handoff order",
		RunE: func(cmd *cobra.Command, args []string) error {
			plan := session.DefaultPlan()
			if !useDefault {
				loaded, err := session.LoadPlan(opts.sessionFile)
				if err != nil {
					return err
				}
				plan = loaded
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "#\tNAME\tKIND\tPROBLEM\tMODEL")
			for i, phase := range plan.Phases {
				model := lo.Ternary(phase.Model != "", phase.Model, "-")
				fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", i+1, phase.Name, phase.Kind, phase.Problem, model)
			}
			return w.Flush()
		},
	}

	cmd.Flags().BoolVar(&useDefault, "default", false, "print the built-in roster instead of the session file")
	return cmd
}
