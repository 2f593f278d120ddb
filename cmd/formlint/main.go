// Package main provides the formlint CLI.
//
// formlint works with declarative YAML form definitions:
//   - lint: structural review of a definition (unknown rules, bad bounds)
//   - check: build the binder, feed it a YAML value set, report per-field
//     validation status
package main

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"formbind/binding"
	"formbind/fieldtest"
	"formbind/forms"
)

var rootCmd = &cobra.Command{
	Use:   "formlint",
	Short: "Review and dry-run declarative form definitions",
	Long: `formlint reviews YAML form definitions and dry-runs them against
value sets, reporting per-field validation outcomes the way a bound
form would.`,
	SilenceUsage: true,
}

func main() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().String("locale", "", "locale hint for converters (e.g. de, fr, en-US)")
	_ = viper.BindPFlag("locale", rootCmd.PersistentFlags().Lookup("locale"))

	rootCmd.AddCommand(lintCmd())
	rootCmd.AddCommand(checkCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func initConfig() {
	viper.SetEnvPrefix("FORMBIND")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}

func lintCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lint <form.yaml>",
		Short: "Structurally validate a form definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := forms.LoadFile(args[0])
			if err != nil {
				return err
			}

			diags := forms.Validate(form)
			for _, w := range diags.Warnings {
				fmt.Fprintln(os.Stderr, "warning:", w.String())
			}
			for _, e := range diags.Errors {
				fmt.Fprintln(os.Stderr, "error:", e.String())
			}

			if diags.HasErrors() {
				return fmt.Errorf("%d problem(s) found", len(diags.Errors))
			}

			fmt.Printf("%s: %d field(s), no problems\n", args[0], len(form.Fields))

			return nil
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <form.yaml> <values.yaml>",
		Short: "Dry-run a form definition against a value set",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			form, err := forms.LoadFile(args[0])
			if err != nil {
				return err
			}

			values, err := loadValues(args[1])
			if err != nil {
				return err
			}

			source := fieldtest.NewSource()
			built, err := forms.Build(form, source)
			if err != nil {
				return err
			}

			if l := viper.GetString("locale"); l != "" {
				tag, err := language.Parse(l)
				if err != nil {
					return fmt.Errorf("invalid locale %q: %w", l, err)
				}
				built.Binder.SetContext(binding.NewContext(tag))
			}

			doc := forms.NewDocument()
			built.Binder.ReadBean(&doc)

			for name, value := range values {
				if _, ok := built.Bindings[name]; !ok {
					fmt.Fprintf(os.Stderr, "warning: value for unbound field %q\n", name)
					continue
				}
				source.Get(name).SetValue(value)
			}

			err = built.Binder.WriteBean(&doc)
			printStatuses(built, doc)

			if err != nil {
				return fmt.Errorf("validation failed: %w", err)
			}

			return nil
		},
	}
}

func loadValues(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read values file %s: %w", path, err)
	}

	var values map[string]string
	if err := yaml.Unmarshal(data, &values); err != nil {
		return nil, fmt.Errorf("failed to parse values YAML: %w", err)
	}

	return values, nil
}

func printStatuses(built *forms.BuiltForm, doc forms.Document) {
	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Field", "Status", "Message", "Model Value"})

	names := make([]string, 0, len(built.Bindings))
	for name := range built.Bindings {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		st := built.Bindings[name].Status()

		var model any
		if st.Kind == binding.StatusValid {
			model = doc[name]
		}

		t.AppendRow(table.Row{name, st.Kind.String(), st.Message, model})
	}

	t.Render()
}
