package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmorph/morph"
)

func newMatchCmd(name string, mode morph.Mode, short string) *cobra.Command {
	var (
		limit  int
		labels bool
	)

	cmd := &cobra.Command{
		Use:   name + " <file.toml>",
		Short: short,
		Long: short + `.

The file must define graphs "domain" and "codomain"; "-" reads it from
standard input. Each mapping is printed as space-separated "domain,codomain"
pairs, followed by a count line.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dom, cod, err := loadPair(cmd, args[0], "domain", "codomain")
			if err != nil {
				return err
			}
			m, err := morph.NewMatcher(mode, dom, cod, searchOptions(cmd, labels)...)
			if err != nil {
				return err
			}
			return run(cmd, limit, m.Enumerate)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "stop after this many mappings (0 = all)")
	cmd.Flags().BoolVar(&labels, "labels", false, "require equal vertex and edge labels")

	return cmd
}
