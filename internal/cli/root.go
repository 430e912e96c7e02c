package cli

import (
	"fmt"
	"io"
	"math"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/internal/graphfile"
	"github.com/katalvlaran/lvmorph/morph"
)

const appName = "lvmorph"

// Log levels exported for use in main.go.
const (
	LogDebug = charmlog.DebugLevel
	LogInfo  = charmlog.InfoLevel
)

// RootCommand creates the root cobra command with all subcommands registered.
func RootCommand() *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          appName,
		Short:        "lvmorph finds isomorphisms and common subgraphs",
		Long:         `lvmorph enumerates structure and label preserving correspondences between graphs: isomorphisms, induced subgraph isomorphisms, monomorphisms and common subgraphs.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := LogInfo
			if verbose {
				level = LogDebug
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(cmd.ErrOrStderr(), level)))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newMatchCmd("iso", morph.Isomorphism, "Enumerate isomorphisms between domain and codomain"))
	root.AddCommand(newMatchCmd("subiso", morph.InducedSubgraph, "Enumerate induced subgraph isomorphisms of domain into codomain"))
	root.AddCommand(newMatchCmd("mono", morph.Monomorphism, "Enumerate monomorphisms of domain into codomain"))
	root.AddCommand(newCommonCmd())
	root.AddCommand(newGenCmd())

	return root
}

// loadPair reads the named graphs from path ("-" for stdin).
func loadPair(cmd *cobra.Command, path, a, b string) (*core.Graph, *core.Graph, error) {
	var (
		f   *graphfile.File
		err error
	)
	if path == "-" {
		f, err = graphfile.Decode(cmd.InOrStdin())
	} else {
		f, err = graphfile.Load(path)
	}
	if err != nil {
		return nil, nil, err
	}
	ga, err := f.Graph(a)
	if err != nil {
		return nil, nil, err
	}
	gb, err := f.Graph(b)
	if err != nil {
		return nil, nil, err
	}
	loggerFromContext(cmd.Context()).Debug("loaded graphs", "file", path,
		a, fmt.Sprintf("%dV/%dE", ga.VertexCount(), ga.EdgeCount()),
		b, fmt.Sprintf("%dV/%dE", gb.VertexCount(), gb.EdgeCount()))

	return ga, gb, nil
}

// printer writes one mapping per line and counts them.
type printer struct {
	w io.Writer
	n int
}

func (p *printer) visit(m morph.Mapping, _, _ *core.Graph) morph.Control {
	p.n++
	fmt.Fprintln(p.w, m)
	return morph.Continue
}

// run drives a search through an optional limit and prints the trailer.
func run(cmd *cobra.Command, limit int, search func(morph.Callback) error) error {
	if limit < 0 {
		return fmt.Errorf("--limit must be ≥ 0, got %d", limit)
	}
	if limit == 0 {
		limit = math.MaxInt
	}
	out := &printer{w: cmd.OutOrStdout()}
	prog := newProgress(loggerFromContext(cmd.Context()))
	if err := search(morph.Limit(limit, out.visit).Visit); err != nil {
		return err
	}
	fmt.Fprintf(out.w, "%d mappings\n", out.n)
	prog.done(fmt.Sprintf("found %d mappings", out.n))

	return nil
}

// searchOptions returns the engine options shared by every search command.
func searchOptions(cmd *cobra.Command, labels bool) []morph.Option {
	opts := []morph.Option{
		morph.WithContext(cmd.Context()),
		morph.WithLogger(loggerFromContext(cmd.Context())),
	}
	if labels {
		opts = append(opts, morph.WithLabels())
	}
	return opts
}
