package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvmorph/core"
	"github.com/katalvlaran/lvmorph/morph"
)

// ErrPin reports a malformed or inconsistent --pin.
var ErrPin = errors.New("invalid pin")

type commonOptions struct {
	limit       int
	labels      bool
	unique      bool
	maximum     bool
	noInduction bool
	minSize     int
	pins        []string
}

func (o commonOptions) policy() morph.Policy {
	p := morph.CommonSubgraphs
	if o.unique {
		p |= morph.PolicyUnique
	}
	if o.maximum {
		p |= morph.PolicyMaximum
	}
	return p
}

func newCommonCmd() *cobra.Command {
	var o commonOptions

	cmd := &cobra.Command{
		Use:   "common <file.toml>",
		Short: "Enumerate common subgraphs of left and right",
		Long: `Enumerate common subgraphs of graphs "left" and "right".

Every injective vertex correspondence of at least --min-size pairs that is
edge-consistent is reported. --pin l=r forces a pair into every result and
may be repeated; pins are checked against each other as they are added.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if o.minSize < 1 {
				return fmt.Errorf("--min-size must be ≥ 1, got %d", o.minSize)
			}
			left, right, err := loadPair(cmd, args[0], "left", "right")
			if err != nil {
				return err
			}
			opts := append(searchOptions(cmd, o.labels),
				morph.WithFullInduction(!o.noInduction),
				morph.WithMinSize(o.minSize))
			e, err := morph.NewEnumerator(left, right, opts...)
			if err != nil {
				return err
			}
			if err := pin(e, left, right, o.pins); err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("common search", "policy", o.policy(), "pinned", e.PreLen())

			return run(cmd, o.limit, func(cb morph.Callback) error {
				return e.Enumerate(o.policy(), cb)
			})
		},
	}

	cmd.Flags().IntVarP(&o.limit, "limit", "n", 0, "stop after this many mappings (0 = all)")
	cmd.Flags().BoolVar(&o.labels, "labels", false, "require equal vertex and edge labels")
	cmd.Flags().BoolVar(&o.unique, "unique", false, "suppress repeated pair sets")
	cmd.Flags().BoolVar(&o.maximum, "maximum", false, "report only the largest common subgraphs")
	cmd.Flags().BoolVar(&o.noInduction, "no-induction", false, "ignore edges present on one side only")
	cmd.Flags().IntVar(&o.minSize, "min-size", morph.DefaultOptions().MinSize, "smallest reported mapping")
	cmd.Flags().StringArrayVar(&o.pins, "pin", nil, "force the pair l=r into every result (repeatable)")

	return cmd
}

// pin pushes every "l=r" onto the pre-seed layer of e.
func pin(e *morph.Enumerator, left, right *core.Graph, pins []string) error {
	for _, raw := range pins {
		l, r, ok := strings.Cut(raw, "=")
		if !ok || l == "" || r == "" {
			return fmt.Errorf("%w: %q: want l=r", ErrPin, raw)
		}
		if !left.HasVertex(l) {
			return fmt.Errorf("%w: %q: left: %w", ErrPin, raw, core.ErrVertexNotFound)
		}
		if !right.HasVertex(r) {
			return fmt.Errorf("%w: %q: right: %w", ErrPin, raw, core.ErrVertexNotFound)
		}
		if !e.PreTryPush(l, r) {
			return fmt.Errorf("%w: %q is inconsistent with earlier pins", ErrPin, raw)
		}
	}
	return nil
}
