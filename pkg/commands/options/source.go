package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/roster/pkg/source"
)

// SourceOptions selects where the roster comes from.
type SourceOptions struct {
	Sample  bool
	NoCache bool
	Seed    int64
}

// AddSourceArgs wires the data-source flags on the provided command.
func AddSourceArgs(cmd *cobra.Command, o *SourceOptions) {
	cmd.Flags().BoolVar(&o.Sample, "sample", false,
		"Fabricate the roster locally instead of fetching.")
	cmd.Flags().BoolVar(&o.NoCache, "no-cache", false,
		"Skip the on-disk snapshot fallback.")
	cmd.Flags().Int64Var(&o.Seed, "seed", 0,
		"Seed for the sample generator; 0 picks one.")
}

// Build assembles the configured source chain.
func (o *SourceOptions) Build(cfg source.Config) source.Source {
	var s source.Source
	if o.Sample {
		s = &source.Sample{Size: cfg.RosterSize, Seed: o.Seed}
	} else {
		h := source.NewHTTP(cfg)
		h.Seed = o.Seed
		s = h
	}
	if o.NoCache || o.Sample {
		return s
	}
	return source.NewCached(s, cfg.CachePath)
}
