package main

import (
	"github.com/spf13/cobra"

	"github.com/Faultbox/galaxy/internal/config"
	"github.com/Faultbox/galaxy/internal/galaxy"
)

// cloudFlags selects the parameters a command generates from.
type cloudFlags struct {
	config   string
	count    int
	branches int
	seed     uint64
}

func (f *cloudFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.config, "config", "c", "", "Config file to read parameters from")
	cmd.Flags().IntVarP(&f.count, "count", "n", 0, "Number of stars")
	cmd.Flags().IntVarP(&f.branches, "branches", "b", 0, "Number of spiral arms")
	cmd.Flags().Uint64VarP(&f.seed, "seed", "s", 0, "Random seed")
}

// parameters loads the config and applies the flags the user set.
func (f *cloudFlags) parameters(cmd *cobra.Command) (galaxy.Parameters, uint64, error) {
	cfg, err := config.LoadFile(f.config)
	if err != nil {
		return galaxy.Parameters{}, 0, err
	}
	p := cfg.Galaxy.Parameters
	if cmd.Flags().Changed("count") {
		p.Count = f.count
	}
	if cmd.Flags().Changed("branches") {
		p.Branches = f.branches
	}
	seed := cfg.Galaxy.Seed
	if cmd.Flags().Changed("seed") {
		seed = f.seed
	}
	return p, seed, nil
}

// generate builds the cloud the flags describe.
func (f *cloudFlags) generate(cmd *cobra.Command) (*galaxy.PointCloud, galaxy.Parameters, error) {
	p, seed, err := f.parameters(cmd)
	if err != nil {
		return nil, p, err
	}
	cloud, err := galaxy.Generate(p, galaxy.NewSource(seed))
	return cloud, p, err
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "galaxytool",
		Short: "Generate and inspect spiral galaxy point clouds",
		Long: `galaxytool runs the galaxy generator without opening a window.

Parameters come from the viewer config file, then from flags. A fixed
seed makes every run produce the same cloud.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(newGenerateCmd(), newStatsCmd(), newPresetCmd())
	return root
}
