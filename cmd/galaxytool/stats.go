package main

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Faultbox/galaxy/internal/galaxy"
)

const histogramWidth = 40

func newStatsCmd() *cobra.Command {
	var (
		flags cloudFlags
		bins  int
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print bounds, arm counts and a radius histogram",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if bins < 1 {
				return fmt.Errorf("bins must be at least 1, got %d", bins)
			}
			cloud, p, err := flags.generate(cmd)
			if err != nil {
				return err
			}
			printStats(cmd.OutOrStdout(), cloud, p, bins)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().IntVar(&bins, "bins", 10, "Radius histogram buckets")
	return cmd
}

func printStats(w io.Writer, cloud *galaxy.PointCloud, p galaxy.Parameters, bins int) {
	lo, hi := cloud.Bounds()
	fmt.Fprintf(w, "Points:   %d\n", cloud.Len())
	fmt.Fprintf(w, "Bounds:   (%.3f, %.3f, %.3f) - (%.3f, %.3f, %.3f)\n",
		lo.X(), lo.Y(), lo.Z(), hi.X(), hi.Y(), hi.Z())

	fmt.Fprintf(w, "\nArms (%d):\n", p.Branches)
	for i, n := range galaxy.BranchCounts(p.Count, p.Branches) {
		fmt.Fprintf(w, "  %3d  %d\n", i, n)
	}

	hist := radiusHistogram(cloud, p.Radius, bins)
	peak := 0
	for _, n := range hist {
		peak = max(peak, n)
	}
	step := float64(p.Radius) / float64(bins)

	fmt.Fprintf(w, "\nRadius histogram:\n")
	for i, n := range hist {
		bar := 0
		if peak > 0 {
			bar = n * histogramWidth / peak
		}
		fmt.Fprintf(w, "  %6.2f-%-6.2f %7d %s\n",
			float64(i)*step, float64(i+1)*step, n, strings.Repeat("#", bar))
	}
}

// radiusHistogram buckets the distance of each point from the Y axis.
// Points scattered past radius land in the last bucket.
func radiusHistogram(cloud *galaxy.PointCloud, radius float32, bins int) []int {
	hist := make([]int, bins)
	if radius <= 0 {
		return hist
	}
	for i := 0; i < cloud.Len(); i++ {
		pos := cloud.Position(i)
		d := math.Hypot(float64(pos.X()), float64(pos.Z()))
		b := int(d / float64(radius) * float64(bins))
		hist[min(b, bins-1)]++
	}
	return hist
}
