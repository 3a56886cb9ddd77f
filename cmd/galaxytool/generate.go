package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Faultbox/galaxy/internal/galaxy"
)

func newGenerateCmd() *cobra.Command {
	var (
		flags  cloudFlags
		format string
		output string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write a point cloud as PLY or CSV",
		Example: `  galaxytool generate -n 50000 -s 7 -o galaxy.ply
  galaxytool generate --format csv > galaxy.csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			write, err := writerFor(format)
			if err != nil {
				return err
			}

			cloud, _, err := flags.generate(cmd)
			if err != nil {
				return err
			}

			if output == "" || output == "-" {
				if err := write(cmd.OutOrStdout(), cloud); err != nil {
					return fmt.Errorf("writing %s: %w", format, err)
				}
				return nil
			}

			if err := writeFile(output, cloud, write); err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "Wrote %d points to %s\n", cloud.Len(), output)
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVarP(&format, "format", "f", "ply", "Output format: ply or csv")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file (default stdout)")
	return cmd
}

// writeFile writes cloud to path. A failed close is reported like a failed write.
func writeFile(path string, cloud *galaxy.PointCloud, write func(io.Writer, *galaxy.PointCloud) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output: %w", err)
	}
	if err := write(f, cloud); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func writerFor(format string) (func(io.Writer, *galaxy.PointCloud) error, error) {
	switch strings.ToLower(format) {
	case "ply":
		return galaxy.WritePLY, nil
	case "csv":
		return galaxy.WriteCSV, nil
	default:
		return nil, fmt.Errorf("unknown format %q (want ply or csv)", format)
	}
}
