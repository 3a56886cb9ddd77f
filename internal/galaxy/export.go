package galaxy

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"
)

// WritePLY writes the cloud as an ASCII PLY file with 8-bit vertex colours.
func WritePLY(w io.Writer, c *PointCloud) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "ply")
	fmt.Fprintln(bw, "format ascii 1.0")
	fmt.Fprintln(bw, "comment galaxy point cloud")
	fmt.Fprintf(bw, "element vertex %d\n", c.Len())
	for _, prop := range []string{"float x", "float y", "float z", "uchar red", "uchar green", "uchar blue"} {
		fmt.Fprintf(bw, "property %s\n", prop)
	}
	fmt.Fprintln(bw, "end_header")

	for i := 0; i < c.Len(); i++ {
		p := c.Position(i)
		col := c.Color(i)
		fmt.Fprintf(bw, "%g %g %g %d %d %d\n",
			p.X(), p.Y(), p.Z(),
			toByte(col.X()), toByte(col.Y()), toByte(col.Z()))
	}

	return bw.Flush()
}

// WriteCSV writes one x,y,z,r,g,b row per point after a header row.
func WriteCSV(w io.Writer, c *PointCloud) error {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"x", "y", "z", "r", "g", "b"}); err != nil {
		return err
	}

	row := make([]string, 6)
	for i := 0; i < c.Len(); i++ {
		p := c.Position(i)
		col := c.Color(i)
		for a := 0; a < 3; a++ {
			row[a] = strconv.FormatFloat(float64(p[a]), 'g', -1, 32)
			row[a+3] = strconv.FormatFloat(float64(col[a]), 'g', -1, 32)
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func toByte(v float32) uint8 {
	return uint8(math.Round(float64(min(max(v, 0), 1)) * 255))
}
