package models

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/dgwave/dgwave/solver"
)

// WriteCSV persists a trajectory as one record per nodal point and frame,
// columns (time, element, node, x, fields...).
func WriteCSV(w io.Writer, traj *solver.Trajectory) error {
	cw := csv.NewWriter(w)
	header := append([]string{"time", "element", "node", "x"}, traj.FieldNames...)
	if err := cw.Write(header); err != nil {
		return err
	}
	record := make([]string, len(header))
	for _, row := range traj.Rows() {
		record[0] = strconv.FormatFloat(row[0], 'g', -1, 64)
		record[1] = strconv.Itoa(int(row[1]))
		record[2] = strconv.Itoa(int(row[2]))
		for i := 3; i < len(row); i++ {
			record[i] = strconv.FormatFloat(row[i], 'g', -1, 64)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVFile is WriteCSV against a freshly created file.
func WriteCSVFile(path string, traj *solver.Trajectory) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create %s: %w", path, err)
	}
	defer f.Close()
	return WriteCSV(f, traj)
}
