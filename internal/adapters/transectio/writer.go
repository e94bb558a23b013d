package transectio

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"transect-offset-service/internal/domain"
)

// WriteCorrections serializes paired original and sensor coordinates
// as delimited rows under the header xgps,ygps,xsens,ysens. Undefined
// sensor coordinates serialize as the NaN token
// (strconv.FormatFloat renders them as "NaN").
func WriteCorrections(w io.Writer, corrections []domain.Correction, delimiter rune) error {
	cw := csv.NewWriter(w)
	if delimiter != 0 {
		cw.Comma = delimiter
	}

	if err := cw.Write([]string{"xgps", "ygps", "xsens", "ysens"}); err != nil {
		return fmt.Errorf("write corrections: header: %w", err)
	}

	for i, c := range corrections {
		record := []string{
			formatCoord(c.GPS.X),
			formatCoord(c.GPS.Y),
			formatCoord(c.Sensor.X),
			formatCoord(c.Sensor.Y),
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write corrections: row %d: %w", i+1, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("write corrections: flush: %w", err)
	}
	return nil
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
