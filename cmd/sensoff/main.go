// Command sensoff corrects GPS transect coordinates when an on-the-go
// sensor is offset from the GPS antenna on a mobile survey platform.
//
// It reads a delimited text file of x,y coordinates, estimates the
// platform heading at each fix from the adjacent traverse legs, and
// writes xgps,ygps,xsens,ysens rows to stdout or a file. Endpoints,
// which have no heading estimate, are written as NaN.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"transect-offset-service/internal/adapters/plot"
	"transect-offset-service/internal/adapters/transectio"
	"transect-offset-service/internal/domain"
	"transect-offset-service/internal/services"
)

const schematic = `
             lateral offset

                  (+)

                   |            Direction of travel -->
             >>>>>>>>>>>>>
             >     |     >
     (-)  --->--- GPS --->---  (+) inline offset
             >     |     >
             >>>>>>>>>>>>>
                   |
                         (mobile platform)
                  (-)
`

var (
	ioff      = flag.Float64("ioff", 0, "inline sensor offset, positive in direction of travel")
	loff      = flag.Float64("loff", 0, "lateral sensor offset, positive to left (facing forward)")
	xcol      = flag.Int("xcol", 1, "x-coordinate column (1-based)")
	ycol      = flag.Int("ycol", 2, "y-coordinate column (1-based)")
	headrows  = flag.Int("headrows", -1, "number of header rows (-1 = infer)")
	delimiter = flag.String("delimiter", ",", "datafile delimiter")
	outfile   = flag.String("o", "", "write output to file instead of stdout")
	plotfile  = flag.String("plot", "", "write an HTML scatter plot of the GPS and sensor tracks")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"usage: sensoff [flags] FILE\n\nCorrect transect coordinates when the sensor is offset from the GPS.\n\n")
	flag.PrintDefaults()
	fmt.Fprintln(flag.CommandLine.Output(), schematic)
}

func main() {
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0)); err != nil {
		log.Fatalf("sensoff: %v", err)
	}
}

func run(path string) error {
	if len(*delimiter) != 1 {
		return fmt.Errorf("delimiter must be a single character, got %q", *delimiter)
	}

	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	opts := transectio.ReadOptions{
		Delimiter: rune((*delimiter)[0]),
		XCol:      *xcol,
		YCol:      *ycol,
		HeadRows:  *headrows,
	}
	points, err := transectio.ReadPoints(f, opts)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}

	offsets := domain.Offsets{Inline: *ioff, Lateral: *loff}
	corrections, err := services.Corrections(points, offsets)
	if err != nil {
		return err
	}

	out := os.Stdout
	if *outfile != "" {
		out, err = os.Create(*outfile)
		if err != nil {
			return err
		}
		defer out.Close()
	}
	if err := transectio.WriteCorrections(out, corrections, opts.Delimiter); err != nil {
		return err
	}

	if *plotfile != "" {
		pf, err := os.Create(*plotfile)
		if err != nil {
			return err
		}
		defer pf.Close()
		if err := plot.WriteScatterHTML(pf, corrections, offsets, path); err != nil {
			return fmt.Errorf("plot %s: %w", *plotfile, err)
		}
	}

	return nil
}
