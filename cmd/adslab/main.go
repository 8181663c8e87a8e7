// adslab scans a directory of slab structure files, finds the exposed
// surface of each slab and writes one output structure per candidate
// adsorption site, with the adsorbate atom already placed.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/urfave/cli/v2"

	slab "github.com/sbravoc/goslab"
	"github.com/sbravoc/goslab/sites"
	"github.com/sbravoc/goslab/slabplot"
	"github.com/sbravoc/goslab/surface"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		log.Fatalf("[ERROR] %v", err)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "adslab",
		Usage: "Generate adsorption-site structures for prebuilt slabs via convex-hull screening",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "input-dir", Aliases: []string{"i"}, Required: true, Usage: "Directory containing slab (.vasp/.poscar/.xyz, optionally .gz) files"},
			&cli.StringFlag{Name: "output-dir", Aliases: []string{"o"}, Required: true, Usage: "Directory to write slab+adsorbate files"},
			&cli.Float64Flag{Name: "percentile", Value: surface.DefPercentile, Usage: "z-coordinate percentile for candidate screening"},
			&cli.Float64Flag{Name: "ads-dist", Value: sites.DefaultOptions().AdsDist(), Usage: "Distance above the surface for the adsorbate"},
			&cli.Float64Flag{Name: "dist-thr", Value: sites.DefaultOptions().DistThr(), Usage: "Max interatomic distance for bridge/hollow sites"},
			&cli.Float64Flag{Name: "margin", Value: sites.DefaultOptions().Margin(), Usage: "Height margin a site must clear above its base atoms"},
			&cli.StringFlag{Name: "adsorbate", Value: sites.DefaultOptions().Adsorbate(), Usage: "Element symbol of the adsorbate"},
			&cli.BoolFlag{Name: "plot", Usage: "Write a PNG overview of the hull and sites per slab"},
		},
		Action: run,
	}
}

func run(c *cli.Context) error {
	indir := c.String("input-dir")
	outdir := c.String("output-dir")
	if err := os.MkdirAll(outdir, 0755); err != nil {
		return err
	}
	entries, err := os.ReadDir(indir)
	if err != nil {
		return err
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && readable(e.Name()) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	if len(names) == 0 {
		return fmt.Errorf("no structure files found in %s", indir)
	}
	rep := slab.Log(nil)
	opts := sites.DefaultOptions()
	opts.AdsDist(c.Float64("ads-dist"))
	opts.DistThr(c.Float64("dist-thr"))
	opts.Margin(c.Float64("margin"))
	opts.Adsorbate(c.String("adsorbate"))
	opts.Reporter(rep)
	for _, name := range names {
		//one bad slab never kills the batch; it is logged and skipped.
		if err := process(filepath.Join(indir, name), outdir, c.Float64("percentile"), opts, rep, c.Bool("plot")); err != nil {
			log.Printf("[ERROR] %s: %v", name, err)
		}
	}
	return nil
}

func readable(name string) bool {
	n := strings.TrimSuffix(strings.ToLower(name), ".gz")
	return strings.HasSuffix(n, ".vasp") || strings.HasSuffix(n, ".poscar") ||
		strings.HasSuffix(n, ".xyz") || n == "poscar" || n == "contcar"
}

func process(path, outdir string, percentile float64, opts *sites.Options, rep slab.Reporter, plot bool) error {
	name := filepath.Base(path)
	log.Printf("[INFO] processing %s", name)
	s, err := readStructure(path)
	if err != nil {
		return err
	}
	s, err = slab.AlignToZ(s, rep)
	if err != nil {
		return err
	}
	surf, err := surface.Select(s, percentile, rep)
	if err != nil {
		return err
	}
	if len(surf) == 0 {
		log.Printf("[WARNING] no surface atoms for %s", name)
		return nil
	}
	generated, err := sites.Generate(s, surf, opts)
	if err != nil {
		return err
	}
	base := baseName(name)
	if plot {
		png := filepath.Join(outdir, base+"_sites.png")
		if err := slabplot.Overview(s, surf, generated, base, png); err != nil {
			log.Printf("[WARNING] couldn't plot %s: %v", name, err)
		}
	}
	for _, st := range generated {
		withAds, err := sites.Place(s, st, opts.Adsorbate())
		if err != nil {
			return err
		}
		out := filepath.Join(outdir, fmt.Sprintf("%s_%s.vasp", base, st.Label))
		if err := slab.PoscarWrite(out, withAds, fmt.Sprintf("%s %s", base, st.Label)); err != nil {
			return err
		}
	}
	log.Printf("[INFO] wrote %d structures for %s", len(generated), name)
	return nil
}

func readStructure(path string) (*slab.Slab, error) {
	n := strings.TrimSuffix(strings.ToLower(filepath.Base(path)), ".gz")
	if strings.HasSuffix(n, ".xyz") {
		return slab.XYZRead(path)
	}
	return slab.PoscarRead(path)
}

func baseName(name string) string {
	base := strings.TrimSuffix(name, ".gz")
	return strings.TrimSuffix(base, filepath.Ext(base))
}
