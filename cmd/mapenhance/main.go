package main

import (
	"errors"
	"flag"
	"fmt"
	"image/png"
	"os"

	"github.com/seqsense/pcgol/pc"

	"github.com/seqsense/mapenhancer/cloud"
	"github.com/seqsense/mapenhancer/enhance"
	"github.com/seqsense/mapenhancer/grid"
	"github.com/seqsense/mapenhancer/grid/filter"
	"github.com/seqsense/mapenhancer/preview"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	switch os.Args[1] {
	case "enhance":
		if err := runEnhance(os.Args[2:]); err != nil {
			fail(err)
		}
	case "info":
		if err := runInfo(os.Args[2:]); err != nil {
			fail(err)
		}
	case "preview":
		if err := runPreview(os.Args[2:]); err != nil {
			fail(err)
		}
	case "rescale":
		if err := runRescale(os.Args[2:]); err != nil {
			fail(err)
		}
	case "cloud":
		if err := runCloud(os.Args[2:]); err != nil {
			fail(err)
		}
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "Usage: mapenhance <command> [args]")
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  enhance -in dir -out dir [-blur n] [-opening n] [-dilation n] [-erosion n] [-threshold t] [-auto]")
	fmt.Fprintln(os.Stderr, "  info    -in dir")
	fmt.Fprintln(os.Stderr, "  preview -in dir -out file.png [-mode original|enhanced|side_by_side] [-scale f] [-grid] [-invert] [filter flags]")
	fmt.Fprintln(os.Stderr, "  rescale -in dir -out dir -scale f")
	fmt.Fprintln(os.Stderr, "  cloud   -in map.db -out file.pcd [-max-intensity f]")
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "Error:", err)
	os.Exit(1)
}

type filterFlags struct {
	blur      *int
	opening   *int
	dilation  *int
	erosion   *int
	threshold *float64
	auto      *bool
}

func addFilterFlags(fs *flag.FlagSet) filterFlags {
	return filterFlags{
		blur:      fs.Int("blur", 0, "gaussian blur radius"),
		opening:   fs.Int("opening", 0, "opening radius"),
		dilation:  fs.Int("dilation", 0, "dilation radius"),
		erosion:   fs.Int("erosion", 0, "erosion radius"),
		threshold: fs.Float64("threshold", 0, "binarization level in (0,1], 0 disables"),
		auto:      fs.Bool("auto", false, "derive settings from the map"),
	}
}

func (ff filterFlags) process(m *grid.Map) *grid.Raster {
	s := enhance.Settings{
		Blur:     *ff.blur,
		Opening:  *ff.opening,
		Dilation: *ff.dilation,
		Erosion:  *ff.erosion,
	}
	threshold := *ff.threshold
	if *ff.auto {
		s, threshold = enhance.Suggest(m.Raster, m.MapMeta())
		fmt.Fprintf(os.Stderr, "auto: blur=%d opening=%d dilation=%d erosion=%d threshold=%.3f\n",
			s.Blur, s.Opening, s.Dilation, s.Erosion, threshold)
	}
	out := m.Raster
	if threshold > 0 {
		out = filter.Threshold(out, threshold)
	}
	return enhance.Process(out, s)
}

func runEnhance(args []string) error {
	fs := flag.NewFlagSet("enhance", flag.ContinueOnError)
	inDir := fs.String("in", "", "input map directory")
	outDir := fs.String("out", "", "output map directory")
	name := fs.String("name", "", "output base name (default: output directory name)")
	ff := addFilterFlags(fs)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inDir == "" || *outDir == "" {
		return errors.New("missing required arguments")
	}
	m, err := grid.ReadMapDir(*inDir)
	if err != nil {
		return err
	}
	out := &grid.Map{Raster: ff.process(m), Meta: m.Meta}
	return out.WriteMapDir(*outDir, *name)
}

func runInfo(args []string) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	inDir := fs.String("in", "", "input map directory")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inDir == "" {
		return errors.New("missing required arguments")
	}
	m, err := grid.ReadMapDir(*inDir)
	if err != nil {
		return err
	}
	fmt.Printf("size: %dx%d\n", m.Raster.Width, m.Raster.Height)
	for _, k := range m.Meta.Keys() {
		v, _ := m.Meta.Get(k)
		fmt.Printf("%s: %v\n", k, v)
	}
	st := m.Raster.Stats()
	fmt.Printf("occupied: %.1f%%  free: %.1f%%  unknown: %.1f%%\n",
		st.Occupied*100, st.Free*100, st.Unknown*100)
	return nil
}

func runPreview(args []string) error {
	fs := flag.NewFlagSet("preview", flag.ContinueOnError)
	inDir := fs.String("in", "", "input map directory")
	outPath := fs.String("out", "", "output PNG file")
	mode := fs.String("mode", "side_by_side", "original|enhanced|side_by_side")
	scale := fs.Float64("scale", 1, "display scale")
	showGrid := fs.Bool("grid", false, "overlay grid lines")
	invert := fs.Bool("invert", false, "invert display")
	ff := addFilterFlags(fs)
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inDir == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}
	m, err := grid.ReadMapDir(*inDir)
	if err != nil {
		return err
	}
	var pm preview.Mode
	switch *mode {
	case "original":
		pm = preview.ModeOriginal
	case "enhanced":
		pm = preview.ModeEnhanced
	case "side_by_side":
		pm = preview.ModeSideBySide
	default:
		return fmt.Errorf("unknown mode %q", *mode)
	}
	img := preview.Compose(m.Raster, ff.process(m), preview.Options{
		Mode:   pm,
		Scale:  *scale,
		Invert: *invert,
		Grid:   *showGrid,
	})
	f, err := os.Create(*outPath)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func runRescale(args []string) error {
	fs := flag.NewFlagSet("rescale", flag.ContinueOnError)
	inDir := fs.String("in", "", "input map directory")
	outDir := fs.String("out", "", "output map directory")
	name := fs.String("name", "", "output base name (default: output directory name)")
	scale := fs.Float64("scale", 0, "size factor, e.g. 0.5 halves the map")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inDir == "" || *outDir == "" || *scale <= 0 {
		return errors.New("missing required arguments")
	}
	m, err := grid.ReadMapDir(*inDir)
	if err != nil {
		return err
	}
	return m.Rescale(*scale).WriteMapDir(*outDir, *name)
}

func runCloud(args []string) error {
	fs := flag.NewFlagSet("cloud", flag.ContinueOnError)
	inPath := fs.String("in", "", "input SQLite map database")
	outPath := fs.String("out", "", "output PCD file")
	maxIntensity := fs.Float64("max-intensity", 0, "drop points above this intensity, 0 keeps all")
	fs.SetOutput(os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *inPath == "" || *outPath == "" {
		return errors.New("missing required arguments")
	}
	pp, err := cloud.ReadDB(*inPath)
	if err != nil {
		return err
	}
	if *maxIntensity > 0 {
		pp, err = cloud.IntensityPassThrough(pp, float32(*maxIntensity))
		if err != nil {
			return err
		}
	}
	fmt.Fprintf(os.Stderr, "%d points\n", pp.Points)
	f, err := os.Create(*outPath)
	if err != nil {
		return err
	}
	if err := pc.Marshal(pp, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
