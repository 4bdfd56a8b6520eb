package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/disintegration/imaging"

	"github.com/glamkit/dyematch/internal/blend"
	"github.com/glamkit/dyematch/internal/colorspace"
	"github.com/glamkit/dyematch/internal/dye"
	"github.com/glamkit/dyematch/internal/palette"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Library output goes to stdout; diagnostics to stderr.
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "--version", "-v", "version":
		fmt.Printf("dyematch %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	case "--help", "-h", "help":
		printUsage()
		return
	}

	db, err := dye.LoadDefault()
	if err != nil {
		log.Fatalf("Failed to load dye database: %v", err)
	}

	var cmdErr error
	switch os.Args[1] {
	case "match":
		cmdErr = runMatch(db, os.Args[2:])
	case "blend":
		cmdErr = runBlend(db, os.Args[2:])
	case "harmony":
		cmdErr = runHarmony(db, os.Args[2:])
	case "extract":
		cmdErr = runExtract(db, os.Args[2:])
	default:
		printUsage()
		os.Exit(2)
	}
	if cmdErr != nil {
		log.Fatalf("%s: %v", os.Args[1], cmdErr)
	}
}

func printUsage() {
	fmt.Println("dyematch - match colors against the dye palette")
	fmt.Println()
	fmt.Println("Usage: dyematch <command> [options]")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  match <color>           Find the dyes closest to a color (dye name or hex)")
	fmt.Println("  blend <a> <b>           Blend two colors under a blending model")
	fmt.Println("  harmony <color>         Find complementary/analogous/triadic dyes")
	fmt.Println("  extract <image>         Extract dominant colors from an image and match them")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
}

// runMatch resolves a color and prints its closest dyes.
func runMatch(db *dye.Database, args []string) error {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	metricName := fs.String("metric", "ciede2000", "distance metric: rgb, cie76, ciede2000, oklab, hyab")
	n := fs.Int("n", 3, "number of matches to show")
	facewear := fs.Bool("facewear", false, "include Facewear entries")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one color argument")
	}

	metric, err := colorspace.ParseMetric(*metricName)
	if err != nil {
		return err
	}
	resolved, err := dye.Resolve(db, fs.Arg(0))
	if err != nil {
		return err
	}

	m := dye.NewMatcher(db, metric)
	var exclude []int
	if resolved.Dye != nil {
		fmt.Printf("%s is %s (%s)\n", resolved.Hex, resolved.Dye.Name, resolved.Dye.Category)
		exclude = append(exclude, resolved.Dye.ID)
	}

	matches := m.FindTopN(resolved.RGB, *n, exclude...)
	if len(matches) == 0 {
		fmt.Println("no matching dyes")
		return nil
	}
	for _, match := range matches {
		if !*facewear && match.Dye.Category == dye.CategoryFacewear {
			continue
		}
		printMatch(match)
	}
	return nil
}

// runBlend mixes two colors and shows the dye closest to the result.
func runBlend(db *dye.Database, args []string) error {
	fs := flag.NewFlagSet("blend", flag.ExitOnError)
	modeName := fs.String("mode", "oklab", "blend mode: rgb, lab, oklab, ryb, hsl, spectral")
	ratio := fs.Float64("ratio", 0.5, "mix ratio: 0 = first color, 1 = second color")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 2 {
		return fmt.Errorf("expected exactly two color arguments")
	}

	mode, err := blend.ParseMode(*modeName)
	if err != nil {
		return err
	}
	a, err := dye.Resolve(db, fs.Arg(0))
	if err != nil {
		return err
	}
	b, err := dye.Resolve(db, fs.Arg(1))
	if err != nil {
		return err
	}

	result := blend.Blend(a.RGB, b.RGB, mode, *ratio)
	fmt.Printf("%s + %s (%s, %.2f) -> %s\n", a.Hex, b.Hex, mode, *ratio, result.Hex)

	m := dye.NewMatcher(db, colorspace.MetricCIEDE2000)
	if match, ok := m.FindClosestExcludingCategory(result.RGB, dye.CategoryFacewear, 16); ok {
		printMatch(match)
	}
	return nil
}

// runHarmony prints dyes at color-harmony positions around a base color.
func runHarmony(db *dye.Database, args []string) error {
	fs := flag.NewFlagSet("harmony", flag.ExitOnError)
	kind := fs.String("kind", "complementary", "harmony kind: complementary, analogous, triadic")
	metricName := fs.String("metric", "oklab", "distance metric: rgb, cie76, ciede2000, oklab, hyab")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one color argument")
	}

	metric, err := colorspace.ParseMetric(*metricName)
	if err != nil {
		return err
	}
	resolved, err := dye.Resolve(db, fs.Arg(0))
	if err != nil {
		return err
	}

	m := dye.NewMatcher(db, metric)
	var matches []dye.Match
	switch *kind {
	case "complementary":
		if match, ok := m.FindComplementary(resolved.RGB); ok {
			matches = append(matches, match)
		}
	case "analogous":
		matches = m.FindAnalogous(resolved.RGB)
	case "triadic":
		matches = m.FindTriadic(resolved.RGB)
	default:
		return fmt.Errorf("unknown harmony kind %q", *kind)
	}

	if len(matches) == 0 {
		fmt.Println("no companion dyes")
		return nil
	}
	for _, match := range matches {
		printMatch(match)
	}
	return nil
}

// runExtract clusters an image's dominant colors and matches each to a dye.
func runExtract(db *dye.Database, args []string) error {
	fs := flag.NewFlagSet("extract", flag.ExitOnError)
	k := fs.Int("k", 5, "number of dominant colors, 1-5")
	metricName := fs.String("metric", "ciede2000", "distance metric: rgb, cie76, ciede2000, oklab, hyab")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() != 1 {
		return fmt.Errorf("expected exactly one image path")
	}

	metric, err := colorspace.ParseMetric(*metricName)
	if err != nil {
		return err
	}
	img, err := imaging.Open(fs.Arg(0), imaging.AutoOrientation(true))
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	opts := palette.DefaultOptions
	opts.Clusters = *k
	clusters, err := palette.Extract(palette.FromImage(img, opts.SampleCap), opts)
	if err != nil {
		return err
	}
	if len(clusters) == 0 {
		fmt.Println("no usable pixels (image is fully transparent)")
		return nil
	}

	m := dye.NewMatcher(db, metric)
	for _, match := range palette.MatchClustersExcluding(m, clusters, dye.CategoryFacewear) {
		fmt.Printf("%3d%%  %s -> %s (%s)  distance %.2f (%s)\n",
			match.Dominance, match.Hex, match.Dye.Name, match.Dye.Hex, match.Distance, match.Quality)
	}
	return nil
}

func printMatch(match dye.Match) {
	fmt.Printf("  %s  %s  distance %.2f (%s)\n",
		match.Dye.Hex, match.Dye.Name, match.Distance, match.Quality)
}
