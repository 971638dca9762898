// Command sdfatlas generates a signed distance field glyph atlas and its
// BMFont text descriptor.
//
// Usage:
//
//	sdfatlas [flags] <pixel-size>
//
// With no -font the embedded Go Regular font is used.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/sdfatlas"
	"github.com/gogpu/sdfatlas/charset"
	"github.com/gogpu/sdfatlas/glyph"
)

func main() {
	def := sdfatlas.DefaultConfig()
	var (
		fontPath    = flag.String("font", "", "TrueType/OpenType font file (default: embedded Go Regular)")
		cpRange     = flag.String("range", "32-254", "codepoint range lo-hi")
		charsetName = flag.String("charset", "", "IANA charset; -range then selects bytes of that charset")
		pageSize    = flag.Int("page", def.PageSize, "page width and height in pixels")
		gutter      = flag.Int("gutter", def.Gutter, "horizontal gap between glyphs")
		spread      = flag.Float64("spread", def.SpreadFraction, "distance field spread as a fraction of the pixel size")
		padding     = flag.Int("padding", def.Padding, "glyph padding in pixels (-1: spread)")
		outDir      = flag.String("out", ".", "output directory")
		backend     = flag.String("backend", def.Backend, "rasterizer: "+strings.Join(glyph.Backends(), ", "))
		skipMissing = flag.Bool("skip-missing", def.SkipMissing, "skip codepoints the font cannot render")
		workers     = flag.Int("workers", 0, "distance field workers (0: GOMAXPROCS)")
		verbose     = flag.Bool("v", false, "log every glyph")
	)
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <pixel-size>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	size, err := strconv.Atoi(flag.Arg(0))
	if err != nil || size <= 0 {
		log.Fatalf("invalid pixel size %q", flag.Arg(0))
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	sdfatlas.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	cfg := def
	cfg.Backend = *backend
	cfg.Size = size
	cfg.PageSize = *pageSize
	cfg.Gutter = *gutter
	cfg.SpreadFraction = *spread
	cfg.Padding = *padding
	cfg.SkipMissing = *skipMissing
	cfg.Workers = *workers

	if err := run(cfg, *fontPath, *cpRange, *charsetName, *outDir); err != nil {
		log.Fatal(err)
	}
}

// run loads the font, generates the atlas and writes it to outDir.
func run(cfg sdfatlas.Config, fontPath, cpRange, charsetName, outDir string) error {
	cfg.FontData = goregular.TTF
	if fontPath != "" {
		data, err := os.ReadFile(fontPath)
		if err != nil {
			return fmt.Errorf("failed to read font: %w", err)
		}
		cfg.FontData = data
	}

	cps, err := codepoints(cpRange, charsetName)
	if err != nil {
		return fmt.Errorf("failed to select codepoints: %w", err)
	}
	cfg.Codepoints = cps

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	out, err := sdfatlas.Generate(ctx, cfg)
	if err != nil {
		return fmt.Errorf("failed to generate atlas: %w", err)
	}
	if err := out.WriteFiles(outDir); err != nil {
		return fmt.Errorf("failed to save: %w", err)
	}

	log.Printf("Atlas saved to %s (%d pages, %d chars, %d skipped)\n",
		outDir, len(out.Pages), out.Descriptor.CharCount(), len(out.Skipped))
	return nil
}

// codepoints resolves the -range and -charset flags.
func codepoints(rng, name string) ([]rune, error) {
	lo, hi, err := charset.ParseRange(rng)
	if err != nil {
		return nil, err
	}
	if name == "" {
		return charset.Range(lo, hi)
	}
	if hi > 255 {
		return nil, fmt.Errorf("range %s exceeds one byte for charset %s", rng, name)
	}
	return charset.FromEncoding(name, byte(lo), byte(hi))
}
