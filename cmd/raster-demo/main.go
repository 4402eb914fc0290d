// Command raster-demo renders a demo scene and writes it as a pixel-map
// file, or blits it onto a Linux framebuffer device.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/BeatGlow/raster"
	"github.com/BeatGlow/raster/draw"
	"github.com/BeatGlow/raster/framebuffer"
	"github.com/BeatGlow/raster/geom"
	"github.com/BeatGlow/raster/pixel"
	"github.com/BeatGlow/raster/pnm"
)

func main() {
	widthFlag := flag.Int("width", 512, "Image width")
	heightFlag := flag.Int("height", 512, "Image height")
	depthFlag := flag.Uint("depth", 255, "Maximum channel value")
	outFlag := flag.String("out", "demo.ppm", "Output file")
	plainFlag := flag.Bool("plain", false, "Write plain text (P3) instead of raw binary (P6)")
	wrapFlag := flag.Bool("wrap", false, "Enable wraparound addressing on both axes")
	fbFlag := flag.String("fb", "", "Blit to this framebuffer device instead of writing a file")
	fontFlag := flag.String("font", "", "TrueType font file for the caption (default: Go Regular)")
	textFlag := flag.String("text", "raster", "Caption text")
	flag.Parse()

	if *depthFlag > 0xffff {
		fatal(fmt.Errorf("depth %d out of range", *depthFlag))
	}

	img, err := pixel.New(*heightFlag, *widthFlag, uint16(*depthFlag))
	if err != nil {
		fatal(err)
	}
	img.XWrap = *wrapFlag
	img.YWrap = *wrapFlag

	var (
		w     = img.Width()
		h     = img.Height()
		depth = img.Depth
		cx    = float64(w) / 2
		cy    = float64(h) / 2
	)

	// Border and center circle.
	draw.Rectangle(img, image.Rect(0, 0, w, h))
	img.Foreground = pixel.Gray(depth - depth/3)
	draw.Circle(img, w/2, h/2, min(w, h)/3)

	// Fan through all octants.
	img.Foreground = pixel.RGB{R: depth, G: depth / 2}
	for deg := 0.0; deg < 360; deg += 15 {
		draw.LinePolar(img, cx, cy, deg, float64(min(w, h))/2.5)
	}

	// A diamond from an edge matrix.
	m, err := geom.New(0, 4, nil)
	if err != nil {
		fatal(err)
	}
	for _, edge := range [][]float64{
		{cx, cy - cy/2, 0}, {cx + cx/2, cy, 0},
		{cx + cx/2, cy, 0}, {cx, cy + cy/2, 0},
		{cx, cy + cy/2, 0}, {cx - cx/2, cy, 0},
		{cx - cx/2, cy, 0}, {cx, cy - cy/2, 0},
	} {
		if err := m.AppendEdge(edge); err != nil {
			fatal(err)
		}
	}
	img.Foreground = pixel.RGB{G: depth, B: depth}
	if err := draw.Edges(img, m); err != nil {
		fatal(err)
	}

	// Turtle spiral in the top-left quadrant.
	t, err := raster.NewTurtle(img, cx/2, cy/2)
	if err != nil {
		fatal(err)
	}
	t.SetColor(pixel.RGB{R: depth})
	t.Down = true
	for i := 1; i <= 40; i++ {
		t.Forward(2 * i)
		t.Turn(92)
	}
	img = t.Surface()

	// Caption.
	ttf := goregular.TTF
	if *fontFlag != "" {
		if ttf, err = os.ReadFile(*fontFlag); err != nil {
			fatal(err)
		}
	}
	f, err := draw.ParseFont(ttf)
	if err != nil {
		fatal(err)
	}
	if err := draw.Text(img, f, 16, 8, h-12, color.White, *textFlag); err != nil {
		fatal(err)
	}

	if *fbFlag != "" {
		fb, err := framebuffer.Open(*fbFlag)
		if err != nil {
			fatal(err)
		}
		defer fb.Close()
		if err := fb.Blit(img); err != nil {
			fatal(err)
		}
		return
	}

	if *plainFlag {
		err = pnm.SavePlain(*outFlag, img)
	} else {
		err = pnm.SaveRaw(*outFlag, img)
	}
	if err != nil {
		fatal(err)
	}
	fmt.Printf("wrote %d x %d image to %s\n", w, h, *outFlag)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
