// Package raster renders a drawing tree to a raster preview image using
// the x/image vector rasterizer.
//
// The preview is deliberately approximate: it covers rect, circle,
// ellipse, polygon and line primitives with solid fills, resolves
// gradient fill references to the gradient's first stop color, and skips
// text and path data entirely. It exists so callers can eyeball a
// document without an SVG renderer, not to be pixel-faithful.
package raster

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"math"
	"strconv"
	"strings"

	"golang.org/x/image/vector"

	"github.com/svgforge/svgforge/pkg/svg"
)

// kappa approximates a quarter circle with one cubic Bézier.
const kappa = 0.5522847498307936

const (
	fallbackWidth  = 800
	fallbackHeight = 600
)

// Render rasterizes the drawing onto a white canvas sized to its
// viewport. Percent and other non-absolute viewport units fall back to a
// fixed canvas size.
func Render(d *svg.Drawing) *image.RGBA {
	w := pixelSize(d.Width, fallbackWidth)
	h := pixelSize(d.Height, fallbackHeight)

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	fillAll(img, color.White)

	r := renderer{img: img, stops: gradientStops(d)}
	for _, el := range d.Children() {
		r.element(el, 1)
	}
	return img
}

// EncodePNG renders the drawing and encodes it as PNG.
func EncodePNG(d *svg.Drawing) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, Render(d)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func pixelSize(l svg.Length, fallback int) int {
	if l.Unit != "" && l.Unit != "px" {
		return fallback
	}
	if l.Value <= 0 {
		return fallback
	}
	return int(math.Ceil(l.Value))
}

func fillAll(img *image.RGBA, c color.Color) {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			img.Set(x, y, c)
		}
	}
}

type renderer struct {
	img *image.RGBA
	// gradient id -> first stop color, for url(#id) fills
	stops map[string]color.Color
}

func (r *renderer) element(el *svg.Element, opacity float64) {
	opacity *= attrFloat(el, "opacity", 1)

	switch el.Name() {
	case "g":
		for _, child := range el.Children() {
			r.element(child, opacity)
		}
	case "rect":
		x := attrFloat(el, "x", 0)
		y := attrFloat(el, "y", 0)
		w := attrFloat(el, "width", 0)
		h := attrFloat(el, "height", 0)
		r.fillPath(el, opacity, func(z *vector.Rasterizer) {
			z.MoveTo(float32(x), float32(y))
			z.LineTo(float32(x+w), float32(y))
			z.LineTo(float32(x+w), float32(y+h))
			z.LineTo(float32(x), float32(y+h))
			z.ClosePath()
		})
	case "circle":
		cx := attrFloat(el, "cx", 0)
		cy := attrFloat(el, "cy", 0)
		rad := attrFloat(el, "r", 0)
		r.fillPath(el, opacity, func(z *vector.Rasterizer) {
			ellipsePath(z, cx, cy, rad, rad)
		})
	case "ellipse":
		cx := attrFloat(el, "cx", 0)
		cy := attrFloat(el, "cy", 0)
		rx := attrFloat(el, "rx", 0)
		ry := attrFloat(el, "ry", 0)
		r.fillPath(el, opacity, func(z *vector.Rasterizer) {
			ellipsePath(z, cx, cy, rx, ry)
		})
	case "polygon":
		points := parsePoints(el)
		if len(points) < 3 {
			return
		}
		r.fillPath(el, opacity, func(z *vector.Rasterizer) {
			z.MoveTo(float32(points[0][0]), float32(points[0][1]))
			for _, p := range points[1:] {
				z.LineTo(float32(p[0]), float32(p[1]))
			}
			z.ClosePath()
		})
	case "line":
		r.strokeLine(el, opacity)
	}
	// text and path data are not rasterized
}

// fillPath rasterizes a closed path with the element's fill color.
func (r *renderer) fillPath(el *svg.Element, opacity float64, trace func(z *vector.Rasterizer)) {
	fill, _ := el.Get("fill")
	c, ok := r.resolveColor(fill, opacity)
	if !ok {
		return
	}
	b := r.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	trace(z)
	z.Draw(r.img, b, image.NewUniform(c), image.Point{})
}

// strokeLine draws a line segment as a filled quad of stroke-width
// thickness.
func (r *renderer) strokeLine(el *svg.Element, opacity float64) {
	stroke, _ := el.Get("stroke")
	c, ok := r.resolveColor(stroke, opacity)
	if !ok {
		return
	}
	x1 := attrFloat(el, "x1", 0)
	y1 := attrFloat(el, "y1", 0)
	x2 := attrFloat(el, "x2", 0)
	y2 := attrFloat(el, "y2", 0)
	width := attrFloat(el, "stroke-width", 1)

	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		return
	}
	// unit normal scaled to half the stroke width
	nx := -dy / length * width / 2
	ny := dx / length * width / 2

	b := r.img.Bounds()
	z := vector.NewRasterizer(b.Dx(), b.Dy())
	z.MoveTo(float32(x1+nx), float32(y1+ny))
	z.LineTo(float32(x2+nx), float32(y2+ny))
	z.LineTo(float32(x2-nx), float32(y2-ny))
	z.LineTo(float32(x1-nx), float32(y1-ny))
	z.ClosePath()
	z.Draw(r.img, b, image.NewUniform(c), image.Point{})
}

// resolveColor turns a paint value into a drawable color. "none" and
// empty values report false; url(#id) references resolve to the
// gradient's first stop color.
func (r *renderer) resolveColor(value string, opacity float64) (color.Color, bool) {
	if value == "" || value == "none" {
		return nil, false
	}
	if id, ok := strings.CutPrefix(value, "url(#"); ok {
		id = strings.TrimSuffix(id, ")")
		c, found := r.stops[id]
		if !found {
			return nil, false
		}
		return applyOpacity(c, opacity), true
	}
	c, ok := parseColor(value)
	if !ok {
		return nil, false
	}
	return applyOpacity(c, opacity), true
}

func applyOpacity(c color.Color, opacity float64) color.Color {
	if opacity >= 1 {
		return c
	}
	if opacity < 0 {
		opacity = 0
	}
	nrgba := color.NRGBAModel.Convert(c).(color.NRGBA)
	nrgba.A = uint8(float64(nrgba.A) * opacity)
	return nrgba
}

func ellipsePath(z *vector.Rasterizer, cx, cy, rx, ry float64) {
	ox, oy := rx*kappa, ry*kappa
	z.MoveTo(float32(cx+rx), float32(cy))
	z.CubeTo(float32(cx+rx), float32(cy+oy), float32(cx+ox), float32(cy+ry), float32(cx), float32(cy+ry))
	z.CubeTo(float32(cx-ox), float32(cy+ry), float32(cx-rx), float32(cy+oy), float32(cx-rx), float32(cy))
	z.CubeTo(float32(cx-rx), float32(cy-oy), float32(cx-ox), float32(cy-ry), float32(cx), float32(cy-ry))
	z.CubeTo(float32(cx+ox), float32(cy-ry), float32(cx+rx), float32(cy-oy), float32(cx+rx), float32(cy))
	z.ClosePath()
}

func attrFloat(el *svg.Element, key string, def float64) float64 {
	s, ok := el.Get(key)
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}

func parsePoints(el *svg.Element) [][2]float64 {
	s, _ := el.Get("points")
	fields := strings.Fields(s)
	points := make([][2]float64, 0, len(fields))
	for _, f := range fields {
		xy := strings.SplitN(f, ",", 2)
		if len(xy) != 2 {
			continue
		}
		x, errX := strconv.ParseFloat(xy[0], 64)
		y, errY := strconv.ParseFloat(xy[1], 64)
		if errX != nil || errY != nil {
			continue
		}
		points = append(points, [2]float64{x, y})
	}
	return points
}

// gradientStops indexes each def gradient by id to its first stop color.
func gradientStops(d *svg.Drawing) map[string]color.Color {
	stops := make(map[string]color.Color)
	for _, def := range d.Defs() {
		id, ok := def.Get("id")
		if !ok {
			continue
		}
		for _, child := range def.Children() {
			if child.Name() != "stop" {
				continue
			}
			if raw, ok := child.Get("stop-color"); ok {
				if c, ok := parseColor(raw); ok {
					stops[id] = c
				}
			}
			break
		}
	}
	return stops
}
