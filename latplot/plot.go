/*
 * plot.go, part of golattice.
 *
 * Copyright 2026 The golattice Authors
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

//Package latplot draws 2D projections of populated lattices with gonum/plot.
package latplot

import (
	"fmt"
	"strings"

	lattice "github.com/rmera/golattice"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

//Plane is the plane on which the sites are projected.
type Plane int

const (
	XY Plane = iota
	XZ
	YZ
)

var planeAxes = [...][2]int{XY: {0, 1}, XZ: {0, 2}, YZ: {1, 2}}

func (p Plane) valid() bool {
	return p >= XY && p <= YZ
}

func (p Plane) String() string {
	if !p.valid() {
		return fmt.Sprintf("Plane(%d)", int(p))
	}
	return [...]string{"xy", "xz", "yz"}[p]
}

//ParsePlane returns the plane named s ("xy", "xz" or "yz", case-insensitive).
func ParsePlane(s string) (Plane, error) {
	switch strings.ToLower(s) {
	case "xy", "":
		return XY, nil
	case "xz":
		return XZ, nil
	case "yz":
		return YZ, nil
	}
	return XY, fmt.Errorf("latplot: unknown plane %q, use xy, xz or yz", s)
}

//Options controls the look of a projection.
type Options struct {
	Title string
	Plane Plane
	//Size is the width and height of the image, in centimeters. 12 if not set.
	Size float64
	//Cell draws the edges of the periodic cell.
	Cell bool
}

//Projection returns a plot of the sites of P projected on the given plane, with one
//series per basis label.
func Projection(P *lattice.Populated, o Options) (*plot.Plot, error) {
	if P == nil || P.Len() == 0 {
		return nil, fmt.Errorf("latplot: nothing to plot")
	}
	if !o.Plane.valid() {
		return nil, fmt.Errorf("latplot: unknown plane %v", o.Plane)
	}
	ax := planeAxes[o.Plane]
	p := plot.New()
	p.Title.Text = o.Title
	if p.Title.Text == "" {
		p.Title.Text = fmt.Sprintf("%s %dx%dx%d", P.Name, P.Repeats[0], P.Repeats[1], P.Repeats[2])
	}
	p.Title.Padding = 3 * vg.Millimeter
	names := [3]string{"x", "y", "z"}
	p.X.Label.Text = names[ax[0]]
	p.Y.Label.Text = names[ax[1]]
	p.Add(plotter.NewGrid())
	//labels in the order of first appearance, which is the basis order
	var labels []string
	series := make(map[string]plotter.XYs)
	for _, s := range P.Sites {
		if _, ok := series[s.Label]; !ok {
			labels = append(labels, s.Label)
		}
		series[s.Label] = append(series[s.Label], plotter.XY{X: s.Position[ax[0]], Y: s.Position[ax[1]]})
	}
	for i, l := range labels {
		sc, err := plotter.NewScatter(series[l])
		if err != nil {
			return nil, err
		}
		sc.GlyphStyle.Color = labelColor(i, len(labels))
		sc.GlyphStyle.Shape = draw.CircleGlyph{}
		sc.GlyphStyle.Radius = vg.Points(3)
		p.Add(sc)
		p.Legend.Add(l, sc)
	}
	if o.Cell {
		edges, err := cellEdges(P.Cell, ax)
		if err != nil {
			return nil, err
		}
		p.Add(edges...)
	}
	return p, nil
}

//cellEdges returns the 12 edges of the cell projected on the plane of the axes ax.
func cellEdges(cell *lattice.Spec, ax [2]int) ([]plot.Plotter, error) {
	corner := func(c int) plotter.XY {
		v := cell.Cartesian([3]float64{float64(c & 1), float64((c >> 1) & 1), float64((c >> 2) & 1)})
		return plotter.XY{X: v[ax[0]], Y: v[ax[1]]}
	}
	ret := make([]plot.Plotter, 0, 12)
	for c := 0; c < 8; c++ {
		for bit := 1; bit < 8; bit <<= 1 {
			if c&bit != 0 {
				continue
			}
			l, err := plotter.NewLine(plotter.XYs{corner(c), corner(c | bit)})
			if err != nil {
				return nil, err
			}
			l.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(2)}
			ret = append(ret, l)
		}
	}
	return ret, nil
}

//Save draws the projection of P and saves it to filename. The format is taken
//from the extension (png, svg, pdf, eps, jpg or tiff).
func Save(P *lattice.Populated, o Options, filename string) error {
	p, err := Projection(P, o)
	if err != nil {
		return err
	}
	size := o.Size
	if size <= 0 {
		size = 12
	}
	return p.Save(vg.Length(size)*vg.Centimeter, vg.Length(size)*vg.Centimeter, filename)
}
