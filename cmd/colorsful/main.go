// Colorsful - a colour-space layout engine for music video catalogs
//
// Colorsful places a catalog of videos on a colour wheel or inside a logo
// silhouette, synthesises a nebula colour field from the layout and orders
// the catalog for a perceptual grid view.
package main

import (
	"github.com/colorsful/colorsful/internal/cli"
)

func main() {
	cli.Execute()
}
