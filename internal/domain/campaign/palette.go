package campaign

import "sort"

// Palette is the fixed 21-color vendor palette.  The values are a rendering
// contract shared with the front end; changing them or their order recolors
// every published map.
var Palette = []string{
	"#e74c3c", "#3498db", "#f39c12", "#9b59b6", "#2ecc71",
	"#e67e22", "#1abc9c", "#34495e", "#f1c40f", "#e91e63",
	"#8bc34a", "#ff5722", "#607d8b", "#795548", "#ff9800",
	"#4caf50", "#673ab7", "#009688", "#ffeb3b", "#f44336",
	"#2196f3",
}

// ColorFor assigns a palette color to a vendor from its position in the
// sorted catalog.  Catalogs larger than the palette cycle; color collisions
// past 21 vendors are accepted.  The assignment depends only on catalog
// content, never on call order or discovery order.
//
// Vendors absent from the catalog violate the BuildIndex invariant; ColorFor
// returns "" for them rather than guessing.
func ColorFor(vendor string, catalog []string) string {
	i := sort.SearchStrings(catalog, vendor)
	if i >= len(catalog) || catalog[i] != vendor {
		return ""
	}
	return Palette[i%len(Palette)]
}
