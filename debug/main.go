package main

import (
	"fmt"
	"log"
	"os"

	"github.com/netisu/iconbake"
)

// Prints mesh stats and the scale standardization would apply.
func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: debug <mesh file> [front plane]")
	}
	path := os.Args[1]
	plane := iconbake.PlaneXY
	if len(os.Args) > 2 {
		plane = iconbake.FrontPlane(os.Args[2])
	}

	fmt.Println("--- STARTING DEBUG ---")
	mesh, err := iconbake.LoadMesh(path)
	if err != nil {
		log.Fatal(err)
	}

	box := mesh.BoundingBox()
	center := box.Center()

	fmt.Printf("--- MESH STATS ---\n")
	fmt.Printf("Triangles: %d\n", len(mesh.Triangles))
	fmt.Printf("Bounding Box Min: %+v\n", box.Min)
	fmt.Printf("Bounding Box Max: %+v\n", box.Max)
	fmt.Printf("Bounding Box Center: %+v\n", center)

	dims := iconbake.DimensionsOf(box.Corners())
	fmt.Printf("Dimensions: %+v\n", dims)
	factor, err := iconbake.ScaleFactor(dims, plane, iconbake.DefaultRenderSettings().TargetSize)
	if err != nil {
		fmt.Printf("Mesh cannot be standardized: %v\n", err)
		return
	}
	fmt.Printf("Scale factor (%s): %.4f\n", plane, factor)
}
