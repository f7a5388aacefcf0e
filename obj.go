package iconbake

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

func LoadOBJ(path string) (*Mesh, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return LoadOBJFromReader(file)
}

func LoadOBJFromBytes(b []byte) (*Mesh, error) {
	return LoadOBJFromReader(bytes.NewReader(b))
}

// LoadOBJFromReader reads positions, texture coordinates, normals and
// faces. Polygons are fanned into triangles; other statements are ignored.
func LoadOBJFromReader(r io.Reader) (*Mesh, error) {
	vs := make([]Vector, 1, 1024)
	vts := make([]Vector, 1, 1024)
	vns := make([]Vector, 1, 1024)

	var triangles []*Triangle
	scanner := bufio.NewScanner(r)
	lineNo := 0

	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if len(line) < 2 || line[0] == '#' {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v", "vn":
			if len(fields) < 4 {
				return nil, fmt.Errorf("obj: line %d: %q needs 3 components", lineNo, fields[0])
			}
			v, err := parseVector(fields[1:4])
			if err != nil {
				return nil, fmt.Errorf("obj: line %d: %w", lineNo, err)
			}
			if fields[0] == "v" {
				vs = append(vs, v)
			} else {
				vns = append(vns, v)
			}
		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("obj: line %d: vt needs 2 components", lineNo)
			}
			v, err := parseVector([]string{fields[1], fields[2], "0"})
			if err != nil {
				return nil, fmt.Errorf("obj: line %d: %w", lineNo, err)
			}
			vts = append(vts, v)
		case "f":
			args := fields[1:]
			if len(args) < 3 {
				return nil, fmt.Errorf("obj: line %d: face needs at least 3 vertices", lineNo)
			}
			fvs := make([]int, len(args))
			fvts := make([]int, len(args))
			fvns := make([]int, len(args))

			for i, arg := range args {
				vertex := strings.Split(arg+"//", "/")
				fvs[i] = fixIndex(vertex[0], len(vs))
				fvts[i] = fixIndex(vertex[1], len(vts))
				fvns[i] = fixIndex(vertex[2], len(vns))
				if fvs[i] <= 0 || fvs[i] >= len(vs) || fvts[i] < 0 || fvts[i] >= len(vts) || fvns[i] < 0 || fvns[i] >= len(vns) {
					return nil, fmt.Errorf("obj: line %d: index out of range in %q", lineNo, arg)
				}
			}

			for i := 1; i < len(fvs)-1; i++ {
				t := &Triangle{}
				i1, i2, i3 := 0, i, i+1

				t.V1.Position = vs[fvs[i1]]
				t.V2.Position = vs[fvs[i2]]
				t.V3.Position = vs[fvs[i3]]

				if fvns[i1] > 0 && fvns[i2] > 0 && fvns[i3] > 0 {
					t.V1.Normal = vns[fvns[i1]]
					t.V2.Normal = vns[fvns[i2]]
					t.V3.Normal = vns[fvns[i3]]
				}
				if fvts[i1] > 0 && fvts[i2] > 0 && fvts[i3] > 0 {
					t.V1.Texture = vts[fvts[i1]]
					t.V2.Texture = vts[fvts[i2]]
					t.V3.Texture = vts[fvts[i3]]
				}

				t.FixNormals()
				triangles = append(triangles, t)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return NewTriangleMesh(triangles), nil
}

func parseVector(fields []string) (Vector, error) {
	var f [3]float64
	for i, s := range fields {
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Vector{}, err
		}
		f[i] = v
	}
	return Vector{f[0], f[1], f[2]}, nil
}

// fixIndex resolves negative (relative) OBJ indices against the number of
// elements read so far. Missing indices become 0.
func fixIndex(value string, length int) int {
	if value == "" {
		return 0
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return -1
	}
	if parsed < 0 {
		return parsed + length
	}
	return parsed
}
