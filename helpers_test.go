package iconbake

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// cubeOBJ is a 2x2x2 cube centered on the origin with outward quads.
const cubeOBJ = `# cube
v -1 -1 -1
v 1 -1 -1
v 1 1 -1
v -1 1 -1
v -1 -1 1
v 1 -1 1
v 1 1 1
v -1 1 1
f 1 4 3 2
f 5 6 7 8
f 1 2 6 5
f 3 4 8 7
f 2 3 7 6
f 4 1 5 8
`

func cubeMesh(t *testing.T) *Mesh {
	t.Helper()
	mesh, err := LoadOBJFromReader(strings.NewReader(cubeOBJ))
	require.NoError(t, err)
	return mesh
}

// boxMesh is the cube stretched to the given size.
func boxMesh(t *testing.T, size Vector) *Mesh {
	mesh := cubeMesh(t)
	mesh.Transform(Scale(size.DivScalar(2)))
	return mesh
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func vectorsEqual(t *testing.T, want, got Vector) {
	t.Helper()
	require.InDelta(t, want.X, got.X, 1e-9, "X of %v", got)
	require.InDelta(t, want.Y, got.Y, 1e-9, "Y of %v", got)
	require.InDelta(t, want.Z, got.Z, 1e-9, "Z of %v", got)
}
