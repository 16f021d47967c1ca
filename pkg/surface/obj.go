package surface

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ReadOBJ parses a minimal Wavefront OBJ stream: "v" vertex positions and
// "f" polygonal faces. Texture and normal references in face records
// (v/vt/vn forms) are ignored; negative indices are resolved relative to the
// vertices read so far, as the format specifies.
func ReadOBJ(r io.Reader) (*Mesh, error) {
	var (
		positions []mgl32.Vec3
		faces     [][]int
	)

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: vertex needs 3 coordinates", lineNo)
			}
			var v mgl32.Vec3
			for i := 0; i < 3; i++ {
				f, err := strconv.ParseFloat(fields[i+1], 32)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				v[i] = float32(f)
			}
			positions = append(positions, v)

		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 vertices", lineNo)
			}
			face := make([]int, 0, len(fields)-1)
			for _, ref := range fields[1:] {
				// Only the position index before the first slash matters.
				if i := strings.IndexByte(ref, '/'); i >= 0 {
					ref = ref[:i]
				}
				idx, err := strconv.Atoi(ref)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				if idx < 0 {
					idx = len(positions) + idx
				} else {
					idx--
				}
				face = append(face, idx)
			}
			faces = append(faces, face)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	if len(faces) == 0 {
		return nil, fmt.Errorf("no faces found")
	}

	return New(positions, faces)
}

// LoadOBJ reads a mesh from an OBJ file.
func LoadOBJ(path string) (*Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := ReadOBJ(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return m, nil
}
