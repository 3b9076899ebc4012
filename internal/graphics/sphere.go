package graphics

import (
	"math"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// GenerateSphere generates interleaved vertex data (position, normal,
// texcoord; 8 floats per vertex) and triangle indices for a unit-oriented
// UV sphere. Poles are on the Y axis, the seam on +X, so an equirectangular
// texture maps the way the old GLU quadric renderer did.
func GenerateSphere(radius float32, slices, stacks int) ([]float32, []uint32) {
	if slices <= 0 {
		slices = 32
	}
	if stacks <= 0 {
		stacks = 16
	}

	var vertices []float32
	var indices []uint32

	for stack := 0; stack <= stacks; stack++ {
		theta := float32(stack) * math.Pi / float32(stacks)
		sinTheta := float32(math.Sin(float64(theta)))
		cosTheta := float32(math.Cos(float64(theta)))

		for slice := 0; slice <= slices; slice++ {
			phi := float32(slice) * 2.0 * math.Pi / float32(slices)
			sinPhi := float32(math.Sin(float64(phi)))
			cosPhi := float32(math.Cos(float64(phi)))

			x := cosPhi * sinTheta
			y := cosTheta
			z := sinPhi * sinTheta

			vertices = append(vertices, x*radius, y*radius, z*radius)
			// Normal equals the unit position on a sphere
			vertices = append(vertices, x, y, z)

			u := float32(slice) / float32(slices)
			v := float32(stack) / float32(stacks)
			vertices = append(vertices, u, v)
		}
	}

	for stack := 0; stack < stacks; stack++ {
		for slice := 0; slice < slices; slice++ {
			current := uint32(stack*(slices+1) + slice)
			next := current + uint32(slices) + 1

			indices = append(indices, current, next, current+1)
			indices = append(indices, current+1, next, next+1)
		}
	}

	return vertices, indices
}

// SphereMesh is a sphere uploaded to GPU buffers
type SphereMesh struct {
	vao        uint32
	vbo        uint32
	ebo        uint32
	indexCount int32
}

// NewSphereMesh generates a sphere and uploads it into a VAO/VBO/EBO.
// Attribute layout: 0 = position, 1 = normal, 2 = texcoord.
func NewSphereMesh(radius float32, slices, stacks int) *SphereMesh {
	vertices, indices := GenerateSphere(radius, slices, stacks)

	m := &SphereMesh{indexCount: int32(len(indices))}

	gl.GenVertexArrays(1, &m.vao)
	gl.BindVertexArray(m.vao)

	gl.GenBuffers(1, &m.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, gl.Ptr(vertices), gl.STATIC_DRAW)

	gl.GenBuffers(1, &m.ebo)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(indices)*4, gl.Ptr(indices), gl.STATIC_DRAW)

	stride := int32(8 * 4)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 2, gl.FLOAT, false, stride, 6*4)

	gl.BindVertexArray(0)

	return m
}

// Draw renders the sphere. The caller is expected to have bound the shader
// and set all uniforms.
func (m *SphereMesh) Draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElementsWithOffset(gl.TRIANGLES, m.indexCount, gl.UNSIGNED_INT, 0)
}

// Release deletes the GL buffers
func (m *SphereMesh) Release() {
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}
