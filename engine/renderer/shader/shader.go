package shader

import (
	"errors"
	"fmt"

	"github.com/cogentcore/webgpu/wgpu"
)

var (
	// ErrMissingEntryPoint is returned when a render shader lacks a @vertex or @fragment function.
	ErrMissingEntryPoint = errors.New("shader: missing entry point")
	// ErrUnsupportedVertexType is returned when a vertex input member has no matching vertex format.
	ErrUnsupportedVertexType = errors.New("shader: unsupported vertex attribute type")
)

// shader is the implementation of the Shader interface.
// It holds everything parsed from a single WGSL module that pipeline creation needs.
type shader struct {
	key                        string
	source                     string
	vertexEntryPoint           string
	fragmentEntryPoint         string
	vertexLayouts              []wgpu.VertexBufferLayout
	bindGroupLayoutDescriptors map[int]wgpu.BindGroupLayoutDescriptor
	bindingVarNames            map[int]map[int]string
	module                     *wgpu.ShaderModuleDescriptor
}

// Shader is a parsed WGSL render module holding both a vertex and a fragment entry point.
// Vertex buffer layouts and bind group layouts are derived from the source so the pipeline
// never has to restate them by hand.
type Shader interface {
	// Key retrieves the unique identifier for this shader, used as a GPU label.
	//
	// Returns:
	//   - string: the shader's unique key
	Key() string

	// Source retrieves the WGSL shader source code.
	//
	// Returns:
	//   - string: the WGSL source code of the shader
	Source() string

	// VertexEntryPoint returns the name of the @vertex function.
	VertexEntryPoint() string

	// FragmentEntryPoint returns the name of the @fragment function.
	FragmentEntryPoint() string

	// VertexLayouts returns one vertex buffer layout per vertex input struct, in source order.
	//
	// Returns:
	//   - []wgpu.VertexBufferLayout: the parsed layouts
	VertexLayouts() []wgpu.VertexBufferLayout

	// BindGroupLayoutDescriptors retrieves all parsed bind group layout descriptors keyed by group index.
	// Every entry is visible to both the vertex and fragment stages.
	//
	// Returns:
	//   - map[int]wgpu.BindGroupLayoutDescriptor: descriptors keyed by group index
	BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor

	// BindGroupVarName retrieves the variable name declared at a group and binding.
	//
	// Parameters:
	//   - group: the bind group index
	//   - binding: the binding index within the group
	//
	// Returns:
	//   - string: the variable name, or an empty string if not found
	BindGroupVarName(group, binding int) string

	// BindGroupFromVarName retrieves the binding index of a variable within a group.
	//
	// Parameters:
	//   - group: the bind group index
	//   - varName: the variable name within the group
	//
	// Returns:
	//   - int: the binding index, or -1 if not found
	//   - bool: true if the variable name was found
	BindGroupFromVarName(group int, varName string) (int, bool)

	// Module returns the shader module descriptor built from the source.
	//
	// Returns:
	//   - *wgpu.ShaderModuleDescriptor: the descriptor containing the WGSL code and label
	Module() *wgpu.ShaderModuleDescriptor
}

var _ Shader = &shader{}

// NewShader parses a WGSL render module.
//
// Parameters:
//   - key: a unique identifier for the shader, used for labels
//   - source: the WGSL source containing one @vertex and one @fragment function
//
// Returns:
//   - Shader: the parsed shader
//   - error: ErrMissingEntryPoint if either entry point is absent, ErrUnsupportedVertexType for
//     a vertex input member that cannot be a vertex attribute
func NewShader(key, source string) (Shader, error) {
	cleaned := stripComments(source)
	s := &shader{
		key:                key,
		source:             source,
		vertexEntryPoint:   parseEntryPoint(cleaned, vertexEntryRegex),
		fragmentEntryPoint: parseEntryPoint(cleaned, fragmentEntryRegex),
		module: &wgpu.ShaderModuleDescriptor{
			Label: key,
			WGSLDescriptor: &wgpu.ShaderModuleWGSLDescriptor{
				Code: source,
			},
		},
	}
	if s.vertexEntryPoint == "" || s.fragmentEntryPoint == "" {
		return nil, fmt.Errorf("%s: %w", key, ErrMissingEntryPoint)
	}

	structs := parseStructBlocks(cleaned)
	layouts, err := parseVertexLayouts(structs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", key, err)
	}
	s.vertexLayouts = layouts
	s.bindGroupLayoutDescriptors, s.bindingVarNames = parseBindGroupLayouts(cleaned, structs, wgpu.ShaderStageVertex|wgpu.ShaderStageFragment)
	return s, nil
}

func (s *shader) Key() string {
	return s.key
}

func (s *shader) Source() string {
	return s.source
}

func (s *shader) VertexEntryPoint() string {
	return s.vertexEntryPoint
}

func (s *shader) FragmentEntryPoint() string {
	return s.fragmentEntryPoint
}

func (s *shader) VertexLayouts() []wgpu.VertexBufferLayout {
	return s.vertexLayouts
}

func (s *shader) BindGroupLayoutDescriptors() map[int]wgpu.BindGroupLayoutDescriptor {
	return s.bindGroupLayoutDescriptors
}

func (s *shader) BindGroupVarName(group, binding int) string {
	return s.bindingVarNames[group][binding]
}

func (s *shader) BindGroupFromVarName(group int, varName string) (int, bool) {
	for binding, name := range s.bindingVarNames[group] {
		if name == varName {
			return binding, true
		}
	}
	return -1, false
}

func (s *shader) Module() *wgpu.ShaderModuleDescriptor {
	return s.module
}
