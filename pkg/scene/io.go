package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/integrator"
	"github.com/df07/go-recursive-raytracer/pkg/material"
)

// Material type names used in scene files
const (
	MaterialLambertian = "lambertian"
	MaterialMetal      = "metal"
)

// File is the JSON form of a scene. Materials are declared once by name and
// shared by every sphere that references them.
type File struct {
	Name        string                  `json:"name,omitempty"`
	Description string                  `json:"description,omitempty"`
	Group       string                  `json:"group,omitempty"`
	Sampling    *FileSampling           `json:"sampling,omitempty"`
	Camera      *FileCamera             `json:"camera,omitempty"`
	Background  *FileBackground         `json:"background,omitempty"`
	Materials   map[string]FileMaterial `json:"materials"`
	Spheres     []FileSphere            `json:"spheres"`
}

// FileSampling overrides the default sampling configuration
type FileSampling struct {
	Width           int `json:"width,omitempty"`
	Height          int `json:"height,omitempty"`
	SamplesPerPixel int `json:"samplesPerPixel,omitempty"`
	MaxDepth        int `json:"maxDepth,omitempty"`
}

// FileCamera overrides the default camera configuration
type FileCamera struct {
	Center         *[3]float64 `json:"center,omitempty"`
	ViewportHeight float64     `json:"viewportHeight,omitempty"`
	FocalLength    float64     `json:"focalLength,omitempty"`
}

// FileBackground overrides the sky gradient
type FileBackground struct {
	Top    [3]float64 `json:"top"`
	Bottom [3]float64 `json:"bottom"`
}

// FileMaterial describes one named material
type FileMaterial struct {
	Type   string     `json:"type"`
	Albedo [3]float64 `json:"albedo"`
}

// FileSphere describes one sphere
type FileSphere struct {
	Center   [3]float64 `json:"center"`
	Radius   float64    `json:"radius"`
	Material string     `json:"material"`
}

// Load reads a Scene from a JSON file.
// A scene without a name is named after the file.
func Load(path string) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	file, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode scene %s: %w", path, err)
	}
	if file.Name == "" {
		file.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return file.Build()
}

// Decode parses the JSON form of a scene without building it
func Decode(r io.Reader) (*File, error) {
	var file File
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&file); err != nil {
		return nil, err
	}
	return &file, nil
}

// Build turns a decoded scene file into a renderable Scene
func (f *File) Build() (*Scene, error) {
	samplingConfig := core.DefaultSamplingConfig()
	if f.Sampling != nil {
		samplingConfig = core.MergeSamplingConfig(samplingConfig, core.SamplingConfig{
			Width:           f.Sampling.Width,
			Height:          f.Sampling.Height,
			SamplesPerPixel: f.Sampling.SamplesPerPixel,
			MaxDepth:        f.Sampling.MaxDepth,
		})
	}
	if err := validateSampling(samplingConfig); err != nil {
		return nil, err
	}

	cameraConfig := geometry.DefaultCameraConfig()
	cameraConfig.AspectRatio = samplingConfig.AspectRatio()
	if f.Camera != nil {
		override := geometry.CameraConfig{
			ViewportHeight: f.Camera.ViewportHeight,
			FocalLength:    f.Camera.FocalLength,
		}
		if f.Camera.Center != nil {
			override.Center = vec3From(*f.Camera.Center)
		}
		cameraConfig = geometry.MergeCameraConfig(cameraConfig, override)
	}

	s := NewScene(f.Name, cameraConfig, samplingConfig)
	if f.Background != nil {
		s.Background = integrator.Background{
			TopColor:    vec3From(f.Background.Top),
			BottomColor: vec3From(f.Background.Bottom),
		}
	}

	materials := make(map[string]material.Material, len(f.Materials))
	for name, entry := range f.Materials {
		mat, err := entry.build()
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", name, err)
		}
		materials[name] = mat
	}

	for i, sphere := range f.Spheres {
		mat, ok := materials[sphere.Material]
		if !ok {
			return nil, fmt.Errorf("sphere %d: unknown material %q", i, sphere.Material)
		}
		if sphere.Radius == 0 {
			return nil, fmt.Errorf("sphere %d: radius must be non-zero", i)
		}
		s.AddSphere(vec3From(sphere.Center), sphere.Radius, mat)
	}

	return s, nil
}

func (m FileMaterial) build() (material.Material, error) {
	albedo := vec3From(m.Albedo)
	switch m.Type {
	case MaterialLambertian:
		return material.NewLambertian(albedo), nil
	case MaterialMetal:
		return material.NewMetal(albedo), nil
	default:
		return nil, fmt.Errorf("unknown material type %q", m.Type)
	}
}

// Save writes a Scene to a JSON file.
func Save(path string, s *Scene) error {
	file, err := ToFile(s)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create scene: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("encode scene: %w", err)
	}
	return nil
}

// ToFile converts a Scene to its JSON form. Materials shared between spheres
// stay shared: each distinct material instance gets one named entry.
func ToFile(s *Scene) (*File, error) {
	center := toArray(s.CameraConfig.Center)
	file := &File{
		Name: s.Name,
		Sampling: &FileSampling{
			Width:           s.SamplingConfig.Width,
			Height:          s.SamplingConfig.Height,
			SamplesPerPixel: s.SamplingConfig.SamplesPerPixel,
			MaxDepth:        s.SamplingConfig.MaxDepth,
		},
		Camera: &FileCamera{
			Center:         &center,
			ViewportHeight: s.CameraConfig.ViewportHeight,
			FocalLength:    s.CameraConfig.FocalLength,
		},
		Background: &FileBackground{
			Top:    toArray(s.Background.TopColor),
			Bottom: toArray(s.Background.BottomColor),
		},
		Materials: make(map[string]FileMaterial),
	}

	names := make(map[material.Material]string)
	for i, shape := range s.World.Shapes {
		sphere, ok := shape.(*geometry.Sphere)
		if !ok {
			return nil, fmt.Errorf("shape %d: cannot serialize %T", i, shape)
		}

		name, seen := names[sphere.Material]
		if !seen {
			entry, err := fileMaterialFor(sphere.Material)
			if err != nil {
				return nil, fmt.Errorf("shape %d: %w", i, err)
			}
			name = fmt.Sprintf("material-%d", len(names))
			names[sphere.Material] = name
			file.Materials[name] = entry
		}

		file.Spheres = append(file.Spheres, FileSphere{
			Center:   toArray(sphere.Center),
			Radius:   sphere.Radius,
			Material: name,
		})
	}

	return file, nil
}

func fileMaterialFor(mat material.Material) (FileMaterial, error) {
	switch m := mat.(type) {
	case *material.Lambertian:
		return FileMaterial{Type: MaterialLambertian, Albedo: toArray(m.Albedo)}, nil
	case *material.Metal:
		return FileMaterial{Type: MaterialMetal, Albedo: toArray(m.Albedo)}, nil
	default:
		return FileMaterial{}, fmt.Errorf("cannot serialize material %T", mat)
	}
}

func validateSampling(c core.SamplingConfig) error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("image size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.SamplesPerPixel <= 0 {
		return fmt.Errorf("samples per pixel must be positive, got %d", c.SamplesPerPixel)
	}
	if c.MaxDepth <= 0 {
		return fmt.Errorf("max depth must be positive, got %d", c.MaxDepth)
	}
	return nil
}

func vec3From(a [3]float64) core.Vec3 {
	return core.NewVec3(a[0], a[1], a[2])
}

func toArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}
