package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-recursive-raytracer/pkg/core"
	"github.com/df07/go-recursive-raytracer/pkg/geometry"
	"github.com/df07/go-recursive-raytracer/pkg/integrator"
	"github.com/df07/go-recursive-raytracer/pkg/material"
	"github.com/df07/go-recursive-raytracer/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	FrontFace    bool                   `json:"frontFace"`
	Properties   map[string]interface{} `json:"properties"`
}

// extractMaterialInfo extracts detailed material information with type assertions
func extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = toArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = toArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		return "metal", properties

	default:
		return "unknown", properties
	}
}

// extractGeometryInfo extracts detailed geometry information
func extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = toArray(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	default:
		return "unknown", properties
	}
}

// InspectResult contains information about the object hit by an inspection ray
type InspectResult struct {
	Hit       bool
	HitRecord *material.HitRecord // Hit record with material reference
	Shape     geometry.Shape      // The shape that was hit
}

// inspectPixel casts an unjittered ray through pixel (pixelX, pixelY), row 0 at the top,
// and returns the nearest object it hits
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResult {
	width, height := sceneObj.SamplingConfig.Width, sceneObj.SamplingConfig.Height
	u := float64(pixelX) / float64(max(width-1, 1))
	v := float64(height-1-pixelY) / float64(max(height-1, 1))
	ray := sceneObj.Camera.GetRay(u, v)

	hit, isHit := sceneObj.World.Hit(ray, integrator.ShadowAcneEpsilon, math.Inf(1))
	if !isHit {
		return InspectResult{Hit: false}
	}

	// The list does not report which shape produced the hit; find it by distance
	for _, shape := range sceneObj.World.Shapes {
		if shapeHit, shapeIsHit := shape.Hit(ray, integrator.ShadowAcneEpsilon, hit.T+integrator.ShadowAcneEpsilon); shapeIsHit {
			if shapeHit.T == hit.T {
				return InspectResult{Hit: true, HitRecord: hit, Shape: shape}
			}
		}
	}

	return InspectResult{Hit: true, HitRecord: hit}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	if !requireGet(w, r) {
		return
	}

	req, err := parseRenderRequest(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}

	sceneObj, err := s.createScene(req.Scene)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	sceneObj.ApplySamplingOverrides(core.SamplingConfig{Width: req.Width, Height: req.Height})

	width, height := sceneObj.SamplingConfig.Width, sceneObj.SamplingConfig.Height
	if pixelX < 0 || pixelX >= width || pixelY < 0 || pixelY >= height {
		writeError(w, http.StatusBadRequest,
			fmt.Sprintf("Pixel (%d, %d) outside the %dx%d image", pixelX, pixelY, width, height))
		return
	}

	result := inspectPixel(sceneObj, pixelX, pixelY)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	materialType, materialProps := extractMaterialInfo(result.HitRecord.Material)
	geometryType, geometryProps := extractGeometryInfo(result.Shape)

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        toArray(result.HitRecord.Point),
		Normal:       toArray(result.HitRecord.Normal),
		Distance:     result.HitRecord.Point.Subtract(sceneObj.Camera.Origin()).Length(),
		FrontFace:    result.HitRecord.FrontFace,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	})
}

func toArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Vec3) string {
	c = c.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}
