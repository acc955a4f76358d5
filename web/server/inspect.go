package server

import (
	"fmt"
	"math"
	"net/http"
	"strconv"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/material"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// inspectTMin matches the integrator's self-intersection offset
const inspectTMin = 0.001

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

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(v core.Vec3) string {
	c := v.Clamp(0, 1)
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// extractTextureInfo describes a color source
func extractTextureInfo(cs material.ColorSource) map[string]interface{} {
	switch t := cs.(type) {
	case *material.SolidColor:
		return map[string]interface{}{"type": "solid", "color": hexColor(t.Color), "value": vecArray(t.Color)}
	case *material.CheckerTexture:
		return map[string]interface{}{"type": "checker", "odd": extractTextureInfo(t.Odd), "even": extractTextureInfo(t.Even)}
	case *material.NoiseTexture:
		return map[string]interface{}{"type": "noise", "scale": t.Scale}
	case *material.ImageTexture:
		return map[string]interface{}{"type": "image", "width": t.Width, "height": t.Height}
	default:
		return map[string]interface{}{"type": "unknown"}
	}
}

// extractMaterialInfo extracts detailed material information with type assertions
func (s *Server) extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case *material.Lambertian:
		properties["albedo"] = extractTextureInfo(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = vecArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		properties["fuzzness"] = m.Fuzzness
		return "metal", properties

	case *material.Dielectric:
		properties["refractiveIndex"] = m.RefractiveIndex
		properties["color"] = "#ffffff" // Clear glass
		return "dielectric", properties

	case *material.DiffuseLight:
		properties["emission"] = extractTextureInfo(m.Emit)
		return "diffuse_light", properties

	case *material.Isotropic:
		properties["albedo"] = extractTextureInfo(m.Albedo)
		return "isotropic", properties

	default:
		return "unknown", properties
	}
}

// extractGeometryInfo extracts detailed geometry information, descending through instance wrappers
func (s *Server) extractGeometryInfo(object geometry.Hittable) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := object.(type) {
	case *geometry.Sphere:
		properties["center"] = vecArray(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.MovingSphere:
		properties["center0"] = vecArray(geom.Center0)
		properties["center1"] = vecArray(geom.Center1)
		properties["time0"] = geom.Time0
		properties["time1"] = geom.Time1
		properties["radius"] = geom.Radius
		return "moving_sphere", properties

	case *geometry.AxisRect:
		properties["plane"] = [...]string{"yz", "xz", "xy"}[geom.Axis()]
		properties["range"] = [4]float64{geom.A0, geom.A1, geom.B0, geom.B1}
		properties["k"] = geom.K
		return "rect", properties

	case *geometry.Box:
		properties["min"] = vecArray(geom.Min)
		properties["max"] = vecArray(geom.Max)
		return "box", properties

	case *geometry.Translate:
		properties["offset"] = vecArray(geom.Offset)
		properties["child"] = s.childInfo(geom.Object)
		return "translate", properties

	case *geometry.RotateY:
		properties["degrees"] = geom.Degrees
		properties["child"] = s.childInfo(geom.Object)
		return "rotate_y", properties

	case *geometry.ConstantMedium:
		properties["boundary"] = s.childInfo(geom.Boundary)
		return "constant_medium", properties

	case *geometry.BVHNode:
		stats := geom.Stats()
		properties["objects"] = stats.LeafObjects
		properties["maxDepth"] = stats.MaxDepth
		properties["boundingBox"] = map[string]interface{}{
			"min": vecArray(geom.Box.Min),
			"max": vecArray(geom.Box.Max),
		}
		return "bvh", properties

	default:
		return "unknown", properties
	}
}

func (s *Server) childInfo(object geometry.Hittable) map[string]interface{} {
	childType, childProps := s.extractGeometryInfo(object)
	return map[string]interface{}{"type": childType, "properties": childProps}
}

// InspectResult contains information about the object hit by an inspection ray
type InspectResult struct {
	Hit       bool
	HitRecord *material.HitRecord
	Object    geometry.Hittable // Top-level scene object that was hit, nil if not identified
}

// inspectPixel casts a ray through the center of a pixel and reports the first object hit.
// The scene must already be preprocessed.
func inspectPixel(sceneObj *scene.Scene, pixelX, pixelY int) InspectResult {
	width := sceneObj.SamplingConfig.Width
	height := sceneObj.SamplingConfig.Height

	// Pixel centers, with row 0 at the top of the image
	u := (float64(pixelX) + 0.5) / float64(width)
	v := (float64(height-1-pixelY) + 0.5) / float64(height)

	// A fixed seed gives the same lens offset, shutter time and medium samples on every request
	sampler := core.NewSeededSampler(0)
	ray := sceneObj.Camera.GetRay(u, v, sampler)

	hit, isHit := sceneObj.World().Hit(ray, inspectTMin, math.Inf(1), sampler)
	if !isHit {
		return InspectResult{Hit: false}
	}

	// The BVH returns only the hit record, so find which object produced it
	for _, object := range sceneObj.Objects {
		objectHit, ok := object.Hit(ray, inspectTMin, hit.T+inspectTMin, core.NewSeededSampler(0))
		if ok && math.Abs(objectHit.T-hit.T) < 1e-9 && objectHit.Material == hit.Material {
			return InspectResult{Hit: true, HitRecord: hit, Object: object}
		}
	}

	return InspectResult{Hit: true, HitRecord: hit}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	inspectReq := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, inspectReq); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid scene parameters: " + err.Error()})
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid x coordinate"})
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Invalid y coordinate"})
		return
	}

	sceneObj, err := s.createScene(inspectReq, nil)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	if pixelX < 0 || pixelX >= sceneObj.SamplingConfig.Width || pixelY < 0 || pixelY >= sceneObj.SamplingConfig.Height {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "Pixel coordinates out of bounds"})
		return
	}

	if err := sceneObj.Preprocess(nil); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	result := inspectPixel(sceneObj, pixelX, pixelY)
	if !result.Hit {
		writeJSON(w, http.StatusOK, InspectResponse{Hit: false})
		return
	}

	materialType, materialProps := s.extractMaterialInfo(result.HitRecord.Material)
	geometryType, geometryProps := "unknown", map[string]interface{}{}
	if result.Object != nil {
		geometryType, geometryProps = s.extractGeometryInfo(result.Object)
	}

	writeJSON(w, http.StatusOK, InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        vecArray(result.HitRecord.Point),
		Normal:       vecArray(result.HitRecord.Normal),
		Distance:     result.HitRecord.T,
		FrontFace:    result.HitRecord.FrontFace,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	})
}
