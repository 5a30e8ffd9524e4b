package server

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/df07/go-progressive-raycaster/pkg/core"
	"github.com/df07/go-progressive-raycaster/pkg/geometry"
	"github.com/df07/go-progressive-raycaster/pkg/material"
	"github.com/df07/go-progressive-raycaster/pkg/renderer"
	"github.com/df07/go-progressive-raycaster/pkg/scene"
)

// InspectResponse represents the JSON response for object inspection
type InspectResponse struct {
	Hit          bool                   `json:"hit"`
	MaterialType string                 `json:"materialType"`
	GeometryType string                 `json:"geometryType"`
	Point        [3]float64             `json:"point"`
	Normal       [3]float64             `json:"normal"`
	Distance     float64                `json:"distance"`
	StepCount    int                    `json:"stepCount"`
	Properties   map[string]interface{} `json:"properties"`
}

// InspectResult contains information about the object hit by an inspection ray
type InspectResult struct {
	Hit       bool
	HitRecord *material.HitRecord
	Shape     geometry.Shape
}

func vecArray(v core.Vec3) [3]float64 {
	return [3]float64{v.X, v.Y, v.Z}
}

func hexColor(c core.Vec3) string {
	return fmt.Sprintf("#%02x%02x%02x", int(c.X*255), int(c.Y*255), int(c.Z*255))
}

// extractMaterialInfo describes the material a shape attached to its hit
func (s *Server) extractMaterialInfo(mat material.Material) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch m := mat.(type) {
	case nil:
		return "none", properties

	case *material.Lambertian:
		properties["albedo"] = vecArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		return "lambertian", properties

	case *material.Metal:
		properties["albedo"] = vecArray(m.Albedo)
		properties["color"] = hexColor(m.Albedo)
		return "metal", properties

	default:
		return "unknown", properties
	}
}

// extractGeometryInfo extracts detailed geometry information
func (s *Server) extractGeometryInfo(shape geometry.Shape) (string, map[string]interface{}) {
	properties := make(map[string]interface{})

	switch geom := shape.(type) {
	case *geometry.Sphere:
		properties["center"] = vecArray(geom.Center)
		properties["radius"] = geom.Radius
		return "sphere", properties

	case *geometry.StepSphere:
		properties["center"] = vecArray(geom.Center)
		properties["radius"] = geom.Radius
		properties["maxSteps"] = geometry.MaxMarchSteps
		return "step_sphere", properties

	case *geometry.Plane:
		properties["point"] = vecArray(geom.Point)
		properties["normal"] = vecArray(geom.Normal)
		return "plane", properties

	case *geometry.Box:
		properties["min"] = vecArray(geom.Min)
		properties["max"] = vecArray(geom.Max)
		properties["center"] = vecArray(geom.Center())
		return "box", properties

	default:
		return "unknown", properties
	}
}

// inspectPixel casts the unjittered ray through a pixel and returns the first object hit
func inspectPixel(sceneObj *scene.Scene, width, height, pixelX, pixelY int, orthogonal bool) InspectResult {
	rc := renderer.NewRayCaster(sceneObj, width, height, nil)
	rc.SetOrthogonal(orthogonal)
	config := rc.Config()

	hit, shape, isHit := sceneObj.HitShape(rc.CenterRay(pixelX, pixelY), config.TMin, config.TMax)
	if !isHit {
		return InspectResult{Hit: false}
	}
	return InspectResult{
		Hit:       true,
		HitRecord: hit,
		Shape:     shape,
	}
}

// handleInspect handles ray casting inspection requests
func (s *Server) handleInspect(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Access-Control-Allow-Origin", "*")

	inspectReq := &RenderRequest{}
	if err := s.parseCommonSceneParams(r, inspectReq); err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid scene parameters: "+err.Error())
		return
	}

	pixelX, err := strconv.Atoi(r.URL.Query().Get("x"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid x coordinate")
		return
	}
	pixelY, err := strconv.Atoi(r.URL.Query().Get("y"))
	if err != nil {
		writeJSONError(w, http.StatusBadRequest, "Invalid y coordinate")
		return
	}
	if pixelX < 0 || pixelX >= inspectReq.Width || pixelY < 0 || pixelY >= inspectReq.Height {
		writeJSONError(w, http.StatusBadRequest, "Pixel coordinates out of bounds")
		return
	}

	sceneObj := s.createScene(inspectReq.Scene)
	if sceneObj == nil {
		writeJSONError(w, http.StatusBadRequest, "Unknown scene: "+inspectReq.Scene)
		return
	}

	result := inspectPixel(sceneObj, inspectReq.Width, inspectReq.Height, pixelX, pixelY, inspectReq.Orthogonal)
	if !result.Hit {
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(InspectResponse{Hit: false})
		return
	}

	materialType, materialProps := s.extractMaterialInfo(result.HitRecord.Material)
	geometryType, geometryProps := s.extractGeometryInfo(result.Shape)

	response := InspectResponse{
		Hit:          true,
		MaterialType: materialType,
		GeometryType: geometryType,
		Point:        vecArray(result.HitRecord.Point),
		Normal:       vecArray(result.HitRecord.Normal),
		Distance:     result.HitRecord.T,
		StepCount:    result.HitRecord.StepCount,
		Properties: map[string]interface{}{
			"material": materialProps,
			"geometry": geometryProps,
		},
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(response)
}
