package renderer

import (
	"math"

	"github.com/YassinRamadan1/Software-RayTracer/pkg/core"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/geometry"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/material"
)

// hitEpsilon keeps secondary rays from re-hitting the surface they left
const hitEpsilon = 0.001

// CameraConfig describes the view and sampling parameters of a camera
type CameraConfig struct {
	ImageWidth      int       // Output width in pixels
	AspectRatio     float64   // Width over height
	VFov            float64   // Vertical field of view in degrees
	DefocusAngle    float64   // Aperture cone angle in degrees, 0 for a pinhole
	FocusDistance   float64   // Distance to the plane of perfect focus
	LookFrom        core.Vec3 // Camera position
	LookAt          core.Vec3 // Point the camera looks at
	Up              core.Vec3 // Approximate up direction
	SamplesPerPixel int       // Rays averaged per pixel
	MaxDepth        int       // Maximum number of bounces per path
	Background      core.Vec3 // Radiance returned by rays that escape the scene
}

// DefaultCameraConfig returns a pinhole camera looking down -Z
func DefaultCameraConfig() CameraConfig {
	return CameraConfig{
		ImageWidth:      400,
		AspectRatio:     16.0 / 9.0,
		VFov:            90,
		FocusDistance:   10,
		LookFrom:        core.NewVec3(0, 0, 0),
		LookAt:          core.NewVec3(0, 0, -1),
		Up:              core.NewVec3(0, 1, 0),
		SamplesPerPixel: 100,
		MaxDepth:        10,
		Background:      core.NewVec3(0.70, 0.80, 1.00),
	}
}

// Camera generates primary rays and estimates the radiance along them
type Camera struct {
	config CameraConfig

	imageHeight  int
	pixel00      core.Vec3 // Center of the bottom-left pixel
	deltaRight   core.Vec3 // Offset to the pixel on the right
	deltaUp      core.Vec3 // Offset to the pixel above
	front        core.Vec3 // Unit vector pointing away from the view direction
	right        core.Vec3
	up           core.Vec3
	defocusRight core.Vec3 // Defocus disk horizontal radius
	defocusUp    core.Vec3 // Defocus disk vertical radius
}

// NewCamera creates a camera and derives its viewport from config
func NewCamera(config CameraConfig) *Camera {
	c := &Camera{config: config}
	c.init()
	return c
}

// Configure replaces the camera configuration and recomputes the viewport
func (c *Camera) Configure(config CameraConfig) {
	c.config = config
	c.init()
}

// Config returns the active configuration
func (c *Camera) Config() CameraConfig {
	return c.config
}

// ImageWidth returns the output width in pixels
func (c *Camera) ImageWidth() int {
	return c.config.ImageWidth
}

// ImageHeight returns the output height in pixels, at least 1
func (c *Camera) ImageHeight() int {
	return c.imageHeight
}

func (c *Camera) init() {
	if c.config.ImageWidth < 1 {
		c.config.ImageWidth = 1
	}
	cfg := c.config

	c.imageHeight = int(float64(cfg.ImageWidth) / cfg.AspectRatio)
	if c.imageHeight < 1 {
		c.imageHeight = 1
	}

	h := math.Tan(core.DegreesToRadians(cfg.VFov)/2) * cfg.FocusDistance
	viewportHeight := 2 * h
	viewportWidth := viewportHeight * (float64(cfg.ImageWidth) / float64(c.imageHeight))

	c.front = cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	c.right = cfg.Up.Cross(c.front).Normalize()
	c.up = c.front.Cross(c.right)

	viewportRight := c.right.Multiply(viewportWidth)
	viewportUp := c.up.Multiply(viewportHeight)

	c.deltaRight = viewportRight.Divide(float64(cfg.ImageWidth))
	c.deltaUp = viewportUp.Divide(float64(c.imageHeight))

	// Viewport bottom-left corner, moved half a pixel inwards
	bottomLeft := cfg.LookFrom.
		Subtract(c.front.Multiply(cfg.FocusDistance)).
		Subtract(viewportUp.Multiply(0.5)).
		Subtract(viewportRight.Multiply(0.5))
	c.pixel00 = bottomLeft.Add(c.deltaRight.Add(c.deltaUp).Multiply(0.5))

	diskRadius := cfg.FocusDistance * math.Tan(core.DegreesToRadians(cfg.DefocusAngle)/2)
	c.defocusRight = c.right.Multiply(diskRadius)
	c.defocusUp = c.up.Multiply(diskRadius)
}

// GetRay returns a ray through a random point of pixel (i, j), where j = 0
// is the bottom row. The ray starts on the defocus disk when the aperture is
// open and carries a random shutter time.
func (c *Camera) GetRay(i, j int, sampler core.Sampler) core.Ray {
	offset := sampler.Get2D()
	pixelSample := c.pixel00.
		Add(c.deltaRight.Multiply(float64(i) + offset.X - 0.5)).
		Add(c.deltaUp.Multiply(float64(j) + offset.Y - 0.5))

	origin := c.config.LookFrom
	if c.config.DefocusAngle > 0 {
		origin = c.defocusDiskSample(sampler)
	}

	return core.NewRayAtTime(origin, pixelSample.Subtract(origin), sampler.Get1D())
}

func (c *Camera) defocusDiskSample(sampler core.Sampler) core.Vec3 {
	p := core.RandomInUnitDisk(sampler)
	return c.config.LookFrom.Add(c.defocusRight.Multiply(p.X)).Add(c.defocusUp.Multiply(p.Y))
}

// RayColor estimates the radiance arriving along ray, following at most
// depth bounces through world.
func (c *Camera) RayColor(ray core.Ray, depth int, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	if depth <= 0 {
		return core.Vec3{}
	}

	var rec material.HitRecord
	if !world.Hit(ray, core.NewInterval(hitEpsilon, math.Inf(1)), &rec) {
		return c.config.Background
	}

	emitted := rec.Emitted()
	scatter, ok := rec.Material.Scatter(ray, rec, sampler)
	if !ok {
		return emitted
	}

	incoming := c.RayColor(scatter.Scattered, depth-1, world, sampler)
	return emitted.Add(scatter.Attenuation.MultiplyVec(incoming))
}

// PixelColor averages SamplesPerPixel radiance estimates for pixel (i, j)
func (c *Camera) PixelColor(i, j int, world geometry.Hittable, sampler core.Sampler) core.Vec3 {
	samples := c.config.SamplesPerPixel
	if samples < 1 {
		samples = 1
	}

	var sum core.Vec3
	for s := 0; s < samples; s++ {
		ray := c.GetRay(i, j, sampler)
		sum = sum.Add(c.RayColor(ray, c.config.MaxDepth, world, sampler))
	}
	return sum.Multiply(1.0 / float64(samples))
}
