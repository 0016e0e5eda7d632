package scene

import (
	"github.com/YassinRamadan1/Software-RayTracer/pkg/core"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/geometry"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/material"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/texture"
)

// groundChecker is the green and white checker used by the sphere presets
func groundChecker() texture.Texture {
	return texture.NewCheckerColors(0.32, core.NewVec3(0.2, 0.3, 0.1), core.NewVec3(0.9, 0.9, 0.9))
}

// NewBouncingSpheres creates the classic field of random small spheres
func NewBouncingSpheres(opts Options) (*Scene, error) {
	return newSphereField(opts, false), nil
}

// NewMotionBlurSpheres is NewBouncingSpheres with diffuse spheres that
// move upwards during the shutter interval
func NewMotionBlurSpheres(opts Options) (*Scene, error) {
	return newSphereField(opts, true), nil
}

func newSphereField(opts Options, moving bool) *Scene {
	sampler := core.NewSeededSampler(opts.Seed)
	world := geometry.NewHittableList()

	world.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, material.NewTexturedLambertian(groundChecker())))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(float64(a)+0.9*sampler.Get1D(), 0.2, float64(b)+0.9*sampler.Get1D())

			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() <= 0.9 {
				continue
			}

			switch {
			case chooseMat < 0.8:
				// diffuse
				albedo := core.RandomVec3(sampler, 0, 1).MultiplyVec(core.RandomVec3(sampler, 0, 1))
				mat := material.NewLambertian(albedo)
				if moving {
					end := center.Add(core.NewVec3(0, core.RandomRange(sampler, 0, 0.5), 0))
					world.Add(geometry.NewMovingSphere(center, end, 0.2, mat))
				} else {
					world.Add(geometry.NewSphere(center, 0.2, mat))
				}
			case chooseMat < 0.95:
				// metal
				albedo := core.RandomVec3(sampler, 0.5, 1)
				fuzz := core.RandomRange(sampler, 0, 0.5)
				world.Add(geometry.NewSphere(center, 0.2, material.NewMetal(albedo, fuzz)))
			default:
				// glass
				world.Add(geometry.NewSphere(center, 0.2, material.NewDielectric(1.5)))
			}
		}
	}

	world.Add(geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)))
	world.Add(geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))))
	world.Add(geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.0)))

	camera := defaultCamera()
	camera.DefocusAngle = 0.6

	return &Scene{
		Camera: camera,
		World:  geometry.NewBVHFromList(world),
	}
}

// NewCheckeredSpheres creates two large spheres sharing one checker texture
func NewCheckeredSpheres(opts Options) (*Scene, error) {
	checker := material.NewTexturedLambertian(groundChecker())

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -10, 0), 10, checker),
		geometry.NewSphere(core.NewVec3(0, 10, 0), 10, checker),
	)

	return &Scene{Camera: defaultCamera(), World: world}, nil
}

// NewEarth creates a globe wrapped in an image texture. A texture that cannot
// be loaded renders cyan so the failure stays visible.
func NewEarth(opts Options) (*Scene, error) {
	earthTexture, err := texture.LoadImage(opts.EarthTexture)
	if err != nil {
		logger.Warningf("earth texture unavailable, rendering fallback color: %v", err)
	}

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, 0, 0), 2, material.NewTexturedLambertian(earthTexture)),
	)

	camera := defaultCamera()
	camera.LookFrom = core.NewVec3(0, 0, 12)

	return &Scene{Camera: camera, World: world}, nil
}
