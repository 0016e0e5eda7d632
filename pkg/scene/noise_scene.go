package scene

import (
	"fmt"

	"github.com/YassinRamadan1/Software-RayTracer/pkg/core"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/geometry"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/material"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/noise"
	"github.com/YassinRamadan1/Software-RayTracer/pkg/texture"
)

const (
	noiseGridSize = 256
	noiseScale    = 4
)

func marbleTexture(opts Options) (texture.Texture, error) {
	n, err := noise.New(opts.Noise, noiseGridSize, core.NewSeededSampler(opts.Seed))
	if err != nil {
		return nil, fmt.Errorf("failed to create noise: %w", err)
	}
	return texture.NewNoise(n, noiseScale), nil
}

// NewNoiseSpheres creates a ground and a sphere covered in marble
func NewNoiseSpheres(opts Options) (*Scene, error) {
	marble, err := marbleTexture(opts)
	if err != nil {
		return nil, err
	}
	mat := material.NewTexturedLambertian(marble)

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, mat),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, mat),
	)

	camera := defaultCamera()
	camera.SamplesPerPixel = 50
	camera.LookFrom = core.NewVec3(13, 2, 15)

	return &Scene{Camera: camera, World: world}, nil
}

// NewSimpleLight creates the noise spheres lit only by an emissive sphere and quad
func NewSimpleLight(opts Options) (*Scene, error) {
	marble, err := marbleTexture(opts)
	if err != nil {
		return nil, err
	}
	mat := material.NewTexturedLambertian(marble)
	light := material.NewDiffuseLight(core.NewVec3(4, 4, 4))

	world := geometry.NewHittableList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, mat),
		geometry.NewSphere(core.NewVec3(0, 2, 0), 2, mat),
		geometry.NewSphere(core.NewVec3(0, 7, 0), 2, light),
		geometry.NewQuad(core.NewVec3(3, 1, -2), core.NewVec3(2, 0, 0), core.NewVec3(0, 2, 0), light),
	)

	camera := defaultCamera()
	camera.ImageWidth = 1200
	camera.SamplesPerPixel = 700
	camera.MaxDepth = 70
	camera.Background = core.Vec3{}
	camera.LookFrom = core.NewVec3(26, 3, 6)
	camera.LookAt = core.NewVec3(0, 2, 0)

	return &Scene{Camera: camera, World: world}, nil
}
