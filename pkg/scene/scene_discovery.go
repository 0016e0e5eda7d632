package scene

import (
	"fmt"
	"sort"
	"strings"
)

// SceneInfo describes a registered preset
type SceneInfo struct {
	ID          string // Registry key
	DisplayName string // Human readable name
	Description string
	Group       string
}

// SceneGroup represents a group of related scenes
type SceneGroup struct {
	Name   string
	Scenes []SceneInfo
}

type entry struct {
	info  SceneInfo
	build Builder
}

var registry = map[string]entry{}

// register adds a preset. Registering the same id twice is a programming error.
func register(id, group, description string, build Builder) {
	if _, exists := registry[id]; exists {
		panic(fmt.Sprintf("scene: duplicate registration of %q", id))
	}
	registry[id] = entry{
		info: SceneInfo{
			ID:          id,
			DisplayName: titleCase(id),
			Description: description,
			Group:       group,
		},
		build: build,
	}
}

func init() {
	register("bouncing-spheres", "Spheres", "Random field of small spheres around three large ones, with defocus blur", NewBouncingSpheres)
	register("motion-blur-spheres", "Spheres", "Bouncing spheres where the diffuse spheres move during the shutter", NewMotionBlurSpheres)
	register("checkered-spheres", "Textures", "Two large spheres sharing a spatial checker texture", NewCheckeredSpheres)
	register("earth", "Textures", "Globe with an image texture", NewEarth)
	register("noise-spheres", "Textures", "Marble-like Perlin noise on a ground and a sphere", NewNoiseSpheres)
	register("quads", "Geometry", "Five colored quads facing the camera", NewQuads)
	register("simple-light", "Lights", "Noise-textured spheres lit by an emissive sphere and quad", NewSimpleLight)
	register("cornell-box", "Lights", "Cornell box with two rotated boxes", NewCornellBox)
}

// Names returns the registered preset ids in sorted order
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the builder registered under name
func Lookup(name string) (Builder, error) {
	e, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownScene, name, strings.Join(Names(), ", "))
	}
	return e.build, nil
}

// ListScenes returns all presets grouped by category, groups and scenes sorted by name
func ListScenes() []SceneGroup {
	groupMap := make(map[string][]SceneInfo)
	for _, name := range Names() {
		info := registry[name].info
		groupMap[info.Group] = append(groupMap[info.Group], info)
	}

	var groupNames []string
	for groupName := range groupMap {
		groupNames = append(groupNames, groupName)
	}
	sort.Strings(groupNames)

	groups := make([]SceneGroup, 0, len(groupNames))
	for _, groupName := range groupNames {
		groups = append(groups, SceneGroup{Name: groupName, Scenes: groupMap[groupName]})
	}
	return groups
}

// titleCase converts an id to title case
// e.g., "cornell-box" -> "Cornell Box"
func titleCase(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	words := strings.Fields(s)
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
	}

	return strings.Join(words, " ")
}
