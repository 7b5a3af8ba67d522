package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// BuiltInGroup is the group name of the scenes compiled into the binary
const BuiltInGroup = "Built-in Scenes"

// SceneInfo represents a discovered scene with its metadata
type SceneInfo struct {
	ID          string `json:"id"`          // Unique identifier
	Name        string `json:"name"`        // Scene name
	Description string `json:"description"` // Optional description
	Group       string `json:"group"`       // Grouping category
	Type        string `json:"type"`        // "builtin" or "file"
	FilePath    string `json:"filePath"`    // Path to the JSON file (file type only)
}

// builtIn pairs a scene description with its constructor
type builtIn struct {
	info  SceneInfo
	build func() *Scene
}

var builtInScenes = []builtIn{
	{
		info:  SceneInfo{ID: "default", Name: "Default Scene", Description: "Gray sphere resting on a ground sphere"},
		build: NewDefaultScene,
	},
	{
		info:  SceneInfo{ID: "materials", Name: "Materials", Description: "Diffuse sphere between two metal spheres"},
		build: NewMaterialsScene,
	},
	{
		info:  SceneInfo{ID: "spheregrid", Name: "Sphere Grid", Description: "Grid of alternating diffuse and metal spheres"},
		build: NewSphereGridScene,
	},
}

// ListBuiltInScenes returns the scenes compiled into the binary
func ListBuiltInScenes() []SceneInfo {
	scenes := make([]SceneInfo, 0, len(builtInScenes))
	for _, b := range builtInScenes {
		info := b.info
		info.Group = BuiltInGroup
		info.Type = "builtin"
		scenes = append(scenes, info)
	}
	return scenes
}

// ListFileScenes scans dir for *.json scene files. A missing directory is not an error.
func ListFileScenes(dir string) ([]SceneInfo, error) {
	if _, err := os.Stat(dir); err != nil {
		return []SceneInfo{}, nil
	}

	files, err := filepath.Glob(filepath.Join(dir, "*.json"))
	if err != nil {
		return nil, fmt.Errorf("failed to scan scenes directory: %w", err)
	}

	scenes := []SceneInfo{}
	for _, filePath := range files {
		info, err := ParseSceneMetadata(filePath)
		if err != nil {
			// Skip unreadable files; the rest of the directory is still usable
			continue
		}
		scenes = append(scenes, info)
	}

	sort.Slice(scenes, func(i, j int) bool {
		return scenes[i].Name < scenes[j].Name
	})

	return scenes, nil
}

// ParseSceneMetadata extracts the descriptive fields of a scene file
func ParseSceneMetadata(filePath string) (SceneInfo, error) {
	nameWithoutExt := strings.TrimSuffix(filepath.Base(filePath), filepath.Ext(filePath))

	info := SceneInfo{
		ID:       "file:" + nameWithoutExt,
		Name:     titleCase(nameWithoutExt),
		Group:    "Scene Files",
		Type:     "file",
		FilePath: filePath,
	}

	f, err := os.Open(filePath)
	if err != nil {
		return info, fmt.Errorf("open scene: %w", err)
	}
	defer f.Close()

	file, err := Decode(f)
	if err != nil {
		return info, fmt.Errorf("decode scene %s: %w", filePath, err)
	}

	if file.Name != "" {
		info.Name = file.Name
	}
	if file.Group != "" {
		info.Group = file.Group
	}
	info.Description = file.Description

	return info, nil
}

// ListScenes returns built-in scenes followed by the scene files in dir
func ListScenes(dir string) ([]SceneInfo, error) {
	fileScenes, err := ListFileScenes(dir)
	if err != nil {
		return nil, err
	}
	return append(ListBuiltInScenes(), fileScenes...), nil
}

// Create builds a scene by built-in ID, or loads it when nameOrPath names a JSON file
func Create(nameOrPath string) (*Scene, error) {
	if nameOrPath == "" {
		return nil, fmt.Errorf("empty scene name")
	}

	for _, b := range builtInScenes {
		if b.info.ID == nameOrPath {
			return b.build(), nil
		}
	}

	if strings.HasSuffix(nameOrPath, ".json") {
		return Load(nameOrPath)
	}

	return nil, fmt.Errorf("unknown scene %q", nameOrPath)
}

// titleCase converts a filename-style string to title case
// e.g., "two-spheres" -> "Two Spheres"
func titleCase(s string) string {
	// Replace hyphens and underscores with spaces
	s = strings.ReplaceAll(s, "-", " ")
	s = strings.ReplaceAll(s, "_", " ")

	// Title case each word
	words := strings.Fields(s)
	for i, word := range words {
		if len(word) > 0 {
			words[i] = strings.ToUpper(word[:1]) + strings.ToLower(word[1:])
		}
	}

	return strings.Join(words, " ")
}
