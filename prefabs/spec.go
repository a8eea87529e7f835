package prefabs

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/milk9111/mailme/levels"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// PaletteSpec lists the placeable kinds in hotkey order and the parameters a
// freshly placed item of each kind starts with.
type PaletteSpec struct {
	Order    []levels.Kind                  `yaml:"order"`
	Defaults map[levels.Kind]map[string]any `yaml:"defaults"`
}

func LoadPaletteSpec() (*PaletteSpec, error) {
	spec, err := LoadSpec[PaletteSpec]("palette.yaml")
	if err != nil {
		return nil, err
	}
	for _, k := range spec.Order {
		if !k.Known() {
			return nil, fmt.Errorf("prefabs: palette.yaml: unknown kind %q", k)
		}
	}
	if len(spec.Order) == 0 {
		return nil, fmt.Errorf("prefabs: palette.yaml: empty order")
	}
	return &spec, nil
}

// NewItem builds an item of kind at pos using the palette defaults.
func (p *PaletteSpec) NewItem(kind levels.Kind, pos levels.Vec) (levels.Item, error) {
	if p == nil {
		return levels.New(kind, pos), nil
	}
	return levels.FromFields(kind, pos, p.Defaults[kind])
}

type EditorSpec struct {
	Grid           float64 `yaml:"grid"`
	DebounceMS     int     `yaml:"debounce_ms"`
	HandleRadius   float64 `yaml:"handle_radius"`
	SelectedRadius float64 `yaml:"selected_radius"`
	HandleHit      float64 `yaml:"handle_hit"`
	HandleColor    Hex     `yaml:"handle_color"`
	SelectedColor  Hex     `yaml:"selected_color"`
}

func LoadEditorSpec() (*EditorSpec, error) {
	spec, err := LoadSpec[EditorSpec]("editor.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

type PathSpec struct {
	Width  float64      `yaml:"width"`
	Color  Hex          `yaml:"color"`
	Points [][2]float64 `yaml:"points"`
}

type FenceSpec struct {
	Inset     float64 `yaml:"inset"`
	Top       float64 `yaml:"top"`
	Thickness float64 `yaml:"thickness"`
}

type PlayerSpec struct {
	Speed          float64 `yaml:"speed"`
	Radius         float64 `yaml:"radius"`
	SpawnX         float64 `yaml:"spawn_x"`
	SpawnY         float64 `yaml:"spawn_y"`
	InteractRadius float64 `yaml:"interact_radius"`
	Color          Hex     `yaml:"color"`
}

// SceneSpec describes the fixed village backdrop the layout is placed on.
type SceneSpec struct {
	Width    float64    `yaml:"width"`
	Height   float64    `yaml:"height"`
	HorizonY float64    `yaml:"horizon_y"`
	Sky      Hex        `yaml:"sky"`
	Ground   Hex        `yaml:"ground"`
	Fence    FenceSpec  `yaml:"fence"`
	Paths    []PathSpec `yaml:"paths"`
	Player   PlayerSpec `yaml:"player"`
}

func LoadSceneSpec() (*SceneSpec, error) {
	spec, err := LoadSpec[SceneSpec]("scene.yaml")
	if err != nil {
		return nil, err
	}
	return &spec, nil
}

// Hex is a 0xRRGGBB color written in YAML as "#rrggbb".
type Hex uint32

func (c *Hex) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}

	s := strings.TrimPrefix(value.Value, "#")
	if len(s) != 6 {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}

	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fmt.Errorf("invalid color format: %s", value.Value)
	}
	*c = Hex(v)
	return nil
}
