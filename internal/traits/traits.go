// Package traits holds the static catalogue of HoloScript's named traits:
// their category, description, and default configuration properties.
package traits

import "strings"

// Definition describes one trait entry in the catalogue.
type Definition struct {
	Name               string
	Category           string
	Description        string
	DefaultProperties  []string
}

// All is the fixed 49-entry trait catalogue, grouped by category in
// declaration order.
var All = []Definition{
	// Interaction (8)
	{"grabbable", "interaction", "can be picked up by hand", []string{"grab_points", "two_handed"}},
	{"throwable", "interaction", "can be thrown with physical force", []string{"throw_force", "spin"}},
	{"holdable", "interaction", "can be held in a fixed grip", []string{"hold_position", "hold_rotation"}},
	{"clickable", "interaction", "responds to a pointer click", []string{"click_sound", "highlight_color"}},
	{"hoverable", "interaction", "responds to a pointer hover", []string{"hover_color", "hover_scale"}},
	{"draggable", "interaction", "can be dragged along a constraint", []string{"drag_constraint", "snap_to_grid"}},
	{"pointable", "interaction", "can be targeted with a laser pointer", []string{"point_distance", "highlight"}},
	{"scalable", "interaction", "can be resized by the user", []string{"min_scale", "max_scale", "uniform"}},

	// Physics (6)
	{"collidable", "physics", "participates in collision detection", []string{"collision_layer", "collision_mask"}},
	{"physics", "physics", "simulated by the physics engine", []string{"mass", "restitution", "friction"}},
	{"rigid", "physics", "a rigid body with damping", []string{"mass", "angular_damping", "linear_damping"}},
	{"kinematic", "physics", "moved by code, not by forces", []string{"interpolation"}},
	{"trigger", "physics", "detects overlap without physical response", []string{"trigger_shape", "trigger_size"}},
	{"gravity", "physics", "affected by a configurable gravity scale", []string{"gravity_scale"}},

	// Visual (6)
	{"glowing", "visual", "emits a colored glow", []string{"glow_color", "glow_intensity"}},
	{"emissive", "visual", "emits light from its own surface", []string{"emission_color", "emission_intensity"}},
	{"transparent", "visual", "partially see-through", []string{"opacity", "alpha_cutoff"}},
	{"reflective", "visual", "reflects its surroundings", []string{"reflectivity", "roughness"}},
	{"animated", "visual", "plays an animation clip", []string{"animation_clip", "autoplay", "loop"}},
	{"billboard", "visual", "always faces the camera", []string{"axis_lock"}},

	// Networking (5)
	{"networked", "networking", "state is replicated across clients", []string{"sync_rate", "interpolation"}},
	{"synced", "networking", "specific properties are kept in sync", []string{"sync_properties"}},
	{"persistent", "networking", "state is saved across sessions", []string{"storage_key"}},
	{"owned", "networking", "has a designated owning client", []string{"owner_id", "transfer_allowed"}},
	{"host_only", "networking", "only simulated on the host", nil},

	// Behavior (5)
	{"stackable", "behavior", "can be stacked on others of its kind", []string{"stack_height", "stack_offset"}},
	{"attachable", "behavior", "can be attached to an anchor point", []string{"attach_points", "snap_distance"}},
	{"equippable", "behavior", "can be equipped into a slot", []string{"equip_slot", "equip_position"}},
	{"consumable", "behavior", "is consumed on use", []string{"consume_effect", "uses"}},
	{"destructible", "behavior", "can be damaged and destroyed", []string{"health", "debris", "destroy_effect"}},

	// Spatial (5)
	{"anchor", "spatial", "anchored to a fixed real-world point", []string{"anchor_type", "precision"}},
	{"tracked", "spatial", "tracked by an external source", []string{"tracking_source"}},
	{"world_locked", "spatial", "locked relative to the world", []string{"lock_position", "lock_rotation"}},
	{"hand_tracked", "spatial", "bound to a tracked hand joint", []string{"hand", "joint"}},
	{"eye_tracked", "spatial", "reacts to eye gaze", []string{"gaze_offset", "smooth_factor"}},

	// Audio (3)
	{"spatial_audio", "audio", "emits positional 3D audio", []string{"audio_source", "rolloff", "max_distance"}},
	{"ambient", "audio", "plays looping ambient sound", []string{"ambient_clip", "volume"}},
	{"voice_activated", "audio", "responds to voice commands", []string{"commands", "sensitivity"}},

	// State (4)
	{"state", "state", "has an initial named state", []string{"initial_state"}},
	{"reactive", "state", "re-evaluates when watched properties change", []string{"watch_properties"}},
	{"observable", "state", "exposes properties for external observation", []string{"observable_properties"}},
	{"computed", "state", "derives properties from others", []string{"computed_properties"}},

	// UI (4)
	{"ui_panel", "ui", "a flat UI surface", []string{"width", "height", "curved"}},
	{"ui_button", "ui", "a clickable UI button", []string{"label", "click_action"}},
	{"ui_text", "ui", "a text label", []string{"text", "font_size", "color"}},
	{"ui_slider", "ui", "a draggable value slider", []string{"min", "max", "value"}},

	// Legacy/alias (3)
	{"interactive", "legacy", "alias for grabbable + clickable", nil},
	{"solid", "legacy", "alias for collidable + rigid", nil},
	{"lit", "legacy", "alias for glowing + emissive", nil},
}

// Exists reports whether name is a known trait.
func Exists(name string) bool {
	_, ok := Get(name)
	return ok
}

// Get looks up a trait by exact name.
func Get(name string) (Definition, bool) {
	for _, d := range All {
		if d.Name == name {
			return d, true
		}
	}
	return Definition{}, false
}

// ListAll returns every trait in catalogue order.
func ListAll() []Definition {
	return All
}

// ListByCategory returns all traits in the given category, matched
// case-insensitively.
func ListByCategory(category string) []Definition {
	var out []Definition
	for _, d := range All {
		if strings.EqualFold(d.Category, category) {
			out = append(out, d)
		}
	}
	return out
}

type suggestionRule struct {
	substrings []string
	trait      string
	// requireAll, when true, makes the rule match only when every entry
	// in substrings is present (a conjunction) instead of any one of them.
	requireAll bool
}

func (r suggestionRule) matches(lower string) bool {
	if r.requireAll {
		for _, sub := range r.substrings {
			if !strings.Contains(lower, sub) {
				return false
			}
		}
		return true
	}
	for _, sub := range r.substrings {
		if strings.Contains(lower, sub) {
			return true
		}
	}
	return false
}

var suggestionRules = []suggestionRule{
	{substrings: []string{"grab", "pick up", "hold"}, trait: "grabbable"},
	{substrings: []string{"throw", "toss"}, trait: "throwable"},
	{substrings: []string{"click", "press", "button"}, trait: "clickable"},
	{substrings: []string{"drag"}, trait: "draggable"},
	{substrings: []string{"point", "laser"}, trait: "pointable"},
	{substrings: []string{"resize", "scale"}, trait: "scalable"},
	{substrings: []string{"collide", "collision", "solid"}, trait: "collidable"},
	{substrings: []string{"physic", "bounce", "fall"}, trait: "physics"},
	{substrings: []string{"rigid"}, trait: "rigid"},
	{substrings: []string{"gravity"}, trait: "gravity"},
	{substrings: []string{"trigger", "detect"}, trait: "trigger"},
	{substrings: []string{"glow", "light up", "shine"}, trait: "glowing"},
	{substrings: []string{"transpar", "see through", "glass"}, trait: "transparent"},
	{substrings: []string{"reflect", "mirror"}, trait: "reflective"},
	{substrings: []string{"animat"}, trait: "animated"},
	{substrings: []string{"billboard", "face camera"}, trait: "billboard"},
	{substrings: []string{"network", "multiplay", "sync"}, trait: "networked"},
	{substrings: []string{"persist", "save"}, trait: "persistent"},
	{substrings: []string{"host", "server"}, trait: "host_only"},
	{substrings: []string{"stack", "pile"}, trait: "stackable"},
	{substrings: []string{"attach", "connect"}, trait: "attachable"},
	{substrings: []string{"equip", "wear", "tool"}, trait: "equippable"},
	{substrings: []string{"consume", "eat", "drink"}, trait: "consumable"},
	{substrings: []string{"destroy", "break"}, trait: "destructible"},
	{substrings: []string{"anchor", "fixed position"}, trait: "anchor"},
	{substrings: []string{"track", "follow"}, trait: "tracked"},
	{substrings: []string{"hand", "track"}, trait: "hand_tracked", requireAll: true},
	{substrings: []string{"eye", "track"}, trait: "eye_tracked", requireAll: true},
	{substrings: []string{"sound", "audio", "3d audio"}, trait: "spatial_audio"},
	{substrings: []string{"ambient", "sound"}, trait: "ambient", requireAll: true},
	{substrings: []string{"voice", "speech"}, trait: "voice_activated"},
	{substrings: []string{"state"}, trait: "state"},
	{substrings: []string{"reactive", "respond"}, trait: "reactive"},
}

// Suggest returns trait definitions whose trigger words appear in
// description, tested in a fixed rule order. A description mentioning
// "interact" or "object" with no other match suggests grabbable.
func Suggest(description string) []Definition {
	lower := strings.ToLower(description)
	var out []Definition
	seen := map[string]bool{}
	for _, rule := range suggestionRules {
		if !rule.matches(lower) || seen[rule.trait] {
			continue
		}
		if d, ok := Get(rule.trait); ok {
			out = append(out, d)
			seen[rule.trait] = true
		}
	}
	if len(out) == 0 && (strings.Contains(lower, "interact") || strings.Contains(lower, "object")) {
		if d, ok := Get("grabbable"); ok {
			out = append(out, d)
		}
	}
	return out
}

// TypedProperty pairs a trait config property name with its expected
// value type, expressed as a type-lattice name string to avoid importing
// the types package here (the property-type table is a thin supplemental
// registry, not part of the main 49-trait catalogue).
type TypedProperty struct {
	Name string
	Type string
}

var propertyTypes = map[string][]TypedProperty{
	"physics":  {{"mass", "number"}, {"friction", "number"}, {"restitution", "number"}},
	"synced":   {{"interpolate", "boolean"}},
	"glowing":  {{"intensity", "number"}, {"color", "Color"}},
}

// GetPropertyTypes returns the expected property types for a trait's
// config block, for traits that define them.
func GetPropertyTypes(name string) ([]TypedProperty, bool) {
	props, ok := propertyTypes[name]
	return props, ok
}
