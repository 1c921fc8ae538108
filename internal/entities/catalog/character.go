// Package catalog defines the character catalog entities shared by the
// spawn engine, repositories, and handlers
package catalog

// Character is an immutable catalog record. It is owned by the catalog
// store and mutated only by catalog tooling, never by the spawn engine.
type Character struct {
	// Stable external key, unique across the catalog
	ID string `json:"id"`

	// Display name; guesses are matched against it
	Name string `json:"name"`

	// Series the character belongs to
	Series string `json:"series"`

	// Rarity tier code
	Tier Tier `json:"tier"`

	// Pointer to the image or video content shown on spawn
	MediaRef string `json:"media_ref"`

	// Whether MediaRef points at video content
	IsVideo bool `json:"is_video"`

	// Soft-delete flag; removed characters never spawn
	Removed bool `json:"removed"`
}

// Clone returns a copy of the character. Spawn sessions hold clones so
// concurrent catalog edits cannot mutate an in-flight spawn.
func (c *Character) Clone() *Character {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
