package schema

// Creature is the subset of a pokemon record that gets rendered.
type Creature struct {
	ID      int     `json:"id"`
	Name    string  `json:"name" jsonschema_description:"Lowercase pokemon name"`
	Sprites Sprites `json:"sprites"`
}

type Sprites struct {
	FrontDefault *string `json:"front_default" jsonschema_description:"Default front sprite URL, null when missing"`
}

// SpriteURL returns the front sprite or "" when the record has none.
func (c *Creature) SpriteURL() string {
	if c == nil || c.Sprites.FrontDefault == nil {
		return ""
	}
	return *c.Sprites.FrontDefault
}
