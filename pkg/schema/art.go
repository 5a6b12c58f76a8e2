package schema

// ArtCollection is the body of the collection search endpoint.
type ArtCollection struct {
	Total     int   `json:"total" jsonschema_description:"Number of matching objects"`
	ObjectIDs []int `json:"objectIDs" jsonschema_description:"Identifiers of the matching objects, possibly null when nothing matched"`
}

// ArtPiece is the subset of an object record that gets rendered.
type ArtPiece struct {
	ObjectID          int    `json:"objectID" jsonschema_description:"Identifier of the object"`
	Title             string `json:"title" jsonschema_description:"Title of the object"`
	PrimaryImage      string `json:"primaryImage" jsonschema_description:"URL of the full size primary image, empty when the object has none"`
	PrimaryImageSmall string `json:"primaryImageSmall,omitempty" jsonschema_description:"URL of a web sized primary image"`
	ArtistDisplayName string `json:"artistDisplayName,omitempty"`
	ObjectDate        string `json:"objectDate,omitempty"`
	ObjectURL         string `json:"objectURL,omitempty" jsonschema_description:"Collection page of the object"`
}
