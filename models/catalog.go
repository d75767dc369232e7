package models

// CatalogExercise is reference data about an exercise type, loaded from the
// dataset at startup. Immutable at runtime and unrelated to any user's logs.
type CatalogExercise struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	BodyPart         string   `json:"bodyPart"`
	Equipment        string   `json:"equipment"`
	GifURL           string   `json:"gifUrl"`
	Target           string   `json:"target"`
	SecondaryMuscles []string `json:"secondaryMuscles"`
	Instructions     []string `json:"instructions"`
}

// CatalogSummary is the trimmed listing shape used on category pages.
type CatalogSummary struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	GifURL string `json:"gifUrl"`
}
