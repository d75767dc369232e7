package services

import (
	"encoding/csv"
	"fmt"
	"os"
	"sort"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/adityakumar003/TrainX/models"
)

// Sections are the fixed body-region categories, in display order.
var Sections = []string{"Legs", "Back", "Chest", "Biceps", "Triceps", "Shoulders", "Core"}

// Bounded index ranges of the repeated dataset columns.
const (
	maxSecondaryMuscles = 6
	maxInstructions     = 11
)

// CatalogService serves the read-only exercise reference data. It is built
// once at startup and injected where needed.
type CatalogService struct {
	exercises []models.CatalogExercise
}

func NewCatalogService(exercises []models.CatalogExercise) *CatalogService {
	return &CatalogService{exercises: exercises}
}

// LoadCatalog reads the exercise dataset from a CSV file. A missing or
// corrupt file yields an empty catalog rather than a startup failure.
func LoadCatalog(path string) *CatalogService {
	exercises, err := readDataset(path)
	if err != nil {
		log.WithError(err).WithField("path", path).Warn("exercise dataset unavailable, starting with empty catalog")
		return NewCatalogService(nil)
	}
	log.WithField("count", len(exercises)).Info("exercise dataset loaded")
	return NewCatalogService(exercises)
}

func readDataset(path string) ([]models.CatalogExercise, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("dataset has no header row")
	}

	header := make(map[string]int, len(records[0]))
	for i, col := range records[0] {
		header[col] = i
	}
	field := func(row []string, col string) string {
		i, ok := header[col]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	exercises := make([]models.CatalogExercise, 0, len(records)-1)
	for _, row := range records[1:] {
		ex := models.CatalogExercise{
			ID:        field(row, "id"),
			Name:      field(row, "name"),
			BodyPart:  field(row, "bodyPart"),
			Equipment: field(row, "equipment"),
			GifURL:    field(row, "gifUrl"),
			Target:    field(row, "target"),
		}
		// The repeated columns are numbered; keep non-empty values in order.
		for i := 0; i < maxSecondaryMuscles; i++ {
			if v := field(row, fmt.Sprintf("secondaryMuscles/%d", i)); v != "" {
				ex.SecondaryMuscles = append(ex.SecondaryMuscles, v)
			}
		}
		for i := 0; i < maxInstructions; i++ {
			if v := field(row, fmt.Sprintf("instructions/%d", i)); v != "" {
				ex.Instructions = append(ex.Instructions, v)
			}
		}
		exercises = append(exercises, ex)
	}
	return exercises, nil
}

// Sections returns the category labels in display order.
func (s *CatalogService) Sections() []string {
	return Sections
}

// FilterByCategory returns the exercises of one body-region category,
// deduplicated by id (first occurrence wins) and sorted by name. The match
// is case-insensitive; an unknown category is ErrNotFound.
func (s *CatalogService) FilterByCategory(category string) ([]models.CatalogSummary, error) {
	canonical := ""
	for _, section := range Sections {
		if strings.EqualFold(section, category) {
			canonical = section
			break
		}
	}
	if canonical == "" {
		return nil, fmt.Errorf("%w: category %q", ErrNotFound, category)
	}

	cat := strings.ToLower(canonical)
	seen := make(map[string]bool)
	items := make([]models.CatalogSummary, 0)
	for _, ex := range s.exercises {
		if ex.ID == "" || ex.Name == "" {
			continue
		}
		if !matchesCategory(cat, ex) || seen[ex.ID] {
			continue
		}
		seen[ex.ID] = true
		items = append(items, models.CatalogSummary{ID: ex.ID, Name: ex.Name, GifURL: ex.GifURL})
	}

	sort.Slice(items, func(i, j int) bool { return items[i].Name < items[j].Name })
	return items, nil
}

// matchesCategory maps a category to the dataset's body-part/target tags.
func matchesCategory(cat string, ex models.CatalogExercise) bool {
	bodyPart := strings.ToLower(ex.BodyPart)
	target := strings.ToLower(ex.Target)

	switch cat {
	case "legs":
		return bodyPart == "upper legs" || bodyPart == "lower legs" || bodyPart == "hips"
	case "back":
		return bodyPart == "back"
	case "chest":
		return bodyPart == "chest"
	case "biceps":
		return target == "biceps"
	case "triceps":
		return target == "triceps"
	case "shoulders":
		return bodyPart == "shoulders"
	case "core":
		return target == "abs" || target == "obliques" || bodyPart == "waist"
	}
	return false
}

// GetByID looks an exercise up by its dataset identifier.
func (s *CatalogService) GetByID(id string) (*models.CatalogExercise, error) {
	for i := range s.exercises {
		if s.exercises[i].ID == id {
			ex := s.exercises[i]
			return &ex, nil
		}
	}
	return nil, fmt.Errorf("%w: exercise %q", ErrNotFound, id)
}
