package importer

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"cookbook/internal/models"
	"cookbook/internal/repositories"
)

// Importer seeds the ingredient and tag reference tables from CSV files.
// It is an operational tool, not part of the request-serving path.
type Importer struct {
	ingredientRepo repositories.IngredientRepository
	tagRepo        repositories.TagRepository
}

// New creates a new Importer.
func New(ingredientRepo repositories.IngredientRepository, tagRepo repositories.TagRepository) *Importer {
	return &Importer{
		ingredientRepo: ingredientRepo,
		tagRepo:        tagRepo,
	}
}

// Run imports ingredients.csv and tags.csv from dataDir. The whole run is
// skipped when ingredient data is already loaded. A failing file is
// reported and does not abort the other file.
func (i *Importer) Run(dataDir string) error {
	count, err := i.ingredientRepo.Count()
	if err != nil {
		return fmt.Errorf("failed to check existing data: %w", err)
	}
	if count > 0 {
		log.Println("Catalog data already loaded, skipping import")
		return nil
	}

	files := []struct {
		name string
		load func(path string) (int, int, error)
	}{
		{"ingredients.csv", i.importIngredients},
		{"tags.csv", i.importTags},
	}
	for _, f := range files {
		path := filepath.Join(dataDir, f.name)
		imported, skipped, err := f.load(path)
		if err != nil {
			log.Printf("Import of %s failed: %v", f.name, err)
			continue
		}
		log.Printf("Imported %s: %d rows loaded, %d skipped", f.name, imported, skipped)
	}
	return nil
}

func readRows(path string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // malformed rows are skipped per-row below
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return rows, nil
}

// importIngredients loads rows of the form "name,measurement_unit".
func (i *Importer) importIngredients(path string) (imported, skipped int, err error) {
	rows, err := readRows(path)
	if err != nil {
		return 0, 0, err
	}
	for n, row := range rows {
		if len(row) != 2 || row[0] == "" || row[1] == "" {
			log.Printf("Skipping malformed ingredient row %d: %s", n+1, strconv.Quote(fmt.Sprint(row)))
			skipped++
			continue
		}
		ingredient := models.Ingredient{
			Name:            row[0],
			MeasurementUnit: row[1],
		}
		if err := i.ingredientRepo.Create(&ingredient); err != nil {
			log.Printf("Skipping ingredient row %d: %v", n+1, err)
			skipped++
			continue
		}
		imported++
	}
	return imported, skipped, nil
}

// importTags loads rows of the form "name,color,slug".
func (i *Importer) importTags(path string) (imported, skipped int, err error) {
	rows, err := readRows(path)
	if err != nil {
		return 0, 0, err
	}
	for n, row := range rows {
		if len(row) != 3 || row[0] == "" || row[1] == "" || row[2] == "" {
			log.Printf("Skipping malformed tag row %d: %s", n+1, strconv.Quote(fmt.Sprint(row)))
			skipped++
			continue
		}
		tag := models.Tag{
			Name:  row[0],
			Color: row[1],
			Slug:  row[2],
		}
		if err := i.tagRepo.Create(&tag); err != nil {
			log.Printf("Skipping tag row %d: %v", n+1, err)
			skipped++
			continue
		}
		imported++
	}
	return imported, skipped, nil
}
