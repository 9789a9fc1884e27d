package services

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Bharathihub/AI-powered-diet-planner/models"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrCatalogUnavailable means there is no eligible data to plan from.
// Plan construction is all-or-nothing on top of it.
var ErrCatalogUnavailable = errors.New("food catalog unavailable")

// CatalogSnapshot is a read-only view of the food catalog at load time.
// It is passed into filtering by value and replaced only by an explicit
// LoadSnapshot call.
type CatalogSnapshot struct {
	Items []models.FoodItem
}

type CatalogService struct {
	s3c    *s3.Client
	bucket string
	key    string
	path   string
}

func NewCatalogService() (*CatalogService, error) {
	svc := &CatalogService{
		bucket: os.Getenv("CATALOG_S3_BUCKET"),
		key:    os.Getenv("CATALOG_S3_KEY"),
		path:   os.Getenv("CATALOG_CSV_PATH"),
	}
	if svc.path == "" {
		svc.path = "training_dataset.csv"
	}
	if svc.bucket != "" {
		region := os.Getenv("AWS_REGION")
		if region == "" {
			region = "ap-south-1"
		}
		cfg, err := awsconfig.LoadDefaultConfig(context.TODO(), awsconfig.WithRegion(region))
		if err != nil {
			return nil, err
		}
		svc.s3c = s3.NewFromConfig(cfg)
	}
	return svc, nil
}

// LoadSnapshot reads the catalog CSV from S3 when a bucket is configured,
// otherwise from the local path.
func (s *CatalogService) LoadSnapshot(ctx context.Context) (CatalogSnapshot, error) {
	var r io.ReadCloser
	if s.s3c != nil {
		out, err := s.s3c.GetObject(ctx, &s3.GetObjectInput{
			Bucket: aws.String(s.bucket),
			Key:    aws.String(s.key),
		})
		if err != nil {
			return CatalogSnapshot{}, fmt.Errorf("fetch catalog from s3: %w", err)
		}
		r = out.Body
	} else {
		f, err := os.Open(s.path)
		if err != nil {
			return CatalogSnapshot{}, fmt.Errorf("open catalog file: %w", err)
		}
		r = f
	}
	defer r.Close()

	items, err := parseCatalog(r)
	if err != nil {
		return CatalogSnapshot{}, err
	}
	return CatalogSnapshot{Items: items}, nil
}

// parseCatalog reads the dataset CSV. Columns are located by header name so
// extra columns (price, rating, ...) are ignored.
func parseCatalog(r io.Reader) ([]models.FoodItem, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read catalog header: %w", err)
	}
	col := map[string]int{}
	for i, h := range header {
		col[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"food", "calories", "protein", "carbs", "fat", "meal"} {
		if _, ok := col[required]; !ok {
			return nil, fmt.Errorf("catalog missing column %q", required)
		}
	}

	field := func(rec []string, name string) string {
		i, ok := col[name]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	num := func(rec []string, name string) float64 {
		v, _ := strconv.ParseFloat(field(rec, name), 64)
		return v
	}

	var items []models.FoodItem
	seen := map[string]bool{}
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read catalog row: %w", err)
		}
		name := field(rec, "food")
		if name == "" || seen[name] {
			continue // the training dataset repeats foods per synthetic user
		}
		slot, ok := models.ParseMealSlot(field(rec, "meal"))
		if !ok {
			continue
		}
		veg := models.VegType(field(rec, "veg_type"))
		if veg != models.NonVeg {
			veg = models.Veg
		}
		seen[name] = true
		items = append(items, models.FoodItem{
			Name:     name,
			Calories: num(rec, "calories"),
			Protein:  num(rec, "protein"),
			Carbs:    num(rec, "carbs"),
			Fat:      num(rec, "fat"),
			VegType:  veg,
			SafeFor:  field(rec, "safe_for"),
			Slot:     slot,
			Position: len(items),
		})
	}
	return items, nil
}

// Eligible narrows the snapshot to items a profile may be offered for a slot.
// Health filtering is skipped entirely for the "normal" condition; the veg
// preference keeps only veg items. Order is catalog order.
func Eligible(snap CatalogSnapshot, condition, dietPreference string, slot models.MealSlot) ([]models.FoodItem, error) {
	if len(snap.Items) == 0 {
		return nil, ErrCatalogUnavailable
	}

	condition = strings.ToLower(strings.TrimSpace(condition))
	var out []models.FoodItem
	for _, f := range snap.Items {
		if f.Slot != slot {
			continue
		}
		if condition != "" && condition != "normal" && !f.SafeForCondition(condition) {
			continue
		}
		if dietPreference == "veg" && f.VegType != models.Veg {
			continue
		}
		out = append(out, f)
	}
	return out, nil
}

// EligibleBySlot groups eligible foods for all three slots.
func EligibleBySlot(snap CatalogSnapshot, condition, dietPreference string) (map[models.MealSlot][]models.FoodItem, error) {
	grouped := make(map[models.MealSlot][]models.FoodItem, len(models.MealSlots))
	for _, slot := range models.MealSlots {
		foods, err := Eligible(snap, condition, dietPreference, slot)
		if err != nil {
			return nil, err
		}
		grouped[slot] = foods
	}
	return grouped, nil
}
