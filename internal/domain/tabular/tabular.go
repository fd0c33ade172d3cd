// Package tabular converts raw store records into typed, column-aligned
// tables. Records that fail required-field validation are excluded and
// counted rather than raised as errors; upstream data quality is expected
// to be imperfect and a single malformed row must not abort a request.
package tabular

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"

	"github.com/tugela/gigmatch/internal/domain/model"
)

// Default values for optional fields absent from the input.
const (
	defaultLocation  = "unspecified"
	defaultGigStatus = "open"
)

var validate = validator.New()

// FreelancerTable holds normalized freelancer rows plus the count of raw
// records dropped during normalization.
type FreelancerTable struct {
	Rows    []model.FreelancerRecord
	Skipped int
}

// GigTable holds normalized gig rows plus the count of raw records dropped
// during normalization.
type GigTable struct {
	Rows    []model.GigRecord
	Skipped int
}

// freelancerRow is the decode target for raw freelancer records. Pointer
// fields distinguish absent optional columns from zero values.
type freelancerRow struct {
	FreelancerID int64    `mapstructure:"freelancer_id"`
	Name         string   `mapstructure:"name"`
	Skills       []string `mapstructure:"skills"`
	HourlyRate   float64  `mapstructure:"hourly_rate" validate:"gte=0"`
	Rating       *float64 `mapstructure:"rating" validate:"omitempty,gte=0,lte=5"`
	Category     string   `mapstructure:"category"`
	Location     string   `mapstructure:"location"`
	Available    *bool    `mapstructure:"available"`
	Phone        *string  `mapstructure:"phone"`
	Address      *string  `mapstructure:"address"`
}

// gigRow is the decode target for raw gig records, budget excluded; budget
// bounds are extracted separately because they arrive in several shapes.
type gigRow struct {
	GigID    int64    `mapstructure:"gig_id"`
	Title    string   `mapstructure:"title"`
	Skills   []string `mapstructure:"skills"`
	Category string   `mapstructure:"category"`
	Location string   `mapstructure:"location"`
	Remote   bool     `mapstructure:"remote"`
	Status   string   `mapstructure:"status"`
}

// NormalizeFreelancers builds a typed freelancer table from raw records.
// A record missing freelancer_id, or failing numeric coercion or range
// validation, is skipped and counted.
func NormalizeFreelancers(raws []model.RawRecord) FreelancerTable {
	t := FreelancerTable{Rows: make([]model.FreelancerRecord, 0, len(raws))}
	for _, raw := range raws {
		rec, ok := normalizeFreelancer(raw)
		if !ok {
			t.Skipped++
			continue
		}
		t.Rows = append(t.Rows, rec)
	}
	return t
}

// NormalizeGigs builds a typed gig table from raw records. A record missing
// gig_id, budget, skills, or category, or failing budget coercion, is
// skipped and counted.
func NormalizeGigs(raws []model.RawRecord) GigTable {
	t := GigTable{Rows: make([]model.GigRecord, 0, len(raws))}
	for _, raw := range raws {
		rec, ok := normalizeGig(raw)
		if !ok {
			t.Skipped++
			continue
		}
		t.Rows = append(t.Rows, rec)
	}
	return t
}

func normalizeFreelancer(raw model.RawRecord) (model.FreelancerRecord, bool) {
	if !hasKey(raw, "freelancer_id") {
		return model.FreelancerRecord{}, false
	}

	var row freelancerRow
	if err := weakDecode(raw, &row); err != nil {
		return model.FreelancerRecord{}, false
	}
	if row.FreelancerID <= 0 {
		return model.FreelancerRecord{}, false
	}
	if err := validate.Struct(row); err != nil {
		return model.FreelancerRecord{}, false
	}

	rec := model.FreelancerRecord{
		FreelancerID: row.FreelancerID,
		Name:         row.Name,
		Skills:       canonicalSkills(row.Skills),
		HourlyRate:   row.HourlyRate,
		Rating:       row.Rating,
		Category:     strings.TrimSpace(row.Category),
		Location:     row.Location,
		Available:    true,
		Phone:        row.Phone,
		Address:      row.Address,
	}
	if row.Available != nil {
		rec.Available = *row.Available
	}
	if rec.Location == "" {
		rec.Location = defaultLocation
	}
	return rec, true
}

func normalizeGig(raw model.RawRecord) (model.GigRecord, bool) {
	for _, key := range []string{"gig_id", "skills", "category"} {
		if !hasKey(raw, key) {
			return model.GigRecord{}, false
		}
	}
	budgetMin, budgetMax, ok := budgetBounds(raw)
	if !ok {
		return model.GigRecord{}, false
	}

	var row gigRow
	if err := weakDecode(raw, &row); err != nil {
		return model.GigRecord{}, false
	}
	if row.GigID <= 0 || row.Category == "" {
		return model.GigRecord{}, false
	}

	rec := model.GigRecord{
		GigID:     row.GigID,
		Title:     row.Title,
		Skills:    canonicalSkills(row.Skills),
		BudgetMin: budgetMin,
		BudgetMax: budgetMax,
		Category:  strings.TrimSpace(row.Category),
		Location:  row.Location,
		Remote:    row.Remote,
		Status:    row.Status,
	}
	if rec.Location == "" {
		rec.Location = defaultLocation
	}
	if rec.Status == "" {
		rec.Status = defaultGigStatus
	}
	return rec, true
}

// budgetBounds extracts the budget range from a raw gig record. Accepted
// shapes: budget_min/budget_max columns, a scalar budget (min == max), or a
// two-element budget sequence. Reports false when no budget is present, a
// value fails numeric coercion, or the range is negative or inverted.
func budgetBounds(raw model.RawRecord) (float64, float64, bool) {
	if hasKey(raw, "budget_min") {
		minVal, ok := toFloat(raw["budget_min"])
		if !ok {
			return 0, 0, false
		}
		maxVal := minVal
		if hasKey(raw, "budget_max") {
			if maxVal, ok = toFloat(raw["budget_max"]); !ok {
				return 0, 0, false
			}
		}
		return checkBounds(minVal, maxVal)
	}

	if !hasKey(raw, "budget") {
		return 0, 0, false
	}
	switch v := raw["budget"].(type) {
	case []any:
		if len(v) != 2 {
			return 0, 0, false
		}
		minVal, okMin := toFloat(v[0])
		maxVal, okMax := toFloat(v[1])
		if !okMin || !okMax {
			return 0, 0, false
		}
		return checkBounds(minVal, maxVal)
	case []float64:
		if len(v) != 2 {
			return 0, 0, false
		}
		return checkBounds(v[0], v[1])
	default:
		val, ok := toFloat(v)
		if !ok {
			return 0, 0, false
		}
		return checkBounds(val, val)
	}
}

func checkBounds(minVal, maxVal float64) (float64, float64, bool) {
	if minVal < 0 || maxVal < minVal {
		return 0, 0, false
	}
	return minVal, maxVal, true
}

// weakDecode maps a raw record onto a typed row, coercing numeric-looking
// strings into numbers.
func weakDecode(raw model.RawRecord, target any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return err
	}
	return dec.Decode(map[string]any(raw))
}

// canonicalSkills lowercases and trims skill tags, dropping empties and
// duplicates while preserving first-seen order.
func canonicalSkills(skills []string) []string {
	out := make([]string, 0, len(skills))
	seen := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		s = strings.ToLower(strings.TrimSpace(s))
		if s == "" {
			continue
		}
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

func hasKey(raw model.RawRecord, key string) bool {
	v, ok := raw[key]
	return ok && v != nil
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
