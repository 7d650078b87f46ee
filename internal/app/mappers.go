package app

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"property_search/internal/domain"
)

/********** alias registries (single source of truth) **********/

// columnAliases maps a Property field to the CSV headers that may carry it.
// The first header present in the file wins.
var columnAliases = map[string][]string{
	"id":                             {"id", "listing_id"},
	"name":                           {"name", "title", "listing_name"},
	"description":                    {"description", "summary", "neighborhood_overview"},
	"city":                           {"city", "market"},
	"price":                          {"price", "nightly_price"},
	"room_type":                      {"room_type", "property_type"},
	"minimum_nights":                 {"minimum_nights", "min_nights"},
	"number_of_reviews":              {"number_of_reviews", "reviews"},
	"image":                          {"image", "image_url", "picture_url", "thumbnail_url"},
	"host_id":                        {"host_id"},
	"host_name":                      {"host_name"},
	"neighbourhood_group":            {"neighbourhood_group", "neighbourhood_group_cleansed"},
	"neighbourhood":                  {"neighbourhood", "neighbourhood_cleansed", "neighborhood"},
	"latitude":                       {"latitude", "lat"},
	"longitude":                      {"longitude", "lon", "lng"},
	"last_review":                    {"last_review"},
	"reviews_per_month":              {"reviews_per_month"},
	"calculated_host_listings_count": {"calculated_host_listings_count"},
	"availability_365":               {"availability_365"},
	"number_of_reviews_ltm":          {"number_of_reviews_ltm"},
	"license":                        {"license"},
}

var errMissingHeader = errors.New("listings csv: id and name columns are required")

/********** header resolution **********/

type columns map[string]int

func resolveColumns(header []string) (columns, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		if _, dup := pos[h]; !dup {
			pos[h] = i
		}
	}
	cols := columns{}
	for field, aliases := range columnAliases {
		for _, a := range aliases {
			if i, ok := pos[a]; ok {
				cols[field] = i
				break
			}
		}
	}
	if _, ok := cols["id"]; !ok {
		return nil, errMissingHeader
	}
	if _, ok := cols["name"]; !ok {
		return nil, errMissingHeader
	}
	return cols, nil
}

func (c columns) str(rec []string, field string) string {
	i, ok := c[field]
	if !ok || i >= len(rec) {
		return ""
	}
	return strings.TrimSpace(rec[i])
}

func (c columns) optStr(rec []string, field string) *string {
	if s := c.str(rec, field); s != "" {
		return &s
	}
	return nil
}

func (c columns) optInt(rec []string, field string) *int {
	s := c.str(rec, field)
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return nil
	}
	return &n
}

func (c columns) optInt64(rec []string, field string) *int64 {
	s := c.str(rec, field)
	if s == "" {
		return nil
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return nil
	}
	return &n
}

func (c columns) optFloat(rec []string, field string) *float64 {
	s := c.str(rec, field)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}

// optDate keeps only YYYY-MM-DD values; anything else would fail the
// whole multi-row upsert.
func (c columns) optDate(rec []string, field string) *string {
	s := c.str(rec, field)
	if s == "" {
		return nil
	}
	if _, err := time.Parse(time.DateOnly, s); err != nil {
		return nil
	}
	return &s
}

// parsePrice accepts "120", "$1,200.00" and friends.
func parsePrice(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, nil
	}
	s = strings.NewReplacer("$", "", "€", "", "£", "", ",", "").Replace(s)
	return strconv.ParseFloat(strings.TrimSpace(s), 64)
}

/********** row mapping **********/

func mapRow(c columns, rec []string, defaultCity string) (domain.Property, error) {
	idStr := c.str(rec, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return domain.Property{}, fmt.Errorf("bad id %q", idStr)
	}
	name := c.str(rec, "name")
	if name == "" {
		return domain.Property{}, fmt.Errorf("listing %d has no name", id)
	}
	price, err := parsePrice(c.str(rec, "price"))
	if err != nil {
		return domain.Property{}, fmt.Errorf("listing %d: bad price: %w", id, err)
	}

	p := domain.Property{
		ID:          id,
		Name:        name,
		Description: c.str(rec, "description"),
		City:        c.str(rec, "city"),
		Price:       price,
		RoomType:    c.str(rec, "room_type"),

		NumberOfReviews:             c.optInt(rec, "number_of_reviews"),
		Image:                       c.optStr(rec, "image"),
		HostID:                      c.optInt64(rec, "host_id"),
		HostName:                    c.optStr(rec, "host_name"),
		NeighbourhoodGroup:          c.optStr(rec, "neighbourhood_group"),
		Neighbourhood:               c.optStr(rec, "neighbourhood"),
		Latitude:                    c.optFloat(rec, "latitude"),
		Longitude:                   c.optFloat(rec, "longitude"),
		LastReview:                  c.optDate(rec, "last_review"),
		ReviewsPerMonth:             c.optFloat(rec, "reviews_per_month"),
		CalculatedHostListingsCount: c.optInt(rec, "calculated_host_listings_count"),
		Availability365:             c.optInt(rec, "availability_365"),
		NumberOfReviewsLTM:          c.optInt(rec, "number_of_reviews_ltm"),
		License:                     c.optStr(rec, "license"),
	}
	if p.City == "" {
		p.City = defaultCity
	}
	if n := c.optInt(rec, "minimum_nights"); n != nil {
		p.MinimumNights = *n
	} else {
		p.MinimumNights = 1
	}
	return p, nil
}

// ParseListingsCSV reads an Inside-Airbnb style listings export (or any CSV
// whose headers match columnAliases). Rows that cannot be mapped are logged
// and skipped; only a missing header or a broken CSV stream is an error.
func ParseListingsCSV(r io.Reader, defaultCity string) ([]domain.Property, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	cols, err := resolveColumns(header)
	if err != nil {
		return nil, err
	}

	var out []domain.Property
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return out, fmt.Errorf("line %d: %w", line, err)
		}
		p, err := mapRow(cols, rec, defaultCity)
		if err != nil {
			log.Warn().Int("line", line).Err(err).Msg("skipping listing row")
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// Batches splits ps into consecutive chunks of at most size items.
func Batches(ps []domain.Property, size int) [][]domain.Property {
	if size <= 0 {
		size = len(ps)
	}
	var out [][]domain.Property
	for len(ps) > 0 {
		n := min(size, len(ps))
		out = append(out, ps[:n])
		ps = ps[n:]
	}
	return out
}
