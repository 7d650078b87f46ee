package mysql

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"property_search/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
func valInt(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}
func valInt64(p *int64) any {
	if p == nil {
		return nil
	}
	return *p
}
func valF64(p *float64) any {
	if p == nil {
		return nil
	}
	return *p
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) UpsertProperties(ctx context.Context, ps []domain.Property) error {
	if len(ps) == 0 {
		return nil
	}
	values := make([]string, 0, len(ps))
	args := make([]any, 0, len(ps)*propertyParamsPerRow)
	for _, p := range ps {
		values = append(values, propertyRowPlaceholders)
		args = append(args,
			p.ID,
			p.Name,
			p.Description,
			p.City,
			p.Price,
			p.RoomType,
			p.MinimumNights,
			valInt(p.NumberOfReviews),
			valStr(p.Image),
			valInt64(p.HostID),
			valStr(p.HostName),
			valStr(p.NeighbourhoodGroup),
			valStr(p.Neighbourhood),
			valF64(p.Latitude),
			valF64(p.Longitude),
			valStr(p.LastReview), // DATE accepts YYYY-MM-DD
			valF64(p.ReviewsPerMonth),
			valInt(p.CalculatedHostListingsCount),
			valInt(p.Availability365),
			valInt(p.NumberOfReviewsLTM),
			valStr(p.License),
		)
	}
	sqlStr := insertPropertiesPrefix + strings.Join(values, ",") + upsertPropertiesOnDup
	_, err := r.db.ExecContext(ctx, sqlStr, args...)
	return err
}

func (r *Repo) Search(ctx context.Context, city string) ([]domain.Property, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if city == "" {
		rows, err = r.db.QueryContext(ctx, searchAllSQL)
	} else {
		rows, err = r.db.QueryContext(ctx, searchByCitySQL, city)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Property{}
	for rows.Next() {
		p, err := scanProperty(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanProperty(rows *sql.Rows) (domain.Property, error) {
	var p domain.Property
	var (
		desc                    sql.NullString
		reviews                 sql.NullInt64
		image                   sql.NullString
		hostID                  sql.NullInt64
		hostName, ngroup, nhood sql.NullString
		lat, lon                sql.NullFloat64
		lastReview              sql.NullTime
		perMonth                sql.NullFloat64
		listings, avail, ltm    sql.NullInt64
		license                 sql.NullString
	)
	if err := rows.Scan(
		&p.ID,
		&p.Name,
		&desc,
		&p.City,
		&p.Price,
		&p.RoomType,
		&p.MinimumNights,
		&reviews,
		&image,
		&hostID,
		&hostName,
		&ngroup,
		&nhood,
		&lat, &lon,
		&lastReview,
		&perMonth,
		&listings,
		&avail,
		&ltm,
		&license,
	); err != nil {
		return domain.Property{}, err
	}

	p.Description = desc.String
	p.NumberOfReviews = nullInt(reviews)
	p.Image = nullStr(image)
	if hostID.Valid {
		v := hostID.Int64
		p.HostID = &v
	}
	p.HostName = nullStr(hostName)
	p.NeighbourhoodGroup = nullStr(ngroup)
	p.Neighbourhood = nullStr(nhood)
	p.Latitude = nullF64(lat)
	p.Longitude = nullF64(lon)
	if lastReview.Valid {
		d := lastReview.Time.Format(time.DateOnly)
		p.LastReview = &d
	}
	p.ReviewsPerMonth = nullF64(perMonth)
	p.CalculatedHostListingsCount = nullInt(listings)
	p.Availability365 = nullInt(avail)
	p.NumberOfReviewsLTM = nullInt(ltm)
	p.License = nullStr(license)
	return p, nil
}

func nullStr(n sql.NullString) *string {
	if !n.Valid {
		return nil
	}
	s := n.String
	return &s
}

func nullInt(n sql.NullInt64) *int {
	if !n.Valid {
		return nil
	}
	i := int(n.Int64)
	return &i
}

func nullF64(n sql.NullFloat64) *float64 {
	if !n.Valid {
		return nil
	}
	f := n.Float64
	return &f
}
