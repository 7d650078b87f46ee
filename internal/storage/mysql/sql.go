package mysql

const propertyColumns = `
  id,
  name,
  description,
  city,
  price,
  room_type,
  minimum_nights,
  number_of_reviews,
  image,
  host_id,
  host_name,
  neighbourhood_group,
  neighbourhood,
  latitude,
  longitude,
  last_review,
  reviews_per_month,
  calculated_host_listings_count,
  availability_365,
  number_of_reviews_ltm,
  license`

const insertPropertiesPrefix = "INSERT INTO properties\n  (" + propertyColumns + ")\nVALUES "

// one placeholder per column in propertyColumns
const propertyRowPlaceholders = "(?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)"

const propertyParamsPerRow = 21

const upsertPropertiesOnDup = ` ON DUPLICATE KEY UPDATE
  name                           = VALUES(name),
  description                    = VALUES(description),
  city                           = VALUES(city),
  price                          = VALUES(price),
  room_type                      = VALUES(room_type),
  minimum_nights                 = VALUES(minimum_nights),
  number_of_reviews              = VALUES(number_of_reviews),
  image                          = VALUES(image),
  host_id                        = VALUES(host_id),
  host_name                      = VALUES(host_name),
  neighbourhood_group            = VALUES(neighbourhood_group),
  neighbourhood                  = VALUES(neighbourhood),
  latitude                       = VALUES(latitude),
  longitude                      = VALUES(longitude),
  last_review                    = VALUES(last_review),
  reviews_per_month              = VALUES(reviews_per_month),
  calculated_host_listings_count = VALUES(calculated_host_listings_count),
  availability_365               = VALUES(availability_365),
  number_of_reviews_ltm          = VALUES(number_of_reviews_ltm),
  license                        = VALUES(license),
  updated_at                     = CURRENT_TIMESTAMP
`

// -----------------------------------------------------------------------------
// READ QUERIES
// -----------------------------------------------------------------------------

// city uses a binary collation, so the filter is an exact, case-sensitive match.
const searchAllSQL = "SELECT" + propertyColumns + "\nFROM properties\nORDER BY id"

const searchByCitySQL = "SELECT" + propertyColumns + "\nFROM properties\nWHERE city = ?\nORDER BY id"
