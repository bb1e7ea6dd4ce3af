package genres

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// List is an ordered set of genre names stored as a JSON-encoded text column.
// Postgres and sqlite both take the same encoding, so the models work
// unchanged against either.
type List []string

// Scan allows List to be read from the database
func (l *List) Scan(src interface{}) error {
	var data []byte

	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	case nil:
		*l = nil
		return nil
	default:
		return fmt.Errorf("cannot scan %T into genres.List", src)
	}

	if len(data) == 0 {
		*l = nil
		return nil
	}
	return json.Unmarshal(data, l)
}

// Value allows List to be written into the database
func (l List) Value() (driver.Value, error) {
	if l == nil {
		l = List{}
	}
	out, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(out), nil
}
