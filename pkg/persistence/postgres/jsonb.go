package postgres // import "github.com/scrynet/moderation-protocol/pkg/persistence/postgres"

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JsonbPayload is the jsonb payload type for metadata columns
type JsonbPayload map[string]interface{}

// Value implements driver.Valuer for JsonbPayload
func (jp JsonbPayload) Value() (driver.Value, error) {
	return json.Marshal(jp)
}

// Scan implements sql.Scanner for JsonbPayload
func (jp *JsonbPayload) Scan(src interface{}) error {
	source, ok := src.([]byte)
	if !ok {
		return errors.New("Type assertion .([]byte) failed")
	}
	return json.Unmarshal(source, jp)
}
