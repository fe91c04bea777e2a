package ingest

import (
	"crypto/md5"
	"encoding/hex"
	"errors"
	"fmt"
	"time"
)

var (
	errMissingKey       = errors.New("missing key")
	errFieldInvalidType = errors.New("field type was not the expected one")
	errEmptyValue       = errors.New("empty value")
)

const eventDateLayout = "2006-01-02T15:04:05.000Z"

func ExtractString(payload map[string]interface{}, key string) (string, error) {
	value, present := payload[key]
	if !present {
		return "", errMissingKey
	}

	ret, ok := value.(string)
	if !ok {
		return "", errFieldInvalidType
	}

	if ret == "" {
		return "", errEmptyValue
	}

	return ret, nil
}

// ValidateDate parses the millisecond UTC dates the backend emits.
func ValidateDate(date string) (time.Time, error) {
	ret, err := time.Parse(eventDateLayout, date)
	if err != nil {
		return ret, fmt.Errorf("failed to parse time: %w", err)
	}

	return ret, nil
}

func CopyPayload(payload map[string]interface{}) map[string]interface{} {
	ret := make(map[string]interface{}, len(payload))

	for k, v := range payload {
		ret[k] = v
	}

	return ret
}

func HashValue(payload map[string]interface{}, key string) (string, error) {
	value, err := ExtractString(payload, key)
	if err != nil {
		return "", fmt.Errorf("failed to extract string: %w", err)
	}

	sum := md5.Sum([]byte(value))

	return hex.EncodeToString(sum[:]), nil
}

// anonymize replaces key by its hash under hashKey. Absent keys are ignored.
func anonymize(payload map[string]interface{}, key string, hashKey string) error {
	_, ok := payload[key]
	if !ok {
		return nil
	}

	hashed, err := HashValue(payload, key)
	if err != nil {
		return err
	}

	payload[hashKey] = hashed
	delete(payload, key)

	return nil
}
