package status

import (
	"strconv"
	"time"

	"sam-audio-server/src/lib/cerr"

	"github.com/aws/aws-sdk-go/service/dynamodb"
)

// MarshalRecord leaves out empty optional attributes.
func MarshalRecord(record Record) map[string]*dynamodb.AttributeValue {
	item := map[string]*dynamodb.AttributeValue{
		idField:      stringValue(record.JobID),
		"state":      stringValue(string(record.State)),
		"updated_at": stringValue(record.UpdatedAt.UTC().Format(time.RFC3339Nano)),
	}

	optional := map[string]string{
		"track":      record.Track,
		"source_url": record.SourceURL,
		"dest_url":   record.DestURL,
		"error":      record.Error,
	}
	for key, value := range optional {
		if value != "" {
			item[key] = stringValue(value)
		}
	}

	if record.SampleRate > 0 {
		sampleRate := dynamodb.AttributeValue{}
		sampleRate.SetN(strconv.Itoa(record.SampleRate))
		item["sample_rate"] = &sampleRate
	}

	return item
}

func UnmarshalRecord(item map[string]*dynamodb.AttributeValue) (Record, error) {
	jobID, err := getStringField(item, idField)
	if err != nil {
		return Record{}, cerr.Wrap(err).Error("Failed to get job id")
	}

	state, err := getStringField(item, "state")
	if err != nil {
		return Record{}, cerr.Wrap(err).Error("Failed to get job state")
	}

	updatedAtValue, err := getStringField(item, "updated_at")
	if err != nil {
		return Record{}, cerr.Wrap(err).Error("Failed to get update time")
	}

	updatedAt, err := time.Parse(time.RFC3339Nano, updatedAtValue)
	if err != nil {
		return Record{}, cerr.Field("updated_at", updatedAtValue).Wrap(err).Error("Update time is not RFC3339")
	}

	sampleRate, err := getOptionalIntField(item, "sample_rate")
	if err != nil {
		return Record{}, cerr.Wrap(err).Error("Failed to get sample rate")
	}

	return Record{
		JobID:      jobID,
		State:      State(state),
		Track:      getOptionalStringField(item, "track"),
		SourceURL:  getOptionalStringField(item, "source_url"),
		DestURL:    getOptionalStringField(item, "dest_url"),
		SampleRate: sampleRate,
		Error:      getOptionalStringField(item, "error"),
		UpdatedAt:  updatedAt,
	}, nil
}

func stringValue(value string) *dynamodb.AttributeValue {
	attributeValue := dynamodb.AttributeValue{}
	attributeValue.SetS(value)
	return &attributeValue
}

func getStringField(object map[string]*dynamodb.AttributeValue, fieldKey string) (string, error) {
	stringVal, ok := object[fieldKey]
	if !ok {
		return "", cerr.Field("key", fieldKey).Error("Missing string key on object")
	}

	if stringVal.S == nil {
		return "", cerr.Field("key", fieldKey).Error("String value is empty")
	}

	return *stringVal.S, nil
}

func getOptionalStringField(object map[string]*dynamodb.AttributeValue, fieldKey string) string {
	value, err := getStringField(object, fieldKey)
	if err != nil {
		return ""
	}

	return value
}

func getOptionalIntField(object map[string]*dynamodb.AttributeValue, fieldKey string) (int, error) {
	numberVal, ok := object[fieldKey]
	if !ok || numberVal.N == nil {
		return 0, nil
	}

	value, err := strconv.Atoi(*numberVal.N)
	if err != nil {
		return 0, cerr.Field("key", fieldKey).Wrap(err).Error("Number value is not an integer")
	}

	return value, nil
}
