package status

import (
	"context"
	"errors"

	"sam-audio-server/src/lib/cerr"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
)

const (
	idField       = "job_id"
	writeAttempts = 3
)

var ErrNotFound = errors.New("job status not found")

var _ Store = DynamoDBStatusStore{}

// NewDynamoDBStatusStore reads credentials from the environment. A non-empty
// endpoint points the client at a local DynamoDB.
func NewDynamoDBStatusStore(region string, endpoint string, tableName string) (DynamoDBStatusStore, error) {
	config := aws.NewConfig().WithCredentials(credentials.NewEnvCredentials())
	if region != "" {
		config = config.WithRegion(region)
	}

	if endpoint != "" {
		config = config.WithEndpoint(endpoint)
	}

	dbSession, err := session.NewSession(config)
	if err != nil {
		return DynamoDBStatusStore{}, cerr.Fields(cerr.F{
			"region":   region,
			"endpoint": endpoint,
		}).Wrap(err).Error("Failed to create DynamoDB session")
	}

	return DynamoDBStatusStore{
		dynamoDBClient: dynamodb.New(dbSession),
		tableName:      tableName,
	}, nil
}

type DynamoDBStatusStore struct {
	dynamoDBClient *dynamodb.DynamoDB
	tableName      string
}

func (d DynamoDBStatusStore) SetStatus(ctx context.Context, record Record) error {
	if record.JobID == "" {
		return cerr.Error("Job status needs a job id")
	}

	item := MarshalRecord(record)

	var err error
	for i := 0; i < writeAttempts; i++ {
		_, err = d.dynamoDBClient.PutItemWithContext(ctx, &dynamodb.PutItemInput{
			Item:      item,
			TableName: aws.String(d.tableName),
		})
		if err == nil || ctx.Err() != nil {
			break
		}
	}

	if err != nil {
		return cerr.Fields(cerr.F{
			"job_id": record.JobID,
			"table":  d.tableName,
		}).Wrap(err).Error("Failed to put job status into DynamoDB")
	}

	return nil
}

func (d DynamoDBStatusStore) GetStatus(ctx context.Context, jobID string) (Record, error) {
	errctx := cerr.Fields(cerr.F{
		"job_id": jobID,
		"table":  d.tableName,
	})

	output, err := d.dynamoDBClient.GetItemWithContext(ctx, &dynamodb.GetItemInput{
		ConsistentRead: aws.Bool(true),
		Key:            makeKey(jobID),
		TableName:      aws.String(d.tableName),
	})
	if err != nil {
		return Record{}, errctx.Wrap(err).Error("Failed to get job status from DynamoDB")
	}

	if len(output.Item) == 0 {
		return Record{}, errctx.Wrap(ErrNotFound).Error("No status recorded for job")
	}

	record, err := UnmarshalRecord(output.Item)
	if err != nil {
		return Record{}, errctx.Wrap(err).Error("Failed to extract job status from item")
	}

	return record, nil
}

func makeKey(jobID string) map[string]*dynamodb.AttributeValue {
	return map[string]*dynamodb.AttributeValue{
		idField: stringValue(jobID),
	}
}
