package snapshot

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"github.com/openshift-assisted/cluster-resources/internal/domain/entity"
)

const (
	keyTemplate = "<prefix>/<year>/<month>/<day>/<type>/<time>.ndjson"

	contentType = "application/x-ndjson"
)

var errMissingType = errors.New("missing snapshot type")

type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Writer stores a snapshot as one newline delimited JSON object.
type S3Writer struct {
	s3client ObjectPutter

	bucket string
	prefix string
}

func NewS3Writer(s3client ObjectPutter, bucket string, prefix string) S3Writer {
	return S3Writer{
		s3client: s3client,
		bucket:   bucket,
		prefix:   strings.TrimSuffix(prefix, "/"),
	}
}

func (w S3Writer) WriteSnapshot(ctx context.Context, snapshot entity.Snapshot) error {
	key, err := w.computeObjectKey(snapshot)
	if err != nil {
		return fmt.Errorf("failed to compute object key: %w", err)
	}

	body, err := encode(snapshot)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	params := &s3.PutObjectInput{
		Bucket:      &w.bucket,
		Key:         &key,
		Body:        bytes.NewReader(body),
		ContentType: aws.String(contentType),
	}

	_, err = w.s3client.PutObject(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to write in s3: %w", err)
	}

	return nil
}

func encode(snapshot entity.Snapshot) ([]byte, error) {
	buf := bytes.Buffer{}
	encoder := json.NewEncoder(&buf)

	for _, res := range snapshot.Resources {
		err := encoder.Encode(res)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal %s: %w", res.Identity(), err)
		}
	}

	return buf.Bytes(), nil
}

func (w S3Writer) computeObjectKey(snapshot entity.Snapshot) (string, error) {
	if snapshot.Type == "" {
		return "", errMissingType
	}

	ts := snapshot.Timestamp.UTC()

	template := strings.NewReplacer(
		"<prefix>", w.prefix,
		"<year>", fmt.Sprintf("%04d", ts.Year()),
		"<month>", fmt.Sprintf("%02d", ts.Month()),
		"<day>", fmt.Sprintf("%02d", ts.Day()),
		"<type>", snapshot.Type.String(),
		"<time>", ts.Format("150405"),
	)

	return template.Replace(keyTemplate), nil
}
