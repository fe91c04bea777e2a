package deadletter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/jonboulle/clockwork"

	"github.com/openshift-assisted/cluster-resources/internal/domain/entity"
	"github.com/openshift-assisted/cluster-resources/internal/log"
	"github.com/openshift-assisted/cluster-resources/internal/version"
)

const (
	unknownHostname = "<unknown>"

	keyTemplate = "<prefix>/<year>/<month>/<day>/<topic>/<partition>-<offset>.json"
)

var errMissingTopic = errors.New("missing topic")

type ObjectPutter interface {
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

// S3Writer keeps the messages the ingester could not process, one object per
// message, next to the reason of the failure.
type S3Writer struct {
	s3client ObjectPutter
	clock    clockwork.Clock

	bucket string
	prefix string

	hostname string
}

func NewS3Writer(s3client ObjectPutter, clock clockwork.Clock, bucket string, prefix string) S3Writer {
	hostname, err := os.Hostname()
	if err != nil {
		log.Logger().Error(err, "failed to get hostname, falling backing to "+unknownHostname)

		hostname = unknownHostname
	}

	return S3Writer{
		s3client: s3client,
		clock:    clock,
		bucket:   bucket,
		prefix:   strings.TrimSuffix(prefix, "/"),
		hostname: hostname,
	}
}

func (w S3Writer) WriteDeadLetter(ctx context.Context, letter entity.DeadLetter) error {
	key, err := w.computeObjectKey(letter)
	if err != nil {
		return fmt.Errorf("failed to compute object key: %w", err)
	}

	b, err := json.Marshal(w.createDeadLetter(letter))
	if err != nil {
		return fmt.Errorf("failed to marshal local model: %w", err)
	}

	params := &s3.PutObjectInput{
		Bucket: &w.bucket,
		Key:    &key,
		Body:   bytes.NewReader(b),
	}

	_, err = w.s3client.PutObject(ctx, params)
	if err != nil {
		return fmt.Errorf("failed to write in s3: %w", err)
	}

	return nil
}

func (w S3Writer) createDeadLetter(letter entity.DeadLetter) DeadLetter {
	return DeadLetter{
		ProcessingContext: ProcessingContext{
			Component: Component{
				Branch:   version.Branch,
				Revision: version.Revision,
			},
			Time: w.clock.Now().UTC(),
			Host: w.hostname,
		},
		Source: Source{
			Topic:     letter.Topic,
			Partition: letter.Partition,
			Offset:    letter.Offset,
			Payload:   letter.Payload,
		},
		Reason: Reason{
			Category: letter.Category,
			Error:    letter.Reason,
		},
	}
}

func (w S3Writer) computeObjectKey(letter entity.DeadLetter) (string, error) {
	if letter.Topic == "" {
		return "", errMissingTopic
	}

	ts := letter.Timestamp.UTC()

	template := strings.NewReplacer(
		"<prefix>", w.prefix,
		"<year>", fmt.Sprintf("%04d", ts.Year()),
		"<month>", fmt.Sprintf("%02d", ts.Month()),
		"<day>", fmt.Sprintf("%02d", ts.Day()),
		"<topic>", letter.Topic,
		"<partition>", fmt.Sprintf("%d", letter.Partition),
		"<offset>", fmt.Sprintf("%d", letter.Offset),
	)

	return template.Replace(keyTemplate), nil
}
