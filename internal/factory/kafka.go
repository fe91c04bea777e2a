package factory

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"strings"

	"github.com/IBM/sarama"
	"github.com/xdg-go/scram"

	"github.com/openshift-assisted/cluster-resources/internal/config"
)

var errUnsupportedMechanism = errors.New("unsupported sasl mechanism")

func CreateKafkaConsumer(kafkaConfig config.Kafka) (sarama.ConsumerGroup, error) {
	conf, err := createSaramaConfig(kafkaConfig)
	if err != nil {
		return nil, err
	}

	urls := strings.Split(kafkaConfig.Broker.URLs, ",")

	ret, err := sarama.NewConsumerGroup(urls, kafkaConfig.Consumer.Group, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka consumer group: %w", err)
	}

	return ret, nil
}

func createSaramaConfig(kafkaConfig config.Kafka) (*sarama.Config, error) {
	conf := sarama.NewConfig()

	conf.Consumer.Offsets.AutoCommit.Enable = true
	conf.Consumer.Return.Errors = true
	conf.Consumer.Offsets.Initial = sarama.OffsetOldest

	conf.ClientID = computeClientID(kafkaConfig.Consumer.Group)

	version, err := sarama.ParseKafkaVersion(kafkaConfig.Broker.Version)
	if err != nil {
		return nil, fmt.Errorf("failed to parse kafka version: %w", err)
	}

	conf.Version = version

	creds := kafkaConfig.Broker.Creds
	if creds.Username == "" {
		return conf, nil
	}

	generator, err := scramClientGenerator(creds.Mechanism)
	if err != nil {
		return nil, err
	}

	conf.Net.SASL.Enable = true
	conf.Net.SASL.Mechanism = sarama.SASLMechanism(creds.Mechanism)
	conf.Net.SASL.User = creds.Username
	conf.Net.SASL.Password = creds.Password
	conf.Net.SASL.SCRAMClientGeneratorFunc = generator

	return conf, nil
}

func scramClientGenerator(mechanism string) (func() sarama.SCRAMClient, error) {
	switch sarama.SASLMechanism(mechanism) {
	case sarama.SASLTypeSCRAMSHA512:
		return func() sarama.SCRAMClient { return &scramClient{hashGenerator: scram.SHA512} }, nil
	case sarama.SASLTypeSCRAMSHA256:
		return func() sarama.SCRAMClient { return &scramClient{hashGenerator: scram.SHA256} }, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnsupportedMechanism, mechanism)
	}
}

// scramClient implements sarama.SCRAMClient.
type scramClient struct {
	*scram.ClientConversation
	hashGenerator scram.HashGeneratorFcn
}

func (c *scramClient) Begin(userName, password, authzID string) error {
	client, err := c.hashGenerator.NewClient(userName, password, authzID)
	if err != nil {
		return fmt.Errorf("failed to create scram client: %w", err)
	}

	c.ClientConversation = client.NewConversation()

	return nil
}

func (c *scramClient) Step(challenge string) (string, error) {
	return c.ClientConversation.Step(challenge)
}

func (c *scramClient) Done() bool {
	return c.ClientConversation.Done()
}

func computeClientID(groupID string) string {
	prefix, err := os.Hostname()
	if err != nil {
		prefix = fmt.Sprintf("clientid-%v", groupID)
	}

	return fmt.Sprintf("%s-%x", prefix, rand.Int31())
}
