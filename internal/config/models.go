package config

import (
	"fmt"
	"time"
)

type Config struct {
	GracefulDuration time.Duration
	DefaultTimeout   time.Duration
	Metrics          Metrics
	Logs             Logs
	HTTP             HTTP
	Security         Security
	Valkey           Valkey
	Catalog          Catalog
	Hosts            Hosts
	Providers        Providers
	Kafka            Kafka
	S3               S3
	DeadLetterQueue  S3
}

type Metrics struct {
	Port int
}

type Logs struct {
	Level   int
	Encoder EncoderType
}

type EncoderType string

const (
	EncoderTypeJson    EncoderType = "json"
	EncoderTypeConsole EncoderType = "console"
)

// HTTP is the query API listener. TLS is enabled when both files are set.
type HTTP struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	TLS          TLS
}

type TLS struct {
	CertFile string
	KeyFile  string
}

func (t TLS) Enabled() bool {
	return t.CertFile != "" && t.KeyFile != ""
}

// Security holds the values of the security response headers. An empty value
// disables the header.
type Security struct {
	StrictTransportSecurity string
	XFrameOptions           string
	XXSSProtection          string
}

type Catalog struct {
	Path string
}

type HostSource string

const (
	HostSourceValkey     HostSource = "valkey"
	HostSourceKubernetes HostSource = "kubernetes"
)

type Hosts struct {
	Source     HostSource
	Kubernetes Kubernetes
}

type Kubernetes struct {
	Kubeconfig    string
	ClusterID     string
	LabelSelector string
}

type Providers struct {
	FailurePolicy string
	Timeout       time.Duration
	Retry         Retry
}

type Retry struct {
	MaxAttempt uint
	Delay      time.Duration
}

type S3 struct {
	Bucket       string
	KeyPrefix    string
	BaseEndpoint string
	Region       string
	UsePathStyle bool
	Creds        AWSCreds
}

type AWSCreds struct {
	AccessKeyID     string
	SecretAccessKey string
}

func (c AWSCreds) String() string {
	if c.AccessKeyID != "" && c.SecretAccessKey != "" {
		return "creds set"
	}

	return "no creds"
}

type Kafka struct {
	Broker   KafkaBroker
	Consumer KafkaConsumer
}

type KafkaBroker struct {
	URLs    string
	Version string
	Creds   KafkaCreds
}

// KafkaCreds enables SASL/SCRAM when a username is set.
type KafkaCreds struct {
	Mechanism string
	Username  string
	Password  string
}

func (c KafkaCreds) String() string {
	if c.Username == "" {
		return "no sasl"
	}

	return fmt.Sprintf("%s as %s", c.Mechanism, c.Username)
}

// KafkaConsumer pauses for OutageBackoff when the state store or the dead
// letter queue is unavailable.
type KafkaConsumer struct {
	Topic         string
	Group         string
	OutageBackoff time.Duration
}

type Valkey struct {
	URL        string
	Expiration time.Duration
	Creds      ValkeyCreds
}

type ValkeyCreds struct {
	Password string
}

func (c ValkeyCreds) String() string {
	if c.Password != "" {
		return "password set"
	}

	return "no password"
}
