package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/asecurityteam/todolist/pkg/domain"
	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

const (
	// TypeDynamoDB selects the DynamoDB backed store.
	TypeDynamoDB = "DYNAMODB"
	// TypeMemory selects the in-process store.
	TypeMemory = "MEMORY"
	// DefaultTableName is the table provisioned for the service.
	DefaultTableName = "todo-items-ddb-table"
)

// DynamoDBConfig contains settings for the DynamoDB store.
type DynamoDBConfig struct {
	TableName string `description:"Name of the DynamoDB table holding todo items."`
	Region    string `description:"AWS region of the table. The SDK default chain is used when empty."`
	Endpoint  string `description:"Optional endpoint override such as a local DynamoDB."`
}

// Name of the config root.
func (*DynamoDBConfig) Name() string {
	return "dynamodb"
}

// DynamoDBComponent implements the settings.Component interface.
type DynamoDBComponent struct{}

// NewDynamoDBComponent populates an DynamoDBComponent with defaults.
func NewDynamoDBComponent() *DynamoDBComponent {
	return &DynamoDBComponent{}
}

// Settings generates a config populated with defaults.
func (*DynamoDBComponent) Settings() *DynamoDBConfig {
	return &DynamoDBConfig{TableName: DefaultTableName}
}

// New generates a DynamoDB store using the default AWS credential chain.
func (*DynamoDBComponent) New(ctx context.Context, conf *DynamoDBConfig) (*DynamoDB, error) {
	var opts []func(*awsconfig.LoadOptions) error
	if conf.Region != "" {
		opts = append(opts, awsconfig.WithRegion(conf.Region))
	}
	cfg, err := awsconfig.LoadDefaultConfig(ctx, opts...)
	if err != nil {
		return nil, err
	}
	client := dynamodb.NewFromConfig(cfg, func(o *dynamodb.Options) {
		// Failures surface to the caller as StoreUnavailableError on the
		// first attempt.
		o.RetryMaxAttempts = 1
		if conf.Endpoint != "" {
			o.BaseEndpoint = aws.String(conf.Endpoint)
		}
	})
	return &DynamoDB{Client: client, TableName: conf.TableName}, nil
}

// Config selects and configures the item store.
type Config struct {
	Type     string `description:"The type of item store to use. Valid options are DYNAMODB and MEMORY."`
	DynamoDB *DynamoDBConfig
}

// Name of the config root.
func (*Config) Name() string {
	return "store"
}

// Table wraps whichever domain.Store the configuration selected.
type Table struct {
	domain.Store
}

// Component implements the settings.Component interface.
type Component struct {
	DynamoDB *DynamoDBComponent
}

// NewComponent populates a Component with defaults.
func NewComponent() *Component {
	return &Component{
		DynamoDB: NewDynamoDBComponent(),
	}
}

// Settings generates a config populated with defaults.
func (c *Component) Settings() *Config {
	return &Config{
		Type:     TypeDynamoDB,
		DynamoDB: c.DynamoDB.Settings(),
	}
}

// New generates the configured store.
func (c *Component) New(ctx context.Context, conf *Config) (*Table, error) {
	switch {
	case strings.EqualFold(conf.Type, TypeDynamoDB):
		s, err := c.DynamoDB.New(ctx, conf.DynamoDB)
		if err != nil {
			return nil, err
		}
		return &Table{Store: s}, nil
	case strings.EqualFold(conf.Type, TypeMemory):
		return &Table{Store: NewMemory()}, nil
	default:
		return nil, fmt.Errorf("unknown store type %s", conf.Type)
	}
}
