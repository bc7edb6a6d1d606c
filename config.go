package conceptgate

import (
	"context"
	"fmt"
	"time"

	"github.com/viant/afs"
	"gopkg.in/yaml.v3"

	"github.com/ChangJu-Ahn/conceptgate/service/approval"
)

// Config is a serialisable representation of the gate configuration. It can
// be populated from YAML or JSON. The zero-value is useful - all nested
// fields inherit their package defaults.

type Config struct {
	Approval  ApprovalConfig  `json:"approval" yaml:"approval"`
	Report    ReportConfig    `json:"report" yaml:"report"`
	Messaging MessagingConfig `json:"messaging" yaml:"messaging"`
}

type ApprovalConfig struct {
	// ContextLimit caps the analysis excerpt embedded in the reviewer prompt.
	ContextLimit int `json:"contextLimit" yaml:"contextLimit"`
	// DecisionTimeout bounds how long Review waits for a reviewer decision.
	// In YAML it is written as a duration string, e.g. "5m" or "90s".
	DecisionTimeout time.Duration `json:"decisionTimeout" yaml:"decisionTimeout"`
}

func (c *ApprovalConfig) UnmarshalYAML(node *yaml.Node) error {
	transient := struct {
		ContextLimit    int    `yaml:"contextLimit"`
		DecisionTimeout string `yaml:"decisionTimeout"`
	}{ContextLimit: c.ContextLimit}
	if err := node.Decode(&transient); err != nil {
		return err
	}
	c.ContextLimit = transient.ContextLimit
	if transient.DecisionTimeout != "" {
		timeout, err := time.ParseDuration(transient.DecisionTimeout)
		if err != nil {
			return fmt.Errorf("invalid approval.decisionTimeout %q: %w", transient.DecisionTimeout, err)
		}
		c.DecisionTimeout = timeout
	}
	return nil
}

type ReportConfig struct {
	// BaseURL is the destination for saved outcome documents.
	BaseURL string `json:"baseURL" yaml:"baseURL"`
}

type MessagingConfig struct {
	// QueueBuffer sizes the in-memory channels; zero keeps the package default.
	QueueBuffer int `json:"queueBuffer" yaml:"queueBuffer"`
	// MaxRetries bounds redelivery before a message moves to the dead letter
	// queue; zero keeps the package default.
	MaxRetries int `json:"maxRetries" yaml:"maxRetries"`
}

// DefaultConfig returns a Config populated with the same default values the
// constructors use. Callers may modify the returned struct before passing it
// to New via WithConfig.
func DefaultConfig() *Config {
	return &Config{
		Approval: ApprovalConfig{
			ContextLimit:    approval.DefaultContextLimit,
			DecisionTimeout: 5 * time.Minute,
		},
	}
}

// Validate returns aggregated error describing invalid settings or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Approval.ContextLimit < 0 {
		return fmt.Errorf("approval.contextLimit must be >= 0")
	}
	if c.Approval.DecisionTimeout < 0 {
		return fmt.Errorf("approval.decisionTimeout must be >= 0")
	}
	if c.Messaging.QueueBuffer < 0 {
		return fmt.Errorf("messaging.queueBuffer must be >= 0")
	}
	if c.Messaging.MaxRetries < 0 {
		return fmt.Errorf("messaging.maxRetries must be >= 0")
	}
	return nil
}

// LoadConfig reads and validates a YAML configuration from the supplied URL.
func LoadConfig(ctx context.Context, URL string) (*Config, error) {
	fs := afs.New()
	data, err := fs.DownloadWithURL(ctx, URL)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %v: %w", URL, err)
	}
	ret := DefaultConfig()
	if err := yaml.Unmarshal(data, ret); err != nil {
		return nil, fmt.Errorf("failed to parse config %v: %w", URL, err)
	}
	if err := ret.Validate(); err != nil {
		return nil, err
	}
	return ret, nil
}
