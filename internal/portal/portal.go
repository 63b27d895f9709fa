// Package portal runs the external "Tout sur mon eau" portal client.
//
// The executable is invoked as `<command> [args...] <action>`, with the account passed through the environment:
//
//	SUEZ_USERNAME, SUEZ_PASSWORD, SUEZ_METER_ID, SUEZ_USE_LITRE, SUEZ_COMPATIBILITY
//
// It writes a YAML (or JSON) document to stdout and exits with a non-zero status on failure. Actions:
//
//	check_credentials: a boolean
//	update:            a mapping with a numeric "state" and an "attributes" mapping
package portal

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"github.com/clambin/suez-monitor/internal/sensor"
	"gopkg.in/yaml.v3"
	"os"
	"os/exec"
	"slices"
	"strconv"
	"strings"
)

const (
	actionCheckCredentials = "check_credentials"
	actionUpdate           = "update"
)

var ErrNoState = errors.New("no state in portal output")

var _ sensor.Client = &Client{}

// Client implements sensor.Client by running the portal client executable.
type Client struct {
	path       string
	args       []string
	env        []string
	state      float64
	attributes map[string]any
}

// New returns a sensor.NewClientFunc that creates a Client for the specified executable.
func New(command string, args ...string) sensor.NewClientFunc {
	return func(options sensor.Options) (sensor.Client, error) {
		path, err := exec.LookPath(command)
		if err != nil {
			return nil, fmt.Errorf("portal client: %w", err)
		}
		return &Client{
			path: path,
			args: args,
			env: append(os.Environ(),
				"SUEZ_USERNAME="+options.Username,
				"SUEZ_PASSWORD="+options.Password,
				"SUEZ_METER_ID="+options.MeterID,
				"SUEZ_USE_LITRE="+strconv.FormatBool(options.UseLitre),
				"SUEZ_COMPATIBILITY="+strconv.FormatBool(options.Compatibility),
			),
		}, nil
	}
}

func (c *Client) CheckCredentials(ctx context.Context) (bool, error) {
	var ok bool
	err := c.run(ctx, actionCheckCredentials, &ok)
	return ok, err
}

func (c *Client) Update(ctx context.Context) error {
	var output struct {
		State      *float64       `yaml:"state"`
		Attributes map[string]any `yaml:"attributes"`
	}
	if err := c.run(ctx, actionUpdate, &output); err != nil {
		return err
	}
	if output.State == nil {
		return ErrNoState
	}
	c.state = *output.State
	c.attributes = output.Attributes
	if c.attributes == nil {
		c.attributes = make(map[string]any)
	}
	return nil
}

func (c *Client) State() float64 {
	return c.state
}

func (c *Client) Attributes() map[string]any {
	return c.attributes
}

func (c *Client) run(ctx context.Context, action string, output any) error {
	cmd := exec.CommandContext(ctx, c.path, append(slices.Clone(c.args), action)...)
	cmd.Env = c.env
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			err = fmt.Errorf("%w: %s", err, msg)
		}
		return fmt.Errorf("%s: %w", action, err)
	}
	if err := yaml.NewDecoder(&stdout).Decode(output); err != nil {
		return fmt.Errorf("%s: invalid output: %w", action, err)
	}
	return nil
}
