// Package network creates the docker network the e2e containers share.
package network

import (
	"context"
	"fmt"

	"github.com/testcontainers/testcontainers-go"
	tcnetwork "github.com/testcontainers/testcontainers-go/network"
)

type Network struct {
	network *testcontainers.DockerNetwork
}

func NewNetwork(ctx context.Context, projectName string) (*Network, error) {
	net, err := tcnetwork.New(ctx,
		tcnetwork.WithDriver(testcontainers.Bridge),
		tcnetwork.WithAttachable(),
		tcnetwork.WithLabels(map[string]string{
			"project": projectName,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("network.NewNetwork: %w", err)
	}

	return &Network{network: net}, nil
}

func (n *Network) Name() string {
	return n.network.Name
}

// Attach joins a container request to the network under the given aliases.
func (n *Network) Attach(aliases ...string) testcontainers.CustomizeRequestOption {
	return tcnetwork.WithNetwork(aliases, n.network)
}

func (n *Network) Remove(ctx context.Context) error {
	return n.network.Remove(ctx)
}
