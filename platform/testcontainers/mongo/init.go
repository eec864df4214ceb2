package mongo

import (
	"context"
	"fmt"
	"net/url"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func startMongoContainer(ctx context.Context, cfg *Config) (testcontainers.Container, error) {
	req := testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image: cfg.ImageName,
			Env: map[string]string{
				mongoEnvUsernameKey:     cfg.Username,
				mongoEnvPasswordKey:     cfg.Password,
				"MONGO_INITDB_DATABASE": cfg.Database,
			},
			ExposedPorts:       []string{mongoPort + "/tcp"},
			WaitingFor:         wait.ForListeningPort(mongoPort + "/tcp").WithStartupTimeout(mongoStartupTimeout),
			HostConfigModifier: defaultHostConfig(),
		},
		Started: true,
	}

	for _, cz := range cfg.customizers {
		if err := cz.Customize(&req); err != nil {
			return nil, fmt.Errorf("failed to customize mongo container: %w", err)
		}
	}

	container, err := testcontainers.GenericContainer(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to start mongo container: %w", err)
	}

	return container, nil
}

func getContainerHostPort(ctx context.Context, container testcontainers.Container) (string, string, error) {
	host, err := container.Host(ctx)
	if err != nil {
		return "", "", fmt.Errorf("failed to get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, mongoPort+"/tcp")
	if err != nil {
		return "", "", fmt.Errorf("failed to get mapped port: %w", err)
	}

	return host, port.Port(), nil
}

func buildMongoURI(cfg *Config) string {
	u := url.URL{
		Scheme:   "mongodb",
		User:     url.UserPassword(cfg.Username, cfg.Password),
		Host:     cfg.Host + ":" + cfg.Port,
		Path:     "/" + cfg.Database,
		RawQuery: url.Values{"authSource": {cfg.AuthDB}}.Encode(),
	}
	return u.String()
}
