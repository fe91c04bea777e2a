package factory

import (
	"context"
	"fmt"

	"github.com/valkey-io/valkey-go"

	"github.com/openshift-assisted/cluster-resources/internal/common"
	"github.com/openshift-assisted/cluster-resources/internal/config"
)

// CreateValkeyClient connects to the state store and checks it answers.
func CreateValkeyClient(ctx context.Context, conf config.Valkey) (valkey.Client, common.CloseFunc, error) {
	client, err := valkey.NewClient(valkey.ClientOption{
		InitAddress:  []string{conf.URL},
		Password:     conf.Creds.Password,
		DisableCache: true,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create valkey client: %w", err)
	}

	err = client.Do(ctx, client.B().Ping().Build()).Error()
	if err != nil {
		client.Close()

		return nil, nil, fmt.Errorf("failed to ping valkey %s: %w", conf.URL, err)
	}

	closeFunc := func(context.Context) error {
		client.Close()

		return nil
	}

	return client, closeFunc, nil
}
