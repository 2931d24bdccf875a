package setup

import (
	"context"
	"fmt"
	"log"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type TestMongo struct {
	Container testcontainers.Container
	Client    *mongo.Client
	URI       string
}

func SetupTestMongo(ctx context.Context) (*TestMongo, error) {
	req := testcontainers.ContainerRequest{
		Image:        "mongo:7",
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp"),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, err
	}

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "27017")

	uri := fmt.Sprintf("mongodb://%s:%s", host, port.Port())
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	log.Printf("Mongo container started at %s:%s", host, port.Port())

	return &TestMongo{
		Container: container,
		Client:    client,
		URI:       uri,
	}, nil
}

func (tm *TestMongo) Teardown(ctx context.Context) {
	_ = tm.Client.Disconnect(ctx)
	_ = tm.Container.Terminate(ctx)
}
