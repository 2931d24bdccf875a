package managers

import (
	"context"
	"net/http"
	"time"

	exporthandler "github.com/commhealth/screening-record-service/internal/export/handler"
	exportservice "github.com/commhealth/screening-record-service/internal/export/service"
	healthhandler "github.com/commhealth/screening-record-service/internal/health_check/handler"
	healthservice "github.com/commhealth/screening-record-service/internal/health_check/service"
	personhandler "github.com/commhealth/screening-record-service/internal/person/handler"
	personservice "github.com/commhealth/screening-record-service/internal/person/service"
	"github.com/commhealth/screening-record-service/internal/person/store"
	"github.com/commhealth/screening-record-service/internal/system/database/client"
	"github.com/commhealth/screening-record-service/internal/system/services"
)

type ServiceManagerInterface interface {
	RegisterServices() error
}

// ServiceManager wires the store, services and handlers onto the mux. The
// database handle is passed in; nothing here owns connection state.
type ServiceManager struct {
	mux         *http.ServeMux
	mongoClient client.MongoClientInterface
	collection  string
	location    *time.Location
}

// NewServiceManager creates a new instance of ServiceManager.
func NewServiceManager(mux *http.ServeMux, mongoClient client.MongoClientInterface, collection string, location *time.Location) ServiceManagerInterface {

	return &ServiceManager{
		mux:         mux,
		mongoClient: mongoClient,
		collection:  collection,
		location:    location,
	}
}

func (sm *ServiceManager) RegisterServices() error {

	personStore := store.NewPersonStore(sm.mongoClient.Database(), sm.collection)
	if err := personStore.EnsureIndexes(context.Background()); err != nil {
		return err
	}

	personSvc := personservice.NewPersonService(personStore, sm.location)
	exportSvc := exportservice.NewExportService(personStore)
	healthSvc := healthservice.NewHealthCheckService(sm.mongoClient)

	services.NewPersonService(sm.mux, personhandler.NewPersonHandler(personSvc))
	services.NewExportService(sm.mux, exporthandler.NewExportHandler(exportSvc))
	services.NewHealthCheckService(sm.mux, healthhandler.NewHealthHandler(healthSvc))

	return nil
}
