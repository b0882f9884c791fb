package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/greenschool/canteen-server/internal/config"
	"github.com/greenschool/canteen-server/internal/events"
	"github.com/greenschool/canteen-server/internal/handlers/v1/admin"
	"github.com/greenschool/canteen-server/internal/handlers/v1/dashboard"
	"github.com/greenschool/canteen-server/internal/handlers/v1/eventstream"
	"github.com/greenschool/canteen-server/internal/handlers/v1/session"
	"github.com/greenschool/canteen-server/internal/handlers/v1/status"
	"github.com/greenschool/canteen-server/internal/handlers/v1/student"
	"github.com/greenschool/canteen-server/internal/handlers/v1/theme"
	"github.com/greenschool/canteen-server/internal/logging"
	"github.com/greenschool/canteen-server/internal/operator"
	"github.com/greenschool/canteen-server/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Config   *config.Config
	Service  *service.Service
	Operator *operator.OperatorDelegator
	Bus      *events.Bus
}

func (r *Rest) Serve() {
	apiMux := http.NewServeMux()
	apiV1 := humago.New(apiMux, huma.DefaultConfig("canteen-server", "1.0.0"))

	session.NewLoginHandler(r.Config.AdminPassword, r.Service.Ledger).Register(apiV1)
	student.NewGetStudentHandler(r.Service.Ledger).Register(apiV1)
	student.NewRecordPurchaseHandler(r.Operator).Register(apiV1)
	admin.NewListStudentsHandler(r.Service.Ledger).Register(apiV1)
	admin.NewListTransactionsHandler(r.Service.Ledger).Register(apiV1)
	admin.NewTopUpHandler(r.Operator).Register(apiV1)
	admin.NewUpdateWasteHandler(r.Operator).Register(apiV1)
	dashboard.NewGetWasteHandler(r.Service.Waste, r.Config.WasteCapacityKg).Register(apiV1)
	dashboard.NewListPricesHandler(r.Service.Catalog).Register(apiV1)
	theme.NewHandler(r.Service.Catalog, r.Operator).Register(apiV1)
	eventstream.NewHandler(r.Bus).Register(apiV1)

	// Status logs through its own wrapper; everything else gets per-request
	// log data from the middleware. One log path per request.
	statusHandler := status.NewHandler()
	mux := http.NewServeMux()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))
	mux.Handle("/", logging.RequestLogData(r.Logger, apiMux))

	server := http.Server{
		Addr:        ":" + r.Config.HTTPPort,
		Handler:     mux,
		ReadTimeout: time.Duration(30) * time.Second,
		// WriteTimeout stays zero: the event stream endpoint holds its
		// response open for the lifetime of the subscriber.
		WriteTimeout:      0,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
