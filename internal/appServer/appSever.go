// launching the server, board storage, uploader and eviction worker
package appServer

import (
	"context"
	"crypto/tls"
	"log"

	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ds124wfegd/digit-canvas/config"
	"github.com/ds124wfegd/digit-canvas/internal/canvas"
	"github.com/ds124wfegd/digit-canvas/internal/database"
	"github.com/ds124wfegd/digit-canvas/internal/pkg/uploader"
	"github.com/ds124wfegd/digit-canvas/internal/service"
	"github.com/ds124wfegd/digit-canvas/internal/transport"
	"github.com/ds124wfegd/digit-canvas/internal/worker"

	"github.com/sirupsen/logrus"
)

type Server struct {
	httpServer *http.Server
}

func (s *Server) Run(cfg *config.Config, handler http.Handler) error {
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		MaxHeaderBytes:    1 << 20,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      cfg.Server.Timeout,
		IdleTimeout:       cfg.Server.Idle_timeout,
		ReadHeaderTimeout: 3 * time.Second,
		TLSConfig:         &tls.Config{MinVersion: tls.VersionTLS12},           // ban on outdate TLS certificate
		ErrorLog:          log.New(os.Stderr, "SERVER ERROR: ", log.LstdFlags), // os.Stderr can be replaced with ElsasticSearch in the feature
	}
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func NewServer(cfg *config.Config) {

	logrus.SetFormatter(new(logrus.JSONFormatter))

	up, err := uploader.New(cfg.Storage)
	if err != nil {
		logrus.Fatalf("error occured while creating uploader: %s", err.Error())
	}
	if up.IsConfigured() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := up.EnsureBucket(ctx); err != nil {
			logrus.Warnf("could not ensure bucket: %s", err.Error())
		}
		cancel()
	} else {
		logrus.Warn("Storage holds placeholder values, submit-all is disabled until configured")
	}

	boardRepo := database.NewBoardRepository(canvas.Options{
		SurfaceSize: cfg.Canvas.SurfaceSize,
		OutputSize:  cfg.Canvas.OutputSize,
		LineWidth:   cfg.Canvas.LineWidth,
	})
	boardService := service.NewBoardService(boardRepo, up, cfg.Canvas.OutputSize)
	boardHandler := transport.NewBoardHandler(boardService)

	workerCtx, stopWorker := context.WithCancel(context.Background())
	evictionWorker := worker.NewBoardEvictionWorker(boardRepo, cfg.Worker.EvictionInterval, cfg.Worker.BoardTTL)
	go evictionWorker.Start(workerCtx)

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	srv := new(Server)
	go func() {
		if err := srv.Run(cfg, transport.InitRoutes(boardHandler, cfg.Canvas.TemplatesDir)); err != nil {
			logrus.Fatalf("error occured while running http server: %s", err.Error())
		}
	}()

	logrus.Print("App Started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGTERM, syscall.SIGINT)
	<-quit

	logrus.Print("App Shutting Down")

	stopWorker()
	if err := srv.Shutdown(context.Background()); err != nil {
		logrus.Errorf("error occured on server shutting down: %s", err.Error())
	}

}
