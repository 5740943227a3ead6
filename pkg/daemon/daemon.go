// Package daemon is the long-running side of dusk: it serves the control
// API on a unix socket and reapplies the gamma on an interval.
package daemon

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/dusklight/dusk/pkg/config"
	"github.com/dusklight/dusk/pkg/display"
	"github.com/dusklight/dusk/pkg/events"
)

var (
	conf    config.Config
	backend display.Backend
	hub     = events.NewHub()
)

func setupRoutes() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(ginLogger(logrus.StandardLogger()))
	router.GET("/config", getConfig)
	router.GET("/gamma", getGamma)
	router.PUT("/schedule", setSchedule)
	router.PUT("/channel/:channel", setChannel)
	router.PUT("/interval", setInterval)
	router.PUT("/outputs", setOutputs)
	router.PUT("/solar", setSolar)
	router.POST("/apply", postApply)
	router.GET("/outputs", getOutputs)
	router.GET("/version", getVersion)
	router.GET("/events", getEvents)

	return router
}

// Run starts the daemon and blocks until SIGINT or SIGTERM.
func Run(configPath string, unixSocketPath string, allowNonRoot bool) error {
	router := setupRoutes()

	fileConf, err := config.NewFile(configPath)
	if err != nil {
		logrus.Fatalf("failed to parse config during startup: %v", err)
	}
	conf = fileConf
	logrus.WithFields(fileConf.LogrusFields()).Infof("config loaded")

	// The engine must be constructible before we start serving; a broken
	// config is a startup error, not something to discover one interval
	// later.
	if _, _, err := currentEngine(); err != nil {
		logrus.Fatalf("invalid gamma configuration: %v", err)
	}

	backend, err = display.Detect()
	if err != nil {
		logrus.Fatalf("cannot control this display: %v", err)
	}
	logrus.Infof("using %s display backend", backend.Name())

	// Receive SIGHUP to reload config
	go func() {
		sigc := make(chan os.Signal, 1)
		signal.Notify(sigc, syscall.SIGHUP)
		for range sigc {
			if err := conf.Load(); err != nil {
				logrus.Errorf("failed to reload config: %v", err)
				continue
			}
			logrus.Infof("config reloaded")
			refreshSolar()
			requestApply()
		}
	}()

	srv := &http.Server{
		Handler: router,
	}

	// A stale socket from an unclean shutdown would fail the listen.
	if err := os.Remove(unixSocketPath); err != nil && !os.IsNotExist(err) {
		logrus.Fatalf("failed to remove stale socket: %v", err)
	}

	l, err := net.Listen("unix", unixSocketPath)
	if err != nil {
		logrus.Fatal(err)
	}

	if conf.AllowNonRootAccess() || allowNonRoot {
		logrus.Infof("non-root access is allowed, changing permissions of %s to 0777", unixSocketPath)
		if err := os.Chmod(unixSocketPath, 0777); err != nil {
			logrus.Fatal(err)
		}
	}

	// Serve HTTP on unix socket
	go func() {
		logrus.Infof("http server listening on %s", l.Addr().String())
		if err := srv.Serve(l); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal(err)
		}
	}()

	stopCh := make(chan struct{})

	go solarRefreshLoop(stopCh)

	go func() {
		logrus.Debugln("apply loop starts")
		applyLoop(stopCh)
		logrus.Debugln("apply loop stopped")
	}()

	// Handle common process-killing signals, so we can gracefully shut down:
	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigc
	logrus.Infof("caught signal \"%s\": shutting down.", sig)

	close(stopCh)

	logrus.Info("shutting down http server")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	if err := srv.Shutdown(ctx); err != nil {
		logrus.Errorf("failed to shutdown http server: %v", err)
	}
	cancel()

	logrus.Info("restoring neutral gamma")
	if err := resetGamma(); err != nil {
		logrus.Errorf("failed to restore neutral gamma before exiting: %v", err)
	}

	logrus.Info("exiting")
	return nil
}
