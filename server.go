package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberRecover "github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"mock-interview-backend/config"
	apiv1 "mock-interview-backend/controllers/v1"
	"mock-interview-backend/fiberlog"
	"mock-interview-backend/initializers"
	"mock-interview-backend/middleware"
)

func runServer() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	initializers.InitAllServices(ctx)

	uploadLimit := int64(config.Conf.App.UploadLimitMB) * 1024 * 1024
	app := fiber.New(fiber.Config{
		BodyLimit: int(uploadLimit) + 1024*1024,
	})
	app.Use(fiberRecover.New())

	if _, err := os.Stat(config.Conf.App.SwaggerFile); err == nil {
		app.Use(swagger.New(swagger.Config{
			Path:     "/swagger",
			FilePath: config.Conf.App.SwaggerFile,
		}))
	} else {
		log.WithField("file", config.Conf.App.SwaggerFile).Warn("файл swagger не найден, документация отключена")
	}

	if config.Conf.App.ErrNotifyAddr != "" {
		app.Use(middleware.ErrNotify(config.Conf.App.ErrNotifyAddr))
	}
	app.Get("/metrics", fiberlog.New(*initializers.LoggerConfig), adaptor.HTTPHandler(promhttp.Handler()))

	//api
	apiV1 := fiber.New()
	apiV1.Use(middleware.InterviewSession(config.Conf.Interview.CookieName))
	apiV1.Use(fiberlog.New(*initializers.LoggerConfig))
	apiV1.Use(middleware.WithBodyLimit(1024*1024, uploadLimit))
	app.Mount("/api/v1", apiV1)
	apiV1.Use(cors.New(cors.Config{
		AllowHeaders: "Origin, Content-Type, Accept",
		AllowMethods: "GET, POST, DELETE",
	}))
	apiv1.InitInterviewApiRouters(apiV1, config.Conf.Interview.CookieName,
		time.Duration(config.Conf.Interview.SessionTTLHours)*time.Hour)
	apiv1.InitReportApiRouters(apiV1)
	apiv1.InitAudioApiRouters(apiV1)

	// gracefully shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	wg := sync.WaitGroup{}
	wg.Add(1)
	go func() {
		defer wg.Done()
		select {
		case <-c:
		case <-ctx.Done():
			return
		}
		log.Info("Gracefully shutting down...")
		cancel()
		if err := app.Shutdown(); err != nil {
			log.WithError(err).Error("Error when try gracefully shutting down")
		}
		time.Sleep(time.Second)
		log.Info("Gracefully shutting down finished")
	}()

	// run HTTP server
	if err := app.Listen(fmt.Sprintf("%s:%d", config.Conf.App.ListenAddr, config.Conf.App.Port)); err != nil {
		log.WithError(err).Error("ошибка запуска HTTP сервера")
		cancel()
		wg.Wait()
		return err
	}

	wg.Wait()
	log.Info("HTTP server successfully stopped")
	return nil
}
