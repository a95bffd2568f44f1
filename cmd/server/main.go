package main

import (
	"flag"
	"fmt"
	"os"
	"syscall"

	"github.com/fastbite/fastbite/internal/app"
	"github.com/fastbite/fastbite/internal/config"
	"github.com/fastbite/fastbite/internal/logger"
	"github.com/fastbite/fastbite/internal/models"

	"github.com/gin-gonic/gin"
)

const (
	ansiReset  = "\033[0m"
	ansiBold   = "\033[1m"
	ansiDim    = "\033[2m"
	ansiYellow = "\033[33m"
	ansiRed    = "\033[31m"
)

func main() {
	printStartupBanner()

	cfg := config.Load()
	logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	stdLog := logger.StdLogger()

	if err := models.InitDB(cfg.Database.Driver, cfg.Database.DSN, models.DBPoolConfig{
		MaxOpenConns:           cfg.Database.Pool.MaxOpenConns,
		MaxIdleConns:           cfg.Database.Pool.MaxIdleConns,
		ConnMaxLifetimeSeconds: cfg.Database.Pool.ConnMaxLifetimeSeconds,
		ConnMaxIdleTimeSeconds: cfg.Database.Pool.ConnMaxIdleTimeSeconds,
	}); err != nil {
		stdLog.Fatalf("database init failed: %v", err)
	}

	if err := models.AutoMigrate(); err != nil {
		stdLog.Fatalf("database migration failed: %v", err)
	}

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	var mode string
	flag.StringVar(&mode, "mode", app.ModeAll, "run mode: all (default), api, worker")
	flag.Parse()

	if err := app.Run(app.Options{
		Config:  cfg,
		Logger:  logger.S(),
		Signals: []os.Signal{syscall.SIGINT, syscall.SIGTERM},
		Mode:    mode,
	}); err != nil {
		stdLog.Fatalf("run failed: %v", err)
	}
}

func printStartupBanner() {
	fmt.Println(ansiRed + "███████╗ █████╗ ███████╗████████╗██████╗ ██╗████████╗███████╗" + ansiReset)
	fmt.Println(ansiRed + "██╔════╝██╔══██╗██╔════╝╚══██╔══╝██╔══██╗██║╚══██╔══╝██╔════╝" + ansiReset)
	fmt.Println(ansiYellow + "█████╗  ███████║███████╗   ██║   ██████╔╝██║   ██║   █████╗  " + ansiReset)
	fmt.Println(ansiYellow + "██╔══╝  ██╔══██║╚════██║   ██║   ██╔══██╗██║   ██║   ██╔══╝  " + ansiReset)
	fmt.Println(ansiRed + "██║     ██║  ██║███████║   ██║   ██████╔╝██║   ██║   ███████╗" + ansiReset)
	fmt.Println(ansiRed + "╚═╝     ╚═╝  ╚═╝╚══════╝   ╚═╝   ╚═════╝ ╚═╝   ╚═╝   ╚══════╝" + ansiReset)
	fmt.Println(ansiBold + "FastBite ordering API" + ansiReset)
	fmt.Println(ansiDim + "--------------------------------------------------------------" + ansiReset)
}
