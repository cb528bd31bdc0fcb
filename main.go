package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	_ "time/tzdata"

	"github.com/getsentry/sentry-go"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/bitmark-inc/locationboard/api"
	"github.com/bitmark-inc/locationboard/external/unidb"
	"github.com/bitmark-inc/locationboard/mapview"
	"github.com/bitmark-inc/locationboard/store"
	"github.com/bitmark-inc/locationboard/utils"
)

var (
	server        *api.Server
	sessions      *mapview.Registry
	metricsCloser io.Closer
)

func initLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

func loadConfig(file string) {
	// secrets such as the contract key may live in a local .env
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file.")
	}

	// Config from file
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	// Config from env if possible
	viper.AutomaticEnv()
	viper.SetEnvPrefix("locationboard")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("source.variant", store.VariantShared)
	viper.SetDefault("source.timeout", 10*time.Second)
	viper.SetDefault("display.timezone", "UTC")
	viper.SetDefault("metrics.prefix", "locationboard")
	viper.SetDefault("metrics.interval", time.Minute)
	viper.SetDefault("map.session.idle_timeout", mapview.DefaultIdleTimeout)
	viper.SetDefault("map.session.max", mapview.DefaultMaxHandles)
}

func main() {
	var configFile string

	c := make(chan os.Signal, 2)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Info("Server is preparing to shutdown")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if server != nil {
			log.Info("Shutdown dashboard api server")
			if err := server.Shutdown(ctx); err != nil {
				log.Error("Server Shutdown:", err)
			}
		}

		if sessions != nil {
			log.Info("Disposing map sessions")
			sessions.Close()
		}

		if metricsCloser != nil {
			if err := metricsCloser.Close(); err != nil {
				log.Error(err)
			}
		}

		sentry.Flush(5 * time.Second)

		os.Exit(1)
	}()

	flag.StringVar(&configFile, "c", "./config.yaml", "[optional] path of configuration file")
	flag.Parse()

	loadConfig(configFile)

	initLog()

	// Sentry
	if err := sentry.Init(sentry.ClientOptions{
		Dsn:              viper.GetString("sentry.dsn"),
		AttachStacktrace: true,
		Environment:      viper.GetString("sentry.environment"),
		Dist:             viper.GetString("sentry.dist"),
	}); err != nil {
		log.Error(err)
	}
	log.WithField("prefix", "init").Info("Initialized sentry")

	scope, closer := utils.NewMetricsScope(viper.GetString("metrics.prefix"), viper.GetDuration("metrics.interval"))
	metricsCloser = closer

	if err := utils.InitI18NBundle(viper.GetString("i18n.dir")); err != nil {
		log.Panicf("load message files with error: %s", err)
	}
	log.WithField("prefix", "init").Info("Initialized i18n bundle")

	httpClient := &http.Client{
		Timeout: viper.GetDuration("source.timeout"),
	}

	client, err := unidb.New(
		viper.GetString("source.base_url"),
		viper.GetString("source.contract_key"),
		httpClient,
		scope)
	if err != nil {
		log.Panicf("create source client with error: %s", err)
	}

	locationStore, err := store.NewLocationStore(viper.GetString("source.variant"), client, store.Options{
		SharedTable: viper.GetString("source.table"),
		UserTable:   viper.GetString("source.user_table"),
	})
	if err != nil {
		log.Panic(err)
	}

	// Init http server
	sessions = mapview.NewRegistry(viper.GetDuration("map.session.idle_timeout"), viper.GetInt("map.session.max"))
	server = api.NewServer(locationStore, sessions, mapview.AssetsFromConfig())
	log.WithField("prefix", "init").Info("Initialized http server")

	if err := server.Run(":" + viper.GetString("server.port")); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
