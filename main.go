package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"
	"github.com/wybiral/ytdetails/app"
)

var (
	debug   bool
	version bool
	config  string
	envFile string
)

func init() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options]\n", os.Args[0])
		flag.PrintDefaults()
	}

	flag.BoolVarP(&version, "version", "v", false, "display version information")
	flag.BoolVarP(&debug, "debug", "d", false, "enable debug logging")
	flag.StringVarP(&config, "config", "c", "config.json", "path to configuration file")
	flag.StringVarP(&envFile, "env", "e", ".env", "path to environment file")
}

func main() {
	flag.Parse()

	if debug {
		log.SetLevel(log.DebugLevel)
	} else {
		log.SetLevel(log.InfoLevel)
	}

	if version {
		fmt.Printf("ytdetails version %s\n", FullVersion())
		os.Exit(0)
	}

	err := godotenv.Load(envFile)
	if err != nil && !os.IsNotExist(err) {
		log.Fatal(err)
	}

	cfg := app.DefaultConfig()
	err = cfg.ReadFile(config)
	if err != nil && !os.IsNotExist(err) {
		log.Fatal(err)
	}
	a, err := app.NewApp(cfg)
	if err != nil {
		log.Fatal(err)
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		s := <-sig
		log.Infof("received %s, shutting down", s)
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := a.Shutdown(ctx); err != nil {
			log.Error(err)
		}
	}()

	log.Printf("Local server: http://%s", cfg.Addr())
	err = a.Run()
	if err != nil {
		log.Fatal(err)
	}
	<-done
}
