package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"argonone-ng/internal/button"
	"argonone-ng/internal/config"
	"argonone-ng/internal/fan"
	"argonone-ng/internal/i2c"
	"argonone-ng/internal/power"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "/etc/argonone-ng.yaml", "Path to YAML config")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer cancel()

	bus, err := i2c.Open(cfg.Fan.I2CBus)
	if err != nil {
		log.Fatalf("i2c open failed: %v", err)
	}
	defer bus.Close()

	writer := fan.NewI2CWriter(bus.Dev(cfg.Fan.I2CAddr))
	if err := writer.Probe(); err != nil {
		log.Fatalf("fan device probe failed: %v", err)
	}

	fanSvc, err := fan.New(cfg.Fan, writer, fan.CommandReader(cfg.Temp.Command))
	if err != nil {
		log.Fatalf("fan init failed: %v", err)
	}

	dec := button.NewDecoder(cfg.Button, power.Systemd{})
	line, err := button.RequestLine(cfg.Button.Chip, cfg.Button.Pin, dec.Pulse)
	if err != nil {
		log.Fatalf("gpio request failed: %v", err)
	}
	defer line.Close()

	log.Printf("argonone-ng starting")
	log.Printf("fan bus=%s addr=0x%X interval=%s dynamic=%v", cfg.Fan.I2CBus, cfg.Fan.I2CAddr, cfg.Fan.Delay, cfg.Fan.Dynamic)
	log.Printf("button chip=%s pin=%d", cfg.Button.Chip, cfg.Button.Pin)

	// The two loops are independent but their lifetimes are coupled: a fatal
	// error in either one takes the whole daemon down.
	var wg sync.WaitGroup
	errCh := make(chan error, 2)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := fanSvc.Run(ctx); err != nil {
			errCh <- err
			cancel()
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := dec.Run(ctx); err != nil {
			errCh <- err
			cancel()
		}
	}()

	wg.Wait()
	close(errCh)
	if err := <-errCh; err != nil {
		log.Fatalf("argonone-ng failed: %v", err)
	}
	log.Printf("argonone-ng stopping")
}
