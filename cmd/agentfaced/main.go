// Package main is the entry point for the agentfaced watcher daemon.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/clawdbot/agentface/internal/buildinfo"
	"github.com/clawdbot/agentface/internal/config"
	"github.com/clawdbot/agentface/internal/daemon"
	"github.com/clawdbot/agentface/internal/daemon/tray"
	"github.com/clawdbot/agentface/internal/models"
)

func main() {
	foreground := flag.Bool("foreground", false, "Run in foreground (no system tray)")
	gatewayFlag := flag.Bool("gateway", false, "Also monitor the gateway process for activity")
	noSerial := flag.Bool("no-serial", false, "Log display commands instead of opening the serial port")
	flag.Parse()

	log.SetPrefix("[agentfaced] ")
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	// Ensure global directory exists
	if err := config.EnsureGlobalDir(); err != nil {
		log.Fatalf("Failed to create global directory: %v", err)
	}

	// Check if daemon is already running
	running, info, err := config.IsDaemonRunning()
	if err != nil {
		log.Fatalf("Failed to check daemon status: %v", err)
	}
	if running {
		log.Fatalf("Daemon already running (PID %d)", info.PID)
	}

	svc, err := daemon.New(daemon.Options{
		Gateway:  *gatewayFlag,
		NoSerial: *noSerial,
	})
	if err != nil {
		log.Fatalf("Failed to create daemon: %v", err)
	}

	if *foreground {
		log.Println("Running in foreground mode (no system tray)")
		runForeground(svc)
	} else {
		log.Println("Running in background mode (with system tray)")
		runWithTray(svc)
	}
}

// saveDaemonInfo records this process so the CLI can find and stop it.
func saveDaemonInfo(svc *daemon.Service) {
	resolver := config.NewResolver()
	info := models.NewDaemonInfo(os.Getpid(), resolver.SignalPath())
	info.Build = buildinfo.Version
	if err := config.SaveDaemonInfo(info); err != nil {
		log.Fatalf("Failed to write daemon info: %v", err)
	}
	log.Printf("Daemon started for agent %q (PID %d)", svc.AgentName(), os.Getpid())
}

// runForeground runs the daemon without a system tray, blocking on signals.
func runForeground(svc *daemon.Service) {
	saveDaemonInfo(svc)

	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Serve()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Printf("Received signal %v, shutting down...", sig)
	case <-svc.ShutdownRequested():
		log.Println("Shutdown requested")
	case err := <-errCh:
		if err != nil {
			log.Printf("Watcher error: %v", err)
		}
	}

	svc.Stop()
	<-errCh

	if err := config.RemoveDaemonInfo(); err != nil {
		log.Printf("Failed to remove daemon info: %v", err)
	}

	fmt.Println("Daemon stopped")
}

// runWithTray runs the daemon with a system tray icon on the main goroutine.
// systray.Run must occupy the main goroutine on macOS (Cocoa requirement).
func runWithTray(svc *daemon.Service) {
	saveDaemonInfo(svc)

	errCh := make(chan error, 1)
	go func() {
		errCh <- svc.Serve()
	}()

	// SIGTERM from `agentface daemon stop` must also exit the tray loop.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		select {
		case sig := <-sigCh:
			log.Printf("Received signal %v, shutting down...", sig)
		case <-svc.ShutdownRequested():
		}
		tray.Quit()
	}()

	tray.Run(svc, func() {
		svc.Stop()
		<-errCh

		if err := config.RemoveDaemonInfo(); err != nil {
			log.Printf("Failed to remove daemon info: %v", err)
		}
		log.Println("Daemon stopped")
	})
}
